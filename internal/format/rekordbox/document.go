package rekordbox

import "encoding/xml"

// Cue type codes written to POSITION_MARK Type attributes.
const (
	markTypeMemory = "0"
	markTypeHot    = "1"
	markTypeLoop   = "2"
)

// Node type codes in the PLAYLISTS tree.
const (
	nodeTypeFolder   = "0"
	nodeTypePlaylist = "1"
)

// Document structs for the Rekordbox XML dialect. Attribute values are
// pre-rendered strings so the on-disk form stays format-exact.

type xmlDocument struct {
	XMLName    xml.Name      `xml:"DJ_PLAYLISTS"`
	Version    string        `xml:"Version,attr"`
	XSI        string        `xml:"xmlns:xsi,attr"`
	SchemaLoc  string        `xml:"xsi:noNamespaceSchemaLocation,attr"`
	Product    xmlProduct    `xml:"PRODUCT"`
	Collection xmlCollection `xml:"COLLECTION"`
	Playlists  xmlPlaylists  `xml:"PLAYLISTS"`
}

type xmlProduct struct {
	Name    string `xml:"Name,attr"`
	Version string `xml:"Version,attr"`
	Company string `xml:"Company,attr"`
}

type xmlCollection struct {
	Entries string     `xml:"Entries,attr"`
	Tracks  []xmlTrack `xml:"TRACK"`
}

type xmlTrack struct {
	TrackID    string            `xml:"TrackID,attr"`
	Name       string            `xml:"Name,attr"`
	Artist     string            `xml:"Artist,attr"`
	Album      string            `xml:"Album,attr"`
	Genre      string            `xml:"Genre,attr"`
	TotalTime  string            `xml:"TotalTime,attr"`
	Location   string            `xml:"Location,attr"`
	Rating     string            `xml:"Rating,attr"`
	Tonality   string            `xml:"Tonality,attr"`
	AverageBpm string            `xml:"AverageBpm,attr"`
	DateAdded  string            `xml:"DateAdded,attr"`
	Marks      []xmlPositionMark `xml:"POSITION_MARK"`
}

type xmlPositionMark struct {
	Name  string `xml:"Name,attr"`
	Type  string `xml:"Type,attr"`
	Start string `xml:"Start,attr"`
	End   string `xml:"End,attr,omitempty"` // loops only
	Num   string `xml:"Num,attr"`
}

type xmlPlaylists struct {
	Root xmlNode `xml:"NODE"`
}

type xmlNode struct {
	Type    string        `xml:"Type,attr"`
	Name    string        `xml:"Name,attr"`
	Count   string        `xml:"Count,attr,omitempty"`   // folders
	KeyType string        `xml:"KeyType,attr,omitempty"` // leaf playlists
	Entries string        `xml:"Entries,attr,omitempty"` // leaf playlists
	Refs    []xmlTrackRef `xml:"TRACK"`
	Nodes   []xmlNode     `xml:"NODE"`
}

type xmlTrackRef struct {
	Key string `xml:"Key,attr"`
}
