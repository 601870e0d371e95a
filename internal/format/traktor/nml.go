package traktor

import "encoding/xml"

// Document structs mirroring the NML schema subset the importer reads.
// Numeric attributes stay strings here; coercion with defaults happens
// per field so one malformed value never rejects a whole entry.

type nmlDocument struct {
	XMLName    xml.Name      `xml:"NML"`
	Version    string        `xml:"VERSION,attr"`
	Collection nmlCollection `xml:"COLLECTION"`
	Playlists  nmlPlaylists  `xml:"PLAYLISTS"`
}

type nmlCollection struct {
	Entries []nmlEntry `xml:"ENTRY"`
}

type nmlEntry struct {
	Title    string       `xml:"TITLE,attr"`
	Artist   string       `xml:"ARTIST,attr"`
	Key      string       `xml:"KEY,attr"`
	Location *nmlLocation `xml:"LOCATION"`
	Album    *nmlAlbum    `xml:"ALBUM"`
	Info     *nmlInfo     `xml:"INFO"`
	Tempo    *nmlTempo    `xml:"TEMPO"`
	Cues     []nmlCue     `xml:"CUE_V2"`
	Loops    []nmlLoop    `xml:"LOOP"`
}

type nmlLocation struct {
	Volume string `xml:"VOLUME,attr"`
	Dir    string `xml:"DIR,attr"`
	File   string `xml:"FILE,attr"`
}

type nmlAlbum struct {
	Title string `xml:"TITLE,attr"`
}

type nmlInfo struct {
	Genre     string `xml:"GENRE,attr"`
	Comment   string `xml:"COMMENT,attr"`
	Playtime  string `xml:"PLAYTIME,attr"` // seconds
	Ranking   string `xml:"RANKING,attr"`
	Bitrate   string `xml:"BITRATE,attr"`
	Filesize  string `xml:"FILESIZE,attr"`
	PlayCount string `xml:"PLAYCOUNT,attr"`
}

type nmlTempo struct {
	BPM string `xml:"BPM,attr"`
}

type nmlCue struct {
	Name   string `xml:"NAME,attr"`
	Type   string `xml:"TYPE,attr"`
	Start  string `xml:"START,attr"` // milliseconds
	HotCue string `xml:"HOTCUE,attr"`
	Color  string `xml:"COLOR,attr"`
}

type nmlLoop struct {
	Name  string `xml:"NAME,attr"`
	Type  string `xml:"TYPE,attr"`
	Start string `xml:"START,attr"` // milliseconds
	End   string `xml:"END,attr"`   // milliseconds
	Color string `xml:"COLOR,attr"`
}

type nmlPlaylists struct {
	Nodes []nmlNode `xml:"NODE"`
}

// nmlNode is a playlist tree node, either a FOLDER or a PLAYLIST.
// Newer schema versions wrap a folder's children in a SUBNODES element,
// older ones nest NODE elements directly; both fields are kept so the
// walker can try SUBNODES first and fall back.
type nmlNode struct {
	Type     string           `xml:"TYPE,attr"`
	Name     string           `xml:"NAME,attr"`
	Subnodes *nmlSubnodes     `xml:"SUBNODES"`
	Children []nmlNode        `xml:"NODE"`
	Playlist *nmlPlaylistElem `xml:"PLAYLIST"`
}

type nmlSubnodes struct {
	Nodes []nmlNode `xml:"NODE"`
}

type nmlPlaylistElem struct {
	Entries []nmlPlaylistEntry `xml:"ENTRY"`
}

type nmlPlaylistEntry struct {
	Key *nmlPrimaryKey `xml:"PRIMARYKEY"`
}

type nmlPrimaryKey struct {
	Key string `xml:"KEY,attr"`
}
