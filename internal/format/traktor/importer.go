// Package traktor implements the Traktor NML library importer.
package traktor

import (
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/text/unicode/norm"

	"github.com/nkreft/mixport/internal/domain/library"
	"github.com/nkreft/mixport/internal/format"
)

// FormatName is the registry key for this importer.
const FormatName = "traktor"

// pathTagKey stores the original vendor path encoding on each track.
// Playlist entries reference tracks by that same encoding, which the
// OS-native path does not round-trip exactly.
const pathTagKey = "traktor_path"

const defaultCueColor = "#FFFFFF"

// Importer reads Traktor NML library files into the neutral model.
type Importer struct{}

// NewImporter creates a Traktor importer.
func NewImporter() *Importer {
	return &Importer{}
}

// FormatName returns the registry key for this importer.
func (im *Importer) FormatName() string {
	return FormatName
}

// CanImport reports whether the file looks like a Traktor NML document:
// a .nml extension and an NML root element.
func (im *Importer) CanImport(path string) bool {
	if !strings.EqualFold(filepath.Ext(path), ".nml") {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	root, err := rootElement(f)
	return err == nil && root == "NML"
}

// rootElement returns the local name of the document's first element.
func rootElement(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start.Name.Local, nil
		}
	}
}

// ImportLibrary parses an NML file into a collection. A file that fails
// the format sniff aborts with ErrFormatMismatch before parsing;
// malformed XML aborts with ErrParse. Individual bad entries are logged
// and skipped.
func (im *Importer) ImportLibrary(path string) (*library.Collection, error) {
	if !im.CanImport(path) {
		return nil, errors.Wrapf(format.ErrFormatMismatch, "%s is not a Traktor NML library", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	var doc nmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "parsing %s", path), format.ErrParse)
	}

	col := library.NewCollection("Traktor Collection")
	im.importTracks(&doc, col)
	im.importPlaylists(&doc, col)

	zlog.Info().
		Str("file", path).
		Int("tracks", col.TrackCount()).
		Int("playlists", col.PlaylistCount()).
		Msg("imported Traktor library")
	return col, nil
}

func (im *Importer) importTracks(doc *nmlDocument, col *library.Collection) {
	for i := range doc.Collection.Entries {
		t, err := parseTrack(&doc.Collection.Entries[i])
		if err != nil {
			zlog.Warn().Err(err).Int("entry", i).Msg("skipping collection entry")
			continue
		}
		col.AddTrack(t)
	}
}

func parseTrack(e *nmlEntry) (*library.Track, error) {
	if e.Location == nil {
		return nil, errors.Newf("entry %q has no LOCATION", e.Title)
	}

	native, vendorKey := decodeLocation(e.Location.Volume, e.Location.Dir, e.Location.File)

	t := library.NewTrack()
	t.Title = e.Title
	t.Artist = e.Artist
	t.Key = e.Key
	t.FilePath = native
	t.SetCustomTag(pathTagKey, vendorKey)

	if e.Album != nil {
		t.Album = e.Album.Title
	}
	if e.Info != nil {
		t.Genre = e.Info.Genre
		t.Comment = e.Info.Comment
		t.Duration = parseFloat(e.Info.Playtime)
		t.Rating = parseInt(e.Info.Ranking)
		t.Bitrate = parseInt(e.Info.Bitrate)
		t.FileSize = int64(parseInt(e.Info.Filesize))
		t.PlayCount = parseInt(e.Info.PlayCount)
	}
	if e.Tempo != nil {
		t.BPM = parseFloat(e.Tempo.BPM)
	}

	for _, c := range e.Cues {
		t.AddCuePoint(parseCue(c))
	}
	for _, l := range e.Loops {
		t.AddLoop(parseLoop(l))
	}
	return t, nil
}

func parseCue(c nmlCue) library.CuePoint {
	cueType := neutralCueType(c.Type)

	// The pad slot is meaningful for hot cues only.
	index := -1
	if cueType == library.CueHotCue {
		index = parseIndex(c.HotCue)
	}

	color := c.Color
	if color == "" {
		color = defaultCueColor
	}

	return library.CuePoint{
		ID:       uuid.New(),
		Name:     c.Name,
		Position: parseFloat(c.Start) / 1000, // milliseconds to seconds
		Type:     cueType,
		Color:    color,
		Index:    index,
	}
}

func parseLoop(l nmlLoop) library.Loop {
	color := l.Color
	if color == "" {
		color = defaultCueColor
	}
	return library.Loop{
		ID:    uuid.New(),
		Name:  l.Name,
		Start: parseFloat(l.Start) / 1000,
		End:   parseFloat(l.End) / 1000,
		Type:  neutralLoopType(l.Type),
		Color: color,
		Index: -1,
	}
}

// Missing or malformed numeric attributes fall back to zero; one bad
// field never rejects a whole entry.
func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func parseIndex(s string) int {
	if s == "" {
		return -1
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return v
}

func (im *Importer) importPlaylists(doc *nmlDocument, col *library.Collection) {
	for i := range doc.Playlists.Nodes {
		im.walkNode(&doc.Playlists.Nodes[i], nil, col)
	}
}

// walkNode turns one playlist tree node into a Playlist and recurses
// into folders. Parent linkage mirrors the source tree exactly.
func (im *Importer) walkNode(node *nmlNode, parentID *uuid.UUID, col *library.Collection) {
	switch node.Type {
	case "FOLDER":
		p := library.NewPlaylist(node.Name)
		p.ParentID = parentID
		id := col.AddPlaylist(p)

		children := node.Children
		if node.Subnodes != nil {
			children = node.Subnodes.Nodes
		}
		for i := range children {
			im.walkNode(&children[i], &id, col)
		}

	case "PLAYLIST":
		p := library.NewPlaylist(node.Name)
		p.ParentID = parentID
		col.AddPlaylist(p)

		if node.Playlist == nil {
			return
		}
		for _, entry := range node.Playlist.Entries {
			if entry.Key == nil || entry.Key.Key == "" {
				continue
			}
			t := resolveTrack(col, entry.Key.Key)
			if t == nil {
				zlog.Debug().
					Str("playlist", node.Name).
					Str("key", entry.Key.Key).
					Msg("playlist entry does not match any imported track, dropped")
				continue
			}
			p.AddTrack(t.ID)
		}

	default:
		zlog.Warn().Str("type", node.Type).Str("name", node.Name).Msg("skipping unknown playlist node type")
	}
}

// resolveTrack matches a playlist PRIMARYKEY against imported tracks:
// first an exact match on the stored vendor key, then a filename suffix
// match against the native path. The fallback takes the first match in
// insertion order, so it can pick the wrong track when two files share a
// name in different directories. Known limitation, kept as-is.
func resolveTrack(col *library.Collection, key string) *library.Track {
	key = norm.NFC.String(key)

	for _, t := range col.Tracks() {
		if tag, ok := t.CustomTag(pathTagKey); ok && tag == key {
			return t
		}
	}

	_, file, ok := splitKey(key)
	if !ok {
		return nil
	}
	for _, t := range col.Tracks() {
		if strings.HasSuffix(t.FilePath, file) {
			return t
		}
	}
	return nil
}
