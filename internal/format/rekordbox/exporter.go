// Package rekordbox implements the Rekordbox XML library exporter.
package rekordbox

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/nkreft/mixport/internal/domain/library"
	"github.com/nkreft/mixport/internal/format"
)

// FormatName is the registry key for this exporter.
const FormatName = "rekordbox"

const (
	schemaVersion  = "1.0.0"
	xsiNamespace   = "http://www.w3.org/2001/XMLSchema-instance"
	schemaLocation = "https://raw.githubusercontent.com/rekordbox/xml-schema/master/rekordbox_xml_schema.xsd"
)

// Product identifies the writing application in the exported document's
// PRODUCT element.
type Product struct {
	Name    string
	Version string
	Company string
}

// Exporter writes a neutral collection as a Rekordbox XML library.
type Exporter struct {
	product Product
}

// NewExporter creates a Rekordbox exporter stamped with the given
// product info.
func NewExporter(product Product) *Exporter {
	return &Exporter{product: product}
}

// FormatName returns the registry key for this exporter.
func (ex *Exporter) FormatName() string {
	return FormatName
}

// ExportLibrary serializes the collection and writes it atomically: the
// document goes to a temporary file in the destination directory and is
// renamed into place, so a failed export never leaves a partial file.
func (ex *Exporter) ExportLibrary(col *library.Collection, path string, raw format.Options) error {
	opts, err := DecodeOptions(raw)
	if err != nil {
		return err
	}

	doc := ex.buildDocument(col, opts)
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Mark(errors.Wrap(err, "serializing library"), format.ErrExportIO)
	}

	if err := writeAtomic(path, append([]byte(xml.Header), data...)); err != nil {
		return errors.Mark(errors.Wrapf(err, "writing %s", path), format.ErrExportIO)
	}

	zlog.Info().
		Str("file", path).
		Int("tracks", col.TrackCount()).
		Int("playlists", col.PlaylistCount()).
		Msg("exported Rekordbox library")
	return nil
}

func (ex *Exporter) buildDocument(col *library.Collection, opts Options) *xmlDocument {
	tracks := col.Tracks()

	doc := &xmlDocument{
		Version:   schemaVersion,
		XSI:       xsiNamespace,
		SchemaLoc: schemaLocation,
		Product: xmlProduct{
			Name:    ex.product.Name,
			Version: ex.product.Version,
			Company: ex.product.Company,
		},
	}

	doc.Collection.Entries = strconv.Itoa(len(tracks))
	for _, t := range tracks {
		doc.Collection.Tracks = append(doc.Collection.Tracks, buildTrack(t, opts))
	}

	roots := col.RootPlaylists()
	rootNode := xmlNode{
		Type:  nodeTypeFolder,
		Name:  "ROOT",
		Count: strconv.Itoa(len(roots)),
	}
	for _, id := range roots {
		p, ok := col.Playlist(id)
		if !ok {
			continue
		}
		rootNode.Nodes = append(rootNode.Nodes, buildNode(p, col))
	}
	doc.Playlists.Root = rootNode

	return doc
}

func buildTrack(t *library.Track, opts Options) xmlTrack {
	xt := xmlTrack{
		TrackID:    compactID(t.ID),
		Name:       t.Title,
		Artist:     t.Artist,
		Album:      t.Album,
		Genre:      t.Genre,
		TotalTime:  strconv.Itoa(int(t.Duration)), // whole seconds, truncated
		Location:   encodeLocation(t.FilePath),
		Rating:     strconv.Itoa(t.Rating),
		Tonality:   t.Key,
		AverageBpm: strconv.FormatFloat(t.BPM, 'f', 2, 64),
		DateAdded:  t.ImportedAt.Format("2006-01-02"),
	}

	for _, cue := range t.CuePoints {
		markType := markTypeMemory
		if cue.Type == library.CueHotCue && !opts.ConvertHotCuesToMemoryCues {
			markType = markTypeHot
		}
		xt.Marks = append(xt.Marks, xmlPositionMark{
			Name:  cue.Name,
			Type:  markType,
			Start: formatMillis(cue.Position),
			Num:   strconv.Itoa(padIndex(cue.Index)),
		})
	}

	for _, loop := range t.Loops {
		xt.Marks = append(xt.Marks, xmlPositionMark{
			Name:  loop.Name,
			Type:  markTypeLoop,
			Start: formatMillis(loop.Start),
			End:   formatMillis(loop.End),
			Num:   strconv.Itoa(padIndex(loop.Index)),
		})
	}

	return xt
}

// buildNode serializes one playlist subtree, depth-first. A node with
// children becomes a folder, one without becomes a leaf playlist whose
// entry count reflects the references actually emitted.
func buildNode(p *library.Playlist, col *library.Collection) xmlNode {
	if p.IsFolder() {
		node := xmlNode{
			Type:  nodeTypeFolder,
			Name:  p.Name,
			Count: strconv.Itoa(len(p.Children)),
		}
		for _, child := range p.Children {
			node.Nodes = append(node.Nodes, buildNode(child, col))
		}
		return node
	}

	node := xmlNode{
		Type:    nodeTypePlaylist,
		Name:    p.Name,
		KeyType: "0",
	}
	for _, id := range p.TrackIDs {
		t, ok := col.Track(id)
		if !ok {
			// Dangling reference, dropped silently.
			continue
		}
		node.Refs = append(node.Refs, xmlTrackRef{Key: compactID(t.ID)})
	}
	node.Entries = strconv.Itoa(len(node.Refs))
	return node
}

// compactID renders an id in Rekordbox's compact hexadecimal form.
func compactID(id uuid.UUID) string {
	return strings.ReplaceAll(id.String(), "-", "")
}

// formatMillis converts seconds to whole milliseconds, truncating.
func formatMillis(seconds float64) string {
	return strconv.FormatInt(int64(seconds*1000), 10)
}

// padIndex substitutes pad 0 for unassigned slots; -1 is never written.
func padIndex(i int) int {
	if i < 0 {
		return 0
	}
	return i
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".rekordbox-*.xml")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
