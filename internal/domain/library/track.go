// Package library provides the vendor-neutral DJ library model that all
// format mappers target.
package library

import (
	"time"

	"github.com/google/uuid"
)

// CueType is the neutral cue point taxonomy shared by all formats.
type CueType int

const (
	CueHotCue CueType = iota
	CueMemory
	CueGridMarker
	CueLoopIn
	CueLoopOut
	CueLoadMarker
	CueFadeIn
	CueFadeOut
)

// String returns the cue type name.
func (t CueType) String() string {
	switch t {
	case CueHotCue:
		return "HOT_CUE"
	case CueMemory:
		return "MEMORY_CUE"
	case CueGridMarker:
		return "GRID_MARKER"
	case CueLoopIn:
		return "LOOP_IN"
	case CueLoopOut:
		return "LOOP_OUT"
	case CueLoadMarker:
		return "LOAD_MARKER"
	case CueFadeIn:
		return "FADE_IN"
	case CueFadeOut:
		return "FADE_OUT"
	default:
		return "UNKNOWN"
	}
}

// LoopType is the neutral loop taxonomy.
type LoopType int

const (
	LoopRegular LoopType = iota
	LoopSaved
	LoopAuto
)

// CuePoint represents a position marker on a track.
type CuePoint struct {
	ID       uuid.UUID
	Name     string
	Position float64 // seconds from track start
	Type     CueType
	Color    string
	Index    int // hot cue pad slot, -1 when unassigned
}

// Loop represents a saved loop region on a track.
type Loop struct {
	ID    uuid.UUID
	Name  string
	Start float64 // seconds
	End   float64 // seconds, End >= Start
	Type  LoopType
	Color string
	Index int // pad slot, -1 when unassigned
}

// Length returns the loop length in seconds.
func (l *Loop) Length() float64 {
	return l.End - l.Start
}

// GridMarker carries one vendor beat-grid element's attributes as-is.
// The converter never interprets beat grids, it only passes them through.
type GridMarker map[string]string

// Track represents one music file's metadata.
type Track struct {
	ID         uuid.UUID // process-generated, stable within one run only
	Title      string
	Artist     string
	Album      string
	Genre      string
	BPM        float64 // 0 means unknown
	Key        string  // musical key, free text
	Duration   float64 // seconds
	FilePath   string  // absolute, OS-native; the cross-format join key
	FileSize   int64
	Bitrate    int
	SampleRate int
	Comment    string
	Year       int
	Rating     int // vendor scale, passed through unchanged
	ImportedAt time.Time
	LastPlayed *time.Time
	PlayCount  int
	CuePoints  []CuePoint
	Loops      []Loop
	BeatGrid   []GridMarker
	CustomTags map[string]string // vendor-specific matching keys
}

// NewTrack creates a track with a fresh id and import timestamp.
func NewTrack() *Track {
	return &Track{
		ID:         uuid.New(),
		ImportedAt: time.Now(),
		CustomTags: make(map[string]string),
	}
}

// AddCuePoint appends a cue point to the track.
func (t *Track) AddCuePoint(c CuePoint) {
	t.CuePoints = append(t.CuePoints, c)
}

// AddLoop appends a loop to the track.
func (t *Track) AddLoop(l Loop) {
	t.Loops = append(t.Loops, l)
}

// SetCustomTag stores a vendor-specific key on the track.
func (t *Track) SetCustomTag(key, value string) {
	if t.CustomTags == nil {
		t.CustomTags = make(map[string]string)
	}
	t.CustomTags[key] = value
}

// CustomTag looks up a vendor-specific key.
func (t *Track) CustomTag(key string) (string, bool) {
	v, ok := t.CustomTags[key]
	return v, ok
}

// Clone returns a deep copy of the track under a fresh id.
func (t *Track) Clone() *Track {
	c := *t
	c.ID = uuid.New()
	c.CuePoints = append([]CuePoint(nil), t.CuePoints...)
	c.Loops = append([]Loop(nil), t.Loops...)
	c.BeatGrid = make([]GridMarker, len(t.BeatGrid))
	for i, m := range t.BeatGrid {
		marker := make(GridMarker, len(m))
		for k, v := range m {
			marker[k] = v
		}
		c.BeatGrid[i] = marker
	}
	c.CustomTags = make(map[string]string, len(t.CustomTags))
	for k, v := range t.CustomTags {
		c.CustomTags[k] = v
	}
	if t.LastPlayed != nil {
		lp := *t.LastPlayed
		c.LastPlayed = &lp
	}
	return &c
}
