package convert

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkreft/mixport/internal/domain/library"
)

func trackWithCues(path string, types ...library.CueType) *library.Track {
	tr := library.NewTrack()
	tr.FilePath = path
	for i, ct := range types {
		tr.AddCuePoint(library.CuePoint{ID: uuid.New(), Position: float64(i), Type: ct, Index: -1})
	}
	return tr
}

func TestHotCuesToMemoryCues(t *testing.T) {
	col := library.NewCollection("test")
	tr := trackWithCues("/music/a.mp3",
		library.CueHotCue, library.CueGridMarker, library.CueMemory, library.CueHotCue)
	col.AddTrack(tr)

	HotCuesToMemoryCues(col)

	want := []library.CueType{library.CueMemory, library.CueGridMarker, library.CueMemory, library.CueMemory}
	for i, cue := range tr.CuePoints {
		assert.Equal(t, want[i], cue.Type, "cue %d", i)
	}
}

func TestHotCuesToMemoryCues_Idempotent(t *testing.T) {
	col := library.NewCollection("test")
	tr := trackWithCues("/music/a.mp3", library.CueHotCue, library.CueGridMarker)
	col.AddTrack(tr)

	HotCuesToMemoryCues(col)
	once := append([]library.CuePoint(nil), tr.CuePoints...)

	HotCuesToMemoryCues(col)
	assert.Equal(t, once, tr.CuePoints)
}

func TestMergeCollections_DeduplicatesByFilePath(t *testing.T) {
	target := library.NewCollection("target")
	existing := trackWithCues("/music/shared.mp3", library.CueHotCue)
	target.AddTrack(existing)

	source := library.NewCollection("source")
	duplicate := trackWithCues("/music/shared.mp3", library.CueMemory)
	source.AddTrack(duplicate)
	p := library.NewPlaylist("From Source")
	p.AddTrack(duplicate.ID)
	source.AddPlaylist(p)

	MergeCollections(source, target)

	// No new track; the copied playlist references the existing id.
	assert.Equal(t, 1, target.TrackCount())
	merged := target.Playlists()
	require.Len(t, merged, 1)
	assert.Equal(t, []uuid.UUID{existing.ID}, merged[0].TrackIDs)
}

func TestMergeCollections_CopiesNewTracks(t *testing.T) {
	target := library.NewCollection("target")
	source := library.NewCollection("source")

	st := trackWithCues("/music/new.mp3", library.CueHotCue)
	st.Title = "New Track"
	st.SetCustomTag("vendor_key", "v")
	source.AddTrack(st)

	MergeCollections(source, target)

	require.Equal(t, 1, target.TrackCount())
	copied := target.Tracks()[0]
	assert.NotEqual(t, st.ID, copied.ID)
	assert.Equal(t, "New Track", copied.Title)
	assert.Equal(t, "/music/new.mp3", copied.FilePath)
	assert.Equal(t, st.CuePoints, copied.CuePoints)
	assert.Equal(t, st.CustomTags, copied.CustomTags)
}

func TestMergeCollections_DropsUnmappedPlaylistEntries(t *testing.T) {
	target := library.NewCollection("target")
	source := library.NewCollection("source")

	st := trackWithCues("/music/kept.mp3")
	source.AddTrack(st)
	p := library.NewPlaylist("Mixed")
	p.AddTrack(st.ID)
	p.AddTrack(uuid.New()) // never imported, has no mapping
	source.AddPlaylist(p)

	MergeCollections(source, target)

	merged := target.Playlists()
	require.Len(t, merged, 1)
	require.Len(t, merged[0].TrackIDs, 1)

	// Merged playlists arrive as roots; nesting is not reconstructed.
	assert.Nil(t, merged[0].ParentID)
	assert.Len(t, target.RootPlaylists(), 1)
}
