package library

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTrack(title, path string) *Track {
	tr := NewTrack()
	tr.Title = title
	tr.FilePath = path
	return tr
}

func TestCollection_Tracks_InsertionOrder(t *testing.T) {
	col := NewCollection("test")
	t1 := newTestTrack("one", "/music/one.mp3")
	t2 := newTestTrack("two", "/music/two.mp3")
	t3 := newTestTrack("three", "/music/three.mp3")
	col.AddTrack(t1)
	col.AddTrack(t2)
	col.AddTrack(t3)

	tracks := col.Tracks()
	require.Len(t, tracks, 3)
	assert.Equal(t, "one", tracks[0].Title)
	assert.Equal(t, "two", tracks[1].Title)
	assert.Equal(t, "three", tracks[2].Title)
	assert.Equal(t, 3, col.TrackCount())
}

func TestCollection_TrackByPath_FirstMatchWins(t *testing.T) {
	col := NewCollection("test")
	t1 := newTestTrack("first", "/music/a/track.mp3")
	t2 := newTestTrack("second", "/music/a/track.mp3")
	col.AddTrack(t1)
	col.AddTrack(t2)

	found, ok := col.TrackByPath("/music/a/track.mp3")
	require.True(t, ok)
	assert.Equal(t, t1.ID, found.ID)

	_, ok = col.TrackByPath("/music/missing.mp3")
	assert.False(t, ok)
}

func TestCollection_AddPlaylist_RootsAndChildren(t *testing.T) {
	col := NewCollection("test")

	folder := NewPlaylist("Folder")
	folderID := col.AddPlaylist(folder)

	child := NewPlaylist("Child")
	child.ParentID = &folderID
	col.AddPlaylist(child)

	root := NewPlaylist("Root Playlist")
	col.AddPlaylist(root)

	assert.Equal(t, []uuid.UUID{folder.ID, root.ID}, col.RootPlaylists())
	require.Len(t, folder.Children, 1)
	assert.Equal(t, child.ID, folder.Children[0].ID)
	assert.True(t, folder.IsFolder())
	assert.True(t, child.IsLeaf())
	assert.Equal(t, 3, col.PlaylistCount())
}

func TestCollection_AddPlaylist_UnknownParentBecomesRoot(t *testing.T) {
	col := NewCollection("test")
	missing := uuid.New()

	p := NewPlaylist("Orphan")
	p.ParentID = &missing
	col.AddPlaylist(p)

	assert.Equal(t, []uuid.UUID{p.ID}, col.RootPlaylists())
}

func TestCollection_PlaylistTracks_DanglingResolvesToNothing(t *testing.T) {
	col := NewCollection("test")
	tr := newTestTrack("one", "/music/one.mp3")
	col.AddTrack(tr)

	p := NewPlaylist("Favorites")
	p.AddTrack(tr.ID)
	p.AddTrack(uuid.New()) // dangling
	col.AddPlaylist(p)

	tracks := col.PlaylistTracks(p.ID)
	require.Len(t, tracks, 1)
	assert.Equal(t, tr.ID, tracks[0].ID)
}

func TestTrack_Clone_DeepCopiesContainers(t *testing.T) {
	tr := newTestTrack("one", "/music/one.mp3")
	tr.AddCuePoint(CuePoint{ID: uuid.New(), Name: "intro", Position: 1.5, Type: CueHotCue, Index: 0})
	tr.AddLoop(Loop{ID: uuid.New(), Name: "main", Start: 10, End: 14, Type: LoopRegular, Index: -1})
	tr.SetCustomTag("vendor_key", "original")
	tr.BeatGrid = []GridMarker{{"BPM": "128.00"}}

	clone := tr.Clone()

	assert.NotEqual(t, tr.ID, clone.ID)
	assert.Equal(t, tr.CuePoints, clone.CuePoints)
	assert.Equal(t, tr.Loops, clone.Loops)
	assert.Equal(t, tr.CustomTags, clone.CustomTags)
	assert.Equal(t, tr.BeatGrid, clone.BeatGrid)

	// Mutating the clone must not leak into the original.
	clone.CuePoints[0].Name = "changed"
	clone.CustomTags["vendor_key"] = "changed"
	clone.BeatGrid[0]["BPM"] = "140.00"
	assert.Equal(t, "intro", tr.CuePoints[0].Name)
	assert.Equal(t, "original", tr.CustomTags["vendor_key"])
	assert.Equal(t, "128.00", tr.BeatGrid[0]["BPM"])
}

func TestLoop_Length(t *testing.T) {
	l := Loop{Start: 12.5, End: 20.5}
	assert.InDelta(t, 8.0, l.Length(), 1e-9)
}
