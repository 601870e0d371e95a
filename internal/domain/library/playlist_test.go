package library

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPlaylist_AddTrack_SuppressesDuplicates(t *testing.T) {
	p := NewPlaylist("Favorites")
	id1 := uuid.New()
	id2 := uuid.New()

	p.AddTrack(id1)
	p.AddTrack(id2)
	p.AddTrack(id1) // no-op

	assert.Equal(t, []uuid.UUID{id1, id2}, p.TrackIDs)
}

func TestPlaylist_RemoveTrack(t *testing.T) {
	p := NewPlaylist("Favorites")
	id1 := uuid.New()
	id2 := uuid.New()
	p.AddTrack(id1)
	p.AddTrack(id2)

	p.RemoveTrack(id1)
	assert.Equal(t, []uuid.UUID{id2}, p.TrackIDs)

	// Removing an absent id is a no-op.
	p.RemoveTrack(id1)
	assert.Equal(t, []uuid.UUID{id2}, p.TrackIDs)
}

func TestPlaylist_FolderVsLeaf(t *testing.T) {
	parent := NewPlaylist("Folder")
	child := NewPlaylist("Child")

	assert.True(t, parent.IsLeaf())
	assert.False(t, parent.IsFolder())

	parent.Children = append(parent.Children, child)

	assert.True(t, parent.IsFolder())
	assert.False(t, parent.IsLeaf())
	assert.True(t, child.IsLeaf())
}
