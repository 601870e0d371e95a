package library

import "github.com/google/uuid"

// Playlist is a named ordered list of track references, or a folder of
// child playlists. A node with children is a folder, a node without is a
// leaf playlist; a node is never both.
type Playlist struct {
	ID          uuid.UUID
	Name        string
	Description string
	TrackIDs    []uuid.UUID // ordered, duplicates suppressed
	ParentID    *uuid.UUID  // back-reference for lookup only, never traversed
	Children    []*Playlist // owned child playlists, in source order
}

// NewPlaylist creates an empty playlist with a fresh id.
func NewPlaylist(name string) *Playlist {
	return &Playlist{
		ID:   uuid.New(),
		Name: name,
	}
}

// AddTrack appends a track reference. Re-adding an existing id is a no-op.
func (p *Playlist) AddTrack(id uuid.UUID) {
	for _, existing := range p.TrackIDs {
		if existing == id {
			return
		}
	}
	p.TrackIDs = append(p.TrackIDs, id)
}

// RemoveTrack removes a track reference if present.
func (p *Playlist) RemoveTrack(id uuid.UUID) {
	for i, existing := range p.TrackIDs {
		if existing == id {
			p.TrackIDs = append(p.TrackIDs[:i], p.TrackIDs[i+1:]...)
			return
		}
	}
}

// IsFolder reports whether the playlist owns child playlists.
func (p *Playlist) IsFolder() bool {
	return len(p.Children) > 0
}

// IsLeaf reports whether the playlist is an actual track list.
func (p *Playlist) IsLeaf() bool {
	return len(p.Children) == 0
}
