package library

import "github.com/google/uuid"

// Collection owns all tracks and playlists of one imported library. It is
// created by an importer, optionally mutated by transformations, and read
// by an exporter; nothing persists between conversion runs.
//
// Iteration order over tracks and playlists is insertion order. Playlist
// track resolution relies on that when falling back to filename matching.
type Collection struct {
	Name string

	tracks        map[uuid.UUID]*Track
	trackOrder    []uuid.UUID
	playlists     map[uuid.UUID]*Playlist
	playlistOrder []uuid.UUID
	rootPlaylists []uuid.UUID
}

// NewCollection creates an empty collection.
func NewCollection(name string) *Collection {
	return &Collection{
		Name:      name,
		tracks:    make(map[uuid.UUID]*Track),
		playlists: make(map[uuid.UUID]*Playlist),
	}
}

// AddTrack registers a track and returns its id.
func (c *Collection) AddTrack(t *Track) uuid.UUID {
	if _, exists := c.tracks[t.ID]; !exists {
		c.trackOrder = append(c.trackOrder, t.ID)
	}
	c.tracks[t.ID] = t
	return t.ID
}

// Track looks up a track by id.
func (c *Collection) Track(id uuid.UUID) (*Track, bool) {
	t, ok := c.tracks[id]
	return t, ok
}

// TrackByPath returns the first track whose file path matches exactly,
// in insertion order.
func (c *Collection) TrackByPath(path string) (*Track, bool) {
	for _, id := range c.trackOrder {
		if c.tracks[id].FilePath == path {
			return c.tracks[id], true
		}
	}
	return nil, false
}

// Tracks returns all tracks in insertion order.
func (c *Collection) Tracks() []*Track {
	out := make([]*Track, len(c.trackOrder))
	for i, id := range c.trackOrder {
		out[i] = c.tracks[id]
	}
	return out
}

// TrackCount returns the number of tracks.
func (c *Collection) TrackCount() int {
	return len(c.tracks)
}

// AddPlaylist registers a playlist and returns its id. A playlist with no
// parent becomes a root; one with a known parent is attached to that
// parent's children, mirroring the source tree.
func (c *Collection) AddPlaylist(p *Playlist) uuid.UUID {
	if _, exists := c.playlists[p.ID]; !exists {
		c.playlistOrder = append(c.playlistOrder, p.ID)
	}
	c.playlists[p.ID] = p

	if p.ParentID != nil {
		if parent, ok := c.playlists[*p.ParentID]; ok {
			parent.Children = append(parent.Children, p)
			return p.ID
		}
	}
	c.rootPlaylists = append(c.rootPlaylists, p.ID)
	return p.ID
}

// Playlist looks up a playlist by id.
func (c *Collection) Playlist(id uuid.UUID) (*Playlist, bool) {
	p, ok := c.playlists[id]
	return p, ok
}

// Playlists returns all playlists in insertion order.
func (c *Collection) Playlists() []*Playlist {
	out := make([]*Playlist, len(c.playlistOrder))
	for i, id := range c.playlistOrder {
		out[i] = c.playlists[id]
	}
	return out
}

// PlaylistCount returns the number of playlists, folders included.
func (c *Collection) PlaylistCount() int {
	return len(c.playlists)
}

// RootPlaylists returns the ids of playlists with no parent, in the
// order they were added.
func (c *Collection) RootPlaylists() []uuid.UUID {
	return c.rootPlaylists
}

// PlaylistTracks resolves a playlist's track references. Dangling
// references resolve to nothing.
func (c *Collection) PlaylistTracks(id uuid.UUID) []*Track {
	p, ok := c.playlists[id]
	if !ok {
		return nil
	}
	out := make([]*Track, 0, len(p.TrackIDs))
	for _, tid := range p.TrackIDs {
		if t, found := c.tracks[tid]; found {
			out = append(out, t)
		}
	}
	return out
}
