// Package convert provides pure transformations over a library
// Collection. No I/O happens here.
package convert

import (
	"github.com/google/uuid"

	"github.com/nkreft/mixport/internal/domain/library"
)

// HotCuesToMemoryCues rewrites every hot cue on every track to a memory
// cue, in place. All other cue types pass through unchanged. Idempotent.
func HotCuesToMemoryCues(c *library.Collection) *library.Collection {
	for _, t := range c.Tracks() {
		for i := range t.CuePoints {
			if t.CuePoints[i].Type == library.CueHotCue {
				t.CuePoints[i].Type = library.CueMemory
			}
		}
	}
	return c
}

// MergeCollections copies every track and playlist from source into
// target. A source track whose file path exactly matches an existing
// target track is not copied; the target track's id is reused instead.
// Source playlists are recreated with their track lists translated
// through the id remapping; entries that did not map are dropped.
//
// Cross-collection folder nesting is not reconstructed: merged playlists
// arrive in the target as roots.
func MergeCollections(source, target *library.Collection) *library.Collection {
	remap := make(map[uuid.UUID]uuid.UUID, source.TrackCount())

	for _, st := range source.Tracks() {
		if existing, ok := target.TrackByPath(st.FilePath); ok {
			remap[st.ID] = existing.ID
			continue
		}
		clone := st.Clone()
		target.AddTrack(clone)
		remap[st.ID] = clone.ID
	}

	for _, sp := range source.Playlists() {
		np := library.NewPlaylist(sp.Name)
		np.Description = sp.Description
		for _, tid := range sp.TrackIDs {
			if mapped, ok := remap[tid]; ok {
				np.AddTrack(mapped)
			}
		}
		target.AddPlaylist(np)
	}

	return target
}
