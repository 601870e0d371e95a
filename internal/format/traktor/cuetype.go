package traktor

import (
	"strings"

	"github.com/nkreft/mixport/internal/domain/library"
)

// Cue type strings as written in CUE_V2 TYPE attributes.
const (
	cueTypeCue     = "cue"
	cueTypeFadeIn  = "fade-in"
	cueTypeFadeOut = "fade-out"
	cueTypeLoad    = "load"
	cueTypeGrid    = "grid"
	cueTypeLoop    = "loop"
)

// neutralCueType maps a Traktor cue type string to the neutral taxonomy.
// Fade, load and loop markers live on hot cue pads in Traktor and carry
// a HOTCUE slot, so they collapse to a hot cue; only grid markers get
// their own type. Unrecognized types map to a hot cue as well, matching
// Traktor's treatment of untyped markers. Total function, no error path.
func neutralCueType(vendor string) library.CueType {
	switch vendor {
	case cueTypeGrid:
		return library.CueGridMarker
	case cueTypeCue, cueTypeFadeIn, cueTypeFadeOut, cueTypeLoad, cueTypeLoop:
		return library.CueHotCue
	default:
		return library.CueHotCue
	}
}

// neutralLoopType maps a LOOP element's TYPE flag. Loops are regular
// unless the source explicitly flags a saved or auto loop.
func neutralLoopType(vendor string) library.LoopType {
	switch strings.ToLower(vendor) {
	case "saved":
		return library.LoopSaved
	case "auto", "autoloop":
		return library.LoopAuto
	default:
		return library.LoopRegular
	}
}
