package rekordbox

import (
	"github.com/cockroachdb/errors"
	"github.com/mitchellh/mapstructure"

	"github.com/nkreft/mixport/internal/format"
)

// Options is the closed export configuration set.
type Options struct {
	// ConvertHotCuesToMemoryCues serializes hot cues with the memory cue
	// type code even when the in-memory cue is still tagged as a hot
	// cue. Applying the model-level rewrite first and leaving this off
	// produces the same bytes.
	ConvertHotCuesToMemoryCues bool `mapstructure:"convert_hot_cues_to_memory_cues"`
}

// DecodeOptions decodes the open option map into the typed set. Unknown
// keys are ignored; a malformed value fails the export, marked as an
// export error so callers classify it with errors.Is.
func DecodeOptions(raw format.Options) (Options, error) {
	var opts Options
	if err := mapstructure.Decode(map[string]any(raw), &opts); err != nil {
		return Options{}, errors.Mark(errors.Wrap(err, "decoding rekordbox export options"), format.ErrExportIO)
	}
	return opts, nil
}
