package format

import "github.com/cockroachdb/errors"

// Structural failures abort the current operation and surface as one of
// these sentinels, checked with errors.Is. Per-entry problems (a bad
// track record, an unresolvable playlist reference) are logged and
// skipped by the mappers and never reach the caller.
var (
	// ErrFormatMismatch means the document does not match the expected
	// vendor schema. Checked before any parse is attempted.
	ErrFormatMismatch = errors.New("document does not match the expected vendor schema")

	// ErrParse means the document is structurally malformed.
	ErrParse = errors.New("malformed library document")

	// ErrExportIO means the destination could not be written.
	ErrExportIO = errors.New("destination could not be written")

	// ErrUnknownFormat means no mapper is registered under the requested
	// name. This is a configuration error and raises immediately.
	ErrUnknownFormat = errors.New("unknown format")
)
