// Package conversion orchestrates one library conversion run: import,
// transformation, export, with coarse progress reporting.
package conversion

import (
	"fmt"

	"github.com/nkreft/mixport/internal/domain/convert"
	"github.com/nkreft/mixport/internal/format"
)

// ProgressFunc receives coarse progress milestones. It is called on the
// conversion goroutine and must return quickly; there is no concurrency
// keeping the caller responsive.
type ProgressFunc func(percent int, message string)

// Request describes one conversion run.
type Request struct {
	InputPath    string
	InputFormat  string
	OutputPath   string
	OutputFormat string
	Options      format.Options
}

// Orchestrator drives conversions through the format registry. Each run
// owns its collection exclusively from import to export; runs are
// sequential and synchronous.
type Orchestrator struct {
	registry *format.Registry
	progress ProgressFunc
}

// New creates an orchestrator with a no-op progress sink.
func New(registry *format.Registry) *Orchestrator {
	return &Orchestrator{
		registry: registry,
		progress: func(int, string) {},
	}
}

// SetProgressFunc installs a progress sink. nil restores the no-op sink.
func (o *Orchestrator) SetProgressFunc(fn ProgressFunc) {
	if fn == nil {
		fn = func(int, string) {}
	}
	o.progress = fn
}

// Convert imports the input library, applies requested transformations
// and exports the result. Unknown format names fail immediately without
// touching any file. Structural failures surface both as the returned
// error and as a final 100% progress message.
func (o *Orchestrator) Convert(req Request) error {
	importer, err := o.registry.Importer(req.InputFormat)
	if err != nil {
		return err
	}
	exporter, err := o.registry.Exporter(req.OutputFormat)
	if err != nil {
		return err
	}

	o.progress(10, fmt.Sprintf("Importing %s library...", importer.FormatName()))
	col, err := importer.ImportLibrary(req.InputPath)
	if err != nil {
		o.progress(100, fmt.Sprintf("Failed to import %s library: %v", importer.FormatName(), err))
		return err
	}

	o.progress(40, "Processing library...")
	if req.Options.Bool(format.OptConvertHotCuesToMemoryCues) {
		convert.HotCuesToMemoryCues(col)
	}

	o.progress(70, fmt.Sprintf("Exporting to %s...", exporter.FormatName()))
	if err := exporter.ExportLibrary(col, req.OutputPath, req.Options); err != nil {
		o.progress(100, fmt.Sprintf("Failed to export to %s: %v", exporter.FormatName(), err))
		return err
	}

	o.progress(100, "Conversion completed successfully")
	return nil
}
