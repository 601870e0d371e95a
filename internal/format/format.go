// Package format defines the capability interfaces vendor formats
// implement and a name-keyed registry that binds them to format names.
package format

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/nkreft/mixport/internal/domain/library"
)

// OptConvertHotCuesToMemoryCues serializes hot cues using the memory cue
// type code. Understood by the rekordbox exporter; the orchestrator also
// applies the equivalent model rewrite at the transform stage. Both
// routes produce identical output.
const OptConvertHotCuesToMemoryCues = "convert_hot_cues_to_memory_cues"

// Options is the open export option set. Exporters decode the keys they
// understand and ignore the rest.
type Options map[string]any

// Bool reads a boolean option, false when absent or not a bool.
func (o Options) Bool(key string) bool {
	v, _ := o[key].(bool)
	return v
}

// Importer produces a Collection from a vendor library file.
type Importer interface {
	// FormatName returns the registry key for this format.
	FormatName() string
	// CanImport reports whether the file looks like this vendor's format.
	// It is a cheap sniff (extension and root tag), not a full parse.
	CanImport(path string) bool
	// ImportLibrary parses the file into a collection.
	ImportLibrary(path string) (*library.Collection, error)
}

// Exporter writes a Collection as a vendor library file.
type Exporter interface {
	// FormatName returns the registry key for this format.
	FormatName() string
	// ExportLibrary serializes the collection to the destination path.
	ExportLibrary(c *library.Collection, path string, opts Options) error
}

// Registry maps format names to importers and exporters. Lookup is
// case-insensitive.
type Registry struct {
	importers map[string]Importer
	exporters map[string]Exporter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		importers: make(map[string]Importer),
		exporters: make(map[string]Exporter),
	}
}

// RegisterImporter registers an importer under its format name.
func (r *Registry) RegisterImporter(i Importer) {
	r.importers[strings.ToLower(i.FormatName())] = i
}

// RegisterExporter registers an exporter under its format name.
func (r *Registry) RegisterExporter(e Exporter) {
	r.exporters[strings.ToLower(e.FormatName())] = e
}

// Importer returns the importer registered under name.
func (r *Registry) Importer(name string) (Importer, error) {
	i, ok := r.importers[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFormat, "no importer for %q", name)
	}
	return i, nil
}

// Exporter returns the exporter registered under name.
func (r *Registry) Exporter(name string) (Exporter, error) {
	e, ok := r.exporters[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFormat, "no exporter for %q", name)
	}
	return e, nil
}

// ImportFormats returns the registered import format names, sorted.
func (r *Registry) ImportFormats() []string {
	names := make([]string, 0, len(r.importers))
	for name := range r.importers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExportFormats returns the registered export format names, sorted.
func (r *Registry) ExportFormats() []string {
	names := make([]string, 0, len(r.exporters))
	for name := range r.exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
