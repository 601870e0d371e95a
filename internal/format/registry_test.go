package format

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkreft/mixport/internal/domain/library"
)

type stubImporter struct{ name string }

func (s *stubImporter) FormatName() string    { return s.name }
func (s *stubImporter) CanImport(string) bool { return true }
func (s *stubImporter) ImportLibrary(string) (*library.Collection, error) {
	return library.NewCollection(s.name), nil
}

type stubExporter struct{ name string }

func (s *stubExporter) FormatName() string { return s.name }
func (s *stubExporter) ExportLibrary(*library.Collection, string, Options) error {
	return nil
}

func TestRegistry_LookupIsCaseInsensitive(t *testing.T) {
	r := NewRegistry()
	r.RegisterImporter(&stubImporter{name: "Traktor"})
	r.RegisterExporter(&stubExporter{name: "Rekordbox"})

	imp, err := r.Importer("TRAKTOR")
	require.NoError(t, err)
	assert.Equal(t, "Traktor", imp.FormatName())

	exp, err := r.Exporter("rekordbox")
	require.NoError(t, err)
	assert.Equal(t, "Rekordbox", exp.FormatName())
}

func TestRegistry_UnknownFormat(t *testing.T) {
	r := NewRegistry()

	_, err := r.Importer("serato")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	_, err = r.Exporter("serato")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestRegistry_FormatNamesSorted(t *testing.T) {
	r := NewRegistry()
	r.RegisterImporter(&stubImporter{name: "zulu"})
	r.RegisterImporter(&stubImporter{name: "alpha"})
	r.RegisterExporter(&stubExporter{name: "mike"})

	assert.Equal(t, []string{"alpha", "zulu"}, r.ImportFormats())
	assert.Equal(t, []string{"mike"}, r.ExportFormats())
}

func TestOptions_Bool(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		expected bool
	}{
		{name: "true value", opts: Options{OptConvertHotCuesToMemoryCues: true}, expected: true},
		{name: "false value", opts: Options{OptConvertHotCuesToMemoryCues: false}, expected: false},
		{name: "absent key", opts: Options{}, expected: false},
		{name: "wrong type", opts: Options{OptConvertHotCuesToMemoryCues: "yes"}, expected: false},
		{name: "nil map", opts: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.opts.Bool(OptConvertHotCuesToMemoryCues))
		})
	}
}
