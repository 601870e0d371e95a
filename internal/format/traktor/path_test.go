package traktor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func TestDecodeLocation(t *testing.T) {
	tests := []struct {
		name       string
		volume     string
		dir        string
		file       string
		wantNative string
		wantKey    string
	}{
		{
			name:       "mac style volume with trailing delimiter",
			volume:     "Macintosh HD",
			dir:        "/:Users/:anna/:Music/:",
			file:       "track.mp3",
			wantNative: "/Macintosh HD/Users/anna/Music/track.mp3",
			wantKey:    "Macintosh HD/:Users/:anna/:Music/:track.mp3",
		},
		{
			name:       "empty volume",
			volume:     "",
			dir:        "/:music",
			file:       "track.mp3",
			wantNative: "/music/track.mp3",
			wantKey:    "/:music/:track.mp3",
		},
		{
			name:       "single directory segment",
			volume:     "HD",
			dir:        "/:Music",
			file:       "a.flac",
			wantNative: "/HD/Music/a.flac",
			wantKey:    "HD/:Music/:a.flac",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			native, key := decodeLocation(tt.volume, tt.dir, tt.file)
			assert.Equal(t, tt.wantNative, native)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestDecodeLocation_NFCNormalizes(t *testing.T) {
	// macOS stores decomposed characters; the decoded forms must compare
	// equal to their composed spellings.
	nfdFile := norm.NFD.String("café.mp3")

	native, key := decodeLocation("HD", "/:Music", nfdFile)

	assert.Equal(t, "/HD/Music/"+norm.NFC.String("café.mp3"), native)
	assert.Equal(t, "HD/:Music/:"+norm.NFC.String("café.mp3"), key)
}

func TestSplitKey(t *testing.T) {
	volume, file, ok := splitKey("Macintosh HD/:Users/:anna/:Music/:track.mp3")
	require.True(t, ok)
	assert.Equal(t, "Macintosh HD", volume)
	assert.Equal(t, "track.mp3", file)

	_, _, ok = splitKey("no-delimiter-here")
	assert.False(t, ok)
}

func TestSplitSegments_DropsEmptySegments(t *testing.T) {
	assert.Equal(t, []string{"Users", "anna", "Music"}, splitSegments("/:Users/:anna/:Music/:"))
	assert.Equal(t, []string{"music"}, splitSegments("/:music"))
	assert.Empty(t, splitSegments(""))
}
