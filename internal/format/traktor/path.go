package traktor

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Traktor serializes file paths with "/:" between segments instead of
// the OS separator: VOLUME="Macintosh HD" DIR="/:Users/:anna/:Music/:"
// FILE="track.mp3". Playlist PRIMARYKEY entries join all three parts the
// same way. This file is the only place that encoding is decoded or
// rebuilt; a future vendor's path scheme plugs in by supplying its own
// codec.

const pathDelimiter = "/:"

// splitSegments splits a DIR attribute into its directory segments.
// Empty segments (leading and trailing delimiters) are dropped so the
// rebuilt vendor key matches real PRIMARYKEY encodings.
func splitSegments(dir string) []string {
	parts := strings.Split(strings.TrimPrefix(dir, pathDelimiter), pathDelimiter)
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

// decodeLocation reconstructs both the OS-native absolute path and the
// original vendor key from a LOCATION element's attributes. The vendor
// key is kept because playlist entries reference tracks by it, and the
// native path does not round-trip that encoding exactly. Both forms are
// NFC-normalized so macOS NFD spellings still compare equal.
func decodeLocation(volume, dir, file string) (nativePath, vendorKey string) {
	segs := splitSegments(dir)

	elems := make([]string, 0, len(segs)+2)
	elems = append(elems, volume)
	elems = append(elems, segs...)
	elems = append(elems, file)
	native := filepath.Join(elems...)
	if !filepath.IsAbs(native) {
		native = string(filepath.Separator) + native
	}

	key := volume + pathDelimiter + strings.Join(append(segs, file), pathDelimiter)
	return norm.NFC.String(native), norm.NFC.String(key)
}

// splitKey splits a playlist PRIMARYKEY into its volume and filename
// components. ok is false when the key has no delimiter at all.
func splitKey(key string) (volume, file string, ok bool) {
	parts := strings.Split(key, pathDelimiter)
	if len(parts) < 2 {
		return "", "", false
	}
	return parts[0], parts[len(parts)-1], true
}
