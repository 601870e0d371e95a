package rekordbox

import (
	"regexp"
	"strings"
)

var driveRe = regexp.MustCompile(`^[A-Za-z]:[/\\]`)

// encodeLocation renders a file path as the file:// URI Rekordbox
// stores in Location attributes. Separators become forward slashes;
// Windows drive paths and UNC shares take the triple-slash form, POSIX
// absolute paths keep their leading slash after the two-slash prefix.
func encodeLocation(path string) string {
	slashed := strings.ReplaceAll(path, `\`, "/")
	switch {
	case strings.HasPrefix(path, `\\`) || strings.HasPrefix(path, "//"):
		return "file:///" + strings.TrimLeft(slashed, "/")
	case driveRe.MatchString(path):
		return "file:///" + slashed
	default:
		return "file://" + slashed
	}
}
