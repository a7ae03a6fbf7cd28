package download

import (
	"fmt"
	"regexp"
)

var videoIDPattern = regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`)

// VideoID extracts an 11-character video identifier from a link, matching
// either a "v=" query parameter or a path segment; the first match wins.
//
// This is best-effort over arbitrary URL shapes. Links without a match yield
// the empty string, in which case filenames built by TargetName can collide
// across records that share a title.
func VideoID(link string) string {
	m := videoIDPattern.FindStringSubmatch(link)
	if m == nil {
		return ""
	}
	return m[1]
}

// TargetName builds the output filename template for a record, without
// extension: "{title} - {id}".
func TargetName(title, id string) string {
	return fmt.Sprintf("%s - %s", title, id)
}
