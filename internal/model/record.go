package model

import (
	"regexp"
	"strings"
)

// Record is one parsed row of the input spreadsheet.
//
// Record carries the source link and the target metadata for one download:
//   - Link is the YouTube URL to fetch audio from (required)
//   - Title, Artist, Album, Composer, Year, Genre feed the ID3 tags
//   - StartTime and EndTime are trim markers, carried but not applied
//
// All fields default to the empty string. Records have no identity beyond
// their position in the input file and are immutable once read.
type Record struct {
	// Link is the YouTube URL for this row. It is the only required column.
	Link string

	// Title is the track title, also used to build the output filename.
	Title string

	// Artist is the artist name(s), normalized to a single " / "-joined string.
	Artist string

	// Album is the album title.
	Album string

	// Composer is the composer name(s), normalized like Artist.
	Composer string

	// Year is the release year as free text.
	Year string

	// Genre is the genre as free text.
	Genre string

	// StartTime and EndTime are trim markers. They pass through the download
	// interface for forward compatibility but have no effect.
	StartTime string
	EndTime   string
}

// Headers returns the fixed column order used for every record, regardless
// of the column order in the input file.
func Headers() []string {
	return []string{"ytLink", "title", "artist", "album", "composer", "year", "genre", "start_time", "end_time"}
}

// Row returns the record as a name-to-value map matching Headers().
func (r Record) Row() map[string]string {
	return map[string]string{
		"ytLink":     r.Link,
		"title":      r.Title,
		"artist":     r.Artist,
		"album":      r.Album,
		"composer":   r.Composer,
		"year":       r.Year,
		"genre":      r.Genre,
		"start_time": r.StartTime,
		"end_time":   r.EndTime,
	}
}

// NormalizeNames collapses a comma-separated list of names into a single
// display string: each segment is trimmed of surrounding whitespace and the
// segments are rejoined with " / ".
//
// Example:
//
//	NormalizeNames("Alice, Bob ,Carol") // "Alice / Bob / Carol"
//	NormalizeNames("Solo")              // "Solo"
//	NormalizeNames("")                  // ""
func NormalizeNames(raw string) string {
	if raw == "" {
		return ""
	}

	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.Join(parts, " / ")
}

var (
	invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots     = regexp.MustCompile(`\.+$`)
	multiSpace       = regexp.MustCompile(`\s+`)
)

// SanitizeFileName removes or replaces characters that are invalid in
// file names. Titles come from free-text spreadsheet cells, so the computed
// output names must be cleaned before they reach the filesystem.
//
// Invalid characters become underscores, trailing dots are removed and runs
// of whitespace collapse to a single space.
func SanitizeFileName(name string) string {
	name = invalidFileChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = multiSpace.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}
