package tags

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dhowden/tag"
)

// FileInfo describes the container and tag format of an audio file, read in
// a format-tolerant way.
type FileInfo struct {
	File     string
	Format   string
	FileType string
	Title    string
	Artist   string
	Album    string
	Composer string
	Year     string
	Genre    string
}

// ProbeHeaders returns the column order used when rendering probe results.
func ProbeHeaders() []string {
	return []string{"filename", "format", "type", "title", "artist", "album", "composer", "year", "genre"}
}

// Row returns the info as a name-to-value map matching ProbeHeaders().
func (i FileInfo) Row() map[string]string {
	return map[string]string{
		"filename": i.File,
		"format":   i.Format,
		"type":     i.FileType,
		"title":    i.Title,
		"artist":   i.Artist,
		"album":    i.Album,
		"composer": i.Composer,
		"year":     i.Year,
		"genre":    i.Genre,
	}
}

// Probe identifies the tag format of the file at path and extracts its core
// fields. Unlike Read it is not limited to ID3: any container the detection
// library understands is reported. A file that carries no tags at all is not
// an error; its format is reported as "none".
func (t *Tagger) Probe(path string) (FileInfo, error) {
	t.log.Debugf("probing %q", path)

	f, err := os.Open(path)
	if err != nil {
		t.log.Errorf("open %q: %v", path, err)
		return FileInfo{}, fmt.Errorf("probe: %w", err)
	}
	defer f.Close()

	info := FileInfo{File: filepath.Base(path)}

	m, err := tag.ReadFrom(f)
	if err != nil {
		if errors.Is(err, tag.ErrNoTagsFound) {
			info.Format = "none"
			return info, nil
		}
		t.log.Errorf("probe %q: %v", path, err)
		return FileInfo{}, fmt.Errorf("probe %q: %w", path, err)
	}

	info.Format = string(m.Format())
	info.FileType = string(m.FileType())
	info.Title = m.Title()
	info.Artist = m.Artist()
	info.Album = m.Album()
	info.Composer = m.Composer()
	info.Genre = m.Genre()
	if y := m.Year(); y != 0 {
		info.Year = strconv.Itoa(y)
	}

	return info, nil
}
