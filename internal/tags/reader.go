package tags

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"
)

// TagRecord is the extracted tag set of one audio file, with empty strings
// for frames that are absent.
type TagRecord struct {
	File     string
	Title    string
	Artist   string
	Album    string
	Composer string
	Year     string
	Genre    string
	Comment  string
}

// TagHeaders returns the column order used when rendering tag records.
func TagHeaders() []string {
	return []string{"filename", "title", "artist", "album", "composer", "year", "genre", "comment"}
}

// Row returns the record as a name-to-value map matching TagHeaders().
func (r TagRecord) Row() map[string]string {
	return map[string]string{
		"filename": r.File,
		"title":    r.Title,
		"artist":   r.Artist,
		"album":    r.Album,
		"composer": r.Composer,
		"year":     r.Year,
		"genre":    r.Genre,
		"comment":  r.Comment,
	}
}

// Read extracts tag records from path.
//
// A file yields a single-element slice; a directory yields one record per
// contained *.mp3 file in traversal order (OS-dependent, not sorted). The
// comment field joins the text of all comment frames whose language code is
// "eng" with single spaces, ignoring comments in other languages.
//
// Unreadable files inside a directory are skipped; their failures are
// aggregated into the returned error alongside the records that were read.
func (t *Tagger) Read(path string) ([]TagRecord, error) {
	t.log.Debugf("reading tags for %q", path)

	info, err := os.Stat(path)
	if err != nil {
		t.log.Errorf("path %q does not exist", path)
		return nil, fmt.Errorf("read tags: %w", err)
	}

	if !info.IsDir() {
		rec, err := t.readFile(path)
		if err != nil {
			return nil, err
		}
		return []TagRecord{rec}, nil
	}

	var records []TagRecord
	var errs []error

	walkErr := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(p), audioExt) {
			return nil
		}
		rec, err := t.readFile(p)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		records = append(records, rec)
		return nil
	})
	if walkErr != nil {
		errs = append(errs, walkErr)
	}

	return records, errors.Join(errs...)
}

func (t *Tagger) readFile(path string) (TagRecord, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.log.Errorf("unreadable file %q: %v", path, err)
		return TagRecord{}, fmt.Errorf("read %q: %w", path, err)
	}
	defer tag.Close()

	rec := TagRecord{
		File:     filepath.Base(path),
		Title:    tag.Title(),
		Artist:   tag.Artist(),
		Album:    tag.Album(),
		Composer: tag.GetTextFrame("TCOM").Text,
		Year:     yearFrame(tag),
		Genre:    tag.Genre(),
		Comment:  englishComments(tag),
	}
	return rec, nil
}

// yearFrame prefers the ID3v2.4 recording time over the v2.3 year frame.
func yearFrame(tag *id3v2.Tag) string {
	if y := tag.GetTextFrame("TDRC").Text; y != "" {
		return y
	}
	return tag.GetTextFrame("TYER").Text
}

// englishComments joins the text of all "eng" comment frames with spaces.
func englishComments(tag *id3v2.Tag) string {
	var parts []string
	for _, f := range tag.GetFrames(tag.CommonID("Comments")) {
		comment, ok := f.(id3v2.CommentFrame)
		if !ok {
			continue
		}
		if comment.Language == commentLanguage {
			parts = append(parts, comment.Text)
		}
	}
	return strings.Join(parts, " ")
}
