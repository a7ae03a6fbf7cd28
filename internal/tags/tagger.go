package tags

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/sirupsen/logrus"
)

// audioExt is the extension of files considered during directory traversal.
const audioExt = ".mp3"

// commentLanguage is the fixed language code stamped on comment frames.
const commentLanguage = "eng"

// Metadata holds the descriptive fields written to a file's tag container.
//
// Empty fields are skipped when writing; there is no way to write an empty
// frame through Set.
type Metadata struct {
	Title    string
	Artist   string
	Album    string
	Composer string
	Year     string
	Genre    string

	// Comment is free text, typically the source link of the download. It is
	// written as a COMM frame with language "eng" and an empty description.
	Comment string
}

// Tagger reads, writes and strips ID3 tags on MP3 files.
//
// Writing follows a discard-then-set contract: Set replaces the entire tag
// container, it never merges with frames already present. This is deliberate
// and observable behavior, not an optimization.
type Tagger struct {
	log *logrus.Logger
}

// NewTagger creates a Tagger that logs through the given logger.
func NewTagger(log *logrus.Logger) *Tagger {
	return &Tagger{log: log}
}

// Set writes a fresh tag container to the MP3 file at path.
//
// Any existing frames are discarded first, then one frame is written per
// non-empty field of meta: TIT2, TPE1, TALB, TCOM, TYER/TDRC, TCON and a
// COMM frame with language "eng" and empty description. The path must
// reference an existing regular file.
func (t *Tagger) Set(path string, meta Metadata) error {
	t.log.Debugf("setting tags for %q", path)

	info, err := os.Stat(path)
	if err != nil {
		t.log.Errorf("file %q does not exist", path)
		return fmt.Errorf("set tags: %w", err)
	}
	if info.IsDir() {
		t.log.Errorf("%q is a directory, not a file", path)
		return fmt.Errorf("set tags: %q is a directory", path)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.log.Errorf("open %q: %v", path, err)
		return fmt.Errorf("set tags: %w", err)
	}
	defer tag.Close()

	// Full overwrite: drop whatever container the file carried.
	tag.DeleteAllFrames()

	if meta.Title != "" {
		tag.SetTitle(meta.Title)
	}
	if meta.Artist != "" {
		tag.SetArtist(meta.Artist)
	}
	if meta.Album != "" {
		tag.SetAlbum(meta.Album)
	}
	if meta.Composer != "" {
		tag.AddTextFrame("TCOM", id3v2.EncodingUTF8, meta.Composer)
	}
	if meta.Year != "" {
		tag.AddTextFrame("TYER", id3v2.EncodingUTF8, meta.Year)
		tag.AddTextFrame("TDRC", id3v2.EncodingUTF8, meta.Year)
	}
	if meta.Genre != "" {
		tag.SetGenre(meta.Genre)
	}
	if meta.Comment != "" {
		tag.AddCommentFrame(id3v2.CommentFrame{
			Encoding:    id3v2.EncodingUTF8,
			Language:    commentLanguage,
			Description: "",
			Text:        meta.Comment,
		})
	}

	if err := tag.Save(); err != nil {
		t.log.Errorf("save tags for %q: %v", path, err)
		return fmt.Errorf("set tags: %w", err)
	}

	t.log.Infof("tags set for %q", path)
	return nil
}

// Clean strips all tag data from path.
//
// If path is a file, its tag container is removed and the file saved. If
// path is a directory, every contained *.mp3 file is cleaned recursively;
// all files are attempted even after a failure, and the returned error
// aggregates every per-file failure (one failure fails the whole directory
// result).
func (t *Tagger) Clean(path string) error {
	t.log.Debugf("cleaning tags for %q", path)

	info, err := os.Stat(path)
	if err != nil {
		t.log.Errorf("path %q does not exist", path)
		return fmt.Errorf("clean tags: %w", err)
	}

	if info.IsDir() {
		return t.cleanDir(path)
	}
	return t.cleanFile(path)
}

func (t *Tagger) cleanFile(path string) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.log.Errorf("unreadable file %q: %v", path, err)
		return fmt.Errorf("clean %q: %w", path, err)
	}
	defer tag.Close()

	tag.DeleteAllFrames()
	if err := tag.Save(); err != nil {
		t.log.Errorf("save %q: %v", path, err)
		return fmt.Errorf("clean %q: %w", path, err)
	}

	t.log.Infof("cleaned tags for %q", path)
	return nil
}

func (t *Tagger) cleanDir(dir string) error {
	var errs []error

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), audioExt) {
			return nil
		}
		if err := t.cleanFile(path); err != nil {
			errs = append(errs, err)
		}
		return nil
	})
	if walkErr != nil {
		errs = append(errs, walkErr)
	}

	return errors.Join(errs...)
}
