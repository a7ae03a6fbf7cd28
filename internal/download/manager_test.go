package download

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/zbhavyai/ytaudio/internal/config"
	csvfile "github.com/zbhavyai/ytaudio/internal/csv"
	"github.com/zbhavyai/ytaudio/internal/tags"
)

// stubFetcher stands in for the yt-dlp engine: it writes a fake MP3 payload
// and reports its path the way the real engine's callback would.
type stubFetcher struct {
	dir     string
	failFor string
	fetched []string
}

func (s *stubFetcher) Fetch(ctx context.Context, link, startTime, endTime, name string) (string, error) {
	s.fetched = append(s.fetched, link)
	if link == s.failFor {
		return "", errors.New("engine failure")
	}

	data := make([]byte, 128)
	data[0] = 0xFF
	data[1] = 0xFB
	path := filepath.Join(s.dir, name+".mp3")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

func newTestManager(t *testing.T, stub *stubFetcher) *Manager {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	settings := config.DefaultSettings()
	settings.OutputDir = stub.dir

	return &Manager{
		settings: settings,
		log:      log,
		reader:   csvfile.NewReader(log),
		fetcher:  stub,
		tagger:   tags.NewTagger(log),
	}
}

func writeBatchCSV(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "batch.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunBatch_FetchesAndTags(t *testing.T) {
	dir := t.TempDir()
	stub := &stubFetcher{dir: dir}
	m := newTestManager(t, stub)

	link := "https://x/watch?v=ABCDEFGHIJK"
	csvPath := writeBatchCSV(t, dir, strings.Join([]string{
		"ytLink,title,artist",
		link + ",Song,Alice",
	}, "\n"))

	if err := m.RunBatch(context.Background(), csvPath); err != nil {
		t.Fatalf("RunBatch failed: %v", err)
	}

	out := filepath.Join(dir, "Song - ABCDEFGHIJK.mp3")
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected output file %q: %v", out, err)
	}

	records, err := m.tagger.Read(out)
	if err != nil {
		t.Fatalf("reading tags back failed: %v", err)
	}
	rec := records[0]
	if rec.Title != "Song" {
		t.Errorf("title = %q, want Song", rec.Title)
	}
	if rec.Artist != "Alice" {
		t.Errorf("artist = %q, want Alice", rec.Artist)
	}
	if rec.Comment != link {
		t.Errorf("comment = %q, want the source link %q", rec.Comment, link)
	}
}

func TestRunBatch_ContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	bad := "https://x/watch?v=BADBADBAD11"
	stub := &stubFetcher{dir: dir, failFor: bad}
	m := newTestManager(t, stub)

	csvPath := writeBatchCSV(t, dir, strings.Join([]string{
		"ytLink,title",
		bad + ",First",
		"https://x/watch?v=GOODGOOD222,Second",
	}, "\n"))

	if err := m.RunBatch(context.Background(), csvPath); err != nil {
		t.Fatalf("RunBatch must not fail on a per-record error: %v", err)
	}

	if len(stub.fetched) != 2 {
		t.Errorf("expected both records attempted, got %d", len(stub.fetched))
	}
	if _, err := os.Stat(filepath.Join(dir, "Second - GOODGOOD222.mp3")); err != nil {
		t.Errorf("second record should have been downloaded: %v", err)
	}
}

func TestRunBatch_NoExtractableID(t *testing.T) {
	dir := t.TempDir()
	stub := &stubFetcher{dir: dir}
	m := newTestManager(t, stub)

	csvPath := writeBatchCSV(t, dir, strings.Join([]string{
		"ytLink,title",
		"https://example.com/x,Song",
	}, "\n"))

	if err := m.RunBatch(context.Background(), csvPath); err != nil {
		t.Fatalf("RunBatch failed: %v", err)
	}
	// Empty id: the name is the sanitized "{title} - ".
	if _, err := os.Stat(filepath.Join(dir, "Song -.mp3")); err != nil {
		t.Errorf("expected output for record without id: %v", err)
	}
}

func TestRunBatch_UnreadableCSV(t *testing.T) {
	stub := &stubFetcher{dir: t.TempDir()}
	m := newTestManager(t, stub)

	if err := m.RunBatch(context.Background(), filepath.Join(stub.dir, "nope.csv")); err == nil {
		t.Fatal("expected error for unreadable csv")
	}
	if len(stub.fetched) != 0 {
		t.Errorf("no fetch should happen when the csv cannot be read")
	}
}
