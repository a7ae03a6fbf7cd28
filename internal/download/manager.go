package download

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/zbhavyai/ytaudio/internal/config"
	csvfile "github.com/zbhavyai/ytaudio/internal/csv"
	"github.com/zbhavyai/ytaudio/internal/model"
	"github.com/zbhavyai/ytaudio/internal/tags"
	"golang.org/x/sync/errgroup"
)

// fetchService is the slice of Fetcher the Manager depends on.
type fetchService interface {
	Fetch(ctx context.Context, link, startTime, endTime, name string) (string, error)
}

// Manager coordinates batch downloads: it reads records from the input CSV,
// fetches each link and stamps the resulting file with the record's tags.
type Manager struct {
	settings   *config.Settings
	log        *logrus.Logger
	reader     *csvfile.Reader
	fetcher    fetchService
	tagger     *tags.Tagger
	onProgress func(ProgressEvent)
}

// NewManager creates a new download Manager. onProgress may be nil.
func NewManager(settings *config.Settings, log *logrus.Logger, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		log:        log,
		reader:     csvfile.NewReader(log),
		fetcher:    NewFetcher(settings, log, onProgress),
		tagger:     tags.NewTagger(log),
		onProgress: onProgress,
	}
}

// RunBatch downloads every record of the CSV at csvPath.
//
// Records are independent: each one runs its own fetch-then-tag sequence and
// a failing record never stops the rest, with no retry. Fetches may overlap
// up to MaxConcurrentDownloads (1 keeps the batch strictly sequential);
// tagging always happens after its own record's fetch has finished.
//
// The returned error covers only reading the CSV itself; per-record outcomes
// are reported through the logger and progress events.
func (m *Manager) RunBatch(ctx context.Context, csvPath string) error {
	m.log.Debugf("downloading audio from %q into %q", csvPath, m.settings.OutputDir)

	_, records, err := m.reader.Read(csvPath)
	if err != nil {
		return err
	}

	limit := m.settings.MaxConcurrentDownloads
	if limit < 1 {
		limit = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, rec := range records {
		g.Go(func() error {
			m.processRecord(ctx, rec)
			return nil // per-record failures never abort the batch
		})
	}

	return g.Wait()
}

// DownloadOne fetches a single link as "name.<ext>" without tagging.
func (m *Manager) DownloadOne(ctx context.Context, link, name string) (string, error) {
	return m.fetcher.Fetch(ctx, link, "", "", model.SanitizeFileName(name))
}

func (m *Manager) processRecord(ctx context.Context, rec model.Record) {
	id := VideoID(rec.Link)
	name := model.SanitizeFileName(TargetName(rec.Title, id))

	path, err := m.fetcher.Fetch(ctx, rec.Link, rec.StartTime, rec.EndTime, name)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("download failed for %q: %v", rec.Link, err), Level: LevelError})
		return
	}

	meta := tags.Metadata{
		Title:    rec.Title,
		Artist:   rec.Artist,
		Album:    rec.Album,
		Composer: rec.Composer,
		Year:     rec.Year,
		Genre:    rec.Genre,
		Comment:  rec.Link,
	}
	if err := m.tagger.Set(path, meta); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("tagging failed for %q: %v", path, err), Level: LevelWarning})
		return
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("downloaded and tagged %q", filepath.Base(path)), Level: LevelSuccess})
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
