package download

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/sirupsen/logrus"
	"github.com/zbhavyai/ytaudio/internal/config"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a download progress update.
//
// Received and Total are byte counts; Total is zero when the engine has not
// reported a size yet.
type ProgressEvent struct {
	Message  string
	Level    ProgressLevel
	Received int64
	Total    int64
}

// Fetcher downloads the best available audio for a link via the external
// fetch engine and transcodes it to the configured codec.
type Fetcher struct {
	settings   *config.Settings
	log        *logrus.Logger
	onProgress func(ProgressEvent)
}

// NewFetcher creates a Fetcher. onProgress may be nil.
func NewFetcher(settings *config.Settings, log *logrus.Logger, onProgress func(ProgressEvent)) *Fetcher {
	return &Fetcher{settings: settings, log: log, onProgress: onProgress}
}

// Fetch downloads the audio of link into the output directory as
// "name.<ext>", where the engine picks the extension. It returns the final
// on-disk path.
//
// The requested name is only a template; the real path comes from the
// engine's progress callback once it reports a finished file, and success
// additionally requires that path to exist on disk. startTime and endTime
// are accepted for interface compatibility but deliberately have no effect:
// trimming through an external transcoder degraded throughput unacceptably
// and stays disabled.
//
// No failure here is fatal to an enclosing batch; errors are logged and
// returned for the caller to decide.
func (f *Fetcher) Fetch(ctx context.Context, link, startTime, endTime, name string) (string, error) {
	f.log.Debugf("downloading %q into %q", link, f.settings.OutputDir)

	if err := os.MkdirAll(f.settings.OutputDir, 0755); err != nil {
		f.log.Errorf("create output directory %q: %v", f.settings.OutputDir, err)
		return "", fmt.Errorf("create output directory: %w", err)
	}

	var finalPath string

	dl := ytdlp.New().
		Format("bestaudio/best").
		ExtractAudio().
		AudioFormat(f.settings.AudioFormat).
		AudioQuality(f.settings.AudioQuality).
		NoPlaylist().
		Output(filepath.Join(f.settings.OutputDir, name+".%(ext)s")).
		ProgressFunc(250*time.Millisecond, func(update ytdlp.ProgressUpdate) {
			f.progress(progressEvent(update))
			if update.Status == ytdlp.ProgressStatusFinished && update.Filename != "" {
				finalPath = update.Filename
			}
		})

	if _, err := dl.Run(ctx, link); err != nil {
		f.log.Errorf("download error for %q: %v", name, err)
		return "", fmt.Errorf("fetch %q: %w", link, err)
	}

	if finalPath == "" {
		f.log.Errorf("engine reported no output file for %q", link)
		return "", errors.New("engine reported no output file")
	}

	finalPath = f.resolveFinalPath(finalPath)
	if _, err := os.Stat(finalPath); err != nil {
		f.log.Errorf("reported file %q missing: %v", finalPath, err)
		return "", fmt.Errorf("reported file missing: %w", err)
	}

	f.log.Infof("downloaded %q as %q", link, filepath.Base(finalPath))
	return finalPath, nil
}

// progressEvent converts an engine update into a ProgressEvent. The engine
// reports byte counts as int; the event carries int64.
func progressEvent(update ytdlp.ProgressUpdate) ProgressEvent {
	return ProgressEvent{
		Message:  fmt.Sprintf("%s: %s", update.Status, filepath.Base(update.Filename)),
		Level:    LevelVerbose,
		Received: int64(update.DownloadedBytes),
		Total:    int64(update.TotalBytes),
	}
}

// resolveFinalPath accounts for the extract-audio post-processing step: the
// engine reports the downloaded media file, but the transcoded payload on
// disk carries the target codec extension.
func (f *Fetcher) resolveFinalPath(reported string) string {
	converted := strings.TrimSuffix(reported, filepath.Ext(reported)) + "." + f.settings.AudioFormat
	if _, err := os.Stat(converted); err == nil {
		return converted
	}
	return reported
}

func (f *Fetcher) progress(event ProgressEvent) {
	if f.onProgress != nil {
		f.onProgress(event)
	}
}
