package download

import (
	"strings"
	"testing"

	"github.com/lrstanley/go-ytdlp"
)

func TestProgressEvent_FromEngineUpdate(t *testing.T) {
	update := ytdlp.ProgressUpdate{
		Status:          ytdlp.ProgressStatusDownloading,
		Filename:        "/tmp/out/Song - ABCDEFGHIJK.webm",
		DownloadedBytes: 1234,
		TotalBytes:      5678,
	}

	event := progressEvent(update)

	if event.Received != 1234 {
		t.Errorf("Received = %d, want 1234", event.Received)
	}
	if event.Total != 5678 {
		t.Errorf("Total = %d, want 5678", event.Total)
	}
	if event.Level != LevelVerbose {
		t.Errorf("Level = %d, want LevelVerbose", event.Level)
	}
	if !strings.Contains(event.Message, "Song - ABCDEFGHIJK.webm") {
		t.Errorf("message should carry the reported filename, got %q", event.Message)
	}
}
