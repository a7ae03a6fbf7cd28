// Package download fetches audio through the external yt-dlp engine and
// orchestrates CSV batch runs.
//
// # Fetcher
//
// Fetcher wraps the engine for a single link. The engine selects the best
// audio-only stream, transcodes to the configured codec and reports the
// final on-disk filename through a callback; the requested name is only a
// template, since the engine owns the extension.
//
//	fetcher := download.NewFetcher(settings, logger, onProgress)
//	path, err := fetcher.Fetch(ctx, url, "", "", "Song - ABCDEFGHIJK")
//
// # Manager
//
// Manager composes the CSV reader, the Fetcher and the tagger:
//
//	manager := download.NewManager(settings, logger, onProgress)
//	err := manager.RunBatch(ctx, "songs.csv")
//
// Each record is fetched and, on success only, tagged with the record's
// fields plus the source link as comment. Per-record failures are logged and
// the batch continues; only a failure to read the CSV itself is returned.
package download
