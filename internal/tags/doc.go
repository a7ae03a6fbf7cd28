// Package tags reads, writes and strips ID3 metadata on MP3 files.
//
// # Writing
//
// Set follows a discard-then-set contract: the existing tag container is
// dropped entirely before the new frames are written. Fields left empty are
// simply not written.
//
//	tagger := tags.NewTagger(logger)
//	err := tagger.Set("song.mp3", tags.Metadata{
//	    Title:   "Song",
//	    Artist:  "Alice / Bob",
//	    Comment: "https://www.youtube.com/watch?v=...",
//	})
//
// # Reading and cleaning
//
// Read and Clean accept either a single file or a directory. Directories are
// walked recursively over *.mp3 files; every file is attempted and per-file
// failures are aggregated, so one bad file fails the overall result without
// stopping the rest.
//
// # Probing
//
// Probe identifies the tag format of any audio container the detection
// library understands, not just ID3.
package tags
