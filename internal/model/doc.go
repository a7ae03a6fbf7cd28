// Package model defines the data types shared across ytaudio.
//
// # Record
//
// Record is one row of the input CSV: a YouTube link plus the target
// metadata for the downloaded file:
//
//	rec := model.Record{Link: "https://www.youtube.com/watch?v=...", Title: "Song"}
//	row := rec.Row() // name-to-value map for table rendering
//
// Records use a fixed column order (see Headers) so that table output and
// tagging behave the same regardless of how the input file arranges its
// columns.
//
// # Name normalization
//
// Multi-valued artist and composer cells are collapsed at parse time:
//
//	model.NormalizeNames("Alice, Bob ,Carol") // "Alice / Bob / Carol"
package model
