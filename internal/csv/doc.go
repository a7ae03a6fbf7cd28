// Package csvfile reads the spreadsheet-style input file into records.
//
// The reader maps columns by header name, so the input file may order its
// columns freely; the returned header order is always the fixed one from
// model.Headers. Only the "ytLink" column is required.
//
//	reader := csvfile.NewReader(logger)
//	headers, records, err := reader.Read("songs.csv")
package csvfile
