// Package cli wires the ytaudio subcommands.
//
// Commands:
//
//	ytaudio csv print <file>       print the parsed CSV as a table
//	ytaudio csv download <file>    download and tag every row
//	ytaudio download <url> --filename <name>
//	ytaudio tags print|set|clean|probe <path>
//	ytaudio version
//
// Failures of individual records or files are reported through the log and
// leave the exit code at zero; only argument errors and unreadable input
// fail the process.
package cli
