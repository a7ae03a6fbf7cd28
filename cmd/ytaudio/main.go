package main

import (
	"os"

	"github.com/zbhavyai/ytaudio/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
