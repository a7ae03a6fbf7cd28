package cli

import (
	"context"
	"io"

	"github.com/lrstanley/go-ytdlp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zbhavyai/ytaudio/internal/config"
	"github.com/zbhavyai/ytaudio/internal/download"
	"github.com/zbhavyai/ytaudio/internal/logging"
)

// Version is reported by the version subcommand.
const Version = "1.0.0"

// app carries the configuration and logger shared by all subcommands. Both
// are constructed once per invocation and injected; there is no global
// logging state.
type app struct {
	cfg    *config.Settings
	log    *logrus.Logger
	closer io.Closer
}

// Execute runs the root command and returns the process exit code.
//
// Per-record and per-file failures are reported through logs and still exit
// zero; only argument errors and unreadable input fail the process.
func Execute() int {
	if err := newRootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		configPath string
		verbose    bool
	)

	root := &cobra.Command{
		Use:          "ytaudio",
		Short:        "Download audio from YouTube links and manage ID3 tags",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			log, closer, err := logging.New(cfg.LogDir)
			if err != nil {
				return err
			}
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			a.cfg, a.log, a.closer = cfg, log, closer
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.closer != nil {
				a.closer.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to JSON config file")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "show verbose output")

	root.AddCommand(a.newCSVCmd())
	root.AddCommand(a.newDownloadCmd())
	root.AddCommand(a.newTagsCmd())
	root.AddCommand(a.newVersionCmd())

	return root
}

// logProgress forwards download progress events to the logger.
func (a *app) logProgress(event download.ProgressEvent) {
	switch event.Level {
	case download.LevelError:
		a.log.Error(event.Message)
	case download.LevelWarning:
		a.log.Warn(event.Message)
	case download.LevelVerbose:
		a.log.Debug(event.Message)
	default:
		a.log.Info(event.Message)
	}
}

// installEngine makes sure a yt-dlp binary is available, downloading one
// into the local cache on first use.
func installEngine(ctx context.Context, log *logrus.Logger) error {
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		log.Errorf("yt-dlp not available: %v", err)
		return err
	}
	return nil
}
