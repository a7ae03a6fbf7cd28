package cli

import (
	"github.com/spf13/cobra"
	"github.com/zbhavyai/ytaudio/internal/download"
	pb "gopkg.in/cheggaaa/pb.v1"
)

func (a *app) newDownloadCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "download <url>",
		Short: "Download audio from a single YouTube URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := installEngine(cmd.Context(), a.log); err != nil {
				return err
			}

			var bar *pb.ProgressBar
			onProgress := func(event download.ProgressEvent) {
				if event.Total <= 0 {
					return
				}
				if bar == nil {
					bar = pb.New64(event.Total)
					bar.SetUnits(pb.U_BYTES)
					bar.Start()
				}
				bar.Set64(event.Received)
			}

			manager := download.NewManager(a.cfg, a.log, onProgress)
			path, err := manager.DownloadOne(cmd.Context(), args[0], name)
			if bar != nil {
				bar.Finish()
			}
			if err != nil {
				// Reported via logs; a failed download does not change the
				// exit code.
				return nil
			}

			a.log.Infof("saved %q", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "filename", "", "name for the downloaded audio file (without extension)")
	_ = cmd.MarkFlagRequired("filename")

	return cmd
}
