package cli

import (
	"github.com/spf13/cobra"
	"github.com/zbhavyai/ytaudio/internal/table"
	"github.com/zbhavyai/ytaudio/internal/tags"
)

func (a *app) newTagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Inspect or modify ID3 tags on audio files",
	}
	cmd.AddCommand(a.newTagsPrintCmd())
	cmd.AddCommand(a.newTagsSetCmd())
	cmd.AddCommand(a.newTagsCleanCmd())
	cmd.AddCommand(a.newTagsProbeCmd())
	return cmd
}

func (a *app) newTagsPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print <path>",
		Short: "Print tags of a file, or of every MP3 under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Per-file failures are already logged by the tagger and do not
			// change the exit code.
			records, _ := tags.NewTagger(a.log).Read(args[0])
			if len(records) == 0 {
				return nil
			}

			rows := make([]map[string]string, len(records))
			for i, rec := range records {
				rows[i] = rec.Row()
			}
			return table.Render(cmd.OutOrStdout(), tags.TagHeaders(), rows)
		},
	}
}

func (a *app) newTagsSetCmd() *cobra.Command {
	var meta tags.Metadata

	cmd := &cobra.Command{
		Use:   "set <file>",
		Short: "Replace the tags of an MP3 file",
		Long: `Replace the tags of an MP3 file.

The existing tag container is discarded entirely before the given fields are
written; fields left unset end up absent, not preserved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = tags.NewTagger(a.log).Set(args[0], meta)
			return nil
		},
	}

	cmd.Flags().StringVar(&meta.Title, "title", "", "track title")
	cmd.Flags().StringVar(&meta.Artist, "artist", "", "artist name(s)")
	cmd.Flags().StringVar(&meta.Album, "album", "", "album name")
	cmd.Flags().StringVar(&meta.Composer, "composer", "", "composer name(s)")
	cmd.Flags().StringVar(&meta.Year, "year", "", "release year")
	cmd.Flags().StringVar(&meta.Genre, "genre", "", "genre")
	cmd.Flags().StringVar(&meta.Comment, "comment", "", "free-text comment")

	return cmd
}

func (a *app) newTagsCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean <path>",
		Short: "Strip all tags from a file, or from every MP3 under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = tags.NewTagger(a.log).Clean(args[0])
			return nil
		},
	}
}

func (a *app) newTagsProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe <file>",
		Short: "Identify the tag format of an audio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := tags.NewTagger(a.log).Probe(args[0])
			if err != nil {
				return nil
			}
			return table.Render(cmd.OutOrStdout(), tags.ProbeHeaders(), []map[string]string{info.Row()})
		},
	}
}
