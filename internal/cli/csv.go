package cli

import (
	"github.com/spf13/cobra"
	csvfile "github.com/zbhavyai/ytaudio/internal/csv"
	"github.com/zbhavyai/ytaudio/internal/download"
	"github.com/zbhavyai/ytaudio/internal/table"
)

func (a *app) newCSVCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Work with the spreadsheet input",
	}
	cmd.AddCommand(a.newCSVPrintCmd())
	cmd.AddCommand(a.newCSVDownloadCmd())
	return cmd
}

func (a *app) newCSVPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print <file>",
		Short: "Parse the CSV file and print its contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			headers, records, err := csvfile.NewReader(a.log).Read(args[0])
			if err != nil {
				return err
			}

			rows := make([]map[string]string, len(records))
			for i, rec := range records {
				rows[i] = rec.Row()
			}
			return table.Render(cmd.OutOrStdout(), headers, rows)
		},
	}
}

func (a *app) newCSVDownloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "download <file>",
		Short: "Download and tag audio for every row of the CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := installEngine(cmd.Context(), a.log); err != nil {
				return err
			}

			manager := download.NewManager(a.cfg, a.log, a.logProgress)
			return manager.RunBatch(cmd.Context(), args[0])
		},
	}
}
