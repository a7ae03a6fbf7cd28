package cli

import "github.com/spf13/cobra"

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			a.log.Infof("version: %s", Version)
		},
	}
}
