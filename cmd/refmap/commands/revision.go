package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/refmap/internal/app"
	"go.trai.ch/refmap/internal/ui/report"
)

func (c *CLI) newRevisionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revision",
		Short: "Show the commit the configured branch currently resolves to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			rev, err := c.app.Revision(cmd.Context(), app.RevisionOptions{ConfigPath: configPath})
			if err != nil {
				return err
			}

			return report.New(cmd.OutOrStdout()).RenderRevision(rev)
		},
	}

	cmd.Flags().StringP("config", "c", "", "Path to the configuration file (default: discover refmap.yaml upwards)")

	return cmd
}
