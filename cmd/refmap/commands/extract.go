package commands

import (
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/refmap/internal/app"
	"go.trai.ch/refmap/internal/ui/report"
)

func (c *CLI) newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Locate protocol references in the bound implementation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			jsonOut, _ := cmd.Flags().GetBool("json")
			watch, _ := cmd.Flags().GetBool("watch")

			opts := app.ExtractOptions{ConfigPath: configPath}
			out := cmd.OutOrStdout()

			if watch {
				return c.app.Watch(cmd.Context(), opts, func(result *app.ExtractResult) {
					// Watching continues even when a render fails.
					_ = renderResult(out, result, jsonOut)
				})
			}

			result, err := c.app.Extract(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return renderResult(out, result, jsonOut)
		},
	}

	cmd.Flags().StringP("config", "c", "", "Path to the configuration file (default: discover refmap.yaml upwards)")
	cmd.Flags().Bool("json", false, "Emit the reference map as JSON")
	cmd.Flags().BoolP("watch", "w", false, "Re-run extraction when the protocol description changes")

	return cmd
}

func renderResult(w io.Writer, result *app.ExtractResult, jsonOut bool) error {
	if jsonOut {
		return report.WriteJSON(w, result.References, result.Revision)
	}
	return report.New(w).Render(result.References, result.Revision)
}
