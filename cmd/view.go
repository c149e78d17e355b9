package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kyleking/gh-clonestats/internal/report"
)

func newViewCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "view [report.json]",
		Short: "Chart a previously saved traffic report",
		Long: `view renders the chart for a report written by an earlier run without
contacting GitHub. The report defaults to the configured output path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := rt.cfg.Output
			if len(args) == 1 {
				path = args[0]
			}
			entries, err := report.Read(path)
			if err != nil {
				return err
			}
			rt.logger.Debugw("loaded report", "path", path, "entries", len(entries))
			return rt.visualize(cmd, entries)
		},
	}
}
