package cmd

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/config"
	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/cost"
	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/report"
	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/store"
	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/tui"
)

func NewReportCmd() *cobra.Command {
	var exportPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "View the cost optimization report",
		Long: "Opens the interactive report viewer. With --export, writes the\n" +
			"report as plain text instead (use \"-\" for stdout).",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			st := store.New(cfg.DataDir)

			if exportPath != "" {
				r := &cost.Report{}
				if err := st.ReadJSON(store.Report, r); err != nil {
					return fmt.Errorf("no report to export: %w", err)
				}
				text := report.Render(r)
				if exportPath == "-" {
					fmt.Fprint(cmd.OutOrStdout(), text)
					return nil
				}
				if err := os.WriteFile(exportPath, []byte(text), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", exportPath, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report exported to %s\n", exportPath)
				return nil
			}

			model := tui.NewModel(st)
			p := tea.NewProgram(model)
			if _, err := p.Run(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&exportPath, "export", "e", "", "export the report as plain text to a file (\"-\" for stdout)")

	return cmd
}
