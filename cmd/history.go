package cmd

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/config"
	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/journal"
	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/utils"
)

func NewHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent pipeline stage runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			j, err := journal.Open(filepath.Join(cfg.DataDir, "journal.db"))
			if err != nil {
				return err
			}
			defer j.Close()

			entries, err := j.Recent(limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No pipeline runs recorded yet.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "STARTED\tSTAGE\tOUTCOME\tRUN\tERROR")
			for _, e := range entries {
				outcome := e.Outcome
				if outcome == "" {
					outcome = "—"
				}
				errText := utils.Truncate(e.Error, 60)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					utils.TimeOrDash(e.StartedAt, utils.DateTimeSec),
					e.Stage, outcome, shortID(e.RunID), errText)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum entries to show")

	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
