package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/config"
	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/journal"
	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/llm"
	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/pipeline"
	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/store"
	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/utils"
)

func NewAnalyzeCmd() *cobra.Command {
	var step string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the cost analysis pipeline",
		Long: "Runs profile extraction, billing generation, and cost analysis\n" +
			"against the saved project description. Use --step to run a single\n" +
			"stage: profile, billing, or analysis.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			st := store.New(cfg.DataDir)
			client := llm.New(cfg.BaseURL, cfg.Model, cfg.APIKey, cfg.Timeout())

			j, err := journal.Open(filepath.Join(cfg.DataDir, "journal.db"))
			if err != nil {
				log.Warn().Err(err).Msg("run journal unavailable")
				j = nil
			}
			defer j.Close()

			p := pipeline.New(st, client, j)
			ctx := context.Background()

			switch step {
			case "":
				report, err := p.Run(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(),
					"Analysis complete: %s total, %s budget, %d recommendations (%s potential savings)\n",
					utils.Currency(report.Analysis.TotalMonthlyCost),
					utils.Currency(report.Analysis.Budget),
					report.Summary.RecommendationsCount,
					utils.Currency(report.Summary.TotalPotentialSavings))
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", st.Path(store.Report))

			case "profile":
				profile, err := p.ExtractProfile(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Profile extracted: %s (budget %s/month)\n",
					profile.Name, utils.Currency(profile.BudgetINRPerMonth))

			case "billing":
				records, err := p.GenerateBilling(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Generated %d billing records\n", len(records))

			case "analysis":
				report, err := p.AnalyzeCosts(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Analysis complete: %d recommendations, %s potential savings\n",
					report.Summary.RecommendationsCount,
					utils.Currency(report.Summary.TotalPotentialSavings))
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", st.Path(store.Report))

			default:
				return fmt.Errorf("unknown step %q: want profile, billing, or analysis", step)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&step, "step", "s", "", "run a single stage: profile, billing, or analysis")

	return cmd
}
