package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/config"
	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/store"
)

func NewDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [file]",
		Short: "Save a project description for analysis",
		Long: "Saves a free-form project description to the data directory.\n" +
			"Reads from the given file, or from stdin when no file is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			var text string
			if len(args) == 1 {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("reading %s: %w", args[0], err)
				}
				text = string(data)
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				text = string(data)
			}

			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("project description is empty")
			}

			st := store.New(cfg.DataDir)
			if err := st.WriteText(store.Description, text); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved project description to %s\n", st.Path(store.Description))
			return nil
		},
	}

	return cmd
}
