package cmd

import (
	"fmt"

	"github.com/lehigh-university-libraries/waterprint/internal/analysis"
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Initialize the configured model and report whether it loaded",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, "", "", "")
			if err != nil {
				return err
			}

			model := analysis.LoadModel(cmd.Context(), cfg)
			defer closeModel(model)

			if model.Loaded() {
				fmt.Fprintln(cmd.OutOrStdout(), "healthy")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "warning (model not loaded)")
			return fmt.Errorf("model not loaded: %w", model.Err())
		},
	}
}
