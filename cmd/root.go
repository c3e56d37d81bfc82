package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/campusintel/eventd/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "eventd",
	Short: "Campus event analytics and attendance prediction service",
	Long:  "Stores historical campus event records, serves aggregate statistics and chart projections, and predicts attendance via a weighted heuristic with optional delegation to an external model service.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
