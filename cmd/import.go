package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/campusintel/eventd/internal/ingest"
)

var importCSVPath string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import historical events from the synthetic dataset CSV",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		events, err := ingest.ReadCSV(importCSVPath)
		if err != nil {
			return eris.Wrap(err, "import csv")
		}

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		inserted := 0
		for _, event := range events {
			if _, err := st.InsertEvent(ctx, event); err != nil {
				return eris.Wrapf(err, "insert event %d", inserted+1)
			}
			inserted++
		}

		zap.L().Info("import complete",
			zap.Int("inserted", inserted),
			zap.String("csv", importCSVPath),
		)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importCSVPath, "csv", "", "path to CSV file (required)")
	_ = importCmd.MarkFlagRequired("csv")
	rootCmd.AddCommand(importCmd)
}
