package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var eventsLimit int

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List event records",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		limit := eventsLimit
		if limit == 0 {
			limit = cfg.Stats.ListRowCap
		}

		events, err := st.ListEvents(ctx, limit)
		if err != nil {
			return eris.Wrap(err, "list events")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(events)
	},
}

func init() {
	eventsCmd.Flags().IntVar(&eventsLimit, "limit", 0, "maximum rows (default from config)")
	rootCmd.AddCommand(eventsCmd)
}
