package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/campusintel/eventd/internal/aggregate"
)

var statsCharts bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print aggregate statistics for the event record set",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		if statsCharts {
			events, err := st.ListEvents(ctx, cfg.Stats.ChartRowCap)
			if err != nil {
				return eris.Wrap(err, "list events")
			}
			return enc.Encode(aggregate.Charts(events))
		}

		events, err := st.ListEvents(ctx, 0)
		if err != nil {
			return eris.Wrap(err, "list events")
		}
		return enc.Encode(aggregate.Overview(events))
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsCharts, "charts", false, "print chart projections instead of the overview")
	rootCmd.AddCommand(statsCmd)
}
