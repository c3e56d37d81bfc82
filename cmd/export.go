package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"
)

var exportOutputPath string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the event record set to an XLSX workbook",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.ListEvents(ctx, 0)
		if err != nil {
			return eris.Wrap(err, "list events")
		}

		f := xlsx.NewFile()
		sheet, err := f.AddSheet("Events")
		if err != nil {
			return eris.Wrap(err, "add sheet")
		}

		header := sheet.AddRow()
		for _, name := range []string{
			"Domain", "Event Type", "Speaker Type", "Duration (h)", "Day Type",
			"Time Slot", "Promotion Days", "Certificate", "Interactivity",
			"Relevance Friction", "Schedule Friction", "Fatigue Friction",
			"Promotion Friction", "Social Friction", "Format Friction",
			"Attendance", "Category",
		} {
			header.AddCell().SetString(name)
		}

		for _, e := range events {
			row := sheet.AddRow()
			row.AddCell().SetString(e.Domain)
			row.AddCell().SetString(e.EventType)
			row.AddCell().SetString(e.SpeakerType)
			row.AddCell().SetFloat(e.DurationHours)
			row.AddCell().SetString(e.DayType)
			row.AddCell().SetString(e.TimeSlot)
			row.AddCell().SetInt(e.PromotionDays)
			row.AddCell().SetBool(e.CertificateFlag)
			row.AddCell().SetFloat(e.InteractivityLevel)
			row.AddCell().SetInt(e.RelevanceFriction)
			row.AddCell().SetInt(e.ScheduleFriction)
			row.AddCell().SetInt(e.FatigueFriction)
			row.AddCell().SetInt(e.PromotionFriction)
			row.AddCell().SetInt(e.SocialFriction)
			row.AddCell().SetInt(e.FormatFriction)
			row.AddCell().SetInt(e.ExpectedAttendance)
			row.AddCell().SetString(string(e.AttendanceCategory))
		}

		if err := f.Save(exportOutputPath); err != nil {
			return eris.Wrap(err, "save workbook")
		}

		zap.L().Info("export complete",
			zap.Int("rows", len(events)),
			zap.String("output", exportOutputPath),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOutputPath, "output", "events.xlsx", "output file path")
	rootCmd.AddCommand(exportCmd)
}
