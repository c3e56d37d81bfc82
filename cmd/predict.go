package main

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/campusintel/eventd/internal/model"
)

var predictInput model.PredictionInput

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict attendance for a hypothetical event",
	Long: `Predict attendance for a hypothetical event and log it as a new record.

Uses the same path as POST /api/predict: the external model service is
consulted first when configured, falling back to the local heuristic.

Example:
  eventd predict --domain Tech --event-type Career_Talk --speaker-type Industry \
    --duration 2 --day-type Weekday --time-slot Afternoon \
    --promotion-days 20 --certificate --interactivity 0.9`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if err := predictInput.Validate(); err != nil {
			var verr *model.ValidationError
			if errors.As(err, &verr) {
				for _, field := range verr.Fields {
					zap.L().Warn("invalid input", zap.String("violation", field))
				}
			}
			return err
		}

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		result, err := newPredictor().Predict(ctx, predictInput)
		if err != nil {
			return eris.Wrap(err, "predict")
		}

		event := model.Event{
			Domain:             predictInput.Domain,
			EventType:          predictInput.EventType,
			SpeakerType:        predictInput.SpeakerType,
			DurationHours:      predictInput.DurationHours,
			DayType:            predictInput.DayType,
			TimeSlot:           predictInput.TimeSlot,
			PromotionDays:      predictInput.PromotionDays,
			CertificateFlag:    predictInput.CertificateFlag,
			InteractivityLevel: predictInput.InteractivityLevel,
			RelevanceFriction:  predictInput.Frictions.Relevance,
			ScheduleFriction:   predictInput.Frictions.Schedule,
			FatigueFriction:    predictInput.Frictions.Fatigue,
			PromotionFriction:  predictInput.Frictions.Promotion,
			SocialFriction:     predictInput.Frictions.Social,
			FormatFriction:     predictInput.Frictions.Format,
			ExpectedAttendance: result.PredictedAttendance,
			AttendanceCategory: result.Category,
		}
		if _, err := st.InsertEvent(ctx, event); err != nil {
			zap.L().Error("log prediction", zap.Error(err))
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	f := predictCmd.Flags()
	f.StringVar(&predictInput.Domain, "domain", "", "event domain (e.g. Tech, Business)")
	f.StringVar(&predictInput.EventType, "event-type", "", "event type (e.g. Workshop, Career_Talk)")
	f.StringVar(&predictInput.SpeakerType, "speaker-type", "", "speaker type (e.g. Industry, Faculty)")
	f.Float64Var(&predictInput.DurationHours, "duration", 1, "event duration in hours")
	f.StringVar(&predictInput.DayType, "day-type", "Weekday", "Weekday or Weekend")
	f.StringVar(&predictInput.TimeSlot, "time-slot", "Afternoon", "Morning, Afternoon or Evening")
	f.IntVar(&predictInput.PromotionDays, "promotion-days", 0, "promotion lead time in days")
	f.BoolVar(&predictInput.CertificateFlag, "certificate", false, "certificate offered")
	f.Float64Var(&predictInput.InteractivityLevel, "interactivity", 0, "interactivity level in [0,1]")
	f.IntVar(&predictInput.Frictions.Relevance, "friction-relevance", 1, "relevance friction (1-5)")
	f.IntVar(&predictInput.Frictions.Schedule, "friction-schedule", 1, "schedule friction (1-5)")
	f.IntVar(&predictInput.Frictions.Fatigue, "friction-fatigue", 1, "fatigue friction (1-5)")
	f.IntVar(&predictInput.Frictions.Promotion, "friction-promotion", 1, "promotion friction (1-5)")
	f.IntVar(&predictInput.Frictions.Social, "friction-social", 1, "social friction (1-5)")
	f.IntVar(&predictInput.Frictions.Format, "friction-format", 1, "format friction (1-5)")
	_ = predictCmd.MarkFlagRequired("domain")
	_ = predictCmd.MarkFlagRequired("event-type")
	_ = predictCmd.MarkFlagRequired("speaker-type")
	rootCmd.AddCommand(predictCmd)
}
