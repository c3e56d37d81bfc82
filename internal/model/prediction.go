package model

import (
	"fmt"
	"strings"
)

// Frictions holds the six Likert-rated (1-5) obstacle scores attached to a
// prediction request. 1 means no friction, 5 means severe friction.
type Frictions struct {
	Relevance int `json:"relevance"`
	Schedule  int `json:"schedule"`
	Fatigue   int `json:"fatigue"`
	Promotion int `json:"promotion"`
	Social    int `json:"social"`
	Format    int `json:"format"`
}

// PredictionInput is the scoring engine's query. It is transient: constructed
// per request, validated, scored, and discarded. Only the resulting
// attendance and category are folded into a new Event.
type PredictionInput struct {
	Domain             string    `json:"domain"`
	EventType          string    `json:"eventType"`
	SpeakerType        string    `json:"speakerType"`
	DurationHours      float64   `json:"durationHours"`
	DayType            string    `json:"dayType"`
	TimeSlot           string    `json:"timeSlot"`
	PromotionDays      int       `json:"promotionDays"`
	CertificateFlag    bool      `json:"certificateFlag"`
	InteractivityLevel float64   `json:"interactivityLevel"`
	Frictions          Frictions `json:"frictions"`
}

// ValidationError reports every field that failed input validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid prediction input: %s", strings.Join(e.Fields, ", "))
}

// Validate checks required presence and numeric ranges. It collects every
// violation rather than stopping at the first one. Unknown category values
// (a domain the weight table has never seen) are allowed and score zero;
// absent categories are not.
func (in PredictionInput) Validate() error {
	var fields []string

	if in.Domain == "" {
		fields = append(fields, "domain is required")
	}
	if in.EventType == "" {
		fields = append(fields, "eventType is required")
	}
	if in.SpeakerType == "" {
		fields = append(fields, "speakerType is required")
	}
	if in.DayType == "" {
		fields = append(fields, "dayType is required")
	}
	if in.TimeSlot == "" {
		fields = append(fields, "timeSlot is required")
	}
	if in.DurationHours <= 0 {
		fields = append(fields, "durationHours must be positive")
	}
	if in.PromotionDays < 0 {
		fields = append(fields, "promotionDays must not be negative")
	}
	if in.InteractivityLevel < 0 || in.InteractivityLevel > 1 {
		fields = append(fields, "interactivityLevel must be in [0,1]")
	}

	for _, f := range []struct {
		name  string
		value int
	}{
		{"frictions.relevance", in.Frictions.Relevance},
		{"frictions.schedule", in.Frictions.Schedule},
		{"frictions.fatigue", in.Frictions.Fatigue},
		{"frictions.promotion", in.Frictions.Promotion},
		{"frictions.social", in.Frictions.Social},
		{"frictions.format", in.Frictions.Format},
	} {
		if f.value < 1 || f.value > 5 {
			fields = append(fields, f.name+" must be in [1,5]")
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Impact is the direction of a contributing factor.
type Impact string

const (
	ImpactPositive Impact = "Positive"
	ImpactNegative Impact = "Negative"
)

// Factor is a named, signed, weighted explanation component attached to a
// prediction result.
type Factor struct {
	Factor string  `json:"factor"`
	Impact Impact  `json:"impact"`
	Weight float64 `json:"weight"`
}

// PredictionResult is the transient output of a prediction. Recommendations
// and ContributingFactors are always non-nil so the JSON surface never emits
// null arrays, regardless of which predictor produced the result.
type PredictionResult struct {
	PredictedAttendance int      `json:"predictedAttendance"`
	Category            Category `json:"category"`
	ConfidenceInterval  [2]int   `json:"confidenceInterval"`
	Recommendations     []string `json:"recommendations"`
	ContributingFactors []Factor `json:"contributingFactors"`
}
