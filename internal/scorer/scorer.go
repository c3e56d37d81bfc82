// Package scorer implements the local attendance heuristic: a hand-tuned
// weighted sum over categorical and numeric event attributes.
package scorer

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/campusintel/eventd/internal/model"
)

// Fixed feature weights. Unknown category values contribute zero; that is a
// property of the model, not a validation failure.
var (
	domainWeights = map[string]float64{
		"Tech":     20,
		"Business": 15,
		"Design":   10,
		"Music":    5,
		"Law":      12,
	}

	speakerWeights = map[string]float64{
		"Industry": 25,
		"Alumni":   15,
		"Faculty":  5,
	}

	eventTypeWeights = map[string]float64{
		"Workshop":      10,
		"Guest_Lecture": 5,
		"Career_Talk":   20,
	}
)

const (
	baseScore        = 50
	promotionCap     = 40 // saturates the benefit of long lead times
	certificateBonus = 15
	intervalMargin   = 15
)

// Engine computes attendance predictions. It is stateless apart from its
// noise source and safe for concurrent use.
type Engine struct {
	noise Noise
}

// New creates an Engine. A nil noise source gets a time-seeded uniform one.
func New(noise Noise) *Engine {
	if noise == nil {
		noise = NewUniformNoise(time.Now().UnixNano())
	}
	return &Engine{noise: noise}
}

// Score validates the input and runs the weighted-sum heuristic. Repeated
// calls with identical input differ by the noise term unless the engine was
// built with NoNoise.
func (e *Engine) Score(in model.PredictionInput) (*model.PredictionResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	score := float64(baseScore)
	score += domainWeights[in.Domain]
	score += speakerWeights[in.SpeakerType]
	score += eventTypeWeights[in.EventType]
	score += math.Min(float64(in.PromotionDays)*2, promotionCap)
	score += in.InteractivityLevel * 50
	if in.CertificateFlag {
		score += certificateBonus
	}

	penalty := frictionPenalty(in.Frictions)
	score -= penalty

	if in.DayType == "Weekend" && in.TimeSlot == "Morning" {
		score -= 10
	}
	if in.TimeSlot == "Evening" {
		score -= 5
	}

	score += e.noise.Sample()

	predicted := int(math.Round(math.Max(0, score)))
	category := model.CategoryFor(predicted)

	result := &model.PredictionResult{
		PredictedAttendance: predicted,
		Category:            category,
		ConfidenceInterval:  confidenceInterval(predicted),
		Recommendations:     recommendations(in),
		ContributingFactors: contributingFactors(in, penalty),
	}

	zap.L().Debug("scorer: heuristic prediction",
		zap.String("domain", in.Domain),
		zap.Int("predicted", predicted),
		zap.String("category", string(category)),
	)

	return result, nil
}

// frictionPenalty weighs each rated obstacle against its fixed cost. A rating
// of 1 is neutral; each step above adds the per-friction weight.
func frictionPenalty(f model.Frictions) float64 {
	return float64(f.Relevance-1)*5 +
		float64(f.Schedule-1)*8 +
		float64(f.Fatigue-1)*4 +
		float64(f.Promotion-1)*6 +
		float64(f.Social-1)*3 +
		float64(f.Format-1)*5
}

func confidenceInterval(predicted int) [2]int {
	lower := predicted - intervalMargin
	if lower < 0 {
		lower = 0
	}
	return [2]int{lower, predicted + intervalMargin}
}

// recommendations fires in evaluation order, not severity order. Zero
// matches yields an empty (non-nil) slice.
func recommendations(in model.PredictionInput) []string {
	recs := []string{}
	if in.PromotionDays < 14 {
		recs = append(recs, "Increase promotion days to improve turnout.")
	}
	if in.Frictions.Schedule > 3 {
		recs = append(recs, "High schedule friction detected - consider changing time slot.")
	}
	if in.InteractivityLevel < 0.4 {
		recs = append(recs, "Interactivity is low compared to high-attendance events.")
	}
	if in.SpeakerType == "Faculty" && in.Domain == "Tech" {
		recs = append(recs, "Industry speakers historically perform better for this domain.")
	}
	if in.Frictions.Fatigue > 3 {
		recs = append(recs, "High student fatigue detected. Consider a more relaxed event format.")
	}
	if in.Frictions.Relevance > 3 {
		recs = append(recs, "Relevance friction is high. Align content more closely with student career goals.")
	}
	return recs
}

// contributingFactors always returns exactly four entries in fixed order.
func contributingFactors(in model.PredictionInput, penalty float64) []model.Factor {
	promotionImpact := model.ImpactNegative
	if in.PromotionDays > 14 {
		promotionImpact = model.ImpactPositive
	}
	interactivityImpact := model.ImpactNegative
	if in.InteractivityLevel > 0.6 {
		interactivityImpact = model.ImpactPositive
	}

	return []model.Factor{
		{Factor: "Promotion", Impact: promotionImpact, Weight: float64(in.PromotionDays)},
		{Factor: "Speaker", Impact: model.ImpactPositive, Weight: speakerWeights[in.SpeakerType]},
		{Factor: "Interactivity", Impact: interactivityImpact, Weight: in.InteractivityLevel * 100},
		{Factor: "Friction", Impact: model.ImpactNegative, Weight: penalty},
	}
}
