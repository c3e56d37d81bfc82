package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusintel/eventd/internal/model"
)

// neutralInput has no weight-table matches and every numeric contribution
// zeroed, so with noise disabled the score is exactly the base.
func neutralInput() model.PredictionInput {
	return model.PredictionInput{
		Domain:             "Astronomy",
		EventType:          "Seminar",
		SpeakerType:        "Student",
		DurationHours:      1,
		DayType:            "Weekday",
		TimeSlot:           "Afternoon",
		PromotionDays:      0,
		CertificateFlag:    false,
		InteractivityLevel: 0,
		Frictions:          model.Frictions{Relevance: 1, Schedule: 1, Fatigue: 1, Promotion: 1, Social: 1, Format: 1},
	}
}

func deterministicEngine() *Engine {
	return New(NoNoise{})
}

func TestScore_BaseCase(t *testing.T) {
	t.Parallel()

	result, err := deterministicEngine().Score(neutralInput())
	require.NoError(t, err)

	assert.Equal(t, 50, result.PredictedAttendance)
	assert.Equal(t, model.CategoryLow, result.Category)
	assert.Equal(t, [2]int{35, 65}, result.ConfidenceInterval)
}

func TestScore_FullyLoadedEvent(t *testing.T) {
	t.Parallel()

	in := model.PredictionInput{
		Domain:             "Tech",
		EventType:          "Career_Talk",
		SpeakerType:        "Industry",
		DurationHours:      2,
		DayType:            "Weekday",
		TimeSlot:           "Afternoon",
		PromotionDays:      20,
		CertificateFlag:    true,
		InteractivityLevel: 0.9,
		Frictions:          model.Frictions{Relevance: 1, Schedule: 1, Fatigue: 1, Promotion: 1, Social: 1, Format: 1},
	}

	result, err := deterministicEngine().Score(in)
	require.NoError(t, err)

	// 50 + 20 (Tech) + 25 (Industry) + 20 (Career_Talk) + 40 (promotion,
	// capped) + 45 (interactivity) + 15 (certificate)
	assert.Equal(t, 215, result.PredictedAttendance)
	assert.Equal(t, model.CategoryHigh, result.Category)
	assert.Equal(t, [2]int{200, 230}, result.ConfidenceInterval)
	assert.Empty(t, result.Recommendations)

	require.Len(t, result.ContributingFactors, 4)
	assert.Equal(t, "Promotion", result.ContributingFactors[0].Factor)
	assert.Equal(t, model.ImpactPositive, result.ContributingFactors[0].Impact)
	assert.InDelta(t, 20, result.ContributingFactors[0].Weight, 0.001)
}

func TestScore_PromotionSaturates(t *testing.T) {
	t.Parallel()

	engine := deterministicEngine()

	at25 := neutralInput()
	at25.PromotionDays = 25
	r25, err := engine.Score(at25)
	require.NoError(t, err)

	at40 := neutralInput()
	at40.PromotionDays = 40
	r40, err := engine.Score(at40)
	require.NoError(t, err)

	assert.Equal(t, r25.PredictedAttendance, r40.PredictedAttendance)
	assert.Equal(t, 90, r25.PredictedAttendance)
}

func TestScore_FrictionPenalty(t *testing.T) {
	t.Parallel()

	in := neutralInput()
	in.Frictions = model.Frictions{Relevance: 3, Schedule: 5, Fatigue: 1, Promotion: 1, Social: 2, Format: 1}

	// Penalty: 2*5 + 4*8 + 1*3 = 45, leaving 5.
	result, err := deterministicEngine().Score(in)
	require.NoError(t, err)

	assert.Equal(t, 5, result.PredictedAttendance)
	assert.Equal(t, [2]int{0, 20}, result.ConfidenceInterval, "lower bound clamps at zero")
}

func TestScore_ClampsAtZero(t *testing.T) {
	t.Parallel()

	in := neutralInput()
	in.Frictions = model.Frictions{Relevance: 5, Schedule: 5, Fatigue: 5, Promotion: 5, Social: 5, Format: 5}

	result, err := deterministicEngine().Score(in)
	require.NoError(t, err)

	assert.Equal(t, 0, result.PredictedAttendance)
	assert.Equal(t, [2]int{0, 15}, result.ConfidenceInterval)
}

func TestScore_TimePenalties(t *testing.T) {
	t.Parallel()

	engine := deterministicEngine()

	weekendMorning := neutralInput()
	weekendMorning.DayType = "Weekend"
	weekendMorning.TimeSlot = "Morning"
	r, err := engine.Score(weekendMorning)
	require.NoError(t, err)
	assert.Equal(t, 40, r.PredictedAttendance)

	evening := neutralInput()
	evening.TimeSlot = "Evening"
	r, err = engine.Score(evening)
	require.NoError(t, err)
	assert.Equal(t, 45, r.PredictedAttendance)

	// Weekend evening takes only the evening penalty; the weekend penalty
	// requires a morning slot.
	weekendEvening := neutralInput()
	weekendEvening.DayType = "Weekend"
	weekendEvening.TimeSlot = "Evening"
	r, err = engine.Score(weekendEvening)
	require.NoError(t, err)
	assert.Equal(t, 45, r.PredictedAttendance)
}

func TestScore_Recommendations_OrderAndConditions(t *testing.T) {
	t.Parallel()

	in := neutralInput()
	in.Domain = "Tech"
	in.SpeakerType = "Faculty"
	in.PromotionDays = 5
	in.InteractivityLevel = 0.2
	in.Frictions.Schedule = 4
	in.Frictions.Fatigue = 5
	in.Frictions.Relevance = 4

	result, err := deterministicEngine().Score(in)
	require.NoError(t, err)

	require.Len(t, result.Recommendations, 6)
	assert.Contains(t, result.Recommendations[0], "promotion days")
	assert.Contains(t, result.Recommendations[1], "schedule friction")
	assert.Contains(t, result.Recommendations[2], "Interactivity is low")
	assert.Contains(t, result.Recommendations[3], "Industry speakers")
	assert.Contains(t, result.Recommendations[4], "fatigue")
	assert.Contains(t, result.Recommendations[5], "Relevance friction")
}

func TestScore_Recommendations_NoneFired(t *testing.T) {
	t.Parallel()

	in := neutralInput()
	in.PromotionDays = 20
	in.InteractivityLevel = 0.8

	result, err := deterministicEngine().Score(in)
	require.NoError(t, err)

	assert.NotNil(t, result.Recommendations)
	assert.Empty(t, result.Recommendations)
}

func TestScore_ContributingFactors(t *testing.T) {
	t.Parallel()

	in := neutralInput()
	in.SpeakerType = "Alumni"
	in.PromotionDays = 5
	in.InteractivityLevel = 0.3
	in.Frictions.Schedule = 3

	result, err := deterministicEngine().Score(in)
	require.NoError(t, err)

	require.Len(t, result.ContributingFactors, 4)

	promotion := result.ContributingFactors[0]
	assert.Equal(t, "Promotion", promotion.Factor)
	assert.Equal(t, model.ImpactNegative, promotion.Impact)
	assert.InDelta(t, 5, promotion.Weight, 0.001)

	speaker := result.ContributingFactors[1]
	assert.Equal(t, "Speaker", speaker.Factor)
	assert.Equal(t, model.ImpactPositive, speaker.Impact)
	assert.InDelta(t, 15, speaker.Weight, 0.001)

	interactivity := result.ContributingFactors[2]
	assert.Equal(t, "Interactivity", interactivity.Factor)
	assert.Equal(t, model.ImpactNegative, interactivity.Impact)
	assert.InDelta(t, 30, interactivity.Weight, 0.001)

	friction := result.ContributingFactors[3]
	assert.Equal(t, "Friction", friction.Factor)
	assert.Equal(t, model.ImpactNegative, friction.Impact)
	assert.InDelta(t, 16, friction.Weight, 0.001)
}

func TestScore_UnknownSpeakerFactorWeightZero(t *testing.T) {
	t.Parallel()

	result, err := deterministicEngine().Score(neutralInput())
	require.NoError(t, err)

	assert.InDelta(t, 0, result.ContributingFactors[1].Weight, 0.001)
}

func TestScore_RejectsInvalidInput(t *testing.T) {
	t.Parallel()

	in := neutralInput()
	in.Domain = ""
	in.Frictions.Social = 7

	_, err := deterministicEngine().Score(in)
	require.Error(t, err)

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
}

func TestScore_NoiseBounds(t *testing.T) {
	t.Parallel()

	engine := New(NewUniformNoise(1))
	in := neutralInput()

	for i := 0; i < 200; i++ {
		result, err := engine.Score(in)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.PredictedAttendance, 45)
		assert.LessOrEqual(t, result.PredictedAttendance, 55)
	}
}

func TestScore_SeededNoiseIsReproducible(t *testing.T) {
	t.Parallel()

	in := neutralInput()

	first, err := New(NewUniformNoise(42)).Score(in)
	require.NoError(t, err)
	second, err := New(NewUniformNoise(42)).Score(in)
	require.NoError(t, err)

	assert.Equal(t, first.PredictedAttendance, second.PredictedAttendance)
}
