// Package predictor selects between the local attendance heuristic and an
// optional externally hosted model, degrading gracefully when the remote
// side is unavailable.
package predictor

import (
	"context"

	"go.uber.org/zap"

	"github.com/campusintel/eventd/internal/model"
	"github.com/campusintel/eventd/internal/scorer"
	"github.com/campusintel/eventd/pkg/inference"
)

// Predictor produces an attendance prediction for a validated input.
type Predictor interface {
	Predict(ctx context.Context, in model.PredictionInput) (*model.PredictionResult, error)
}

// Local wraps the heuristic scoring engine.
type Local struct {
	engine *scorer.Engine
}

// NewLocal creates a Local predictor around the given engine.
func NewLocal(engine *scorer.Engine) *Local {
	return &Local{engine: engine}
}

func (l *Local) Predict(_ context.Context, in model.PredictionInput) (*model.PredictionResult, error) {
	return l.engine.Score(in)
}

// Remote delegates to the external model service. Only the numeric
// attendance figure is trusted; classification and the confidence interval
// are computed locally so the response shape is identical to the heuristic
// path. Recommendations and contributing factors are heuristic-exclusive.
type Remote struct {
	client inference.Client
}

// NewRemote creates a Remote predictor around the given client.
func NewRemote(client inference.Client) *Remote {
	return &Remote{client: client}
}

func (r *Remote) Predict(ctx context.Context, in model.PredictionInput) (*model.PredictionResult, error) {
	resp, err := r.client.Predict(ctx, inference.PredictionRequest{
		Domain:             in.Domain,
		EventType:          in.EventType,
		SpeakerType:        in.SpeakerType,
		DurationHours:      in.DurationHours,
		DayType:            in.DayType,
		TimeSlot:           in.TimeSlot,
		PromotionDays:      in.PromotionDays,
		CertificateFlag:    in.CertificateFlag,
		InteractivityLevel: in.InteractivityLevel,
		Frictions:          in.Frictions,
	})
	if err != nil {
		return nil, err
	}

	predicted := resp.PredictedAttendance
	if predicted < 0 {
		predicted = 0
	}

	lower := predicted - 15
	if lower < 0 {
		lower = 0
	}

	return &model.PredictionResult{
		PredictedAttendance: predicted,
		Category:            model.CategoryFor(predicted),
		ConfidenceInterval:  [2]int{lower, predicted + 15},
		Recommendations:     []string{"Prediction generated by the trained attendance model."},
		ContributingFactors: []model.Factor{},
	}, nil
}

// Fallback tries the remote predictor once and silently falls back to the
// local heuristic on any failure. Remote errors never reach the caller.
type Fallback struct {
	remote Predictor
	local  Predictor
}

// NewFallback composes a remote and a local predictor. A nil remote means
// delegation is not configured and every call goes straight to local.
func NewFallback(remote, local Predictor) *Fallback {
	return &Fallback{remote: remote, local: local}
}

func (f *Fallback) Predict(ctx context.Context, in model.PredictionInput) (*model.PredictionResult, error) {
	if f.remote != nil {
		result, err := f.remote.Predict(ctx, in)
		if err == nil {
			return result, nil
		}
		zap.L().Debug("predictor: delegate unavailable, using local heuristic",
			zap.Error(err),
		)
	}
	return f.local.Predict(ctx, in)
}
