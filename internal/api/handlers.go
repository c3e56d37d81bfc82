package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/campusintel/eventd/internal/aggregate"
	"github.com/campusintel/eventd/internal/model"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	events, err := s.store.ListEvents(r.Context(), 0)
	if err != nil {
		zap.L().Error("api: fetch overview", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to fetch overview")
		return
	}
	respondJSON(w, http.StatusOK, aggregate.Overview(events))
}

func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	events, err := s.store.ListEvents(r.Context(), s.chartCap)
	if err != nil {
		zap.L().Error("api: fetch chart data", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to fetch chart data")
		return
	}
	respondJSON(w, http.StatusOK, aggregate.Charts(events))
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.store.ListEvents(r.Context(), s.listCap)
	if err != nil {
		zap.L().Error("api: fetch events list", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to fetch events list")
		return
	}
	if events == nil {
		events = []model.Event{}
	}
	respondJSON(w, http.StatusOK, events)
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var in model.PredictionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := in.Validate(); err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			respondJSON(w, http.StatusBadRequest, map[string]any{
				"message": "invalid prediction input",
				"fields":  verr.Fields,
			})
			return
		}
		respondError(w, http.StatusBadRequest, "invalid prediction input")
		return
	}

	result, err := s.predictor.Predict(r.Context(), in)
	if err != nil {
		zap.L().Error("api: prediction failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "prediction failed")
		return
	}

	// Log the prediction as a new historical record. Persistence failures
	// must not fail the client-visible response.
	event := model.Event{
		Domain:             in.Domain,
		EventType:          in.EventType,
		SpeakerType:        in.SpeakerType,
		DurationHours:      in.DurationHours,
		DayType:            in.DayType,
		TimeSlot:           in.TimeSlot,
		PromotionDays:      in.PromotionDays,
		CertificateFlag:    in.CertificateFlag,
		InteractivityLevel: in.InteractivityLevel,
		RelevanceFriction:  in.Frictions.Relevance,
		ScheduleFriction:   in.Frictions.Schedule,
		FatigueFriction:    in.Frictions.Fatigue,
		PromotionFriction:  in.Frictions.Promotion,
		SocialFriction:     in.Frictions.Social,
		FormatFriction:     in.Frictions.Format,
		ExpectedAttendance: result.PredictedAttendance,
		AttendanceCategory: result.Category,
	}
	if _, err := s.store.InsertEvent(r.Context(), event); err != nil {
		zap.L().Error("api: log prediction", zap.Error(err))
	}

	respondJSON(w, http.StatusOK, result)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("api: encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}
