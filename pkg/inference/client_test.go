package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusintel/eventd/internal/model"
)

func testRequest() PredictionRequest {
	return PredictionRequest{
		Domain:             "Tech",
		EventType:          "Workshop",
		SpeakerType:        "Industry",
		DurationHours:      2,
		DayType:            "Weekday",
		TimeSlot:           "Afternoon",
		PromotionDays:      10,
		CertificateFlag:    true,
		InteractivityLevel: 0.7,
		Frictions:          model.Frictions{Relevance: 1, Schedule: 2, Fatigue: 1, Promotion: 1, Social: 1, Format: 1},
	}
}

func TestPredict_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req PredictionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Tech", req.Domain)
		assert.Equal(t, 2, req.Frictions.Schedule)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(PredictionResponse{PredictedAttendance: 142})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	got, err := client.Predict(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, 142, got.PredictedAttendance)
}

func TestPredict_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`model not loaded`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Predict(context.Background(), testRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestPredict_MalformedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Predict(context.Background(), testRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal")
}

func TestPredict_ConnectionRefused(t *testing.T) {
	t.Parallel()

	client := NewClient("http://127.0.0.1:1")
	_, err := client.Predict(context.Background(), testRequest())

	require.Error(t, err)
}

func TestPredict_SingleAttemptOnFailure(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Predict(context.Background(), testRequest())

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "delegate failures must not be retried")
}

func TestPredict_Timeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		json.NewEncoder(w).Encode(PredictionResponse{PredictedAttendance: 10})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithTimeout(20*time.Millisecond))
	_, err := client.Predict(context.Background(), testRequest())

	require.Error(t, err)
}

func TestPredict_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	client := NewClient(srv.URL)
	_, err := client.Predict(ctx, testRequest())

	require.Error(t, err)
}
