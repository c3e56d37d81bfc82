// Package inference provides a client for an externally hosted attendance
// model service. The service is optional: callers are expected to fall back
// to the local heuristic when any call fails.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"

	"github.com/campusintel/eventd/internal/model"
)

// PredictionRequest is the JSON body sent to the model service. It mirrors
// the prediction input contract field for field.
type PredictionRequest struct {
	Domain             string          `json:"domain"`
	EventType          string          `json:"eventType"`
	SpeakerType        string          `json:"speakerType"`
	DurationHours      float64         `json:"durationHours"`
	DayType            string          `json:"dayType"`
	TimeSlot           string          `json:"timeSlot"`
	PromotionDays      int             `json:"promotionDays"`
	CertificateFlag    bool            `json:"certificateFlag"`
	InteractivityLevel float64         `json:"interactivityLevel"`
	Frictions          model.Frictions `json:"frictions"`
}

// PredictionResponse is the parsed model service response. Only the numeric
// attendance figure is used; any richer output the service returns is
// ignored so presentation stays uniform across predictors.
type PredictionResponse struct {
	PredictedAttendance int `json:"predictedAttendance"`
}

// Client defines the model service operations.
type Client interface {
	// Predict requests an attendance prediction from the remote model.
	Predict(ctx context.Context, req PredictionRequest) (*PredictionResponse, error)
}

// Option configures the inference client.
type Option func(*httpClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithTimeout bounds each prediction call.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		c.http.Timeout = d
	}
}

type httpClient struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a model service client for the given base URL.
func NewClient(baseURL string, opts ...Option) Client {
	c := &httpClient{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Predict makes exactly one attempt: the fallback contract forbids retries,
// so transient failures surface immediately and the caller degrades to the
// local heuristic.
func (c *httpClient) Predict(ctx context.Context, req PredictionRequest) (*PredictionResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, eris.Wrap(err, "inference: marshal request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return nil, eris.Wrap(err, "inference: create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, eris.Wrap(err, "inference: request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "inference: read response body")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("inference: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var result PredictionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, eris.Wrap(err, "inference: unmarshal response")
	}

	return &result, nil
}
