package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/campusintel/eventd/internal/predictor"
	"github.com/campusintel/eventd/internal/scorer"
	"github.com/campusintel/eventd/internal/store"
	"github.com/campusintel/eventd/pkg/inference"
)

// openStore opens the configured store and applies the schema. The schema is
// idempotent, so every command can call this safely.
func openStore(ctx context.Context) (store.Store, error) {
	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, eris.Wrap(err, "open store")
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}
	return st, nil
}

// newPredictor builds the prediction path: the local heuristic, fronted by
// the external model service when one is configured.
func newPredictor() predictor.Predictor {
	local := predictor.NewLocal(scorer.New(nil))
	if cfg.Inference.BaseURL == "" {
		return predictor.NewFallback(nil, local)
	}
	client := inference.NewClient(cfg.Inference.BaseURL,
		inference.WithTimeout(time.Duration(cfg.Inference.TimeoutSecs)*time.Second),
	)
	return predictor.NewFallback(predictor.NewRemote(client), local)
}
