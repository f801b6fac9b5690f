package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"helix/internal/corpus"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func TestReadiness(t *testing.T) {
	tests := []struct {
		name   string
		corpus *corpus.Corpus
		db     Pinger
		status int
	}{
		{"built-in corpus", corpus.Default(), nil, fiber.StatusOK},
		{"database reachable", corpus.Default(), fakePinger{}, fiber.StatusOK},
		{"database down", corpus.Default(), fakePinger{err: errors.New("down")}, fiber.StatusServiceUnavailable},
		{"empty corpus", corpus.New(nil, nil), nil, fiber.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewProbeHandler(tt.corpus, tt.db)
			app := fiber.New()
			app.Get("/healthz", h.Liveness)
			app.Get("/readyz", h.Readiness)

			resp, err := app.Test(httptest.NewRequest("GET", "/readyz", nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}

			resp, err = app.Test(httptest.NewRequest("GET", "/healthz", nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			var body map[string]any
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if body["status"] != "ok" {
				t.Errorf("liveness body = %v", body)
			}
		})
	}
}
