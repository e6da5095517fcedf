package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/config"
)

type pingerFunc func(context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	return cfg
}

func TestHealthLive(t *testing.T) {
	resp := httptest.NewRecorder()
	HealthLive(testConfig())(resp, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if got := resp.Header().Get("X-Resto-Env"); got != "test" {
		t.Fatalf("expected env header, got %q", got)
	}
}

func TestHealthReadyAllUp(t *testing.T) {
	up := pingerFunc(func(context.Context) error { return nil })
	deps := map[string]Pinger{"database": up, "redis": up}

	resp := httptest.NewRecorder()
	HealthReady(testConfig(), nil, deps)(resp, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", resp.Code, resp.Body.String())
	}
}

func TestHealthReadyDependencyDown(t *testing.T) {
	deps := map[string]Pinger{
		"database": pingerFunc(func(context.Context) error { return nil }),
		"redis":    pingerFunc(func(context.Context) error { return errors.New("connection refused") }),
	}

	resp := httptest.NewRecorder()
	HealthReady(testConfig(), nil, deps)(resp, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}

func TestHealthReadySkipsUnconfiguredDependency(t *testing.T) {
	deps := map[string]Pinger{
		"database": pingerFunc(func(context.Context) error { return nil }),
		"redis":    nil,
	}

	resp := httptest.NewRecorder()
	HealthReady(testConfig(), nil, deps)(resp, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("nil pinger should be skipped, got %d", resp.Code)
	}
}
