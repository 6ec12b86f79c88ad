package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/Stock-Chart-Viewer/internal/config"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/model"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/service"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/version"
)

func setupSystemHandler(apiKey string) *SystemHandler {
	cfg := &config.Config{}
	cfg.AlphaVantage.APIKey = apiKey
	return NewSystemHandler(service.NewSystemService(cfg))
}

func TestSystemHandler_Health(t *testing.T) {
	t.Run("reports healthy when an API key is configured", func(t *testing.T) {
		handler := setupSystemHandler("demo")

		w := httptest.NewRecorder()
		handler.Health(w, httptest.NewRequest(http.MethodGet, "/api/system/health", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		var resp HealthResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Status != "healthy" || resp.MarketData != "configured" {
			t.Errorf("Unexpected health response %+v", resp)
		}
	})

	// WHY: Without a key every chart request fails upstream, so the health
	// check must fail loudly instead of reporting a working service.
	t.Run("reports unhealthy without an API key", func(t *testing.T) {
		handler := setupSystemHandler("")

		w := httptest.NewRecorder()
		handler.Health(w, httptest.NewRequest(http.MethodGet, "/api/system/health", nil))

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("Expected 503, got %d", w.Code)
		}
		var resp HealthResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.Status != "unhealthy" || resp.Error == "" {
			t.Errorf("Unexpected health response %+v", resp)
		}
	})
}

func TestSystemHandler_Version(t *testing.T) {
	handler := setupSystemHandler("demo")

	w := httptest.NewRecorder()
	handler.Version(w, httptest.NewRequest(http.MethodGet, "/api/system/version", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var info model.VersionInfo
	if err := json.NewDecoder(w.Body).Decode(&info); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if info.AppVersion != version.Version {
		t.Errorf("Expected version %q, got %q", version.Version, info.AppVersion)
	}
	for _, feature := range []string{"adj_close", "candlestick", "json_api"} {
		if !info.Features[feature] {
			t.Errorf("Expected feature %q to be enabled", feature)
		}
	}
}
