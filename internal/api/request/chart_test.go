package request

import (
	"errors"
	"testing"

	"github.com/ndewijer/Stock-Chart-Viewer/internal/apperrors"
)

func TestParseChartForm(t *testing.T) {
	t.Run("valid submission", func(t *testing.T) {
		req, err := ParseChartForm(" aapl ", "candlestick", "3", "2023")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if req.Ticker != "AAPL" {
			t.Errorf("Expected ticker 'AAPL', got '%s'", req.Ticker)
		}
		if req.PlotType != "candlestick" {
			t.Errorf("Expected plot type 'candlestick', got '%s'", req.PlotType)
		}
		if req.Month != 3 || req.Year != 2023 {
			t.Errorf("Expected 3/2023, got %d/%d", req.Month, req.Year)
		}
	})

	t.Run("empty year asks for a year", func(t *testing.T) {
		_, err := ParseChartForm("AAPL", "adj_close", "3", "")
		if !errors.Is(err, apperrors.ErrMissingYear) {
			t.Errorf("Expected ErrMissingYear, got %v", err)
		}
	})

	t.Run("non-numeric year asks for a year", func(t *testing.T) {
		_, err := ParseChartForm("AAPL", "adj_close", "3", "twenty")
		if !errors.Is(err, apperrors.ErrMissingYear) {
			t.Errorf("Expected ErrMissingYear, got %v", err)
		}
	})

	t.Run("out of range year", func(t *testing.T) {
		_, err := ParseChartForm("AAPL", "adj_close", "3", "99")
		if !errors.Is(err, apperrors.ErrInvalidYear) {
			t.Errorf("Expected ErrInvalidYear, got %v", err)
		}
	})

	t.Run("five-digit year is left to the future check", func(t *testing.T) {
		req, err := ParseChartForm("AAPL", "adj_close", "3", "10000")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if req.Year != 10000 {
			t.Errorf("Expected year 10000, got %d", req.Year)
		}
	})

	t.Run("empty month is invalid", func(t *testing.T) {
		_, err := ParseChartForm("AAPL", "adj_close", "", "2023")
		if !errors.Is(err, apperrors.ErrInvalidMonth) {
			t.Errorf("Expected ErrInvalidMonth, got %v", err)
		}
	})

	t.Run("month 13 is invalid", func(t *testing.T) {
		_, err := ParseChartForm("AAPL", "adj_close", "13", "2023")
		if !errors.Is(err, apperrors.ErrInvalidMonth) {
			t.Errorf("Expected ErrInvalidMonth, got %v", err)
		}
	})

	t.Run("missing ticker", func(t *testing.T) {
		_, err := ParseChartForm("  ", "adj_close", "3", "2023")
		if !errors.Is(err, apperrors.ErrMissingTicker) {
			t.Errorf("Expected ErrMissingTicker, got %v", err)
		}
	})
}

func TestParseChartQuery(t *testing.T) {
	t.Run("month and year are optional", func(t *testing.T) {
		req, err := ParseChartQuery("msft", "", "", "")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if req.Ticker != "MSFT" {
			t.Errorf("Expected ticker 'MSFT', got '%s'", req.Ticker)
		}
		if req.Month != 0 || req.Year != 0 {
			t.Errorf("Expected zero month and year, got %d/%d", req.Month, req.Year)
		}
	})

	t.Run("provided values are still validated", func(t *testing.T) {
		_, err := ParseChartQuery("MSFT", "", "0", "")
		if !errors.Is(err, apperrors.ErrInvalidMonth) {
			t.Errorf("Expected ErrInvalidMonth, got %v", err)
		}
	})
}
