package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ndewijer/Stock-Chart-Viewer/internal/apperrors"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/model"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/plotly"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/service"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/testutil"
)

var serviceNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func newChartService(t *testing.T) (*service.ChartService, *testutil.MockAlphaVantageClient) {
	t.Helper()
	mock := testutil.NewMockAlphaVantageClient()
	return service.NewChartService(mock, testutil.FixedClock(serviceNow)), mock
}

// TestChartService_GetStockPriceChart tests the full chart pipeline against a mocked provider.
//
// WHY: This is the path every chart request takes. It must return only the requested
// month, short-circuit before calling the provider for future months, and surface
// provider failures and empty months as typed errors the handlers can explain.
func TestChartService_GetStockPriceChart(t *testing.T) {
	t.Run("returns March 2023 adjusted close chart for AAPL", func(t *testing.T) {
		svc, mock := newChartService(t)
		mock.WithSymbolPayload("AAPL", testutil.CreateMockDailyAdjustedPayload("AAPL",
			date(2023, time.January, 1), date(2023, time.December, 31)))

		result, err := svc.GetStockPriceChart(context.Background(), service.ChartRequest{
			Ticker: "AAPL", PlotType: "adj_close", Month: 3, Year: 2023,
		})
		if err != nil {
			t.Fatalf("GetStockPriceChart() returned unexpected error: %v", err)
		}

		if mock.LastSymbol != "AAPL" {
			t.Errorf("Expected query for AAPL, got %q", mock.LastSymbol)
		}
		if result.Metadata["Symbol"] != "AAPL" {
			t.Errorf("Expected metadata symbol AAPL, got %q", result.Metadata["Symbol"])
		}

		spec, err := plotly.Deserialize(result.GraphJSON)
		if err != nil {
			t.Fatalf("Deserialize() returned unexpected error: %v", err)
		}
		if spec.Title != "AAPL Stock Price in March 2023" {
			t.Errorf("Unexpected title %q", spec.Title)
		}
		if spec.YAxisLabel != "Adjusted Close Price ($)" {
			t.Errorf("Unexpected y-axis label %q", spec.YAxisLabel)
		}
		if len(spec.Line) != 23 {
			t.Errorf("Expected 23 trading days in March 2023, got %d", len(spec.Line))
		}
		for _, p := range spec.Line {
			if p.Date.Year() != 2023 || p.Date.Month() != time.March {
				t.Errorf("Unexpected date %s in March chart", p.Date.Format("2006-01-02"))
			}
		}
	})

	t.Run("returns a candlestick chart for other plot types", func(t *testing.T) {
		svc, _ := newChartService(t)

		result, err := svc.GetStockPriceChart(context.Background(), service.ChartRequest{
			Ticker: "TEST", PlotType: "candlestick", Month: 5, Year: 2023,
		})
		if err != nil {
			t.Fatalf("GetStockPriceChart() returned unexpected error: %v", err)
		}
		if result.Chart.Style != model.ChartStyleCandlestick {
			t.Errorf("Expected candlestick, got %s", result.Chart.Style)
		}
	})

	t.Run("reports ticker not found when the provider fails", func(t *testing.T) {
		svc, mock := newChartService(t)
		mock.WithError(apperrors.ErrUpstreamAPI)

		result, err := svc.GetStockPriceChart(context.Background(), service.ChartRequest{
			Ticker: "ZZZZ", PlotType: "adj_close", Month: 3, Year: 2023,
		})

		if !errors.Is(err, apperrors.ErrTickerNotFound) {
			t.Errorf("Expected ErrTickerNotFound, got %v", err)
		}
		if !errors.Is(err, apperrors.ErrUpstreamAPI) {
			t.Errorf("Expected cause to be kept, got %v", err)
		}
		if result != nil {
			t.Error("Expected no chart")
		}
	})

	t.Run("rejects future months without calling the provider", func(t *testing.T) {
		svc, mock := newChartService(t)

		_, err := svc.GetStockPriceChart(context.Background(), service.ChartRequest{
			Ticker: "ZZZZ", PlotType: "adj_close", Month: 7, Year: 2024,
		})

		if !errors.Is(err, apperrors.ErrFutureDateRequested) {
			t.Errorf("Expected ErrFutureDateRequested, got %v", err)
		}
		if mock.QueryCount != 0 {
			t.Errorf("Expected no provider calls, got %d", mock.QueryCount)
		}
	})

	t.Run("rejects five-digit years as future months", func(t *testing.T) {
		svc, mock := newChartService(t)

		_, err := svc.GetStockPriceChart(context.Background(), service.ChartRequest{
			Ticker: "AAPL", PlotType: "adj_close", Month: 3, Year: 10000,
		})

		if !errors.Is(err, apperrors.ErrFutureDateRequested) {
			t.Errorf("Expected ErrFutureDateRequested, got %v", err)
		}
		if mock.QueryCount != 0 {
			t.Errorf("Expected no provider calls, got %d", mock.QueryCount)
		}
	})

	t.Run("reports the available range for a month without data", func(t *testing.T) {
		svc, _ := newChartService(t)

		_, err := svc.GetStockPriceChart(context.Background(), service.ChartRequest{
			Ticker: "TEST", PlotType: "adj_close", Month: 3, Year: 1999,
		})

		var noData *apperrors.NoDataInRangeError
		if !errors.As(err, &noData) {
			t.Fatalf("Expected NoDataInRangeError, got %v", err)
		}
		if !noData.Available.Equal(date(2023, time.January, 2)) || !noData.Through.Equal(date(2023, time.December, 29)) {
			t.Errorf("Unexpected range %s - %s", noData.Available, noData.Through)
		}
	})

	t.Run("reports corrupt payloads", func(t *testing.T) {
		svc, mock := newChartService(t)
		mock.WithPayload([]byte(`{"Meta Data": {}}`))

		_, err := svc.GetStockPriceChart(context.Background(), service.ChartRequest{
			Ticker: "TEST", Month: 3, Year: 2023,
		})

		if !apperrors.IsPriceDataCorrupt(err) {
			t.Errorf("Expected a corrupt data error, got %v", err)
		}
	})
}
