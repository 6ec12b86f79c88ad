package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ndewijer/Stock-Chart-Viewer/internal/alphavantage"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/apperrors"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/model"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/plotly"
)

// ChartService runs the chart pipeline: fetch, parse, filter to a month, build, serialize.
// It holds no state between calls apart from its dependencies.
type ChartService struct {
	client alphavantage.Client
	now    func() time.Time
}

// NewChartService creates a new ChartService.
// now supplies the current time for month defaults and the future-date guard; nil means time.Now.
func NewChartService(client alphavantage.Client, now func() time.Time) *ChartService {
	if now == nil {
		now = time.Now
	}
	return &ChartService{
		client: client,
		now:    now,
	}
}

// ChartRequest holds the parameters of one chart request.
// Zero Month or Year default to the current month or year.
type ChartRequest struct {
	Ticker   string
	PlotType string
	Month    int
	Year     int
}

// ChartResult is a rendered chart together with the request it answers.
type ChartResult struct {
	Ticker    string           `json:"ticker"`
	Month     int              `json:"month"`
	Year      int              `json:"year"`
	Metadata  model.Metadata   `json:"metadata"`
	Chart     *model.ChartSpec `json:"-"`
	GraphJSON string           `json:"graphJSON"`
}

// GetStockPriceChart produces the serialized chart for one ticker and month.
//
// The future-date guard runs before any upstream call, so a future month is rejected
// regardless of whether the ticker exists.
//
// Errors:
//   - ErrInvalidMonth, ErrInvalidYear, ErrFutureDateRequested: bad request parameters
//   - ErrTickerNotFound: the provider could not supply data (wraps the cause)
//   - ErrPriceDataCorrupt and friends: the payload had an unexpected shape
//   - *apperrors.NoDataInRangeError: the ticker has no rows in the requested month
func (s *ChartService) GetStockPriceChart(ctx context.Context, req ChartRequest) (*ChartResult, error) {
	now := s.now()
	month, year := ResolveMonthYear(req.Month, req.Year, now)
	if month < 1 || month > 12 {
		return nil, apperrors.ErrInvalidMonth
	}
	if year < 1 {
		return nil, apperrors.ErrInvalidYear
	}
	if IsFutureMonth(month, year, now) {
		return nil, apperrors.ErrFutureDateRequested
	}

	payload, err := s.client.QueryDailyAdjusted(ctx, req.Ticker)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", apperrors.ErrTickerNotFound, req.Ticker, err)
	}

	meta, table, err := alphavantage.ParsePayload(payload)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", req.Ticker, err)
	}

	filtered, err := FilterToMonth(table, month, year, now)
	if err != nil {
		return nil, err
	}

	spec, err := BuildChart(filtered, model.ParseChartStyle(req.PlotType), req.Ticker, month, year)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToBuildChart, err)
	}

	graphJSON, err := plotly.Serialize(*spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToSerializeChart, err)
	}

	return &ChartResult{
		Ticker:    req.Ticker,
		Month:     month,
		Year:      year,
		Metadata:  meta,
		Chart:     spec,
		GraphJSON: graphJSON,
	}, nil
}
