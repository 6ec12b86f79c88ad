package request

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ndewijer/Stock-Chart-Viewer/internal/apperrors"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/service"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/validation"
)

// ParseChartForm extracts and validates a chart request submitted by the index form.
// Month and year are required; an empty or non-numeric year yields ErrMissingYear.
func ParseChartForm(tickerParam, plotTypeParam, monthParam, yearParam string) (service.ChartRequest, error) {
	return parseChartRequest(tickerParam, plotTypeParam, monthParam, yearParam, false)
}

// ParseChartQuery extracts and validates a chart request from API query parameters.
// Month and year are optional and default to the current month and year.
func ParseChartQuery(tickerParam, plotTypeParam, monthParam, yearParam string) (service.ChartRequest, error) {
	return parseChartRequest(tickerParam, plotTypeParam, monthParam, yearParam, true)
}

// parseChartRequest validates the raw parameters.
//
// Validation rules:
//   - ticker: Required, trimmed and upper-cased, letters/digits/dot/dash only
//   - plot_type: Free text; anything other than "adj_close" selects a candlestick chart
//   - month: Number between 1 and 12
//   - year: Four-digit number
func parseChartRequest(tickerParam, plotTypeParam, monthParam, yearParam string, optional bool) (service.ChartRequest, error) {
	req := service.ChartRequest{
		Ticker:   validation.NormalizeTicker(tickerParam),
		PlotType: strings.TrimSpace(plotTypeParam),
	}

	if err := validation.ValidateTicker(req.Ticker); err != nil {
		return service.ChartRequest{}, err
	}

	if monthParam = strings.TrimSpace(monthParam); monthParam != "" || !optional {
		month, err := strconv.Atoi(monthParam)
		if err != nil {
			return service.ChartRequest{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidMonth, monthParam)
		}
		if err := validation.ValidateMonth(month, false); err != nil {
			return service.ChartRequest{}, err
		}
		req.Month = month
	}

	if yearParam = strings.TrimSpace(yearParam); yearParam != "" || !optional {
		year, err := strconv.Atoi(yearParam)
		if err != nil {
			return service.ChartRequest{}, apperrors.ErrMissingYear
		}
		if err := validation.ValidateYear(year, false); err != nil {
			return service.ChartRequest{}, err
		}
		req.Year = year
	}

	return req, nil
}
