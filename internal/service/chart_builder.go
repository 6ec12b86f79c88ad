package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/apperrors"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/model"
)

const (
	xAxisLabel             = "Date"
	adjustedCloseAxisLabel = "Adjusted Close Price ($)"
	priceAxisLabel         = "Price ($)"
	chartTheme             = "plotly_white"
)

// chartTraceNamespace scopes the name-based trace UIDs of generated charts.
var chartTraceNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://www.alphavantage.co/query"))

// BuildChart turns a filtered price table into a chart description.
//
// ChartStyleAdjustedCloseLine plots adjusted close per day; any other style plots
// open/high/low/close candles. Points are ordered by date regardless of table order.
// The trace UID is derived from ticker, style and month, so identical requests produce
// identical charts.
//
// Returns ErrEmptyPriceTable if the table has no rows.
func BuildChart(table model.PriceTable, style model.ChartStyle, ticker string, month, year int) (*model.ChartSpec, error) {
	if len(table) == 0 {
		return nil, apperrors.ErrEmptyPriceTable
	}

	rows := make(model.PriceTable, len(table))
	copy(rows, table)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})

	if style != model.ChartStyleAdjustedCloseLine {
		style = model.ChartStyleCandlestick
	}

	spec := &model.ChartSpec{
		Style:      style,
		TraceUID:   traceUID(ticker, style, month, year),
		Title:      ChartTitle(ticker, month, year),
		XAxisLabel: xAxisLabel,
		Theme:      chartTheme,
	}

	switch style {
	case model.ChartStyleAdjustedCloseLine:
		spec.YAxisLabel = adjustedCloseAxisLabel
		spec.Line = make([]model.LinePoint, len(rows))
		for i, rec := range rows {
			spec.Line[i] = model.LinePoint{Date: rec.Date, Value: rec.AdjustedClose}
		}
	default:
		spec.YAxisLabel = priceAxisLabel
		spec.Candles = make([]model.Candle, len(rows))
		for i, rec := range rows {
			spec.Candles[i] = model.Candle{
				Date:  rec.Date,
				Open:  rec.Open,
				High:  rec.High,
				Low:   rec.Low,
				Close: rec.Close,
			}
		}
	}

	return spec, nil
}

// ChartTitle formats the title of a monthly price chart, e.g. "AAPL Stock Price in March 2023".
func ChartTitle(ticker string, month, year int) string {
	return fmt.Sprintf("%s Stock Price in %s %d", ticker, time.Month(month), year)
}

func traceUID(ticker string, style model.ChartStyle, month, year int) string {
	name := fmt.Sprintf("%s/%s/%04d-%02d", ticker, style, year, month)
	return uuid.NewSHA1(chartTraceNamespace, []byte(name)).String()
}
