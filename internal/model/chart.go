package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChartStyle selects how a price series is drawn.
type ChartStyle string

const (
	ChartStyleAdjustedCloseLine ChartStyle = "adj_close"
	ChartStyleCandlestick       ChartStyle = "candlestick"
)

// ParseChartStyle maps a requested plot type to a chart style.
// Any value other than "adj_close" selects a candlestick chart.
func ParseChartStyle(plotType string) ChartStyle {
	if plotType == string(ChartStyleAdjustedCloseLine) {
		return ChartStyleAdjustedCloseLine
	}
	return ChartStyleCandlestick
}

// LinePoint is one (date, value) pair of a line chart.
type LinePoint struct {
	Date  time.Time
	Value decimal.Decimal
}

// Candle is one day of a candlestick chart.
type Candle struct {
	Date  time.Time
	Open  decimal.Decimal
	High  decimal.Decimal
	Low   decimal.Decimal
	Close decimal.Decimal
}

// ChartSpec describes a single price chart independent of any rendering library.
// Exactly one of Line or Candles is populated, depending on Style.
type ChartSpec struct {
	Style      ChartStyle
	TraceUID   string
	Line       []LinePoint
	Candles    []Candle
	Title      string
	XAxisLabel string
	YAxisLabel string
	Theme      string
}

// Len returns the number of points in the chart's series.
func (c ChartSpec) Len() int {
	if c.Style == ChartStyleAdjustedCloseLine {
		return len(c.Line)
	}
	return len(c.Candles)
}
