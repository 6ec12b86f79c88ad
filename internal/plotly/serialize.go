package plotly

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ndewijer/Stock-Chart-Viewer/internal/model"
	"github.com/shopspring/decimal"
)

// Serialize encodes a chart description as a Plotly figure JSON string.
func Serialize(spec model.ChartSpec) (string, error) {
	fig, err := NewFigure(spec)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(fig)
	if err != nil {
		return "", fmt.Errorf("encode figure: %w", err)
	}
	return string(data), nil
}

// NewFigure converts a chart description to a Plotly figure.
func NewFigure(spec model.ChartSpec) (Figure, error) {
	var trace Trace
	switch spec.Style {
	case model.ChartStyleAdjustedCloseLine:
		trace = Trace{
			Type: traceTypeScatter,
			Mode: modeLinesMarkers,
			X:    make([]string, len(spec.Line)),
			Y:    make([]json.Number, len(spec.Line)),
		}
		for i, p := range spec.Line {
			trace.X[i] = p.Date.Format(dateLayout)
			trace.Y[i] = number(p.Value)
		}
	case model.ChartStyleCandlestick:
		n := len(spec.Candles)
		trace = Trace{
			Type:  traceTypeCandlestick,
			X:     make([]string, n),
			Open:  make([]json.Number, n),
			High:  make([]json.Number, n),
			Low:   make([]json.Number, n),
			Close: make([]json.Number, n),
		}
		for i, c := range spec.Candles {
			trace.X[i] = c.Date.Format(dateLayout)
			trace.Open[i] = number(c.Open)
			trace.High[i] = number(c.High)
			trace.Low[i] = number(c.Low)
			trace.Close[i] = number(c.Close)
		}
	default:
		return Figure{}, fmt.Errorf("unsupported chart style %q", spec.Style)
	}
	trace.UID = spec.TraceUID

	layout := Layout{
		Title: Title{Text: spec.Title},
		XAxis: Axis{Title: Title{Text: spec.XAxisLabel}, Type: axisTypeDate},
		YAxis: Axis{Title: Title{Text: spec.YAxisLabel}},
		Meta:  Meta{Theme: spec.Theme},
	}
	if tmpl, ok := themes[spec.Theme]; ok {
		layout.Template = &tmpl
	}

	return Figure{Data: []Trace{trace}, Layout: layout}, nil
}

// Deserialize reconstructs a chart description from a string produced by Serialize.
func Deserialize(graphJSON string) (model.ChartSpec, error) {
	var fig Figure
	if err := json.Unmarshal([]byte(graphJSON), &fig); err != nil {
		return model.ChartSpec{}, fmt.Errorf("decode figure: %w", err)
	}
	if len(fig.Data) != 1 {
		return model.ChartSpec{}, fmt.Errorf("expected 1 trace, got %d", len(fig.Data))
	}

	trace := fig.Data[0]
	spec := model.ChartSpec{
		TraceUID:   trace.UID,
		Title:      fig.Layout.Title.Text,
		XAxisLabel: fig.Layout.XAxis.Title.Text,
		YAxisLabel: fig.Layout.YAxis.Title.Text,
		Theme:      fig.Layout.Meta.Theme,
	}

	dates := make([]time.Time, len(trace.X))
	for i, x := range trace.X {
		d, err := time.ParseInLocation(dateLayout, x, time.UTC)
		if err != nil {
			return model.ChartSpec{}, fmt.Errorf("x[%d]: %w", i, err)
		}
		dates[i] = d
	}

	switch trace.Type {
	case traceTypeScatter:
		spec.Style = model.ChartStyleAdjustedCloseLine
		if len(trace.Y) != len(dates) {
			return model.ChartSpec{}, fmt.Errorf("x and y lengths differ: %d != %d", len(dates), len(trace.Y))
		}
		spec.Line = make([]model.LinePoint, len(dates))
		for i := range dates {
			v, err := decimal.NewFromString(trace.Y[i].String())
			if err != nil {
				return model.ChartSpec{}, fmt.Errorf("y[%d]: %w", i, err)
			}
			spec.Line[i] = model.LinePoint{Date: dates[i], Value: v}
		}
	case traceTypeCandlestick:
		spec.Style = model.ChartStyleCandlestick
		columns := [][]json.Number{trace.Open, trace.High, trace.Low, trace.Close}
		for _, col := range columns {
			if len(col) != len(dates) {
				return model.ChartSpec{}, fmt.Errorf("candlestick column length %d does not match %d dates", len(col), len(dates))
			}
		}
		spec.Candles = make([]model.Candle, len(dates))
		for i := range dates {
			var ohlc [4]decimal.Decimal
			for j, col := range columns {
				v, err := decimal.NewFromString(col[i].String())
				if err != nil {
					return model.ChartSpec{}, fmt.Errorf("candle %d: %w", i, err)
				}
				ohlc[j] = v
			}
			spec.Candles[i] = model.Candle{Date: dates[i], Open: ohlc[0], High: ohlc[1], Low: ohlc[2], Close: ohlc[3]}
		}
	default:
		return model.ChartSpec{}, fmt.Errorf("unsupported trace type %q", trace.Type)
	}

	return spec, nil
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
