package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/ndewijer/Stock-Chart-Viewer/internal/alphavantage"
)

// MockAlphaVantageClient is a mock implementation of alphavantage.Client for testing.
// It returns predefined payloads instead of making actual API calls.
type MockAlphaVantageClient struct {
	// Payloads maps a symbol to the payload returned for it.
	// Symbols without an entry fall back to MockPayload.
	Payloads map[string]alphavantage.RawPayload
	// MockPayload is the payload to return when no symbol-specific payload exists
	MockPayload alphavantage.RawPayload
	// MockError is the error to return from query methods
	MockError error
	// QueryCount tracks how many times a query method was called
	QueryCount int
	// LastSymbol is the symbol of the most recent query
	LastSymbol string
}

// NewMockAlphaVantageClient creates a new mock client returning every trading day of 2023.
func NewMockAlphaVantageClient() *MockAlphaVantageClient {
	return &MockAlphaVantageClient{
		Payloads: map[string]alphavantage.RawPayload{},
		MockPayload: CreateMockDailyAdjustedPayload(
			"TEST",
			time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
		),
	}
}

// QueryDailyAdjusted mocks the daily adjusted query with predefined test data.
func (m *MockAlphaVantageClient) QueryDailyAdjusted(_ context.Context, symbol string) (alphavantage.RawPayload, error) {
	m.QueryCount++
	m.LastSymbol = symbol
	if m.MockError != nil {
		return nil, m.MockError
	}
	if payload, ok := m.Payloads[symbol]; ok {
		return payload, nil
	}
	return m.MockPayload, nil
}

// WithError configures the mock to return the specified error.
func (m *MockAlphaVantageClient) WithError(err error) *MockAlphaVantageClient {
	m.MockError = err
	return m
}

// WithPayload configures the mock to return the specified payload for any symbol.
func (m *MockAlphaVantageClient) WithPayload(payload alphavantage.RawPayload) *MockAlphaVantageClient {
	m.MockPayload = payload
	return m
}

// WithSymbolPayload configures the payload returned for one symbol.
func (m *MockAlphaVantageClient) WithSymbolPayload(symbol string, payload alphavantage.RawPayload) *MockAlphaVantageClient {
	m.Payloads[symbol] = payload
	return m
}

// CreateMockDailyAdjustedPayload creates a TIME_SERIES_DAILY_ADJUSTED payload with one
// record per weekday between start and end inclusive. Dates are written newest first,
// as the provider does.
func CreateMockDailyAdjustedPayload(symbol string, start, end time.Time) alphavantage.RawPayload {
	series := map[string]map[string]string{}

	basePrice := 100.0
	i := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		dayPrice := basePrice + float64(i)*0.5
		series[d.Format("2006-01-02")] = map[string]string{
			"1. open":              fmt.Sprintf("%.4f", dayPrice),
			"2. high":              fmt.Sprintf("%.4f", dayPrice+1.0),
			"3. low":               fmt.Sprintf("%.4f", dayPrice-0.5),
			"4. close":             fmt.Sprintf("%.4f", dayPrice+0.25),
			"5. adjusted close":    fmt.Sprintf("%.4f", dayPrice+0.2),
			"6. volume":            fmt.Sprintf("%d", 1000000+i*10000),
			"7. dividend amount":   "0.0000",
			"8. split coefficient": "1.0",
		}
		i++
	}

	return buildPayload(symbol, end, series)
}

// CreateMockPayloadForDate creates a payload with a single day's data at the given price.
func CreateMockPayloadForDate(symbol string, date time.Time, price string) alphavantage.RawPayload {
	series := map[string]map[string]string{
		date.Format("2006-01-02"): {
			"1. open":              price,
			"2. high":              price,
			"3. low":               price,
			"4. close":             price,
			"5. adjusted close":    price,
			"6. volume":            "1000000",
			"7. dividend amount":   "0.0000",
			"8. split coefficient": "1.0",
		},
	}
	return buildPayload(symbol, date, series)
}

// CreateMockErrorPayload creates a provider response carrying an error message.
func CreateMockErrorPayload(errorMsg string) alphavantage.RawPayload {
	data, _ := json.Marshal(map[string]string{"Error Message": errorMsg})
	return data
}

// buildPayload writes the payload by hand so the series keys come out newest first,
// as the provider orders them. encoding/json would sort them ascending.
func buildPayload(symbol string, lastRefreshed time.Time, series map[string]map[string]string) alphavantage.RawPayload {
	meta, _ := json.Marshal(map[string]string{
		"1. Information":    "Daily Time Series with Splits and Dividend Events",
		"2. Symbol":         symbol,
		"3. Last Refreshed": lastRefreshed.Format("2006-01-02"),
		"4. Output Size":    "Full size",
		"5. Time Zone":      "US/Eastern",
	})

	dates := make([]string, 0, len(series))
	for date := range series {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	var buf bytes.Buffer
	buf.WriteString(`{"Meta Data":`)
	buf.Write(meta)
	buf.WriteString(`,"Time Series (Daily)":{`)
	for i, date := range dates {
		if i > 0 {
			buf.WriteByte(',')
		}
		fields, _ := json.Marshal(series[date])
		fmt.Fprintf(&buf, "%q:%s", date, fields)
	}
	buf.WriteString("}}")

	return buf.Bytes()
}
