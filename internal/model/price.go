package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Metadata describes a price series as reported by the provider
// (symbol, last refreshed, time zone, ...). Keys have their numbering prefix removed.
type Metadata map[string]string

// DailyRecord represents one trading day of adjusted daily price data.
// Date is midnight UTC of the trading day.
type DailyRecord struct {
	Date             time.Time       `json:"date"`
	Open             decimal.Decimal `json:"open"`
	High             decimal.Decimal `json:"high"`
	Low              decimal.Decimal `json:"low"`
	Close            decimal.Decimal `json:"close"`
	AdjustedClose    decimal.Decimal `json:"adjustedClose"`
	Volume           int64           `json:"volume"`
	DividendAmount   decimal.Decimal `json:"dividendAmount"`
	SplitCoefficient decimal.Decimal `json:"splitCoefficient"`
}

// PriceTable is a collection of daily records with unique dates.
// Row order is whatever the provider returned and must not be relied upon.
type PriceTable []DailyRecord

// DateRange returns the earliest and latest dates in the table.
// ok is false for an empty table.
func (t PriceTable) DateRange() (first, last time.Time, ok bool) {
	if len(t) == 0 {
		return time.Time{}, time.Time{}, false
	}
	first, last = t[0].Date, t[0].Date
	for _, rec := range t[1:] {
		if rec.Date.Before(first) {
			first = rec.Date
		}
		if rec.Date.After(last) {
			last = rec.Date
		}
	}
	return first, last, true
}
