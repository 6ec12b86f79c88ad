package alphavantage

import (
	"strings"

	"github.com/ndewijer/Stock-Chart-Viewer/internal/model"
	"github.com/shopspring/decimal"
)

// providerFieldNames maps the numbered field names of TIME_SERIES_DAILY_ADJUSTED
// records to their clean names.
var providerFieldNames = map[string]string{
	"1. open":              "open",
	"2. high":              "high",
	"3. low":               "low",
	"4. close":             "close",
	"5. adjusted close":    "adjusted close",
	"6. volume":            "volume",
	"7. dividend amount":   "dividend amount",
	"8. split coefficient": "split coefficient",
}

// providerMetadataNames maps the numbered "Meta Data" keys to their clean names.
var providerMetadataNames = map[string]string{
	"1. Information":    "Information",
	"2. Symbol":         "Symbol",
	"3. Last Refreshed": "Last Refreshed",
	"4. Output Size":    "Output Size",
	"5. Time Zone":      "Time Zone",
}

type dailyField struct {
	set func(rec *model.DailyRecord, raw string) error
}

// dailyFields lists every field a daily record requires, keyed by clean name.
var dailyFields = map[string]dailyField{
	"open":              {set: decimalField(func(r *model.DailyRecord) *decimal.Decimal { return &r.Open })},
	"high":              {set: decimalField(func(r *model.DailyRecord) *decimal.Decimal { return &r.High })},
	"low":               {set: decimalField(func(r *model.DailyRecord) *decimal.Decimal { return &r.Low })},
	"close":             {set: decimalField(func(r *model.DailyRecord) *decimal.Decimal { return &r.Close })},
	"adjusted close":    {set: decimalField(func(r *model.DailyRecord) *decimal.Decimal { return &r.AdjustedClose })},
	"volume":            {set: volumeField},
	"dividend amount":   {set: decimalField(func(r *model.DailyRecord) *decimal.Decimal { return &r.DividendAmount })},
	"split coefficient": {set: decimalField(func(r *model.DailyRecord) *decimal.Decimal { return &r.SplitCoefficient })},
}

// NormalizeFieldName returns the clean name of a daily record field.
// Known provider names are looked up; anything else has its numbering prefix stripped.
func NormalizeFieldName(key string) string {
	if name, ok := providerFieldNames[key]; ok {
		return name
	}
	return StripNumbering(key)
}

// NormalizeMetadataKey returns the clean name of a "Meta Data" key.
func NormalizeMetadataKey(key string) string {
	if name, ok := providerMetadataNames[key]; ok {
		return name
	}
	return StripNumbering(key)
}

// StripNumbering removes a leading "<digits>." prefix and the whitespace around it.
//
// Example:
//
//	StripNumbering("11. Text")  // returns "Text"
//	StripNumbering(" open ")    // returns "open"
//	StripNumbering("v1.2")      // returns "v1.2"
func StripNumbering(key string) string {
	s := strings.TrimSpace(key)
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 && i < len(s) && s[i] == '.' {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}
