package alphavantage

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ndewijer/Stock-Chart-Viewer/internal/apperrors"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/model"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

const (
	timeSeriesMarker = "Time Series"
	metaDataKey      = "Meta Data"
	dateLayout       = "2006-01-02"
)

// ParsePayload converts a raw Alpha Vantage time series response into metadata and a price table.
//
// The payload must contain exactly one top-level key whose name contains "Time Series".
// Field names are normalized through the tables in fields.go and every numeric value is
// coerced; a single bad record fails the whole payload.
//
// Returns:
//   - model.Metadata: Series metadata with numbering prefixes removed from its keys
//   - model.PriceTable: One record per date key, in payload order
//   - error: ErrTimeSeriesKeyMissing, ErrTimeSeriesKeyAmbiguous or ErrPriceDataCorrupt
func ParsePayload(payload RawPayload) (model.Metadata, model.PriceTable, error) {
	if !gjson.ValidBytes(payload) {
		return nil, nil, fmt.Errorf("%w: payload is not valid JSON", apperrors.ErrPriceDataCorrupt)
	}

	var (
		seriesKeys []string
		series     gjson.Result
	)
	meta := model.Metadata{}

	gjson.ParseBytes(payload).ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		switch {
		case strings.Contains(name, timeSeriesMarker):
			seriesKeys = append(seriesKeys, name)
			series = value
		case name == metaDataKey:
			value.ForEach(func(k, v gjson.Result) bool {
				meta[NormalizeMetadataKey(k.String())] = v.String()
				return true
			})
		}
		return true
	})

	switch len(seriesKeys) {
	case 0:
		return nil, nil, apperrors.ErrTimeSeriesKeyMissing
	case 1:
	default:
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrTimeSeriesKeyAmbiguous, strings.Join(seriesKeys, ", "))
	}

	if !series.IsObject() {
		return nil, nil, fmt.Errorf("%w: %q is not an object", apperrors.ErrPriceDataCorrupt, seriesKeys[0])
	}

	table := model.PriceTable{}
	seen := make(map[time.Time]bool)
	var parseErr error
	series.ForEach(func(dateKey, fields gjson.Result) bool {
		rec, err := parseDailyRecord(dateKey.String(), fields)
		if err != nil {
			parseErr = err
			return false
		}
		if seen[rec.Date] {
			parseErr = fmt.Errorf("%w: duplicate date %s", apperrors.ErrPriceDataCorrupt, dateKey.String())
			return false
		}
		seen[rec.Date] = true
		table = append(table, rec)
		return true
	})
	if parseErr != nil {
		return nil, nil, parseErr
	}

	return meta, table, nil
}

// parseDailyRecord builds one record from a date key and its object of numbered fields.
// Unknown fields are ignored; every field in dailyFields must be present.
func parseDailyRecord(dateKey string, fields gjson.Result) (model.DailyRecord, error) {
	date, err := time.ParseInLocation(dateLayout, strings.TrimSpace(dateKey), time.UTC)
	if err != nil {
		return model.DailyRecord{}, fmt.Errorf("%w: invalid date %q", apperrors.ErrPriceDataCorrupt, dateKey)
	}

	rec := model.DailyRecord{Date: date}
	found := make(map[string]bool, len(dailyFields))

	var fieldErr error
	fields.ForEach(func(key, value gjson.Result) bool {
		name := NormalizeFieldName(key.String())
		field, ok := dailyFields[name]
		if !ok {
			return true
		}
		if err := field.set(&rec, strings.TrimSpace(value.String())); err != nil {
			fieldErr = fmt.Errorf("%w: %s %s: %v", apperrors.ErrPriceDataCorrupt, dateKey, name, err)
			return false
		}
		found[name] = true
		return true
	})
	if fieldErr != nil {
		return model.DailyRecord{}, fieldErr
	}

	for name := range dailyFields {
		if !found[name] {
			return model.DailyRecord{}, fmt.Errorf("%w: %s missing %s", apperrors.ErrPriceDataCorrupt, dateKey, name)
		}
	}

	return rec, nil
}

func decimalField(target func(*model.DailyRecord) *decimal.Decimal) func(*model.DailyRecord, string) error {
	return func(rec *model.DailyRecord, raw string) error {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return err
		}
		*target(rec) = d
		return nil
	}
}

func volumeField(rec *model.DailyRecord, raw string) error {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return err
	}
	rec.Volume = v
	return nil
}
