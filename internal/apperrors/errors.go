package apperrors

import (
	"errors"
	"fmt"
	"time"
)

// User input errors represent missing or invalid request parameters.
// These errors are always recoverable and surface as a message to the user.
var (
	// ErrMissingYear indicates that the year field was left empty or is not a number.
	ErrMissingYear = errors.New("year is required")

	// ErrInvalidYear indicates that the year is outside the supported range.
	ErrInvalidYear = errors.New("invalid year")

	// ErrInvalidMonth indicates that the month is not a number between 1 and 12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrMissingTicker indicates that no ticker symbol was provided.
	ErrMissingTicker = errors.New("ticker is required")

	// ErrInvalidTicker indicates that the ticker contains characters a symbol cannot have.
	ErrInvalidTicker = errors.New("invalid ticker")

	// ErrFutureDateRequested indicates that the requested month starts after today.
	// Price data for future months does not exist yet.
	ErrFutureDateRequested = errors.New("requested month is in the future")
)

// Upstream errors represent failures of the market-data provider.
// The caller treats these as "ticker not found".
var (
	// ErrUpstreamDecode indicates that the provider responded with a body that is not JSON.
	ErrUpstreamDecode = errors.New("failed to decode market data response")

	// ErrUpstreamAPI indicates that the provider returned an explicit error field.
	ErrUpstreamAPI = errors.New("market data provider returned an error")

	// ErrTickerNotFound wraps any failure to obtain a payload for a ticker.
	ErrTickerNotFound = errors.New("stock price data not found")
)

// Data integrity errors represent a provider payload that does not have the expected shape.
var (
	// ErrPriceDataCorrupt indicates a daily record with a missing or non-numeric field,
	// or a date key that cannot be parsed.
	ErrPriceDataCorrupt = errors.New("price data is corrupt")

	// ErrTimeSeriesKeyMissing indicates that no "Time Series" key exists in the payload.
	ErrTimeSeriesKeyMissing = errors.New("time series key not found")

	// ErrTimeSeriesKeyAmbiguous indicates that more than one "Time Series" key exists in the payload.
	ErrTimeSeriesKeyAmbiguous = errors.New("multiple time series keys found")

	// ErrEmptyPriceTable indicates that a chart was requested for a table without rows.
	ErrEmptyPriceTable = errors.New("price table is empty")
)

// Operation failure errors
var (
	ErrFailedToBuildChart     = errors.New("failed to build chart")
	ErrFailedToSerializeChart = errors.New("failed to serialize chart")
)

// NoDataInRangeError reports that a month filter matched no rows.
// It carries the full date range of the unfiltered table so the user can pick
// a month that has data. HasRange is false when the unfiltered table was empty.
type NoDataInRangeError struct {
	Month     time.Month
	Year      int
	Available time.Time
	Through   time.Time
	HasRange  bool
}

func (e *NoDataInRangeError) Error() string {
	if !e.HasRange {
		return fmt.Sprintf("no price data for %s %d", e.Month, e.Year)
	}
	return fmt.Sprintf("no price data for %s %d (available %s to %s)",
		e.Month, e.Year,
		e.Available.Format("2006-01-02"),
		e.Through.Format("2006-01-02"))
}

// IsUserInput reports whether err was caused by invalid request parameters.
func IsUserInput(err error) bool {
	return errors.Is(err, ErrMissingYear) ||
		errors.Is(err, ErrInvalidYear) ||
		errors.Is(err, ErrInvalidMonth) ||
		errors.Is(err, ErrMissingTicker) ||
		errors.Is(err, ErrInvalidTicker) ||
		errors.Is(err, ErrFutureDateRequested)
}

// IsPriceDataCorrupt reports whether err was caused by an unexpected payload shape.
func IsPriceDataCorrupt(err error) bool {
	return errors.Is(err, ErrPriceDataCorrupt) ||
		errors.Is(err, ErrTimeSeriesKeyMissing) ||
		errors.Is(err, ErrTimeSeriesKeyAmbiguous)
}
