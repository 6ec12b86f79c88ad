package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ndewijer/Stock-Chart-Viewer/internal/apperrors"
)

// tickerPattern accepts exchange-suffixed symbols such as "BRK.B" and "TSCO.LON".
var tickerPattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9.\-]{0,15}$`)

// NormalizeTicker trims and upper-cases a ticker symbol.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// ValidateTicker checks that a normalized ticker is present and well formed.
func ValidateTicker(ticker string) error {
	if ticker == "" {
		return apperrors.ErrMissingTicker
	}
	if !tickerPattern.MatchString(ticker) {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidTicker, ticker)
	}
	return nil
}

// ValidateMonth checks that month is between 1 and 12. Zero is accepted when optional is true.
func ValidateMonth(month int, optional bool) error {
	if month == 0 && optional {
		return nil
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: %d", apperrors.ErrInvalidMonth, month)
	}
	return nil
}

// ValidateYear checks that year has at least four digits. Zero is accepted when optional is true.
// There is no upper bound; years after the current one are rejected later as future requests.
func ValidateYear(year int, optional bool) error {
	if year == 0 && optional {
		return nil
	}
	if year < 1000 {
		return fmt.Errorf("%w: %d", apperrors.ErrInvalidYear, year)
	}
	return nil
}
