package service

import (
	"time"

	"github.com/ndewijer/Stock-Chart-Viewer/internal/apperrors"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/model"
)

// ResolveMonthYear fills in a missing (zero) month or year from now.
func ResolveMonthYear(month, year int, now time.Time) (int, int) {
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	return month, year
}

// IsFutureMonth reports whether the first day of the given month lies after today.
// The comparison is made on calendar dates, so the current month is never in the future.
func IsFutureMonth(month, year int, now time.Time) bool {
	if year != now.Year() {
		return year > now.Year()
	}
	return firstOfMonth(month, year).After(dateOnly(now))
}

// FilterToMonth returns the records of table dated within the given calendar month.
//
// A zero month or year defaults to the current one. The table may be in any order and
// is not modified; the result is a new table in the same relative order.
//
// Returns:
//   - model.PriceTable: Records dated from the first to the last day of the month, inclusive
//   - error: ErrInvalidMonth or ErrInvalidYear for out-of-range input, ErrFutureDateRequested
//     if the month starts after today, or *apperrors.NoDataInRangeError if no record matched
func FilterToMonth(table model.PriceTable, month, year int, now time.Time) (model.PriceTable, error) {
	month, year = ResolveMonthYear(month, year, now)
	if month < 1 || month > 12 {
		return nil, apperrors.ErrInvalidMonth
	}
	if year < 1 {
		return nil, apperrors.ErrInvalidYear
	}
	if IsFutureMonth(month, year, now) {
		return nil, apperrors.ErrFutureDateRequested
	}

	start := firstOfMonth(month, year)
	end := start.AddDate(0, 1, -1)

	filtered := model.PriceTable{}
	for _, rec := range table {
		day := dateOnly(rec.Date)
		if day.Before(start) || day.After(end) {
			continue
		}
		filtered = append(filtered, rec)
	}

	if len(filtered) == 0 {
		first, last, ok := table.DateRange()
		return nil, &apperrors.NoDataInRangeError{
			Month:     time.Month(month),
			Year:      year,
			Available: first,
			Through:   last,
			HasRange:  ok,
		}
	}

	return filtered, nil
}

func firstOfMonth(month, year int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

// dateOnly drops the clock and zone of t, keeping its calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
