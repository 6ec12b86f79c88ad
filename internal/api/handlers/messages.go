package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ndewijer/Stock-Chart-Viewer/internal/apperrors"
)

// User-facing messages shown on the index page.
const (
	msgMissingYear    = "Please provide a year"
	msgInvalidMonth   = "Please provide a valid month"
	msgInvalidYear    = "Please provide a valid year"
	msgMissingTicker  = "Please provide a ticker"
	msgFuture         = "Sorry but this service is currently unable to predict the future"
	msgNotFound       = "Stock price data not found for %s"
	msgNotAvailable   = "Stock price data not available for %s in %s %d."
	msgAvailableRange = "Data for %s exists from %s %d to %s %d"
	msgCorrupt        = "Stock price data for %s could not be read"
	msgUnexpected     = "Something went wrong while building the chart for %s"
)

// userMessages translates a pipeline error into the messages shown to the user
// and the status code used by the JSON API.
func userMessages(ticker string, err error) ([]string, int) {
	var noData *apperrors.NoDataInRangeError

	switch {
	case errors.Is(err, apperrors.ErrMissingYear):
		return []string{msgMissingYear}, http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidMonth):
		return []string{msgInvalidMonth}, http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidYear):
		return []string{msgInvalidYear}, http.StatusBadRequest
	case errors.Is(err, apperrors.ErrMissingTicker), errors.Is(err, apperrors.ErrInvalidTicker):
		return []string{msgMissingTicker}, http.StatusBadRequest
	case errors.Is(err, apperrors.ErrFutureDateRequested):
		return []string{msgFuture}, http.StatusBadRequest
	case errors.Is(err, apperrors.ErrTickerNotFound):
		return []string{fmt.Sprintf(msgNotFound, ticker)}, http.StatusNotFound
	case errors.As(err, &noData):
		messages := []string{fmt.Sprintf(msgNotAvailable, ticker, noData.Month, noData.Year)}
		if noData.HasRange {
			messages = append(messages, availableRangeMessage(ticker, noData.Available, noData.Through))
		}
		return messages, http.StatusNotFound
	case apperrors.IsPriceDataCorrupt(err):
		return []string{fmt.Sprintf(msgCorrupt, ticker)}, http.StatusBadGateway
	default:
		return []string{fmt.Sprintf(msgUnexpected, ticker)}, http.StatusInternalServerError
	}
}

func availableRangeMessage(ticker string, first, last time.Time) string {
	return fmt.Sprintf(msgAvailableRange, ticker, first.Month(), first.Year(), last.Month(), last.Year())
}
