package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"
)

// NewRequestWithQueryParams creates an HTTP request with query parameters.
// This helper simplifies testing handlers that use r.URL.Query() to extract query string parameters.
//
// Example:
//
//	req := testutil.NewRequestWithQueryParams(
//	    http.MethodGet,
//	    "/api/chart",
//	    map[string]string{
//	        "ticker": "AAPL",
//	        "month":  "3",
//	    },
//	)
func NewRequestWithQueryParams(method, path string, queryParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)

	if len(queryParams) > 0 {
		q := req.URL.Query()
		for key, value := range queryParams {
			q.Add(key, value)
		}
		req.URL.RawQuery = q.Encode()
	}

	return req
}

// NewFormRequest creates a POST request with an application/x-www-form-urlencoded body.
//
// Example:
//
//	req := testutil.NewFormRequest("/get_ticker", map[string]string{
//	    "ticker":    "AAPL",
//	    "plot_type": "adj_close",
//	    "month":     "3",
//	    "year":      "2023",
//	})
func NewFormRequest(path string, fields map[string]string) *http.Request {
	form := url.Values{}
	for key, value := range fields {
		form.Set(key, value)
	}

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// FixedClock returns a clock function that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
