package alphavantage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/ndewijer/Stock-Chart-Viewer/internal/apperrors"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/semaphore"
)

const (
	dailyAdjustedFunction = "TIME_SERIES_DAILY_ADJUSTED"
	fullOutputSize        = "full"

	errorMessageKey = "Error Message"
	informationKey  = "Information"
	noteKey         = "Note"
)

// FinanceClient provides methods for fetching price history from the Alpha Vantage API.
// It wraps an HTTP client and caps the number of concurrent outbound queries.
type FinanceClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	sem        *semaphore.Weighted
}

// NewFinanceClient creates a new Alpha Vantage client from the given configuration.
// Zero values in cfg are replaced by DefaultBaseURL, DefaultTimeout and DefaultMaxConcurrent.
func NewFinanceClient(cfg Config) *FinanceClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = DefaultMaxConcurrent
	}

	return &FinanceClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		sem:        semaphore.NewWeighted(cfg.MaxConcurrent),
	}
}

// QueryDailyAdjusted fetches the full daily adjusted price history for a symbol.
// The raw body is returned undecoded; use ParsePayload to turn it into a price table.
//
// Parameters:
//   - ctx: Request context; cancellation aborts both the wait for a slot and the HTTP call
//   - symbol: Stock ticker symbol (e.g., "AAPL", "MSFT")
//
// Returns:
//   - RawPayload: The JSON body of the response
//   - error: ErrUpstreamDecode if the body is not JSON, ErrUpstreamAPI if the provider
//     reported an error, or the underlying transport error
func (c *FinanceClient) QueryDailyAdjusted(ctx context.Context, symbol string) (RawPayload, error) {
	params := url.Values{}
	params.Set("function", dailyAdjustedFunction)
	params.Set("symbol", symbol)
	params.Set("outputsize", fullOutputSize)
	params.Set("apikey", c.apiKey)

	return c.queryAlphaVantage(ctx, c.baseURL+"/query?"+params.Encode(), symbol)
}

// queryAlphaVantage executes a single query and checks the body for provider errors.
// The URL carries the API key, so it is never logged.
func (c *FinanceClient) queryAlphaVantage(ctx context.Context, queryURL, symbol string) (RawPayload, error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer c.sem.Release(1)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL, nil)
	if err != nil {
		return nil, fmt.Errorf("alpha vantage request for %s: %w", symbol, redactError(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alpha vantage request for %s: %w", symbol, redactError(err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(data) {
		log.Printf("ERROR :: Failed to decode API data for %s. Response status code = %d", symbol, resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrUpstreamDecode, resp.StatusCode)
	}

	if msg := gjson.GetBytes(data, errorMessageKey); msg.Exists() {
		log.Printf("Alpha Vantage error for %s: %s", symbol, msg.String())
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstreamAPI, msg.String())
	}

	// Rate limit and premium notices arrive as a lone Information or Note field.
	if !hasTimeSeries(data) {
		for _, key := range []string{informationKey, noteKey} {
			if msg := gjson.GetBytes(data, key); msg.Exists() {
				log.Printf("Alpha Vantage notice for %s: %s", symbol, msg.String())
				return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstreamAPI, msg.String())
			}
		}
	}

	return RawPayload(data), nil
}

func hasTimeSeries(data []byte) bool {
	found := false
	gjson.ParseBytes(data).ForEach(func(key, _ gjson.Result) bool {
		if strings.Contains(key.String(), timeSeriesMarker) {
			found = true
			return false
		}
		return true
	})
	return found
}

// redactError strips the request URL from URL parse and transport errors so the API key cannot leak into logs.
func redactError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
