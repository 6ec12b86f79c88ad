package alphavantage

import (
	"context"
	"time"
)

// RawPayload is the undecoded JSON body returned by the Alpha Vantage query endpoint.
// It is produced once per request by the client and consumed once by ParsePayload.
type RawPayload []byte

// Client is the subset of the Alpha Vantage API used by the chart pipeline.
// FinanceClient implements it; tests substitute testutil.MockAlphaVantageClient.
type Client interface {
	QueryDailyAdjusted(ctx context.Context, symbol string) (RawPayload, error)
}

// Config holds the settings a FinanceClient is constructed with.
//
// Fields:
//   - BaseURL: Scheme and host of the API, without the /query path
//   - APIKey: Secret sent as the apikey parameter; never logged
//   - Timeout: Upper bound for a single HTTP round trip
//   - MaxConcurrent: Maximum number of queries in flight at once
type Config struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	MaxConcurrent int64
}

const (
	DefaultBaseURL       = "https://www.alphavantage.co"
	DefaultTimeout       = 30 * time.Second
	DefaultMaxConcurrent = 4
)
