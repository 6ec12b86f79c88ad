package service

import (
	"errors"

	"github.com/ndewijer/Stock-Chart-Viewer/internal/config"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/model"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/version"
)

// ErrAPIKeyMissing is reported by CheckHealth when no market data API key is configured.
var ErrAPIKeyMissing = errors.New("alpha vantage API key is not configured")

// SystemService handles system-related operations
type SystemService struct {
	cfg *config.Config
}

// NewSystemService creates a new SystemService
func NewSystemService(cfg *config.Config) *SystemService {
	return &SystemService{
		cfg: cfg,
	}
}

// CheckHealth checks whether the service can answer chart requests
func (s *SystemService) CheckHealth() error {
	if s.cfg.AlphaVantage.APIKey == "" {
		return ErrAPIKeyMissing
	}
	return nil
}

// CheckVersion returns the application version and the chart styles it offers.
func (s *SystemService) CheckVersion() model.VersionInfo {
	return model.VersionInfo{
		AppVersion: version.Version,
		Features: map[string]bool{
			string(model.ChartStyleAdjustedCloseLine): true,
			string(model.ChartStyleCandlestick):       true,
			"json_api":                                true,
		},
	}
}
