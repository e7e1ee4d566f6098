// Package provider resolves the configured flight backend at startup.
// Selection is a closed-set switch over the provider name; new variants
// are added here, not discovered dynamically.
package provider

import (
	"fmt"
	"strings"

	"github.com/travel-app/flight-search-tool/internal/adapter/provider/amadeus"
	"github.com/travel-app/flight-search-tool/internal/adapter/provider/kiwi"
	"github.com/travel-app/flight-search-tool/internal/adapter/provider/mock"
	"github.com/travel-app/flight-search-tool/internal/adapter/provider/skyscanner"
	"github.com/travel-app/flight-search-tool/internal/config"
	"github.com/travel-app/flight-search-tool/internal/domain"
	"github.com/travel-app/flight-search-tool/internal/infrastructure/logger"
)

// New builds the provider selected by cfg.Name (case-insensitive). An
// unusable selection - missing credentials, the unimplemented Skyscanner
// variant, or an unknown name - resolves to the mock provider with a
// logged warning, never a startup failure. Once selected, a live provider
// never substitutes mock data on its own errors.
func New(cfg config.ProviderConfig, currency string, log *logger.Logger) domain.FlightProvider {
	if log == nil {
		log = logger.Nop()
	}

	switch strings.ToUpper(strings.TrimSpace(cfg.Name)) {
	case "", "MOCK":
		return mock.NewAdapter(cfg.MockDataPath, log)

	case "KIWI":
		if cfg.KiwiAPIKey == "" {
			return fallback(cfg, log, domain.NewConfigurationError(kiwi.ProviderName, domain.ErrMissingCredentials))
		}
		return kiwi.NewAdapter(kiwi.Config{
			APIKey:   cfg.KiwiAPIKey,
			BaseURL:  cfg.KiwiBaseURL,
			Currency: currency,
			Logger:   log,
		})

	case "AMADEUS":
		if cfg.AmadeusClientID == "" || cfg.AmadeusClientSecret == "" {
			return fallback(cfg, log, domain.NewConfigurationError(amadeus.ProviderName, domain.ErrMissingCredentials))
		}
		return amadeus.NewAdapter(amadeus.Config{
			ClientID:     cfg.AmadeusClientID,
			ClientSecret: cfg.AmadeusClientSecret,
			BaseURL:      cfg.AmadeusBaseURL,
			Currency:     currency,
			Logger:       log,
		})

	case "SKYSCANNER":
		// The variant exists but has no working implementation yet, so
		// selecting it resolves to the fallback regardless of credentials.
		return fallback(cfg, log, domain.NewConfigurationError(skyscanner.ProviderName, domain.ErrNotImplemented))

	default:
		return fallback(cfg, log, domain.NewConfigurationError(
			strings.ToLower(cfg.Name), fmt.Errorf("unknown provider name")))
	}
}

// fallback logs why the selected provider is unusable and hands back the
// mock provider in its place.
func fallback(cfg config.ProviderConfig, log *logger.Logger, reason *domain.ConfigurationError) domain.FlightProvider {
	log.Warn().Err(reason).Str("selected", reason.Provider).Msg("provider unusable, falling back to mock")
	return mock.NewAdapter(cfg.MockDataPath, log)
}
