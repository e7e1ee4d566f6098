// Package kiwi implements the live flight provider backed by the Kiwi
// Tequila search API.
package kiwi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/travel-app/flight-search-tool/internal/domain"
	"github.com/travel-app/flight-search-tool/internal/infrastructure/logger"
)

// ProviderName is the unique identifier for the Kiwi provider.
const ProviderName = "kiwi"

// DefaultBaseURL is the production Tequila endpoint.
const DefaultBaseURL = "https://api.tequila.kiwi.com"

// defaultCurrency is the price currency requested when none is configured.
const defaultCurrency = "NOK"

// defaultTimeout bounds one search round trip.
const defaultTimeout = 30 * time.Second

// wireDateLayout is the DD/MM/YYYY shape the search endpoint expects.
const wireDateLayout = "02/01/2006"

// cabinCodes maps the cabin enumeration to Tequila's selected_cabins
// vocabulary.
var cabinCodes = map[domain.CabinClass]string{
	domain.CabinEconomy:        "M",
	domain.CabinPremiumEconomy: "W",
	domain.CabinBusiness:       "C",
	domain.CabinFirst:          "F",
}

// Config carries the construction-time settings for the adapter.
type Config struct {
	// APIKey is sent in the apikey header on every request
	APIKey string

	// BaseURL overrides the production endpoint, mainly for tests
	BaseURL string

	// Currency is the ISO 4217 code prices are requested in
	Currency string

	// HTTPClient overrides the default 30s-timeout client, mainly for tests
	HTTPClient *http.Client

	// Logger receives normalization warnings
	Logger *logger.Logger
}

// Adapter is the Tequila /v2/search client. All fields are set at
// construction and read-only afterwards.
type Adapter struct {
	apiKey     string
	baseURL    string
	currency   string
	httpClient *http.Client
	log        *logger.Logger
}

// NewAdapter creates a Kiwi provider, applying defaults for the optional
// config fields.
func NewAdapter(cfg Config) *Adapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Currency == "" {
		cfg.Currency = defaultCurrency
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}

	return &Adapter{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		currency:   cfg.Currency,
		httpClient: cfg.HTTPClient,
		log:        cfg.Logger.WithProvider(ProviderName),
	}
}

// Name implements domain.FlightProvider.
func (a *Adapter) Name() string {
	return ProviderName
}

// Search implements domain.FlightProvider against GET /v2/search. Any
// network, API, or schema failure is returned as a ProviderError; mock
// data is never substituted here.
func (a *Adapter) Search(ctx context.Context, params domain.SearchParams) ([]domain.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}

	query, err := a.buildQuery(params)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/v2/search?"+query.Encode(), nil)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("apikey", a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("search request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, domain.NewProviderError(ProviderName,
			fmt.Errorf("search returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("failed to decode response: %w", err))
	}

	return a.normalize(payload.Data), nil
}

// buildQuery assembles the /v2/search parameters. One-way by default;
// a return date switches the search to a round trip.
func (a *Adapter) buildQuery(params domain.SearchParams) (url.Values, error) {
	departure, err := toWireDate(params.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("departure date: %w", err)
	}

	q := url.Values{}
	q.Set("fly_from", params.Origin)
	q.Set("fly_to", params.Destination)
	q.Set("date_from", departure)
	q.Set("date_to", departure)
	q.Set("adults", strconv.Itoa(params.Adults))
	q.Set("selected_cabins", cabinCode(params.Cabin))
	q.Set("flight_type", "oneway")
	q.Set("one_for_city", "1")
	q.Set("one_per_date", "0")
	q.Set("max_stopovers", "3")
	q.Set("curr", a.currency)
	q.Set("limit", "50")

	if params.ReturnDate != "" {
		ret, err := toWireDate(params.ReturnDate)
		if err != nil {
			return nil, fmt.Errorf("return date: %w", err)
		}
		q.Set("return_from", ret)
		q.Set("return_to", ret)
		q.Set("flight_type", "round")
	}

	return q, nil
}

// toWireDate converts YYYY-MM-DD to the DD/MM/YYYY wire shape.
func toWireDate(value string) (string, error) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return "", fmt.Errorf("expected YYYY-MM-DD, got %q", value)
	}
	return parsed.Format(wireDateLayout), nil
}

// cabinCode maps a cabin class to the selected_cabins code, defaulting to
// economy for anything unrecognized.
func cabinCode(cabin domain.CabinClass) string {
	if code, ok := cabinCodes[cabin]; ok {
		return code
	}
	return cabinCodes[domain.CabinEconomy]
}

// Ensure Adapter implements the provider contract at compile time.
var _ domain.FlightProvider = (*Adapter)(nil)
