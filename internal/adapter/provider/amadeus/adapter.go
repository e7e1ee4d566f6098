// Package amadeus implements the live flight provider backed by the Amadeus
// Self-Service flight-offers API. Authentication uses the OAuth2 client
// credentials flow; token refresh is owned by the token source.
package amadeus

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

	"golang.org/x/oauth2/clientcredentials"

	"github.com/travel-app/flight-search-tool/internal/domain"
	"github.com/travel-app/flight-search-tool/internal/infrastructure/logger"
)

// ProviderName is the unique identifier for the Amadeus provider.
const ProviderName = "amadeus"

// DefaultBaseURL is the production Amadeus endpoint.
const DefaultBaseURL = "https://api.amadeus.com"

// defaultCurrency is the price currency requested when none is configured.
const defaultCurrency = "NOK"

// defaultTimeout bounds one search round trip, token fetch included.
const defaultTimeout = 30 * time.Second

const (
	tokenPath  = "/v1/security/oauth2/token"
	offersPath = "/v2/shopping/flight-offers"
)

// maxOffers caps the number of offers requested per search.
const maxOffers = "20"

// travelClasses maps the cabin enumeration to Amadeus' travelClass
// vocabulary.
var travelClasses = map[domain.CabinClass]string{
	domain.CabinEconomy:        "ECONOMY",
	domain.CabinPremiumEconomy: "PREMIUM_ECONOMY",
	domain.CabinBusiness:       "BUSINESS",
	domain.CabinFirst:          "FIRST",
}

// Config carries the construction-time settings for the adapter.
type Config struct {
	// ClientID and ClientSecret are the Amadeus API credentials
	ClientID     string
	ClientSecret string

	// BaseURL overrides the production endpoint, mainly for tests
	BaseURL string

	// Currency is the ISO 4217 code prices are requested in
	Currency string

	// Logger receives normalization warnings
	Logger *logger.Logger
}

// Adapter is the flight-offers client. All fields are set at construction
// and read-only afterwards; the embedded OAuth2 client refreshes its token
// thread-safely on its own.
type Adapter struct {
	baseURL    string
	currency   string
	httpClient *http.Client
	log        *logger.Logger
}

// NewAdapter creates an Amadeus provider, applying defaults for the
// optional config fields.
func NewAdapter(cfg Config) *Adapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Currency == "" {
		cfg.Currency = defaultCurrency
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}

	credentials := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.BaseURL + tokenPath,
	}
	httpClient := credentials.Client(context.Background())
	httpClient.Timeout = defaultTimeout

	return &Adapter{
		baseURL:    cfg.BaseURL,
		currency:   cfg.Currency,
		httpClient: httpClient,
		log:        cfg.Logger.WithProvider(ProviderName),
	}
}

// Name implements domain.FlightProvider.
func (a *Adapter) Name() string {
	return ProviderName
}

// Search implements domain.FlightProvider against GET /v2/shopping/
// flight-offers. Any token, network, API, or schema failure is returned as
// a ProviderError; mock data is never substituted here.
func (a *Adapter) Search(ctx context.Context, params domain.SearchParams) ([]domain.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}

	query := a.buildQuery(params)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+offersPath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("flight offers request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, domain.NewProviderError(ProviderName,
			fmt.Errorf("flight offers returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var payload offersResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("failed to decode response: %w", err))
	}

	return a.normalize(payload.Data), nil
}

// buildQuery assembles the flight-offers parameters. Dates pass through in
// their YYYY-MM-DD shape.
func (a *Adapter) buildQuery(params domain.SearchParams) url.Values {
	q := url.Values{}
	q.Set("originLocationCode", params.Origin)
	q.Set("destinationLocationCode", params.Destination)
	q.Set("departureDate", params.DepartureDate)
	if params.ReturnDate != "" {
		q.Set("returnDate", params.ReturnDate)
	}
	q.Set("adults", strconv.Itoa(params.Adults))
	q.Set("travelClass", travelClass(params.Cabin))
	q.Set("currencyCode", a.currency)
	q.Set("max", maxOffers)
	return q
}

// travelClass maps a cabin class to the Amadeus enum, defaulting to
// ECONOMY for anything unrecognized.
func travelClass(cabin domain.CabinClass) string {
	if tc, ok := travelClasses[cabin]; ok {
		return tc
	}
	return travelClasses[domain.CabinEconomy]
}

// Ensure Adapter implements the provider contract at compile time.
var _ domain.FlightProvider = (*Adapter)(nil)
