// Package integration provides helpers and integration tests for the flight search system.
// Integration tests verify that components work together correctly, including
// HTTP handlers, the use case, and providers.
package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/travel-app/flight-search-tool/internal/adapter/http"
	"github.com/travel-app/flight-search-tool/internal/adapter/http/response"
	"github.com/travel-app/flight-search-tool/internal/domain"
	"github.com/travel-app/flight-search-tool/internal/usecase"
)

// TestServer runs the full handler stack in process: everything cmd/server
// wires except the listener and middleware chain.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.FlightHandler
}

// NewTestServer builds a server around the given use case.
func NewTestServer(uc usecase.FlightSearchUseCase) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewFlightHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request describes one test call. A non-nil Body is marshalled to JSON
// and, unless ContentType overrides it, sent as application/json.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response captures what the server answered.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do runs one request through the in-process server.
func (ts *TestServer) Do(req Request) Response {
	var body io.Reader
	contentType := req.ContentType
	if req.Body != nil {
		payload, _ := json.Marshal(req.Body)
		body = bytes.NewReader(payload)
		if contentType == "" {
			contentType = echo.MIMEApplicationJSON
		}
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, body)
	if contentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, contentType)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a body to the search endpoint.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   body,
	})
}

// HealthRequest gets the health endpoint.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// SearchEnvelope is the decoded response envelope around search results.
type SearchEnvelope struct {
	Success bool                           `json:"success"`
	Data    *httpAdapter.SearchResponseDTO `json:"data"`
	Error   *response.ErrorDetail          `json:"error"`
}

// ParseSearch decodes the response body as a search result envelope.
func (r *Response) ParseSearch() (*SearchEnvelope, error) {
	var env SearchEnvelope
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// ParseError decodes the body as loose JSON for error-path assertions.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Origin      string                 `json:"origin"`
	Destination string                 `json:"destination"`
	Date        string                 `json:"date,omitempty"`
	DateRange   string                 `json:"date_range,omitempty"`
	Adults      int                    `json:"adults,omitempty"`
	Cabin       string                 `json:"cabin,omitempty"`
	Filters     map[string]interface{} `json:"filters,omitempty"`
	SortBy      string                 `json:"sort_by,omitempty"`
}

// DefaultSearchRequest returns a valid search request body matching the
// bundled dataset's route and date.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:      "OSL",
		Destination: "PER",
		Date:        "2025-12-10",
		Adults:      1,
	}
}

// CreateUseCase creates a use case with the given provider and default configuration.
func CreateUseCase(provider domain.FlightProvider) usecase.FlightSearchUseCase {
	return usecase.NewFlightSearchUseCase(provider, nil)
}

// CreateUseCaseWithConfig creates a use case with custom configuration.
func CreateUseCaseWithConfig(provider domain.FlightProvider, config *usecase.Config) usecase.FlightSearchUseCase {
	return usecase.NewFlightSearchUseCase(provider, config)
}

// DefaultSearchParams returns valid search parameters for driving the use
// case directly.
func DefaultSearchParams() domain.SearchParams {
	return domain.SearchParams{
		Origin:        "OSL",
		Destination:   "PER",
		DepartureDate: "2025-12-10",
		Adults:        1,
	}
}
