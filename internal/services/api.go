// Trip-planning service implementation of [TripService].
//
// Wraps the server's hydration and completion endpoints with the client's
// error taxonomy: 401/403 map to shared.ErrUnauthenticated, a 404 on
// hydration to shared.ErrUserNotFound, and everything else (network
// failures, timeouts, 5xx) to shared.ErrTransient.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/desertthunder/wayfarer/internal/models"
	"github.com/desertthunder/wayfarer/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.wayfarer.app"

// defaultTimeout bounds a stuck fetch; past it the failure is transient.
const defaultTimeout = 15 * time.Second

// APIService implements [TripService] against the wayfarer REST API.
type APIService struct {
	baseURL    string
	httpClient *http.Client
	tokens     oauth2.TokenSource
	limiter    *rate.Limiter
}

var _ TripService = (*APIService)(nil)

// NewAPIService creates a new API service for the trip-planning server.
//
// The limiter caps hydration calls at one per second (burst 3) so rapid
// route changes cannot hammer the endpoint.
func NewAPIService(baseURL string, client *http.Client) *APIService {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	return &APIService{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Every(time.Second), 3),
	}
}

// WithTokenSource sets the identity-provider token source used to
// authenticate requests and returns the service for chaining.
func (a *APIService) WithTokenSource(tokens oauth2.TokenSource) *APIService {
	a.tokens = tokens
	return a
}

func (a *APIService) Name() string {
	return "Wayfarer"
}

// blockCompleteRequest is the wire payload for the mark-block-complete endpoint.
type blockCompleteRequest struct {
	TripID    string `json:"tripId"`
	DayIndex  int    `json:"dayIndex"`
	BlockName string `json:"blockName"`
}

// dayCompleteRequest is the wire payload for the mark-day-complete endpoint.
type dayCompleteRequest struct {
	TripID   string   `json:"tripId"`
	DayIndex int      `json:"dayIndex"`
	Moods    []string `json:"moods"`
	Journal  string   `json:"journal,omitempty"`
}

// FetchSnapshot retrieves the consolidated state snapshot for the
// authenticated user from GET /api/hydrate.
func (a *APIService) FetchSnapshot(ctx context.Context) (*models.Snapshot, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait: %v", shared.ErrTransient, err)
	}

	body, err := a.doRequest(ctx, http.MethodGet, "/api/hydrate", nil, true)
	if err != nil {
		return nil, err
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(body, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: failed to decode snapshot: %v", shared.ErrTransient, err)
	}

	return &snapshot, nil
}

// StartTrip marks the trip as started via POST /api/trips/{id}/start.
func (a *APIService) StartTrip(ctx context.Context, tripID string) error {
	if tripID == "" {
		return fmt.Errorf("%w: trip id required", shared.ErrInvalidArgument)
	}

	path := fmt.Sprintf("/api/trips/%s/start", tripID)
	_, err := a.doRequest(ctx, http.MethodPost, path, nil, false)
	return err
}

// CompleteBlock marks one block complete via POST /api/trips/{id}/blocks/complete.
func (a *APIService) CompleteBlock(ctx context.Context, tripID string, dayIndex int, block models.BlockName) error {
	if tripID == "" {
		return fmt.Errorf("%w: trip id required", shared.ErrInvalidArgument)
	}
	if !block.Valid() {
		return fmt.Errorf("%w: unknown block name %q", shared.ErrInvalidArgument, block)
	}

	payload := blockCompleteRequest{TripID: tripID, DayIndex: dayIndex, BlockName: string(block)}
	path := fmt.Sprintf("/api/trips/%s/blocks/complete", tripID)
	_, err := a.doRequest(ctx, http.MethodPost, path, payload, false)
	return err
}

// CompleteDay submits the reflection and marks the day complete via
// POST /api/trips/{id}/days/complete.
func (a *APIService) CompleteDay(ctx context.Context, tripID string, dayIndex int, moods []string, journal string) error {
	if tripID == "" {
		return fmt.Errorf("%w: trip id required", shared.ErrInvalidArgument)
	}

	payload := dayCompleteRequest{TripID: tripID, DayIndex: dayIndex, Moods: moods, Journal: journal}
	path := fmt.Sprintf("/api/trips/%s/days/complete", tripID)
	_, err := a.doRequest(ctx, http.MethodPost, path, payload, false)
	return err
}

// doRequest performs one authenticated request and classifies failures.
//
// hydration controls the 404 mapping: a missing user record on hydration is
// ErrUserNotFound (the cache-is-invalid signal); elsewhere 404 is transient.
func (a *APIService) doRequest(ctx context.Context, method, path string, payload any, hydration bool) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if a.tokens == nil {
		return nil, fmt.Errorf("%w: no token source configured", shared.ErrUnauthenticated)
	}
	token, err := a.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: token refresh failed: %v", shared.ErrUnauthenticated, err)
	}
	token.SetAuthHeader(req)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", shared.ErrTransient, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", shared.ErrTransient, err)
	}

	if err := classifyStatus(resp.StatusCode, hydration); err != nil {
		return nil, err
	}

	return body, nil
}

// classifyStatus maps an HTTP status to the client error taxonomy.
func classifyStatus(status int, hydration bool) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", shared.ErrUnauthenticated, status)
	case status == http.StatusNotFound && hydration:
		return fmt.Errorf("%w: status %d", shared.ErrUserNotFound, status)
	default:
		return fmt.Errorf("%w: status %d", shared.ErrTransient, status)
	}
}
