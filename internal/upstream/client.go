package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"osas/clubport/internal/logging"
	"osas/clubport/internal/metrics"
)

// APIError is a non-2xx answer from the upstream portal API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("upstream: status %d", e.StatusCode)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == status
}

// Client talks to the upstream portal REST API. A zero-token client serves
// anonymous endpoints; WithSession binds it to a browser session's tokens
// and transparently retries once after refreshing an expired access token.
type Client struct {
	baseURL string
	httpc   *http.Client
	metrics *metrics.MetricsRegistry

	token        string
	refreshToken string
	onRefresh    func(newAccessToken string)

	Auth                *AuthService
	Users               *UsersService
	Clubs               *ClubsService
	ActivityDesigns     *ActivityDesignsService
	UtilizationRequests *UtilizationRequestsService
	LiquidationFunds    *LiquidationFundsService
	AnnualPlans         *AnnualPlansService
	Grievances          *GrievancesService
	Notifications       *NotificationsService
	SessionLogs         *SessionLogsService
}

// New builds an unauthenticated client for the given API base URL.
func New(baseURL string, timeout time.Duration, reg *metrics.MetricsRegistry) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		metrics: reg,
	}
	c.bindServices()
	return c
}

// WithToken returns a copy of the client authenticated with the given
// tokens. onRefresh, when non-nil, is invoked after a transparent token
// refresh so the caller can persist the new access token.
func (c *Client) WithToken(token, refreshToken string, onRefresh func(string)) *Client {
	clone := &Client{
		baseURL:      c.baseURL,
		httpc:        c.httpc,
		metrics:      c.metrics,
		token:        token,
		refreshToken: refreshToken,
		onRefresh:    onRefresh,
	}
	clone.bindServices()
	return clone
}

func (c *Client) bindServices() {
	c.Auth = &AuthService{client: c}
	c.Users = &UsersService{client: c}
	c.Clubs = &ClubsService{client: c}
	c.ActivityDesigns = &ActivityDesignsService{client: c}
	c.UtilizationRequests = &UtilizationRequestsService{client: c}
	c.LiquidationFunds = &LiquidationFundsService{client: c}
	c.AnnualPlans = &AnnualPlansService{client: c}
	c.Grievances = &GrievancesService{client: c}
	c.Notifications = &NotificationsService{client: c}
	c.SessionLogs = &SessionLogsService{client: c}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

// do performs one request and, on a 401 with a refresh token at hand,
// refreshes the access token and retries exactly once.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	err := c.roundTrip(ctx, method, path, query, body, out)
	if err == nil || !IsStatus(err, http.StatusUnauthorized) {
		return err
	}
	if c.refreshToken == "" || path == "/auth/refresh" {
		return err
	}

	refreshed, refreshErr := c.Auth.Refresh(ctx, c.refreshToken)
	if refreshErr != nil {
		logging.Debug("token refresh failed", "error", refreshErr.Error())
		return err
	}
	c.token = refreshed.AccessToken
	if c.onRefresh != nil {
		c.onRefresh(refreshed.AccessToken)
	}
	return c.roundTrip(ctx, method, path, query, body, out)
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if c.metrics != nil {
		c.metrics.UpstreamRequestDuration.WithLabelValues(pathGroup(path)).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		if c.metrics != nil {
			c.metrics.UpstreamRequestsTotal.WithLabelValues(pathGroup(path), "0").Inc()
		}
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if c.metrics != nil {
		c.metrics.UpstreamRequestsTotal.WithLabelValues(pathGroup(path), strconv.Itoa(resp.StatusCode)).Inc()
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return buildAPIError(resp.StatusCode, bodyBytes)
	}

	if out == nil || len(bodyBytes) == 0 {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func buildAPIError(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)
	return &APIError{StatusCode: status, Message: payload.Message}
}

// pathGroup reduces a request path to its leading segment to keep metric
// cardinality flat.
func pathGroup(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i > 0 {
		return trimmed[:i]
	}
	if trimmed == "" {
		return "root"
	}
	return trimmed
}
