package africastalking

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	retrierconfig "afyalinks/pkg/retrier"
	"afyalinks/pkg/retrier/backoff_adapter"
)

const (
	productionBaseURL = "https://api.africastalking.com"
	sandboxBaseURL    = "https://api.sandbox.africastalking.com"
	sandboxUsername   = "sandbox"

	requestTimeout = 10 * time.Second
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// Config carries the Africa's Talking credentials. An empty APIKey switches
// both gateways into mock mode: sends are logged instead of delivered, which
// is how the pilot runs outside production.
type Config struct {
	APIKey   string
	Username string
}

// client is the shared transport for the SMS and airtime products.
type client struct {
	httpClient httpDoer
	retrier    retrier
	apiKey     string
	username   string
	baseURL    string
}

func newClient(cfg Config, httpClient httpDoer) *client {
	username := cfg.Username
	if username == "" {
		username = sandboxUsername
	}

	baseURL := productionBaseURL
	if username == sandboxUsername {
		baseURL = sandboxBaseURL
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}

	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &client{
		httpClient: httpClient,
		retrier:    backoff_adapter.New(retryConfig),
		apiKey:     cfg.APIKey,
		username:   username,
		baseURL:    baseURL,
	}
}

func (c *client) mocked() bool {
	return c.apiKey == ""
}

// postForm submits one form-encoded API call and returns the HTTP status
// code reached, "DOWN" when no response was received at all.
func (c *client) postForm(ctx context.Context, path string, form url.Values) (string, error) {
	form.Set("username", c.username)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+path,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "DOWN", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apiKey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "DOWN", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	code := strconv.Itoa(resp.StatusCode)
	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return code, &apiError{
			statusCode: resp.StatusCode,
			body:       string(body),
		}
	}

	return code, nil
}

type apiError struct {
	statusCode int
	body       string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("africastalking api status %d: %s", e.statusCode, e.body)
}

// isRetryableError treats transport failures and server-side statuses as
// transient. 4xx responses are permanent, repeating them only burns quota.
func isRetryableError(err error) bool {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		return apiErr.statusCode >= http.StatusInternalServerError
	}
	return true
}
