// Package advisory provides the client for the remote design-advisory
// service. The service accepts either a concrete design plus a wall
// constraint, or free-text requirements, and answers with a candidate
// parameter set or prose.
//
// The engine treats the service as opaque and possibly unavailable:
// every transport, protocol, or decoding fault surfaces as
// ErrUnavailable rather than a raw error, so callers can degrade to an
// explicit "advisor offline" state.
package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gearkit/cycloid"
)

// ErrUnavailable is returned for any failure to reach or understand the
// advisory service. It wraps the underlying cause.
var ErrUnavailable = errors.New("advisory service unavailable")

// Advice is a candidate design returned by the service.
type Advice struct {
	// Params is a complete parameter set proposed by the advisor.
	Params cycloid.Parameters `json:"parameters"`
	// Reasoning explains the proposal in prose.
	Reasoning string `json:"reasoning"`
}

// Client calls the advisory service over JSON/HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client

	// Rate limiting: max calls per minute.
	mu        sync.Mutex
	callCount int
	resetAt   time.Time
	maxPerMin int
}

// NewClient creates an advisory client for the given base URL.
// Returns nil if baseURL is empty (advisory features disabled).
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		return nil
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxPerMin: 20, // Conservative rate limit
	}
}

// Enabled returns true if the client is configured with a service URL.
func (c *Client) Enabled() bool {
	return c != nil && c.baseURL != ""
}

// suggestRequest is the /suggest request body.
type suggestRequest struct {
	Params           cycloid.Parameters `json:"parameters"`
	MinWallThickness float64            `json:"min_wall_thickness"`
}

// askRequest is the /ask request body.
type askRequest struct {
	Requirements string `json:"requirements"`
}

// askResponse is the /ask response body.
type askResponse struct {
	Answer string `json:"answer"`
}

// Suggest asks the service for a corrected design honoring the given
// minimum wall thickness. The returned Advice is an independent value;
// it shares nothing with the submitted parameters.
func (c *Client) Suggest(ctx context.Context, p cycloid.Parameters, minWall float64) (Advice, error) {
	var advice Advice
	err := c.call(ctx, "/v1/suggest", suggestRequest{Params: p, MinWallThickness: minWall}, &advice)
	return advice, err
}

// Ask sends free-text requirements and returns the service's prose
// answer.
func (c *Client) Ask(ctx context.Context, requirements string) (string, error) {
	var resp askResponse
	if err := c.call(ctx, "/v1/ask", askRequest{Requirements: requirements}, &resp); err != nil {
		return "", err
	}
	return resp.Answer, nil
}

// call posts a JSON body and decodes a JSON reply, folding every failure
// mode into ErrUnavailable.
func (c *Client) call(ctx context.Context, endpoint string, in, out any) error {
	if !c.Enabled() {
		return fmt.Errorf("%w: client not configured", ErrUnavailable)
	}
	if err := c.reserve(); err != nil {
		return err
	}

	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%w: marshal request: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: service returned %d", ErrUnavailable, resp.StatusCode)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: unmarshal response: %v", ErrUnavailable, err)
	}

	cycloid.Logger().Debug("advisory call", "endpoint", endpoint, "bytes", len(respBody))
	return nil
}

// reserve enforces the per-minute call budget.
func (c *Client) reserve() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if now.After(c.resetAt) {
		c.callCount = 0
		c.resetAt = now.Add(time.Minute)
	}
	if c.callCount >= c.maxPerMin {
		return fmt.Errorf("%w: rate limit exceeded (%d calls/min)", ErrUnavailable, c.maxPerMin)
	}
	c.callCount++
	return nil
}
