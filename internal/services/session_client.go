package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/dto"
)

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrUpstreamUnreachable = errors.New("data processor unreachable")
	ErrUpstreamTimeout     = errors.New("data processor request timed out")
	ErrUpstreamBadResponse = errors.New("data processor returned an unexpected response")
)

type sessionClient struct {
	baseURL string
	client  *http.Client
	breaker CircuitBreakerInterface
	metrics MetricsRecorderInterface
}

// NewSessionClient creates a SessionClientInterface against the data
// processor service. The breaker opens after repeated upstream failures and
// surfaces as ErrUpstreamUnreachable without issuing a request.
func NewSessionClient(baseURL string, timeout time.Duration, breaker CircuitBreakerInterface, metrics MetricsRecorderInterface) SessionClientInterface {
	return &sessionClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		breaker: breaker,
		metrics: metrics,
	}
}

// FetchSessionData retrieves the transaction feed for a session. Not-found,
// unreachable and timeout are distinct failures; none of them is ever
// defaulted to an empty feed.
func (c *sessionClient) FetchSessionData(ctx context.Context, sessionID string) (*dto.SessionData, error) {
	if c.breaker != nil && c.breaker.IsOpen() {
		slog.Warn("session fetch rejected, circuit breaker open", "session_id", sessionID)
		c.count("upstream.rejected", "breaker_open")
		return nil, fmt.Errorf("%w: %s", ErrUpstreamUnreachable, ErrCircuitBreakerOpen)
	}

	endpoint := fmt.Sprintf("%s/cibil-data/%s", c.baseURL, url.PathEscape(sessionID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.recordFailure()
		return nil, c.classifyTransportError(sessionID, err)
	}
	defer resp.Body.Close()

	if c.metrics != nil {
		c.metrics.RecordProcessingTime("upstream.fetch", time.Since(started))
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// A missing session is a caller problem, not an upstream outage
		if c.breaker != nil {
			c.breaker.RecordSuccess()
		}
		c.count("upstream.fetch", "not_found")
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)

	case resp.StatusCode != http.StatusOK:
		c.recordFailure()
		c.count("upstream.fetch", "bad_status")
		slog.Error("data processor returned non-200 status",
			"session_id", sessionID,
			"status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamBadResponse, resp.StatusCode)
	}

	var data dto.SessionData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		c.recordFailure()
		c.count("upstream.fetch", "bad_body")
		return nil, fmt.Errorf("%w: %s", ErrUpstreamBadResponse, err)
	}

	if c.breaker != nil {
		c.breaker.RecordSuccess()
	}
	c.count("upstream.fetch", "success")

	slog.Debug("session data fetched",
		"session_id", sessionID,
		"transactions", len(data.Transactions))

	return &data, nil
}

func (c *sessionClient) classifyTransportError(sessionID string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		c.count("upstream.fetch", "timeout")
		slog.Error("data processor request timed out", "session_id", sessionID, "error", err)
		return fmt.Errorf("%w: %s", ErrUpstreamTimeout, err)
	}

	c.count("upstream.fetch", "unreachable")
	slog.Error("data processor unreachable", "session_id", sessionID, "error", err)
	return fmt.Errorf("%w: %s", ErrUpstreamUnreachable, err)
}

func (c *sessionClient) recordFailure() {
	if c.breaker != nil {
		c.breaker.RecordFailure()
	}
}

func (c *sessionClient) count(name, status string) {
	if c.metrics != nil {
		c.metrics.IncrementCounter(name, map[string]string{"status": status})
	}
}
