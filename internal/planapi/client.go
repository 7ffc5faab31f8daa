package planapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/felixgeelhaar/fortify/timeout"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tOgg1/planproof/internal/logging"
)

const maxResponseBytes = 8 << 20

// RequestIDHeader carries a per-request id so client and server logs line up.
const RequestIDHeader = "X-Request-ID"

// Client issues plan requests to the planning service.
type Client struct {
	url         string
	httpClient  *http.Client
	timeout     time.Duration
	schemaCheck bool
	logger      zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds each request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithSchemaCheck toggles the advisory schema check on response bodies.
func WithSchemaCheck(enabled bool) Option {
	return func(c *Client) {
		c.schemaCheck = enabled
	}
}

// NewClient creates a client that posts to planURL.
func NewClient(planURL string, opts ...Option) *Client {
	c := &Client{
		url:         planURL,
		httpClient:  &http.Client{},
		schemaCheck: true,
		logger:      logging.Component("planapi"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the endpoint the client posts to.
func (c *Client) URL() string {
	return c.url
}

// Plan sends one request and decodes the response. Non-2xx statuses return
// *StatusError, transport failures *NetworkError, undecodable bodies
// *DecodeError.
func (c *Client) Plan(ctx context.Context, req PlanRequest) (*PlanResponse, error) {
	if c.timeout <= 0 {
		return c.do(ctx, req)
	}
	t := timeout.New[*PlanResponse](timeout.Config{
		DefaultTimeout: c.timeout,
	})
	return t.Execute(ctx, c.timeout, func(ctx context.Context) (*PlanResponse, error) {
		return c.do(ctx, req)
	})
}

func (c *Client) do(ctx context.Context, req PlanRequest) (*PlanResponse, error) {
	requestID := uuid.New().String()
	logger := logging.WithRequest(c.logger, requestID)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode plan request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build plan request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(RequestIDHeader, requestID)

	logger.Debug().
		Str("url", logging.RedactURL(c.url)).
		Str("variant", req.Variant).
		Str("timezone", req.Timezone).
		Int("context_len", len(req.Context)).
		Msg("sending plan request")

	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Warn().Str("error", logging.Redact(err.Error())).Msg("plan request failed")
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		logger.Warn().Int("status", resp.StatusCode).Dur("elapsed", time.Since(started)).Msg("plan request rejected")
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("read response: %w", err)}
	}

	if c.schemaCheck {
		for _, issue := range SchemaIssues(data) {
			logger.Warn().Str("issue", issue).Msg("plan response deviates from schema")
		}
	}

	decoded, err := DecodeResponse(data)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	logger.Info().
		Int("status", resp.StatusCode).
		Int("plan_items", len(decoded.Plan)).
		Dur("elapsed", time.Since(started)).
		Msg("plan received")
	return decoded, nil
}
