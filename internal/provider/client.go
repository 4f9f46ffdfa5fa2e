// Package provider implements the remote scoring path: an HTTP client for the
// external scoring provider, the polling state machine around it, and the
// local mock fallback used when the provider is unconfigured or unreachable.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const (
	contentType   = "application/json"
	scorePath     = "/resume-score"
	userAgent     = "spigell/resume-scorer"
	clientTimeout = 10 * time.Second
)

// Client talks to the remote scoring provider.
type Client struct {
	apiKey     string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

// NewClient creates a provider client. The API key may be empty; the adapter
// treats that as "provider not configured".
func NewClient(apiURL, apiKey string, logger *zap.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		logger: logger,
		HTTPClient: &http.Client{
			Timeout: clientTimeout,
		},
		UserAgent: userAgent,
		APIURL:    apiURL,
	}
}

// scoreResponse is the provider's wire shape for both the submit and the poll
// endpoints. A response carries either data, a request id for polling, or
// neither (malformed).
type scoreResponse struct {
	RequestID string     `json:"request_id"`
	Data      *scoreData `json:"data"`
}

type scoreData struct {
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// submitScore posts a scoring request and returns the decoded body together
// with the HTTP status code. Decoding failures are reported through a nil
// response with a 2xx status, which the adapter treats as malformed.
func (c *Client) submitScore(ctx context.Context, resumeURL, jobDescription string) (*scoreResponse, int, error) {
	payload, err := json.Marshal(map[string]string{
		"url":             resumeURL,
		"job_description": jobDescription,
	})
	if err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIURL+scorePath, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, err
	}
	c.setHeaders(req)

	raw, status, err := c.do(req)
	if err != nil {
		return nil, status, err
	}

	return decodeScoreResponse(raw), status, nil
}

// pollScore fetches the status of a previously submitted request.
func (c *Client) pollScore(ctx context.Context, requestID string) (*scoreResponse, error) {
	url := fmt.Sprintf("%s%s/%s", c.APIURL, scorePath, requestID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	raw, status, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("bad status: %d", status)
	}

	return decodeScoreResponse(raw), nil
}

// do executes the request and decodes the body into a generic map so callers
// can tolerate loosely-shaped provider responses.
func (c *Client) do(req *http.Request) (map[string]any, int, error) {
	c.logger.Debug("provider request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		c.logger.Debug("provider response body is not json", zap.Error(err))
		raw = nil
	}

	return raw, resp.StatusCode, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Content-Type", contentType)
}

// decodeScoreResponse maps the loosely-typed body onto the wire struct. A nil
// result or one with neither data nor request id means "malformed".
func decodeScoreResponse(raw map[string]any) *scoreResponse {
	if raw == nil {
		return nil
	}

	var response scoreResponse
	cfg := &mapstructure.DecoderConfig{
		Result:           &response,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil
	}
	if err := decoder.Decode(raw); err != nil {
		return nil
	}

	return &response
}
