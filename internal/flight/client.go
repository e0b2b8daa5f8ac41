package flight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const userAgent = "routesweep/1.0 (github.com)"

// Client is an HTTP flight-search client speaking a JSON search API.
// A bounded semaphore caps in-flight requests across all callers that
// share one Client; per-worker pacing is the evaluator's job.
type Client struct {
	http *http.Client
	base string
	sem  chan struct{}
}

// NewClient creates a flight-search client for the given API base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		http: &http.Client{Timeout: timeout},
		base: strings.TrimRight(baseURL, "/"),
		sem:  make(chan struct{}, 10),
	}
}

// searchResponse is the provider's wire format.
type searchResponse struct {
	Options []Option `json:"options"`
}

// SearchLeg queries the provider for one origin→destination leg.
// Network trouble, timeouts and 5xx/429 map to TransientError; bad
// requests and unsupported endpoints map to PermanentError.
func (c *Client) SearchLeg(ctx context.Context, origin, dest string, window DateWindow) ([]Option, error) {
	op := fmt.Sprintf("search %s→%s", origin, dest)
	if origin == "" || dest == "" {
		return nil, &PermanentError{Op: op, Err: errors.New("missing endpoint")}
	}
	if origin == dest {
		return nil, &PermanentError{Op: op, Err: errors.New("origin equals destination")}
	}
	if window.Depart == "" {
		return nil, &PermanentError{Op: op, Err: errors.New("missing departure date")}
	}

	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", dest)
	q.Set("depart", window.Depart)
	if window.ReturnBy != "" {
		q.Set("return_by", window.ReturnBy)
	}

	var resp searchResponse
	if err := c.getJSON(ctx, c.base+"/v1/flights/search?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return resp.Options, nil
}

// getJSON fetches a URL and decodes JSON into dst, classifying
// failures into the transient/permanent taxonomy.
func (c *Client) getJSON(ctx context.Context, rawURL string, dst interface{}) error {
	select {
	case c.sem <- struct{}{}:
	case <-ctx.Done():
		return &TransientError{Op: "acquire slot", Err: ctx.Err()}
	}
	defer func() { <-c.sem }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &PermanentError{Op: "build request", Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransientError{Op: "http get", Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &TransientError{Op: "http get", Err: fmt.Errorf("provider %d: %s", resp.StatusCode, string(body))}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &PermanentError{Op: "http get", Err: fmt.Errorf("provider %d: %s", resp.StatusCode, string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return &TransientError{Op: "decode response", Err: err}
	}
	return nil
}
