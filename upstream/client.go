// Package upstream implements the HTTP client for the NS trip-advice
// API that backs the /api/find_route endpoint.
package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/treinplanner/iffserver/routeplanner"
)

// Client calls the upstream trip planner over HTTP. It satisfies
// httpapi.UpstreamPlanner structurally, without importing httpapi.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient builds a Client against baseURL, authenticating with
// apiKey (the NS_API_KEY configuration value).
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// Enabled reports whether the client was constructed with a non-empty
// API key.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// PlanRoute fetches the upstream trip-advice response for a from/to
// station pair. Any transport failure or non-2xx status or malformed
// JSON body is an UpstreamError, wrapped with context.
func (c *Client) PlanRoute(ctx context.Context, from, to string) (routeplanner.UpstreamResponse, error) {
	reqURL := c.baseURL + "/trips?" + url.Values{
		"fromStation": {from},
		"toStation":   {to},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return routeplanner.UpstreamResponse{}, errors.Wrap(err, "upstream: building request")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return routeplanner.UpstreamResponse{}, errors.Wrap(err, "upstream: request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return routeplanner.UpstreamResponse{}, errors.Errorf("upstream: unexpected status %d", resp.StatusCode)
	}

	var parsed routeplanner.UpstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return routeplanner.UpstreamResponse{}, errors.Wrap(err, "upstream: decoding response")
	}

	return parsed, nil
}
