package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL points at the free ip-api.com JSON endpoint (no auth).
const DefaultBaseURL = "http://ip-api.com"

// Location is the subset of geolocation fields stored with a signup.
type Location struct {
	Country string
	Region  string
	City    string
}

// Client is a minimal wrapper around an ip-api-compatible geolocation service.
// Safe for concurrent use.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient returns a geolocation client. Pass "" to use DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Lookup resolves ip to a location. Private or unroutable addresses come back
// as an error from the upstream service, which callers treat as best-effort.
func (c *Client) Lookup(ctx context.Context, ip string) (Location, error) {
	u := fmt.Sprintf("%s/json/%s", c.baseURL, url.PathEscape(ip))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Location{}, err
	}

	q := req.URL.Query()
	q.Set("fields", "status,message,country,regionName,city")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Location{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return Location{}, fmt.Errorf("geoip: unexpected status %s", resp.Status)
	}

	var body struct {
		Status     string `json:"status"`
		Message    string `json:"message"`
		Country    string `json:"country"`
		RegionName string `json:"regionName"`
		City       string `json:"city"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Location{}, err
	}
	if body.Status != "success" {
		return Location{}, fmt.Errorf("geoip: lookup failed: %s", body.Message)
	}

	return Location{
		Country: body.Country,
		Region:  body.RegionName,
		City:    body.City,
	}, nil
}
