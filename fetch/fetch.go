// Package fetch retrieves playlist documents over HTTP. Client implements
// the m3u8.Fetcher interface.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a whole request when the caller does not pick one.
const DefaultTimeout = 15 * time.Second

// headerTransport injects fixed headers into every outgoing request.
type headerTransport struct {
	headers map[string]string
	base    http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}
	return t.base.RoundTrip(req)
}

// Client fetches playlist text with a single GET per call. The zero value is
// not usable; create one with NewClient.
type Client struct {
	client  *http.Client
	headers map[string]string
	baseURL string
}

// NewClient returns a client whose requests time out after the given
// duration; zero or negative selects DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{headers: make(map[string]string)}
	c.client = &http.Client{
		Timeout: timeout,
		Transport: &headerTransport{
			headers: c.headers,
			base:    http.DefaultTransport,
		},
	}
	return c
}

// SetHeader adds a header sent with every request, e.g. Authorization or a
// site-specific Referer.
func (c *Client) SetHeader(key, value string) {
	c.headers[key] = value
}

// SetBaseURL sets an optional base URL that will be used
// if fetched URIs are paths as opposed to proper URLs.
func (c *Client) SetBaseURL(base string) {
	c.baseURL = base
}

// Fetch performs one GET against uri and returns the response body as text.
// Any non-2xx status is an error; no retries are attempted.
func (c *Client) Fetch(uri string) (string, error) {
	if !strings.HasPrefix(uri, "http") {
		uri = c.baseURL + uri
	}

	resp, err := c.client.Get(uri)
	if err != nil {
		return "", fmt.Errorf("getting playlist url %q: %w", uri, err)
	}

	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("getting playlist url %q: unexpected status %s", uri, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading playlist response: %w", err)
	}
	return string(body), nil
}
