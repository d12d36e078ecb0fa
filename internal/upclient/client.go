// Package upclient implements the client for the Up banking API.
//
// All requests carry the configured bearer token and Accept header.
// Failures map onto a closed taxonomy, see errors.go. The client
// performs no retries, retry policy belongs to the caller.
package upclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/themuzzleflare/provenance/internal/config"
)

// Client issues authenticated requests against the Up API. One Client
// is constructed at process start and passed to each pipeline.
type Client struct {
	http     *http.Client
	settings *config.Store
	log      zerolog.Logger
}

// New returns a Client reading its token and base URL from the
// settings store.
func New(settings *config.Store) *Client {
	return &Client{
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		settings: settings,
		log:      log.With().Str("component", "upclient").Logger(),
	}
}

// url resolves a path relative to the API base URL. The base URL is
// read from the settings store on every request so that settings
// writes are observed by existing clients.
func (c *Client) url(path string, query url.Values) string {
	u := strings.TrimSuffix(c.settings.Get().BaseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do issues one request and returns the raw response body. The token
// is checked before anything touches the network.
func (c *Client) do(ctx context.Context, method, rawURL string, body any) ([]byte, error) {
	token := c.settings.Token()
	if token == "" {
		return nil, ErrUnauthenticated
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug().Str("method", method).Str("url", rawURL).Msg("issuing request")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("url", rawURL).Msg("request failed")
		return nil, TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, TransportError{Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Errors) > 0 {
		first := envelope.Errors[0]
		return nil, APIError{Status: first.Status, Title: first.Title, Detail: first.Detail}
	}

	return nil, UnknownHTTPError{StatusCode: resp.StatusCode}
}

// get issues a GET for a path relative to the base URL and decodes the
// response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.getURL(ctx, c.url(path, query), out)
}

// getURL issues a GET against an absolute URL, used for both base-URL
// paths and opaque pagination cursors.
func (c *Client) getURL(ctx context.Context, rawURL string, out any) error {
	raw, err := c.do(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return DecodingError{Err: err}
	}

	return nil
}

// Ping validates the configured token against the API. A nil return
// means the token is accepted.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, c.url("/util/ping", nil), nil)
	return err
}
