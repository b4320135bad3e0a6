package roblox

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

const (
	DefaultGamesURL      = "https://games.roblox.com"
	DefaultUsersURL      = "https://users.roblox.com"
	DefaultThumbnailsURL = "https://thumbnails.roblox.com"
	DefaultUserAgent     = "rbxlookup/1.0"

	// MaxImageBytes caps a downloaded thumbnail. The largest avatar renders
	// (720x720) are a few hundred kilobytes.
	MaxImageBytes = 4 << 20
)

// Options configures a Client. Zero values fall back to the public Roblox
// hosts and http.DefaultClient.
type Options struct {
	HTTPClient    *http.Client
	GamesURL      string
	UsersURL      string
	ThumbnailsURL string
	UserAgent     string
}

// Client issues requests against the Roblox web APIs.
type Client struct {
	http          *http.Client
	gamesURL      string
	usersURL      string
	thumbnailsURL string
	userAgent     string
	maxImageBytes int64
}

// NewClient returns a Client for the given options.
func NewClient(opts Options) *Client {
	c := &Client{
		http:          opts.HTTPClient,
		gamesURL:      baseURL(opts.GamesURL, DefaultGamesURL),
		usersURL:      baseURL(opts.UsersURL, DefaultUsersURL),
		thumbnailsURL: baseURL(opts.ThumbnailsURL, DefaultThumbnailsURL),
		userAgent:     opts.UserAgent,
		maxImageBytes: MaxImageBytes,
	}

	if c.http == nil {
		c.http = http.DefaultClient
	}

	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}

	return c
}

func baseURL(u, fallback string) string {
	if u == "" {
		u = fallback
	}
	return strings.TrimRight(u, "/")
}

// get performs a GET and returns the response when the status is 2xx. The
// caller owns the body.
func (c *Client) get(ctx context.Context, rawURL, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed building request for %s", rawURL)
	}

	req.Header.Set("User-Agent", c.userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed requesting %s", rawURL)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.CopyN(io.Discard, resp.Body, 4<<10)
		resp.Body.Close()

		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        rawURL,
		}
	}

	return resp, nil
}

// getJSON performs a GET and decodes a 2xx JSON body into v.
func (c *Client) getJSON(ctx context.Context, rawURL string, v interface{}) error {
	resp, err := c.get(ctx, rawURL, "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &DecodeError{URL: rawURL, Err: err}
	}

	return nil
}
