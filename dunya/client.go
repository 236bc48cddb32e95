package dunya

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

	"github.com/tidwall/gjson"
)

const defaultBaseURL = "https://dunya.compmusic.upf.edu"

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithBaseURL points the client at a different API host, e.g. a local
// mirror. Trailing slashes are stripped.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpc = hc
		}
	}
}

// WithCollections restricts recording, artist and concert queries to the
// given collection MBIDs.
func WithCollections(mbids ...string) Option {
	return func(c *Client) {
		c.collections = append([]string(nil), mbids...)
	}
}

// Client talks to the Dunya REST API. It is safe for concurrent use.
type Client struct {
	baseURL     string
	token       string
	collections []string
	httpc       *http.Client
}

// New creates a Client. token must be a non-empty Dunya API token.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, errors.New("dunya: token must not be empty")
	}
	c := &Client{
		baseURL: defaultBaseURL,
		token:   token,
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}
	for _, o := range opts {
		if o != nil {
			o(c)
		}
	}
	return c, nil
}

// get performs an authorized GET against an absolute URL. restrict adds the
// collection header when a restriction is configured.
func (c *Client) get(ctx context.Context, u string, restrict bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("dunya: build request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.token)
	if restrict && len(c.collections) > 0 {
		req.Header.Set("Dunya-Collection", strings.Join(c.collections, ","))
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dunya: GET %s: %w", u, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("dunya: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dunya: GET %s: %w", u, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		})
	}
	return body, nil
}

// apiURL joins an api path like "api/carnatic/recording" onto the base URL.
func (c *Client) apiURL(apiPath string, args url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(apiPath, "/")
	if len(args) > 0 {
		u += "?" + args.Encode()
	}
	return u
}

// getJSON fetches a single record and decodes it into out.
func (c *Client) getJSON(ctx context.Context, apiPath string, restrict bool, out any) error {
	body, err := c.get(ctx, c.apiURL(apiPath, nil), restrict)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("dunya: decode %s: %w", apiPath, err)
	}
	return nil
}

// listAll follows the pagination envelope of a list endpoint and collects
// all results. The envelope carries the records in "results" and an
// absolute "next" URL while further pages remain.
func listAll[T any](ctx context.Context, c *Client, apiPath string, restrict bool, args url.Values) ([]T, error) {
	var all []T

	next := c.apiURL(apiPath, args)
	for next != "" {
		body, err := c.get(ctx, next, restrict)
		if err != nil {
			return nil, err
		}

		results := gjson.GetBytes(body, "results")
		if !results.Exists() {
			return nil, fmt.Errorf("dunya: %s: response has no results field", apiPath)
		}
		var page []T
		if err := json.Unmarshal([]byte(results.Raw), &page); err != nil {
			return nil, fmt.Errorf("dunya: decode %s page: %w", apiPath, err)
		}
		all = append(all, page...)

		next = gjson.GetBytes(body, "next").String()
	}
	return all, nil
}
