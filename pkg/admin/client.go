/*
Copyright © 2026 The hbase-preflight Authors
SPDX-License-Identifier: Apache-2.0
*/

package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout is the per-request timeout applied when the caller does
	// not configure one.
	DefaultTimeout = 30 * time.Second

	// defaultSchemaRate limits per-table schema fetches. Gateways fronting
	// wide clusters degrade badly under unthrottled descriptor scans.
	defaultSchemaRate = 50
)

// Client is an administrative client for a cluster REST gateway. It performs
// read-only calls only; nothing in this package mutates cluster state.
type Client struct {
	baseURL string
	httpc   *http.Client
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpc.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client. Apply before
// WithTimeout when combining both.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpc = hc
	}
}

// WithRateLimit caps per-table schema fetches at rps requests per second.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), int(rps))
	}
}

// Connect builds a client for the gateway at addr (http or https URL).
// It does not contact the cluster; the first request does. Callers must
// release the client with Close on every exit path.
func Connect(addr string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, fmt.Errorf("cluster address cannot be empty")
	}

	u, err := url.Parse(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid cluster address %q: %w", addr, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid cluster address %q: scheme must be http or https", addr)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid cluster address %q: missing host", addr)
	}

	c := &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		httpc:   &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(defaultSchemaRate), defaultSchemaRate),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ListTableSchemas retrieves the schema of every table on the cluster. Any
// transport or decode failure is fatal for the run and propagates to the
// caller; no retries are performed. Result order is whatever the gateway
// returns.
func (c *Client) ListTableSchemas(ctx context.Context) ([]TableSchema, error) {
	names, err := c.listTableNames(ctx)
	if err != nil {
		return nil, err
	}

	slog.Debug("retrieving table schemas", "tables", len(names))

	schemas := make([]TableSchema, 0, len(names))
	for _, name := range names {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		var ts TableSchema
		if err := c.getJSON(ctx, "/"+url.PathEscape(name)+"/schema", &ts); err != nil {
			return nil, fmt.Errorf("failed to fetch schema for table %q: %w", name, err)
		}
		schemas = append(schemas, ts)
	}
	return schemas, nil
}

// ClusterVersion returns the storage cluster software version.
func (c *Client) ClusterVersion(ctx context.Context) (string, error) {
	var v struct {
		Version string `json:"Version"`
	}
	if err := c.getJSON(ctx, "/version/cluster", &v); err != nil {
		return "", fmt.Errorf("failed to fetch cluster version: %w", err)
	}
	return v.Version, nil
}

// Close releases the client's idle connections. Safe to call more than once.
func (c *Client) Close() {
	c.httpc.CloseIdleConnections()
}

func (c *Client) listTableNames(ctx context.Context) ([]string, error) {
	var list struct {
		Table []struct {
			Name string `json:"name"`
		} `json:"table"`
	}
	if err := c.getJSON(ctx, "/", &list); err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	names := make([]string, 0, len(list.Table))
	for _, t := range list.Table {
		names = append(names, t.Name)
	}
	return names, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %s", path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("GET %s: decoding response: %w", path, err)
	}
	return nil
}
