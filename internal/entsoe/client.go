// Package entsoe talks to the ENTSO-E transparency platform: a failing-over
// HTTP client, the market document parser and the dataset queries built on
// both.
package entsoe

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	primaryEndpoint  = "https://web-api.tp.entsoe.eu/api"
	fallbackEndpoint = "https://api.transparency.entsoe.eu/api"

	defaultTimeout      = 30 * time.Second
	defaultBackoff      = time.Second
	defaultRequestDelay = time.Second
	maxAttempts         = 3

	// windowLayout truncates request windows to the hour; the platform
	// expects a trailing minute block of 00.
	windowLayout = "2006010215"
)

// DefaultEndpoints returns the platform hosts in failover order.
func DefaultEndpoints() []string {
	return []string{primaryEndpoint, fallbackEndpoint}
}

// Options tunes a Client. The zero value selects production defaults.
type Options struct {
	// Endpoints overrides the failover list. Empty means DefaultEndpoints.
	Endpoints []string

	// RequestDelay is the minimum spacing between physical requests,
	// shared across endpoints and retries. Zero means one second.
	RequestDelay time.Duration

	// Timeout bounds a single attempt. Zero means 30 seconds.
	Timeout time.Duration

	// Backoff is the fixed pause between attempts on one endpoint.
	// Zero means one second.
	Backoff time.Duration

	// HTTPClient replaces http.DefaultClient, mainly for tests.
	HTTPClient *http.Client

	// Logger receives transport and parser diagnostics.
	Logger logrus.FieldLogger

	// Metrics receives outbound request counters. Nil disables them.
	Metrics *Metrics
}

// Client queries the transparency platform with per-endpoint retries and
// endpoint failover. It is safe for concurrent use.
type Client struct {
	apiKey    string
	endpoints []string
	http      *http.Client
	limiter   *rate.Limiter
	timeout   time.Duration
	backoff   time.Duration
	log       logrus.FieldLogger
	parser    *Parser
	metrics   *Metrics
}

// NewClient builds a Client for the given API key.
func NewClient(apiKey string, opts Options) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	endpoints := opts.Endpoints
	if len(endpoints) == 0 {
		endpoints = DefaultEndpoints()
	}
	delay := opts.RequestDelay
	if delay == 0 {
		delay = defaultRequestDelay
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	backoff := opts.Backoff
	if backoff == 0 {
		backoff = defaultBackoff
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Client{
		apiKey:    apiKey,
		endpoints: endpoints,
		http:      httpClient,
		limiter:   rate.NewLimiter(rate.Every(delay), 1),
		timeout:   timeout,
		backoff:   backoff,
		log:       log,
		parser:    NewParser(log),
		metrics:   opts.Metrics,
	}, nil
}

// fetch runs one logical platform request and returns the raw market
// documents of the response, ZIP payloads already unwrapped.
func (c *Client) fetch(ctx context.Context, params url.Values, start, end time.Time) ([][]byte, error) {
	query := url.Values{}
	for k, vs := range params {
		query[k] = vs
	}
	query.Set("securityToken", c.apiKey)
	query.Set("periodStart", formatWindow(start))
	query.Set("periodEnd", formatWindow(end))

	var lastErr error
	for i, endpoint := range c.endpoints {
		docs, err := c.fetchEndpoint(ctx, endpoint, query)
		if err == nil {
			return docs, nil
		}
		if !retryableError(err) {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, err
		}
		lastErr = err
		if i < len(c.endpoints)-1 {
			c.metrics.failover()
			c.log.WithField("endpoint", endpoint).WithError(err).Warn("Endpoint exhausted, failing over")
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrAllEndpointsFailed, lastErr)
}

// fetchEndpoint retries one endpoint up to maxAttempts times with a fixed
// backoff, honoring the shared request spacing before every attempt.
func (c *Client) fetchEndpoint(ctx context.Context, endpoint string, query url.Values) ([][]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			c.metrics.retry(endpoint)
			if err := sleepContext(ctx, c.backoff); err != nil {
				return nil, err
			}
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		docs, err := c.attempt(ctx, endpoint, query)
		if err == nil {
			return docs, nil
		}
		if !retryableError(err) || ctx.Err() != nil {
			return nil, err
		}
		lastErr = err
		c.log.WithFields(logrus.Fields{
			"endpoint": endpoint,
			"attempt":  attempt,
		}).WithError(err).Warn("Transparency platform request failed")
	}
	return nil, lastErr
}

func (c *Client) attempt(ctx context.Context, endpoint string, query url.Values) ([][]byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = query.Encode()

	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.request(endpoint, "network_error")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.request(endpoint, "network_error")
		return nil, err
	}
	c.metrics.request(endpoint, strconv.Itoa(resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return nil, &StatusError{Code: resp.StatusCode}
	}
	return splitDocuments(body, resp.Header.Get("Content-Type"))
}

// retryableError reports whether an attempt's failure is worth retrying
// and, once retries are exhausted, failing over for. Rejected credentials,
// client errors and broken archives are final.
func retryableError(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return retryableStatus(se.Code)
	}
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrInvalidArchive) {
		return false
	}
	return true
}

// splitDocuments unwraps ZIP payloads into their member documents. Anything
// declaring or sniffing as ZIP must parse; plain payloads pass through.
func splitDocuments(body []byte, contentType string) ([][]byte, error) {
	if !strings.Contains(strings.ToLower(contentType), "zip") && !sniffsAsZip(body) {
		return [][]byte{body}, nil
	}

	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
	}

	files := make(map[string]*zip.File)
	var names, xmlNames []string
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		files[f.Name] = f
		names = append(names, f.Name)
		if strings.HasSuffix(strings.ToLower(f.Name), ".xml") {
			xmlNames = append(xmlNames, f.Name)
		}
	}
	if len(xmlNames) > 0 {
		names = xmlNames
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: archive contains no files", ErrInvalidArchive)
	}
	sort.Strings(names)

	docs := make([][]byte, 0, len(names))
	for _, name := range names {
		rc, err := files[name].Open()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
		}
		doc, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func sniffsAsZip(body []byte) bool {
	return bytes.HasPrefix(body, []byte("PK\x03\x04"))
}

func formatWindow(t time.Time) string {
	return t.UTC().Format(windowLayout) + "00"
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
