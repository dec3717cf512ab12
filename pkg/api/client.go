/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package api is the HTTP client for the Peridio fleet-management
// API. Identifiers passed to it are assumed to be validated already;
// the client forwards them verbatim.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultUserAgent = "morel"
	defaultTimeout   = 60 * time.Second

	// Default client-side throttle, matching the API's documented
	// per-key rate limit.
	defaultRateLimit = 10
	defaultBurst     = 20
)

// Client talks to the fleet-management API. Construct with NewClient;
// the zero value is not usable.
type Client struct {
	baseURL   string
	apiKey    string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter

	Artifacts          *ArtifactsService
	ArtifactVersions   *ArtifactVersionsService
	Binaries           *BinariesService
	BinaryParts        *BinaryPartsService
	BinarySignatures   *BinarySignaturesService
	CaCertificates     *CaCertificatesService
	Cohorts            *CohortsService
	Deployments        *DeploymentsService
	DeviceCertificates *DeviceCertificatesService
	Devices            *DevicesService
	Firmwares          *FirmwaresService
	OrganizationUsers  *OrganizationUsersService
	Products           *ProductsService
	SigningKeys        *SigningKeysService
	Users              *UsersService
}

// service holds the shared client for per-resource services.
type service struct {
	client *Client
}

// Option is a functional option for configuring Client instances.
type Option func(*Client)

// WithBaseURL sets the API endpoint, without a trailing slash.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithAPIKey sets the bearer credential sent on every request.
func WithAPIKey(apiKey string) Option {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithRateLimit sets the client-side request throttle. A non-positive
// limit disables throttling.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// NewClient creates a Client with the provided options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		userAgent: defaultUserAgent,
		http:      &http.Client{Timeout: defaultTimeout},
		limiter:   rate.NewLimiter(rate.Limit(defaultRateLimit), defaultBurst),
	}
	for _, opt := range opts {
		opt(c)
	}

	svc := service{client: c}
	c.Artifacts = (*ArtifactsService)(&svc)
	c.ArtifactVersions = (*ArtifactVersionsService)(&svc)
	c.Binaries = (*BinariesService)(&svc)
	c.BinaryParts = (*BinaryPartsService)(&svc)
	c.BinarySignatures = (*BinarySignaturesService)(&svc)
	c.CaCertificates = (*CaCertificatesService)(&svc)
	c.Cohorts = (*CohortsService)(&svc)
	c.Deployments = (*DeploymentsService)(&svc)
	c.DeviceCertificates = (*DeviceCertificatesService)(&svc)
	c.Devices = (*DevicesService)(&svc)
	c.Firmwares = (*FirmwaresService)(&svc)
	c.OrganizationUsers = (*OrganizationUsersService)(&svc)
	c.Products = (*ProductsService)(&svc)
	c.SigningKeys = (*SigningKeysService)(&svc)
	c.Users = (*UsersService)(&svc)

	return c
}

// do executes one API request. body, when non-nil, is JSON-encoded;
// out, when non-nil, receives the decoded response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Token "+c.apiKey)
	}

	slog.Debug("api request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
