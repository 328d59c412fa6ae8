package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-logr/logr"
)

const defaultRequestTimeout = 30 * time.Second

// RealClient implements ResourceManager against the platform's REST API.
//
// Listings are cached in memory; create calls never merge their response
// into a cached listing. Callers invalidate the relevant caches after a
// successful creation sequence so the next read observes the new records.
type RealClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        logr.Logger

	mu         sync.Mutex
	siteCache  []Site
	assetCache map[int64][]Asset
	meterCache map[int64][]Meter
}

// Option configures a RealClient.
type Option func(*RealClient)

// WithLogger sets the logger used for request debug logging.
func WithLogger(log logr.Logger) Option {
	return func(c *RealClient) { c.log = log }
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *RealClient) { c.httpClient = hc }
}

// NewRealClient creates a client for the API at baseURL authenticating
// with the given bearer token.
func NewRealClient(baseURL, token string, opts ...Option) *RealClient {
	c := &RealClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		log:        logr.Discard(),
		assetCache: make(map[int64][]Asset),
		meterCache: make(map[int64][]Meter),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ensure interface compliance.
var _ ResourceManager = (*RealClient)(nil)

// CreateSite creates a new site.
func (c *RealClient) CreateSite(ctx context.Context, opts CreateSiteOpts) (*Site, error) {
	var site Site
	if err := c.do(ctx, http.MethodPost, "/api/v1/sites", opts, &site); err != nil {
		return nil, err
	}
	return &site, nil
}

// ListSites returns all sites, served from cache when available.
func (c *RealClient) ListSites(ctx context.Context) ([]Site, error) {
	c.mu.Lock()
	if c.siteCache != nil {
		cached := c.siteCache
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	var sites []Site
	if err := c.do(ctx, http.MethodGet, "/api/v1/sites", nil, &sites); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.siteCache = sites
	c.mu.Unlock()
	return sites, nil
}

// InvalidateSites drops the cached site listing.
func (c *RealClient) InvalidateSites() {
	c.mu.Lock()
	c.siteCache = nil
	c.mu.Unlock()
}

// CreateAsset creates an asset scoped to an existing site.
func (c *RealClient) CreateAsset(ctx context.Context, opts CreateAssetOpts) (*Asset, error) {
	var asset Asset
	if err := c.do(ctx, http.MethodPost, "/api/v1/assets", opts, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

// ListAssets returns the assets of a site, served from cache when available.
func (c *RealClient) ListAssets(ctx context.Context, siteID int64) ([]Asset, error) {
	c.mu.Lock()
	if cached, ok := c.assetCache[siteID]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	var assets []Asset
	path := fmt.Sprintf("/api/v1/assets?site_id=%d", siteID)
	if err := c.do(ctx, http.MethodGet, path, nil, &assets); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.assetCache[siteID] = assets
	c.mu.Unlock()
	return assets, nil
}

// InvalidateAssets drops all cached asset listings.
func (c *RealClient) InvalidateAssets() {
	c.mu.Lock()
	c.assetCache = make(map[int64][]Asset)
	c.mu.Unlock()
}

// CreateMeter creates a meter scoped to an existing site.
func (c *RealClient) CreateMeter(ctx context.Context, opts CreateMeterOpts) (*Meter, error) {
	var meter Meter
	if err := c.do(ctx, http.MethodPost, "/api/v1/meters", opts, &meter); err != nil {
		return nil, err
	}
	return &meter, nil
}

// ListMeters returns the meters of a site, served from cache when available.
func (c *RealClient) ListMeters(ctx context.Context, siteID int64) ([]Meter, error) {
	c.mu.Lock()
	if cached, ok := c.meterCache[siteID]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	var meters []Meter
	path := fmt.Sprintf("/api/v1/meters?site_id=%d", siteID)
	if err := c.do(ctx, http.MethodGet, path, nil, &meters); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.meterCache[siteID] = meters
	c.mu.Unlock()
	return meters, nil
}

// InvalidateMeters drops all cached meter listings.
func (c *RealClient) InvalidateMeters() {
	c.mu.Lock()
	c.meterCache = make(map[int64][]Meter)
	c.mu.Unlock()
}

// CreateBill creates a utility bill scoped to an existing site.
func (c *RealClient) CreateBill(ctx context.Context, opts CreateBillOpts) (*Bill, error) {
	var bill Bill
	if err := c.do(ctx, http.MethodPost, "/api/v1/bills", opts, &bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

// do issues a JSON request and decodes the response into out.
// Non-2xx responses become an *APIError carrying the server's message.
func (c *RealClient) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.V(1).Info("api request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorFromResponse extracts the server's error message from a failed
// response body. Both {"message": ...} and {"error": ...} shapes are used
// by the platform API depending on the endpoint.
func (c *RealClient) errorFromResponse(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		} else if body.Error != "" {
			apiErr.Message = body.Error
		}
	}

	c.log.V(1).Info("api error", "status", resp.StatusCode, "message", apiErr.Message)
	return apiErr
}
