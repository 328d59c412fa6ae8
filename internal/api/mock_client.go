package api

import "context"

// MockClient is a mock implementation of ResourceManager.
//
// Every call is recorded in order before the corresponding Func is
// consulted, so tests can assert on call counts, ordering and payloads.
// When a Func is nil, a default success response with a sequential ID
// is returned.
type MockClient struct {
	CreateSiteFunc  func(ctx context.Context, opts CreateSiteOpts) (*Site, error)
	ListSitesFunc   func(ctx context.Context) ([]Site, error)
	CreateAssetFunc func(ctx context.Context, opts CreateAssetOpts) (*Asset, error)
	ListAssetsFunc  func(ctx context.Context, siteID int64) ([]Asset, error)
	CreateMeterFunc func(ctx context.Context, opts CreateMeterOpts) (*Meter, error)
	ListMetersFunc  func(ctx context.Context, siteID int64) ([]Meter, error)
	CreateBillFunc  func(ctx context.Context, opts CreateBillOpts) (*Bill, error)

	// Recorded calls, in issue order.
	SiteCalls  []CreateSiteOpts
	AssetCalls []CreateAssetOpts
	MeterCalls []CreateMeterOpts
	BillCalls  []CreateBillOpts

	// Invalidation counters.
	SitesInvalidated  int
	AssetsInvalidated int
	MetersInvalidated int

	nextID int64
}

// Ensure interface compliance.
var _ ResourceManager = (*MockClient)(nil)

// CreateSite mocks site creation.
func (m *MockClient) CreateSite(ctx context.Context, opts CreateSiteOpts) (*Site, error) {
	m.SiteCalls = append(m.SiteCalls, opts)
	if m.CreateSiteFunc != nil {
		return m.CreateSiteFunc(ctx, opts)
	}
	return &Site{ID: m.nextMockID(), Name: opts.Name}, nil
}

// ListSites mocks site listing.
func (m *MockClient) ListSites(ctx context.Context) ([]Site, error) {
	if m.ListSitesFunc != nil {
		return m.ListSitesFunc(ctx)
	}
	return nil, nil
}

// InvalidateSites mocks site cache invalidation.
func (m *MockClient) InvalidateSites() {
	m.SitesInvalidated++
}

// CreateAsset mocks asset creation.
func (m *MockClient) CreateAsset(ctx context.Context, opts CreateAssetOpts) (*Asset, error) {
	m.AssetCalls = append(m.AssetCalls, opts)
	if m.CreateAssetFunc != nil {
		return m.CreateAssetFunc(ctx, opts)
	}
	return &Asset{ID: m.nextMockID(), SiteID: opts.SiteID, Name: opts.Name, Type: opts.Type}, nil
}

// ListAssets mocks asset listing.
func (m *MockClient) ListAssets(ctx context.Context, siteID int64) ([]Asset, error) {
	if m.ListAssetsFunc != nil {
		return m.ListAssetsFunc(ctx, siteID)
	}
	return nil, nil
}

// InvalidateAssets mocks asset cache invalidation.
func (m *MockClient) InvalidateAssets() {
	m.AssetsInvalidated++
}

// CreateMeter mocks meter creation.
func (m *MockClient) CreateMeter(ctx context.Context, opts CreateMeterOpts) (*Meter, error) {
	m.MeterCalls = append(m.MeterCalls, opts)
	if m.CreateMeterFunc != nil {
		return m.CreateMeterFunc(ctx, opts)
	}
	return &Meter{ID: m.nextMockID(), SiteID: opts.SiteID, MeterID: opts.MeterID, Name: opts.Name, AssetID: opts.AssetID, IsActive: opts.IsActive}, nil
}

// ListMeters mocks meter listing.
func (m *MockClient) ListMeters(ctx context.Context, siteID int64) ([]Meter, error) {
	if m.ListMetersFunc != nil {
		return m.ListMetersFunc(ctx, siteID)
	}
	return nil, nil
}

// InvalidateMeters mocks meter cache invalidation.
func (m *MockClient) InvalidateMeters() {
	m.MetersInvalidated++
}

// CreateBill mocks bill creation.
func (m *MockClient) CreateBill(ctx context.Context, opts CreateBillOpts) (*Bill, error) {
	m.BillCalls = append(m.BillCalls, opts)
	if m.CreateBillFunc != nil {
		return m.CreateBillFunc(ctx, opts)
	}
	return &Bill{ID: m.nextMockID(), SiteID: opts.SiteID}, nil
}

func (m *MockClient) nextMockID() int64 {
	m.nextID++
	return m.nextID
}
