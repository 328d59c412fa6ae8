// Package api provides a client for the Save-It energy-management REST API.
package api

import (
	"context"
)

// SiteManager defines the interface for managing sites.
// A site is the root resource; assets, meters and bills attach to it.
type SiteManager interface {
	// CreateSite creates a new site. Name is the only required field.
	CreateSite(ctx context.Context, opts CreateSiteOpts) (*Site, error)

	// ListSites returns all sites visible to the caller.
	ListSites(ctx context.Context) ([]Site, error)

	// InvalidateSites drops any cached site listing so the next
	// ListSites call hits the server.
	InvalidateSites()
}

// AssetManager defines the interface for managing electrical assets.
type AssetManager interface {
	// CreateAsset creates an asset scoped to an existing site.
	CreateAsset(ctx context.Context, opts CreateAssetOpts) (*Asset, error)

	// ListAssets returns the assets of a site.
	ListAssets(ctx context.Context, siteID int64) ([]Asset, error)

	// InvalidateAssets drops any cached asset listings.
	InvalidateAssets()
}

// MeterManager defines the interface for managing metering points.
type MeterManager interface {
	// CreateMeter creates a meter scoped to an existing site,
	// optionally linked to one of the site's assets.
	CreateMeter(ctx context.Context, opts CreateMeterOpts) (*Meter, error)

	// ListMeters returns the meters of a site.
	ListMeters(ctx context.Context, siteID int64) ([]Meter, error)

	// InvalidateMeters drops any cached meter listings.
	InvalidateMeters()
}

// BillManager defines the interface for managing utility bills.
type BillManager interface {
	// CreateBill creates a utility bill scoped to an existing site.
	CreateBill(ctx context.Context, opts CreateBillOpts) (*Bill, error)
}

// ResourceManager aggregates all resource interfaces of the platform API.
type ResourceManager interface {
	SiteManager
	AssetManager
	MeterManager
	BillManager
}
