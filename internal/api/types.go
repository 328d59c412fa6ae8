package api

// Site is a managed facility/location entity.
type Site struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address,omitempty"`
	City           string   `json:"city,omitempty"`
	Country        string   `json:"country,omitempty"`
	Timezone       string   `json:"timezone,omitempty"`
	Currency       string   `json:"currency,omitempty"`
	GridCapacityKW *float64 `json:"grid_capacity_kw,omitempty"`
	OperatingHours string   `json:"operating_hours,omitempty"`
}

// CreateSiteOpts holds the attributes for a site create call.
// Name is required; everything else is optional.
type CreateSiteOpts struct {
	Name           string   `json:"name"`
	Address        string   `json:"address,omitempty"`
	City           string   `json:"city,omitempty"`
	Country        string   `json:"country,omitempty"`
	Timezone       string   `json:"timezone,omitempty"`
	Currency       string   `json:"currency,omitempty"`
	GridCapacityKW *float64 `json:"grid_capacity_kw,omitempty"`
	OperatingHours string   `json:"operating_hours,omitempty"`
}

// Asset is an electrical distribution element belonging to a site.
type Asset struct {
	ID               int64    `json:"id"`
	SiteID           int64    `json:"site_id"`
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	RatedCapacityKW  *float64 `json:"rated_capacity_kw,omitempty"`
	IsCritical       bool     `json:"is_critical"`
	RequiresMetering bool     `json:"requires_metering"`
}

// CreateAssetOpts holds the attributes for an asset create call.
type CreateAssetOpts struct {
	SiteID           int64    `json:"site_id"`
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	RatedCapacityKW  *float64 `json:"rated_capacity_kw,omitempty"`
	IsCritical       bool     `json:"is_critical"`
	RequiresMetering bool     `json:"requires_metering"`
}

// Meter is a metering point belonging to a site, optionally linked to
// one of the site's assets.
type Meter struct {
	ID       int64  `json:"id"`
	SiteID   int64  `json:"site_id"`
	MeterID  string `json:"meter_id"`
	Name     string `json:"name"`
	AssetID  *int64 `json:"asset_id,omitempty"`
	IsActive bool   `json:"is_active"`
}

// CreateMeterOpts holds the attributes for a meter create call.
// MeterID is the external identifier; callers synthesize one when the
// user left it blank.
type CreateMeterOpts struct {
	SiteID   int64  `json:"site_id"`
	MeterID  string `json:"meter_id"`
	Name     string `json:"name"`
	AssetID  *int64 `json:"asset_id,omitempty"`
	IsActive bool   `json:"is_active"`
}

// Bill is a utility bill record belonging to a site.
type Bill struct {
	ID          int64   `json:"id"`
	SiteID      int64   `json:"site_id"`
	BillDate    string  `json:"bill_date"`
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	TotalKWH    float64 `json:"total_kwh"`
	TotalAmount float64 `json:"total_amount"`
	IsValidated bool    `json:"is_validated"`
}

// CreateBillOpts holds the attributes for a bill create call.
// Dates are ISO-8601 day strings (YYYY-MM-DD).
type CreateBillOpts struct {
	SiteID      int64   `json:"site_id"`
	BillDate    string  `json:"bill_date"`
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	TotalKWH    float64 `json:"total_kwh"`
	TotalAmount float64 `json:"total_amount"`
	IsValidated bool    `json:"is_validated"`
}
