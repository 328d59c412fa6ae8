package provisioning

import "strings"

// SiteDraft is the in-progress attribute set for the site to be created.
// Name is the only field required to provision.
type SiteDraft struct {
	Name           string
	Address        string
	City           string
	Country        string
	Timezone       string
	Currency       string
	GridCapacityKW float64
	OperatingHours string
}

// AssetDraft is a candidate electrical asset. Order is significant:
// meters link to assets by their position among enabled assets.
type AssetDraft struct {
	Name       string
	Type       string
	CapacityKW float64
	Enabled    bool
}

// NoLinkedAsset marks a meter draft that is not linked to any asset.
const NoLinkedAsset = -1

// MeterDraft is a candidate metering point. ExternalID may be left blank,
// in which case a deterministic identifier is synthesized at plan time.
// LinkedAssetPos indexes the enabled assets as they were ordered when the
// link was selected, or NoLinkedAsset.
type MeterDraft struct {
	ExternalID     string
	Name           string
	LinkedAssetPos int
	Enabled        bool
}

// BillDraft is a candidate first utility bill for the new site.
type BillDraft struct {
	BillDate    string
	PeriodStart string
	PeriodEnd   string
	TotalKWH    float64
	TotalAmount float64
}

// Complete reports whether every bill field was supplied. An incomplete
// bill draft is a no-op at creation time, not an error.
func (b BillDraft) Complete() bool {
	return b.BillDate != "" &&
		b.PeriodStart != "" &&
		b.PeriodEnd != "" &&
		b.TotalKWH > 0 &&
		b.TotalAmount > 0
}

// creatable reports whether an asset draft participates in the creation
// sequence. Rows with an empty trimmed name are excluded silently.
func (a AssetDraft) creatable() bool {
	return a.Enabled && strings.TrimSpace(a.Name) != ""
}

// creatable reports whether a meter draft participates in the creation
// sequence. Rows with neither a name nor an external id are excluded.
func (m MeterDraft) creatable() bool {
	return m.Enabled && (strings.TrimSpace(m.Name) != "" || strings.TrimSpace(m.ExternalID) != "")
}
