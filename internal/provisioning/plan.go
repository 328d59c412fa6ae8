package provisioning

import (
	"strings"

	"github.com/Gal07143/Save-It.AI-sub004/internal/api"
	"github.com/Gal07143/Save-It.AI-sub004/internal/util/naming"
	"github.com/Gal07143/Save-It.AI-sub004/internal/util/ptr"
)

// Wizard-created assets default to requiring metering; criticality is a
// later classification step in the platform, not part of provisioning.
const (
	defaultIsCritical       = false
	defaultRequiresMetering = true
)

// Plan is the fully resolved creation sequence derived from the staged
// drafts. Building a plan is pure: no identifiers exist yet, so meter
// links are kept as positions into Assets and resolved during execution.
type Plan struct {
	Site   api.CreateSiteOpts
	Assets []PlannedAsset
	Meters []PlannedMeter
	Bill   *PlannedBill
}

// PlannedAsset is one asset create call, in issue order.
type PlannedAsset struct {
	Name             string
	Type             string
	RatedCapacityKW  *float64
	IsCritical       bool
	RequiresMetering bool
}

// PlannedMeter is one meter create call, in issue order. AssetIndex points
// into Plan.Assets or is NoLinkedAsset.
type PlannedMeter struct {
	MeterID    string
	Name       string
	AssetIndex int
	IsActive   bool
}

// PlannedBill is the optional bill create call.
type PlannedBill struct {
	BillDate    string
	PeriodStart string
	PeriodEnd   string
	TotalKWH    float64
	TotalAmount float64
}

// BuildPlan derives the creation sequence from the staged drafts.
//
// Assets keep their draft order, filtered to enabled rows with a non-empty
// name. Meters likewise keep order; a meter whose linked position falls
// outside the planned asset list degrades to unlinked rather than erroring.
// Meters without an external id get a deterministic synthesized one, with
// the sequence number taken from the meter's 1-based position in creation
// order. A bill is staged only when every bill field was supplied.
func BuildPlan(site SiteDraft, assets []AssetDraft, meters []MeterDraft, bill *BillDraft) *Plan {
	plan := &Plan{Site: siteOpts(site)}

	for _, a := range assets {
		if !a.creatable() {
			continue
		}
		planned := PlannedAsset{
			Name:             strings.TrimSpace(a.Name),
			Type:             a.Type,
			IsCritical:       defaultIsCritical,
			RequiresMetering: defaultRequiresMetering,
		}
		if a.CapacityKW > 0 {
			planned.RatedCapacityKW = ptr.Float64(a.CapacityKW)
		}
		plan.Assets = append(plan.Assets, planned)
	}

	for _, m := range meters {
		if !m.creatable() {
			continue
		}
		seq := len(plan.Meters) + 1
		planned := PlannedMeter{
			MeterID:    strings.TrimSpace(m.ExternalID),
			Name:       strings.TrimSpace(m.Name),
			AssetIndex: m.LinkedAssetPos,
			IsActive:   true,
		}
		if planned.MeterID == "" {
			planned.MeterID = naming.MeterID(site.Name, seq)
		}
		if planned.AssetIndex < 0 || planned.AssetIndex >= len(plan.Assets) {
			planned.AssetIndex = NoLinkedAsset
		}
		plan.Meters = append(plan.Meters, planned)
	}

	if bill != nil && bill.Complete() {
		plan.Bill = &PlannedBill{
			BillDate:    bill.BillDate,
			PeriodStart: bill.PeriodStart,
			PeriodEnd:   bill.PeriodEnd,
			TotalKWH:    bill.TotalKWH,
			TotalAmount: bill.TotalAmount,
		}
	}

	return plan
}

// siteOpts maps the site draft onto the API create shape, dropping empty
// optional fields.
func siteOpts(site SiteDraft) api.CreateSiteOpts {
	opts := api.CreateSiteOpts{
		Name:           strings.TrimSpace(site.Name),
		Address:        site.Address,
		City:           site.City,
		Country:        site.Country,
		Timezone:       site.Timezone,
		Currency:       site.Currency,
		OperatingHours: site.OperatingHours,
	}
	if site.GridCapacityKW > 0 {
		opts.GridCapacityKW = ptr.Float64(site.GridCapacityKW)
	}
	return opts
}
