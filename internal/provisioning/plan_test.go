package provisioning

import "testing"

func TestBuildPlanFiltersAssets(t *testing.T) {
	assets := []AssetDraft{
		{Name: "Main Breaker", Type: "breaker", Enabled: true},
		{Name: "", Type: "panel", Enabled: true},            // empty name, enabled
		{Name: "HVAC Panel", Type: "panel", Enabled: false}, // named, disabled
		{Name: "   ", Type: "panel", Enabled: true},         // whitespace name
		{Name: "Lighting Panel", Type: "panel", Enabled: true},
	}

	plan := BuildPlan(SiteDraft{Name: "HQ"}, assets, nil, nil)

	if len(plan.Assets) != 2 {
		t.Fatalf("len(plan.Assets) = %d, want 2", len(plan.Assets))
	}
	if plan.Assets[0].Name != "Main Breaker" || plan.Assets[1].Name != "Lighting Panel" {
		t.Errorf("planned assets = %+v, want Main Breaker then Lighting Panel", plan.Assets)
	}
}

func TestBuildPlanFiltersMeters(t *testing.T) {
	meters := []MeterDraft{
		{Name: "Main Meter", LinkedAssetPos: NoLinkedAsset, Enabled: true},
		{Name: "", ExternalID: "", LinkedAssetPos: NoLinkedAsset, Enabled: true},      // nothing to identify it
		{Name: "Disabled", LinkedAssetPos: NoLinkedAsset, Enabled: false},             // disabled
		{Name: "", ExternalID: "EXT-9", LinkedAssetPos: NoLinkedAsset, Enabled: true}, // id only is enough
	}

	plan := BuildPlan(SiteDraft{Name: "HQ"}, nil, meters, nil)

	if len(plan.Meters) != 2 {
		t.Fatalf("len(plan.Meters) = %d, want 2", len(plan.Meters))
	}
	if plan.Meters[1].MeterID != "EXT-9" {
		t.Errorf("second meter id = %q, want supplied external id kept", plan.Meters[1].MeterID)
	}
}

func TestBuildPlanSynthesizesMeterIDs(t *testing.T) {
	meters := []MeterDraft{
		{Name: "First", LinkedAssetPos: NoLinkedAsset, Enabled: true},
		{Name: "Second", LinkedAssetPos: NoLinkedAsset, Enabled: true},
	}

	plan := BuildPlan(SiteDraft{Name: "Main Office"}, nil, meters, nil)

	if plan.Meters[0].MeterID != "MTR-MAIN-OFFIC-001" {
		t.Errorf("meter 1 id = %q, want MTR-MAIN-OFFIC-001", plan.Meters[0].MeterID)
	}
	if plan.Meters[1].MeterID != "MTR-MAIN-OFFIC-002" {
		t.Errorf("meter 2 id = %q, want MTR-MAIN-OFFIC-002", plan.Meters[1].MeterID)
	}
}

func TestBuildPlanSequenceCountsOnlyCreatableMeters(t *testing.T) {
	meters := []MeterDraft{
		{Name: "Skipped", LinkedAssetPos: NoLinkedAsset, Enabled: false},
		{Name: "Counted", LinkedAssetPos: NoLinkedAsset, Enabled: true},
	}

	plan := BuildPlan(SiteDraft{Name: "HQ"}, nil, meters, nil)

	if len(plan.Meters) != 1 {
		t.Fatalf("len(plan.Meters) = %d, want 1", len(plan.Meters))
	}
	// The disabled row does not consume a sequence number.
	if plan.Meters[0].MeterID != "MTR-HQ-001" {
		t.Errorf("meter id = %q, want MTR-HQ-001", plan.Meters[0].MeterID)
	}
}

func TestBuildPlanDegradesDanglingAssetLinks(t *testing.T) {
	assets := []AssetDraft{
		{Name: "Main Breaker", Type: "breaker", Enabled: true},
	}
	meters := []MeterDraft{
		{Name: "Linked", LinkedAssetPos: 0, Enabled: true},
		{Name: "Dangling", LinkedAssetPos: 4, Enabled: true}, // points past the planned assets
		{Name: "Unlinked", LinkedAssetPos: NoLinkedAsset, Enabled: true},
	}

	plan := BuildPlan(SiteDraft{Name: "HQ"}, assets, meters, nil)

	if plan.Meters[0].AssetIndex != 0 {
		t.Errorf("linked meter index = %d, want 0", plan.Meters[0].AssetIndex)
	}
	if plan.Meters[1].AssetIndex != NoLinkedAsset {
		t.Errorf("dangling meter index = %d, want degraded to none", plan.Meters[1].AssetIndex)
	}
	if plan.Meters[2].AssetIndex != NoLinkedAsset {
		t.Errorf("unlinked meter index = %d, want none", plan.Meters[2].AssetIndex)
	}
}

func TestBuildPlanBillOnlyWhenComplete(t *testing.T) {
	complete := &BillDraft{
		BillDate:    "2026-08-01",
		PeriodStart: "2026-07-01",
		PeriodEnd:   "2026-07-31",
		TotalKWH:    12500,
		TotalAmount: 3100.50,
	}
	partial := &BillDraft{BillDate: "2026-08-01", TotalKWH: 12500}

	if plan := BuildPlan(SiteDraft{Name: "HQ"}, nil, nil, complete); plan.Bill == nil {
		t.Error("complete bill draft should be planned")
	}
	if plan := BuildPlan(SiteDraft{Name: "HQ"}, nil, nil, partial); plan.Bill != nil {
		t.Error("partial bill draft should be a no-op, not planned")
	}
	if plan := BuildPlan(SiteDraft{Name: "HQ"}, nil, nil, nil); plan.Bill != nil {
		t.Error("absent bill draft should not be planned")
	}
}

func TestBuildPlanSiteOpts(t *testing.T) {
	site := SiteDraft{
		Name:           "  HQ  ",
		Country:        "DE",
		Currency:       "EUR",
		Timezone:       "Europe/Berlin",
		GridCapacityKW: 630,
		OperatingHours: "business_hours",
	}

	plan := BuildPlan(site, nil, nil, nil)

	if plan.Site.Name != "HQ" {
		t.Errorf("site name = %q, want trimmed", plan.Site.Name)
	}
	if plan.Site.GridCapacityKW == nil || *plan.Site.GridCapacityKW != 630 {
		t.Errorf("grid capacity = %v, want 630", plan.Site.GridCapacityKW)
	}
	if plan.Site.Currency != "EUR" || plan.Site.Timezone != "Europe/Berlin" {
		t.Errorf("site opts = %+v, want currency and timezone carried over", plan.Site)
	}
}
