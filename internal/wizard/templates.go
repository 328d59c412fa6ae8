package wizard

import "github.com/Gal07143/Save-It.AI-sub004/internal/provisioning"

// AssetSuggestion is one template-suggested asset row.
type AssetSuggestion struct {
	Name       string
	Type       string
	CapacityKW float64
}

// MeterSuggestion is one template-suggested meter row. AssetIndex points
// into the template's asset list, or provisioning.NoLinkedAsset.
type MeterSuggestion struct {
	Name       string
	AssetIndex int
}

// Template is a static bundle of default site attributes plus suggested
// asset and meter lists, keyed by site type. Selecting one never triggers
// a server call.
type Template struct {
	Key            string
	Label          string
	Description    string
	GridCapacityKW float64
	OperatingHours string
	Assets         []AssetSuggestion
	Meters         []MeterSuggestion
}

// Templates contains the selectable site-type templates.
var Templates = []Template{
	{
		Key:            "commercial_office",
		Label:          "Commercial Office",
		Description:    "Office building with HVAC and server room",
		GridCapacityKW: 400,
		OperatingHours: "business_hours",
		Assets: []AssetSuggestion{
			{Name: "Main Breaker", Type: "breaker", CapacityKW: 400},
			{Name: "HVAC Panel", Type: "panel", CapacityKW: 150},
			{Name: "Lighting Panel", Type: "panel", CapacityKW: 80},
			{Name: "Server Room Panel", Type: "panel", CapacityKW: 60},
		},
		Meters: []MeterSuggestion{
			{Name: "Main Meter", AssetIndex: 0},
			{Name: "HVAC Submeter", AssetIndex: 1},
		},
	},
	{
		Key:            "retail",
		Label:          "Retail Store",
		Description:    "Store front with refrigeration load",
		GridCapacityKW: 200,
		OperatingHours: "extended",
		Assets: []AssetSuggestion{
			{Name: "Main Breaker", Type: "breaker", CapacityKW: 200},
			{Name: "Refrigeration Panel", Type: "panel", CapacityKW: 90},
			{Name: "Lighting Panel", Type: "panel", CapacityKW: 50},
		},
		Meters: []MeterSuggestion{
			{Name: "Main Meter", AssetIndex: 0},
			{Name: "Refrigeration Submeter", AssetIndex: 1},
		},
	},
	{
		Key:            "industrial",
		Label:          "Industrial Plant",
		Description:    "Manufacturing site with continuous operation",
		GridCapacityKW: 2000,
		OperatingHours: "24x7",
		Assets: []AssetSuggestion{
			{Name: "Main Transformer", Type: "transformer", CapacityKW: 2000},
			{Name: "Production Line Panel", Type: "panel", CapacityKW: 800},
			{Name: "Compressor Panel", Type: "panel", CapacityKW: 300},
			{Name: "HVAC Panel", Type: "panel", CapacityKW: 150},
			{Name: "Office Panel", Type: "panel", CapacityKW: 60},
		},
		Meters: []MeterSuggestion{
			{Name: "Main Meter", AssetIndex: 0},
			{Name: "Production Submeter", AssetIndex: 1},
			{Name: "Compressor Submeter", AssetIndex: 2},
		},
	},
	{
		Key:            "warehouse",
		Label:          "Warehouse",
		Description:    "Logistics facility with cold storage",
		GridCapacityKW: 300,
		OperatingHours: "extended",
		Assets: []AssetSuggestion{
			{Name: "Main Breaker", Type: "breaker", CapacityKW: 300},
			{Name: "Cold Storage Panel", Type: "panel", CapacityKW: 180},
			{Name: "Lighting Panel", Type: "panel", CapacityKW: 60},
		},
		Meters: []MeterSuggestion{
			{Name: "Main Meter", AssetIndex: 0},
			{Name: "Cold Storage Submeter", AssetIndex: 1},
		},
	},
	{
		Key:            "solar_pv",
		Label:          "Solar PV Site",
		Description:    "Generation site with export metering",
		GridCapacityKW: 1000,
		OperatingHours: "24x7",
		Assets: []AssetSuggestion{
			{Name: "Grid Transformer", Type: "transformer", CapacityKW: 1000},
			{Name: "Inverter Block A", Type: "panel", CapacityKW: 500},
			{Name: "Inverter Block B", Type: "panel", CapacityKW: 500},
		},
		Meters: []MeterSuggestion{
			{Name: "Export Meter", AssetIndex: 0},
			{Name: "Inverter A Meter", AssetIndex: 1},
			{Name: "Inverter B Meter", AssetIndex: 2},
		},
	},
}

// TemplateByKey looks up a template by its site-type key.
func TemplateByKey(key string) (Template, bool) {
	for _, t := range Templates {
		if t.Key == key {
			return t, true
		}
	}
	return Template{}, false
}

// AssetDrafts converts the template's asset suggestions into enabled drafts.
func (t Template) AssetDrafts() []provisioning.AssetDraft {
	drafts := make([]provisioning.AssetDraft, len(t.Assets))
	for i, a := range t.Assets {
		drafts[i] = provisioning.AssetDraft{
			Name:       a.Name,
			Type:       a.Type,
			CapacityKW: a.CapacityKW,
			Enabled:    true,
		}
	}
	return drafts
}

// MeterDrafts converts the template's meter suggestions into enabled drafts.
// Template asset indexes are positions among the template's assets, which
// are all enabled at selection time.
func (t Template) MeterDrafts() []provisioning.MeterDraft {
	drafts := make([]provisioning.MeterDraft, len(t.Meters))
	for i, m := range t.Meters {
		pos := m.AssetIndex
		if pos < 0 || pos >= len(t.Assets) {
			pos = provisioning.NoLinkedAsset
		}
		drafts[i] = provisioning.MeterDraft{
			Name:           m.Name,
			LinkedAssetPos: pos,
			Enabled:        true,
		}
	}
	return drafts
}
