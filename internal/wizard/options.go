package wizard

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/Gal07143/Save-It.AI-sub004/internal/provisioning"
)

// CountryOption represents a selectable country.
type CountryOption struct {
	Value string
	Label string
}

// Countries contains the selectable site countries.
var Countries = []CountryOption{
	{Value: "AT", Label: "Austria"},
	{Value: "AU", Label: "Australia"},
	{Value: "CH", Label: "Switzerland"},
	{Value: "DE", Label: "Germany"},
	{Value: "ES", Label: "Spain"},
	{Value: "FR", Label: "France"},
	{Value: "GB", Label: "United Kingdom"},
	{Value: "IL", Label: "Israel"},
	{Value: "IT", Label: "Italy"},
	{Value: "JP", Label: "Japan"},
	{Value: "NL", Label: "Netherlands"},
	{Value: "US", Label: "United States"},
}

// AssetTypeOption represents a selectable asset type.
type AssetTypeOption struct {
	Value       string
	Label       string
	Description string
}

// AssetTypes contains the selectable electrical asset types.
var AssetTypes = []AssetTypeOption{
	{Value: "breaker", Label: "Breaker", Description: "Main or branch circuit breaker"},
	{Value: "panel", Label: "Panel", Description: "Distribution or sub-panel"},
	{Value: "transformer", Label: "Transformer", Description: "Step-down or grid transformer"},
}

// OperatingHoursOptions contains the selectable operating-hours codes.
var OperatingHoursOptions = []huh.Option[string]{
	huh.NewOption("Business hours (weekdays 8-18)", "business_hours"),
	huh.NewOption("Extended (incl. evenings and weekends)", "extended"),
	huh.NewOption("Continuous (24x7)", "24x7"),
}

// TemplatesToOptions converts the template table to huh options.
func TemplatesToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(Templates))
	for i, t := range Templates {
		opts[i] = huh.NewOption(t.Label+" - "+t.Description, t.Key)
	}
	return opts
}

// CountriesToOptions converts the country table to huh options. The empty
// option keeps the field optional.
func CountriesToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(Countries)+1)
	opts = append(opts, huh.NewOption("(none)", ""))
	for _, c := range Countries {
		opts = append(opts, huh.NewOption(c.Label, c.Value))
	}
	return opts
}

// AssetTypesToOptions converts the asset-type table to huh options.
func AssetTypesToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(AssetTypes))
	for i, at := range AssetTypes {
		opts[i] = huh.NewOption(at.Label+" - "+at.Description, at.Value)
	}
	return opts
}

// AssetLinkOptions builds the meter link choices from the currently
// enabled asset names. The selected value is the asset's position among
// enabled assets at selection time.
func AssetLinkOptions(enabledNames []string) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, len(enabledNames)+1)
	opts = append(opts, huh.NewOption("No linked asset", provisioning.NoLinkedAsset))
	for i, name := range enabledNames {
		opts = append(opts, huh.NewOption(name, i))
	}
	return opts
}

// actionLabel returns the display label of a navigation action.
func actionLabel(a Action) string {
	switch a {
	case ActionNext:
		return "Next"
	case ActionBack:
		return "Back"
	case ActionSkip:
		return "Skip this step"
	case ActionCancel:
		return "Cancel"
	case ActionCreate:
		return "Create site"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ActionsToOptions converts the step's legal actions to huh options.
func ActionsToOptions(actions []Action) []huh.Option[Action] {
	opts := make([]huh.Option[Action], len(actions))
	for i, a := range actions {
		opts[i] = huh.NewOption(actionLabel(a), a)
	}
	return opts
}
