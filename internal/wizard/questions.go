package wizard

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/Gal07143/Save-It.AI-sub004/internal/provisioning"
)

// runSiteTypeStep prompts for a site-type template. Selecting one replaces
// the staged site defaults and asset/meter drafts wholesale.
func runSiteTypeStep(ctx context.Context, s Session) (Session, error) {
	selected := s.TemplateKey

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Site Type").
				Description("The template seeds defaults and suggested assets and meters. Reselecting resets prior edits.").
				Options(TemplatesToOptions()...).
				Value(&selected),
		).Title("Site Type"),
	).RunWithContext(ctx)
	if err != nil {
		return s, err
	}

	if selected == "" {
		return s, nil
	}
	return s.WithTemplate(selected)
}

// runSiteDetailsStep prompts for the site attributes. Only the name is
// required; choosing a country suggests a currency and timezone for
// fields that are still empty.
func runSiteDetailsStep(ctx context.Context, s Session) (Session, error) {
	site := s.Site
	capacity := formatKW(site.GridCapacityKW)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Site Name").
				Placeholder("Headquarters").
				Value(&site.Name).
				Validate(validateSiteName),
			huh.NewInput().
				Title("Address (optional)").
				Value(&site.Address),
			huh.NewInput().
				Title("City (optional)").
				Value(&site.City),
			huh.NewSelect[string]().
				Title("Country (optional)").
				Options(CountriesToOptions()...).
				Value(&site.Country),
		).Title("Site Details"),
		huh.NewGroup(
			huh.NewInput().
				Title("Timezone (optional)").
				Description("Suggested from the country when left empty").
				Value(&site.Timezone),
			huh.NewInput().
				Title("Currency (optional)").
				Description("Suggested from the country when left empty").
				Value(&site.Currency),
			huh.NewInput().
				Title("Grid Capacity kW (optional)").
				Value(&capacity).
				Validate(validateOptionalFloat),
			huh.NewSelect[string]().
				Title("Operating Hours").
				Options(OperatingHoursOptions...).
				Value(&site.OperatingHours),
		).Title("Site Details"),
	).RunWithContext(ctx)
	if err != nil {
		return s, err
	}

	site.GridCapacityKW = parseKW(capacity)
	s.Site = site
	return s.WithCountry(site.Country), nil
}

// runAssetsStep edits the asset drafts: toggle which staged rows stay
// enabled, then append new rows. Rows left with an empty name are excluded
// at creation time silently.
func runAssetsStep(ctx context.Context, s Session) (Session, error) {
	assets := append([]provisioning.AssetDraft(nil), s.Assets...)

	if len(assets) > 0 {
		enabled, err := runEnabledToggle(ctx, "Enabled assets", assetRowLabels(assets), enabledIndexes(len(assets), func(i int) bool { return assets[i].Enabled }))
		if err != nil {
			return s, err
		}
		for i := range assets {
			assets[i].Enabled = false
		}
		for _, i := range enabled {
			assets[i].Enabled = true
		}
	}

	for {
		addMore := false
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Add an asset?").
					Description(fmt.Sprintf("%d asset(s) staged", len(assets))).
					Value(&addMore),
			).Title("Assets"),
		).RunWithContext(ctx)
		if err != nil {
			return s, err
		}
		if !addMore {
			break
		}

		draft := provisioning.AssetDraft{Type: AssetTypes[0].Value, Enabled: true}
		capacity := ""
		err = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Asset Name").
					Placeholder("Main Breaker").
					Value(&draft.Name),
				huh.NewSelect[string]().
					Title("Asset Type").
					Options(AssetTypesToOptions()...).
					Value(&draft.Type),
				huh.NewInput().
					Title("Rated Capacity kW (optional)").
					Value(&capacity).
					Validate(validateOptionalFloat),
			).Title("New Asset"),
		).RunWithContext(ctx)
		if err != nil {
			return s, err
		}

		draft.CapacityKW = parseKW(capacity)
		assets = append(assets, draft)
	}

	s.Assets = assets
	return s, nil
}

// runMetersStep edits the meter drafts. A meter's asset link records the
// asset's position among the assets enabled right now; disabling that
// asset later degrades the link to "no asset" at creation time.
func runMetersStep(ctx context.Context, s Session) (Session, error) {
	meters := append([]provisioning.MeterDraft(nil), s.Meters...)

	if len(meters) > 0 {
		enabled, err := runEnabledToggle(ctx, "Enabled meters", meterRowLabels(meters), enabledIndexes(len(meters), func(i int) bool { return meters[i].Enabled }))
		if err != nil {
			return s, err
		}
		for i := range meters {
			meters[i].Enabled = false
		}
		for _, i := range enabled {
			meters[i].Enabled = true
		}
	}

	linkOptions := AssetLinkOptions(s.EnabledAssetNames())

	for {
		addMore := false
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Add a meter?").
					Description(fmt.Sprintf("%d meter(s) staged", len(meters))).
					Value(&addMore),
			).Title("Meters"),
		).RunWithContext(ctx)
		if err != nil {
			return s, err
		}
		if !addMore {
			break
		}

		draft := provisioning.MeterDraft{LinkedAssetPos: provisioning.NoLinkedAsset, Enabled: true}
		err = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Meter Name").
					Placeholder("Main Meter").
					Value(&draft.Name),
				huh.NewInput().
					Title("Meter ID (optional)").
					Description("Left empty, an identifier is generated from the site name").
					Value(&draft.ExternalID),
				huh.NewSelect[int]().
					Title("Linked Asset").
					Options(linkOptions...).
					Value(&draft.LinkedAssetPos),
			).Title("New Meter"),
		).RunWithContext(ctx)
		if err != nil {
			return s, err
		}

		meters = append(meters, draft)
	}

	s.Meters = meters
	return s, nil
}

// runBillStep prompts for the optional first utility bill. The bill is
// created only when every field is supplied; anything less is a no-op.
func runBillStep(ctx context.Context, s Session) (Session, error) {
	bill := s.Bill
	totalKWH := formatKW(bill.TotalKWH)
	totalAmount := formatKW(bill.TotalAmount)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Bill Date (optional)").
				Placeholder("2026-08-01").
				Value(&bill.BillDate).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Period Start (optional)").
				Placeholder("2026-07-01").
				Value(&bill.PeriodStart).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Period End (optional)").
				Placeholder("2026-07-31").
				Value(&bill.PeriodEnd).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Total kWh (optional)").
				Value(&totalKWH).
				Validate(validateOptionalFloat),
			huh.NewInput().
				Title("Total Amount (optional)").
				Value(&totalAmount).
				Validate(validateOptionalFloat),
		).Title("First Bill").Description("Leave everything empty to skip the bill."),
	).RunWithContext(ctx)
	if err != nil {
		return s, err
	}

	bill.TotalKWH = parseKW(totalKWH)
	bill.TotalAmount = parseKW(totalAmount)
	s.Bill = bill
	return s, nil
}

// runNavigation prompts for the step's navigation action.
func runNavigation(ctx context.Context, s Session) (Action, error) {
	actions := s.AvailableActions()
	action := actions[0]

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[Action]().
				Title("Continue").
				Options(ActionsToOptions(actions)...).
				Value(&action),
		),
	).RunWithContext(ctx)
	if err != nil {
		return ActionCancel, err
	}
	return action, nil
}

// runEnabledToggle shows a multi-select over existing rows and returns the
// indexes left enabled. Toggling is reversible and only affects whether a
// row participates in the final creation calls.
func runEnabledToggle(ctx context.Context, title string, labels []string, preselected []int) ([]int, error) {
	options := make([]huh.Option[int], len(labels))
	for i, label := range labels {
		options[i] = huh.NewOption(label, i)
	}

	selected := preselected
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title(title).
				Options(options...).
				Value(&selected),
		),
	).RunWithContext(ctx)
	if err != nil {
		return nil, err
	}
	return selected, nil
}

func assetRowLabels(assets []provisioning.AssetDraft) []string {
	labels := make([]string, len(assets))
	for i, a := range assets {
		name := a.Name
		if strings.TrimSpace(name) == "" {
			name = "(unnamed)"
		}
		labels[i] = fmt.Sprintf("%s (%s, %s kW)", name, a.Type, formatKW(a.CapacityKW))
	}
	return labels
}

func meterRowLabels(meters []provisioning.MeterDraft) []string {
	labels := make([]string, len(meters))
	for i, m := range meters {
		name := m.Name
		if strings.TrimSpace(name) == "" {
			name = m.ExternalID
		}
		if strings.TrimSpace(name) == "" {
			name = "(unnamed)"
		}
		labels[i] = name
	}
	return labels
}

func enabledIndexes(n int, enabled func(int) bool) []int {
	var idx []int
	for i := 0; i < n; i++ {
		if enabled(i) {
			idx = append(idx, i)
		}
	}
	return idx
}

// validateSiteName requires a non-empty trimmed name.
func validateSiteName(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrSiteNameRequired
	}
	return nil
}

// validateOptionalFloat accepts an empty string or a positive number.
func validateOptionalFloat(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return fmt.Errorf("must be a non-negative number")
	}
	return nil
}

// validateOptionalDate accepts an empty string or an ISO-8601 day.
func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("must be a date like 2026-01-31")
	}
	return nil
}

// parseKW parses an optional numeric input, returning 0 for empty or
// invalid values (the validators keep invalid values out).
func parseKW(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// formatKW renders a numeric value for an input field, empty when unset.
func formatKW(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
