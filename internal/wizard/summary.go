package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Gal07143/Save-It.AI-sub004/internal/provisioning"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#f9fafb"))

	summarySectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#3b82f6")).
				MarginTop(1)

	summaryDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280"))

	summaryErrorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ef4444"))
)

// Summary renders the review screen: exactly what the creation sequence
// will do, after filtering and with the previewed meter identifiers.
func Summary(s Session) string {
	plan := provisioning.BuildPlan(s.Site, s.EffectiveAssets(), s.EffectiveMeters(), s.EffectiveBill())

	var b strings.Builder

	if s.LastError != "" {
		b.WriteString(summaryErrorStyle.Render("Creation failed: "+s.LastError) + "\n")
		b.WriteString(summaryDimStyle.Render("Already created records were kept. Submitting again starts a new site.") + "\n\n")
	}

	b.WriteString(summaryTitleStyle.Render("Review") + "\n")

	b.WriteString(summarySectionStyle.Render("Site") + "\n")
	b.WriteString(fmt.Sprintf("  Name:            %s\n", plan.Site.Name))
	writeOptionalLine(&b, "Address", joinNonEmpty(plan.Site.Address, plan.Site.City))
	writeOptionalLine(&b, "Country", plan.Site.Country)
	writeOptionalLine(&b, "Timezone", plan.Site.Timezone)
	writeOptionalLine(&b, "Currency", plan.Site.Currency)
	if plan.Site.GridCapacityKW != nil {
		b.WriteString(fmt.Sprintf("  Grid Capacity:   %s kW\n", formatKW(*plan.Site.GridCapacityKW)))
	}
	writeOptionalLine(&b, "Operating Hours", plan.Site.OperatingHours)

	b.WriteString(summarySectionStyle.Render(fmt.Sprintf("Assets (%d)", len(plan.Assets))) + "\n")
	if len(plan.Assets) == 0 {
		b.WriteString(summaryDimStyle.Render("  none") + "\n")
	}
	for _, a := range plan.Assets {
		line := fmt.Sprintf("  %s (%s", a.Name, a.Type)
		if a.RatedCapacityKW != nil {
			line += fmt.Sprintf(", %s kW", formatKW(*a.RatedCapacityKW))
		}
		b.WriteString(line + ")\n")
	}

	b.WriteString(summarySectionStyle.Render(fmt.Sprintf("Meters (%d)", len(plan.Meters))) + "\n")
	if len(plan.Meters) == 0 {
		b.WriteString(summaryDimStyle.Render("  none") + "\n")
	}
	for _, m := range plan.Meters {
		link := "no linked asset"
		if m.AssetIndex != provisioning.NoLinkedAsset && m.AssetIndex < len(plan.Assets) {
			link = "linked to " + plan.Assets[m.AssetIndex].Name
		}
		b.WriteString(fmt.Sprintf("  %s  %s  (%s)\n", m.MeterID, m.Name, link))
	}

	if s.Variant == VariantManual {
		b.WriteString(summarySectionStyle.Render("First Bill") + "\n")
		if plan.Bill == nil {
			b.WriteString(summaryDimStyle.Render("  none (incomplete or skipped)") + "\n")
		} else {
			b.WriteString(fmt.Sprintf("  %s to %s, %s kWh, %s\n",
				plan.Bill.PeriodStart, plan.Bill.PeriodEnd,
				formatKW(plan.Bill.TotalKWH), formatKW(plan.Bill.TotalAmount)))
		}
	}

	return b.String()
}

func writeOptionalLine(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(fmt.Sprintf("  %-16s %s\n", label+":", value))
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
