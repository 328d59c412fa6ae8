package wizard

import (
	"strings"

	"github.com/Gal07143/Save-It.AI-sub004/internal/provisioning"
)

// Variant selects which steps the wizard runs.
type Variant int

const (
	// VariantTemplate starts from a site-type template and has no bill step.
	VariantTemplate Variant = iota
	// VariantManual skips templates and offers an optional first bill.
	VariantManual
)

// Step identifies one wizard state.
type Step int

const (
	StepSiteType Step = iota
	StepSiteDetails
	StepAssets
	StepMeters
	StepBill
	StepReview
	StepCreating
	StepDone
)

// String returns the step's display name.
func (s Step) String() string {
	switch s {
	case StepSiteType:
		return "Site Type"
	case StepSiteDetails:
		return "Site Details"
	case StepAssets:
		return "Assets"
	case StepMeters:
		return "Meters"
	case StepBill:
		return "First Bill"
	case StepReview:
		return "Review"
	case StepCreating:
		return "Creating"
	case StepDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Action is a user navigation decision on a step.
type Action int

const (
	ActionNext Action = iota
	ActionBack
	ActionSkip
	ActionCancel
	ActionCreate
)

// stepMask tracks which steps were skipped.
type stepMask uint16

func (m stepMask) has(s Step) bool       { return m&(1<<uint(s)) != 0 }
func (m stepMask) set(s Step) stepMask   { return m | (1 << uint(s)) }
func (m stepMask) clear(s Step) stepMask { return m &^ (1 << uint(s)) }

// Session is the transient state of one wizard run. It is a value: every
// transition returns a replacement session, which keeps the legal
// transitions auditable and testable without any rendering involved.
//
// A session lives only for the lifetime of one wizard run; it is discarded
// on cancel, close, or successful completion and never persists.
type Session struct {
	Variant     Variant
	Step        Step
	TemplateKey string

	Site   provisioning.SiteDraft
	Assets []provisioning.AssetDraft
	Meters []provisioning.MeterDraft
	Bill   provisioning.BillDraft

	// LastError carries the surfaced message of a failed creation attempt
	// back to the review step. Empty otherwise.
	LastError string

	skipped stepMask
}

// NewSession creates a session positioned at the variant's first step.
func NewSession(variant Variant) Session {
	s := Session{Variant: variant}
	s.Step = s.steps()[0]
	return s
}

// steps returns the ordered content steps of the variant, ending at Review.
func (s Session) steps() []Step {
	if s.Variant == VariantTemplate {
		return []Step{StepSiteType, StepSiteDetails, StepAssets, StepMeters, StepReview}
	}
	return []Step{StepSiteDetails, StepAssets, StepMeters, StepBill, StepReview}
}

// stepIndex returns the position of the current step among the content
// steps, or -1 while creating or done.
func (s Session) stepIndex() int {
	for i, step := range s.steps() {
		if step == s.Step {
			return i
		}
	}
	return -1
}

// Validate checks the current step's required fields.
func (s Session) Validate() error {
	switch s.Step {
	case StepSiteType:
		if s.TemplateKey == "" {
			return ErrTemplateRequired
		}
	case StepSiteDetails:
		if strings.TrimSpace(s.Site.Name) == "" {
			return ErrSiteNameRequired
		}
	}
	return nil
}

// Next advances one step after the current step's validation passes.
// On the review step it enters Creating.
func (s Session) Next() (Session, error) {
	if err := s.Validate(); err != nil {
		return s, err
	}
	if s.Step == StepReview {
		s.Step = StepCreating
		s.LastError = ""
		return s, nil
	}
	i := s.stepIndex()
	if i < 0 {
		return s, ErrNoNextStep
	}
	s.skipped = s.skipped.clear(s.Step)
	s.Step = s.steps()[i+1]
	return s, nil
}

// Back moves one step backward. Data entered in later steps is kept.
func (s Session) Back() (Session, error) {
	i := s.stepIndex()
	if i <= 0 {
		return s, ErrAtFirstStep
	}
	s.Step = s.steps()[i-1]
	return s, nil
}

// CanSkip reports whether the current step is optional.
func (s Session) CanSkip() bool {
	switch s.Step {
	case StepAssets, StepMeters, StepBill:
		return true
	default:
		return false
	}
}

// Skip advances past an optional step without validation. Entered rows are
// kept in the session but contribute nothing at creation time until the
// user revisits the step and confirms it with Next.
func (s Session) Skip() (Session, error) {
	if !s.CanSkip() {
		return s, ErrStepNotSkippable
	}
	i := s.stepIndex()
	s.skipped = s.skipped.set(s.Step)
	s.Step = s.steps()[i+1]
	return s, nil
}

// Skipped reports whether a step was skipped on the way to the current one.
func (s Session) Skipped(step Step) bool {
	return s.skipped.has(step)
}

// FailCreation returns the session to the review step carrying the error
// message of the aborted creation sequence. Resubmitting afterwards runs
// the whole sequence again and creates a second site; partially created
// records of the failed attempt are left as they are.
func (s Session) FailCreation(message string) Session {
	s.Step = StepReview
	s.LastError = message
	return s
}

// Reset discards everything and returns a fresh session.
func (s Session) Reset() Session {
	return NewSession(s.Variant)
}

// WithTemplate selects a site-type template. Selection is a pure,
// idempotent substitution: site defaults, asset drafts and meter drafts
// are replaced wholesale, deliberately discarding prior manual edits.
func (s Session) WithTemplate(key string) (Session, error) {
	tmpl, ok := TemplateByKey(key)
	if !ok {
		return s, ErrUnknownTemplate
	}
	s.TemplateKey = key
	s.Site.GridCapacityKW = tmpl.GridCapacityKW
	s.Site.OperatingHours = tmpl.OperatingHours
	s.Assets = tmpl.AssetDrafts()
	s.Meters = tmpl.MeterDrafts()
	return s, nil
}

// WithCountry sets the site country and fills currency and timezone
// suggestions into fields that are still empty. Values the user already
// entered are never overwritten.
func (s Session) WithCountry(code string) Session {
	s.Site.Country = code
	if s.Site.Currency == "" {
		if currency, ok := SuggestCurrency(code); ok {
			s.Site.Currency = currency
		}
	}
	if s.Site.Timezone == "" {
		if tz, ok := SuggestTimezone(code); ok {
			s.Site.Timezone = tz
		}
	}
	return s
}

// EffectiveAssets returns the asset drafts that count for creation:
// none when the step was skipped.
func (s Session) EffectiveAssets() []provisioning.AssetDraft {
	if s.Skipped(StepAssets) {
		return nil
	}
	return s.Assets
}

// EffectiveMeters returns the meter drafts that count for creation.
func (s Session) EffectiveMeters() []provisioning.MeterDraft {
	if s.Skipped(StepMeters) {
		return nil
	}
	return s.Meters
}

// EffectiveBill returns the staged bill, or nil when the variant has no
// bill step or the step was skipped. Completeness is checked at plan time.
func (s Session) EffectiveBill() *provisioning.BillDraft {
	if s.Variant != VariantManual || s.Skipped(StepBill) {
		return nil
	}
	bill := s.Bill
	return &bill
}

// EnabledAssetNames returns the names of currently enabled assets in draft
// order. A meter link selected now refers to a position in this list.
func (s Session) EnabledAssetNames() []string {
	var names []string
	for _, a := range s.Assets {
		if a.Enabled {
			names = append(names, a.Name)
		}
	}
	return names
}

// AvailableActions lists the legal navigation actions on the current step.
func (s Session) AvailableActions() []Action {
	if s.Step == StepReview {
		return []Action{ActionCreate, ActionBack, ActionCancel}
	}
	actions := []Action{ActionNext}
	if s.stepIndex() > 0 {
		actions = append(actions, ActionBack)
	}
	if s.CanSkip() {
		actions = append(actions, ActionSkip)
	}
	return append(actions, ActionCancel)
}
