package wizard

import "errors"

// Validation and transition errors for the provisioning wizard.
var (
	ErrTemplateRequired = errors.New("a site type must be selected")
	ErrSiteNameRequired = errors.New("site name is required")
	ErrUnknownTemplate  = errors.New("unknown site template")
	ErrAtFirstStep      = errors.New("already at the first step")
	ErrStepNotSkippable = errors.New("this step cannot be skipped")
	ErrNoNextStep       = errors.New("no further step")

	// ErrCanceled is returned by Run when the user cancels or closes the
	// wizard. Nothing is compensated server-side: if a previous attempt
	// partially completed, those records remain.
	ErrCanceled = errors.New("provisioning canceled")
)
