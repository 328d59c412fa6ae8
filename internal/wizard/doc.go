// Package wizard implements the interactive site provisioning wizard.
//
// The wizard walks through site type, site details, assets, meters and an
// optional first bill, then executes the reviewed plan as an ordered
// creation sequence. It uses charmbracelet/huh for form-based input.
//
// Session is the pure state machine behind the prompts: every transition
// returns a new session value, so step ordering, validation, skipping and
// failure handling are testable without any terminal interaction. The
// Wizard type wires the session to huh forms and to the provisioner.
package wizard
