package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/Gal07143/Save-It.AI-sub004/internal/api"
	"github.com/Gal07143/Save-It.AI-sub004/internal/provisioning"
)

// stepFunc collects one step's input and returns the updated session.
type stepFunc func(ctx context.Context, s Session) (Session, error)

// navigateFunc asks for the step's navigation action.
type navigateFunc func(ctx context.Context, s Session) (Action, error)

// provisionFunc executes a creation plan.
type provisionFunc func(ctx context.Context, plan *provisioning.Plan) (*provisioning.Result, error)

// Wizard drives one interactive provisioning run: it collects input step
// by step, lets the user move back and forth, and hands the reviewed plan
// to the provisioner.
type Wizard struct {
	client  api.ResourceManager
	session Session
	output  io.Writer

	onComplete func(*provisioning.Result)
	onClose    func()

	// Injection points for tests; defaults drive huh forms and a real
	// provisioner.
	step      stepFunc
	navigate  navigateFunc
	provision provisionFunc
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithDefaultCountry pre-selects a country and its suggestions on the
// fresh session.
func WithDefaultCountry(code string) Option {
	return func(w *Wizard) {
		if code != "" {
			w.session = w.session.WithCountry(code)
		}
	}
}

// WithOnComplete sets the callback fired once after a fully successful
// creation sequence, with the created identifiers.
func WithOnComplete(fn func(*provisioning.Result)) Option {
	return func(w *Wizard) { w.onComplete = fn }
}

// WithOnClose sets the callback fired when the wizard ends, whether by
// completion or by cancellation.
func WithOnClose(fn func()) Option {
	return func(w *Wizard) { w.onClose = fn }
}

// WithOutput redirects the wizard's non-form output.
func WithOutput(out io.Writer) Option {
	return func(w *Wizard) { w.output = out }
}

// WithProvisionFunc replaces the creation sequence executor.
func WithProvisionFunc(fn provisionFunc) Option {
	return func(w *Wizard) { w.provision = fn }
}

// WithStepFunc replaces the interactive step runner.
func WithStepFunc(fn stepFunc) Option {
	return func(w *Wizard) { w.step = fn }
}

// WithNavigateFunc replaces the interactive navigation prompt.
func WithNavigateFunc(fn navigateFunc) Option {
	return func(w *Wizard) { w.navigate = fn }
}

// New creates a wizard for the given variant using the given API client.
func New(client api.ResourceManager, variant Variant, opts ...Option) *Wizard {
	w := &Wizard{
		client:  client,
		session: NewSession(variant),
		output:  os.Stdout,
	}
	w.step = w.runContent
	w.navigate = runNavigation
	w.provision = func(ctx context.Context, plan *provisioning.Plan) (*provisioning.Result, error) {
		return provisioning.NewProvisioner(client).Run(ctx, plan)
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Session returns the current session state.
func (w *Wizard) Session() Session {
	return w.session
}

// Run drives the wizard until the site is created, the user cancels, or a
// prompt fails. Cancellation discards the session, fires onClose and
// returns ErrCanceled.
func (w *Wizard) Run(ctx context.Context) error {
	for {
		switch w.session.Step {
		case StepCreating:
			if err := w.create(ctx); err != nil {
				// Creation failed; the session is back on Review with
				// the surfaced message. Keep looping.
				continue
			}
			return nil

		case StepDone:
			return nil

		default:
			if err := w.runInteractiveStep(ctx); err != nil {
				return err
			}
		}
	}
}

// runInteractiveStep collects the current step's input and applies the
// chosen navigation action.
func (w *Wizard) runInteractiveStep(ctx context.Context) error {
	next, err := w.step(ctx, w.session)
	if errors.Is(err, huh.ErrUserAborted) {
		return w.cancel()
	}
	if err != nil {
		return err
	}
	w.session = next

	action, err := w.navigate(ctx, w.session)
	if errors.Is(err, huh.ErrUserAborted) {
		return w.cancel()
	}
	if err != nil {
		return err
	}

	switch action {
	case ActionNext, ActionCreate:
		s, err := w.session.Next()
		if err != nil {
			fmt.Fprintln(w.output, err.Error())
			return nil
		}
		w.session = s
	case ActionBack:
		s, err := w.session.Back()
		if err != nil {
			fmt.Fprintln(w.output, err.Error())
			return nil
		}
		w.session = s
	case ActionSkip:
		s, err := w.session.Skip()
		if err != nil {
			fmt.Fprintln(w.output, err.Error())
			return nil
		}
		w.session = s
	case ActionCancel:
		return w.cancel()
	}
	return nil
}

// create executes the reviewed plan. On success the session is discarded
// and the callbacks fire; on failure the session returns to Review with
// the surfaced message and create reports the error.
func (w *Wizard) create(ctx context.Context) error {
	plan := provisioning.BuildPlan(
		w.session.Site,
		w.session.EffectiveAssets(),
		w.session.EffectiveMeters(),
		w.session.EffectiveBill(),
	)

	result, err := w.provision(ctx, plan)
	if err != nil {
		w.session = w.session.FailCreation(api.UserMessage(err))
		return err
	}

	fmt.Fprintf(w.output, "Site %q created (id=%d): %d asset(s), %d meter(s)\n",
		result.SiteName, result.SiteID, len(result.AssetRecords), result.MetersCreated)
	if result.BillCreated {
		fmt.Fprintln(w.output, "First bill recorded.")
	}

	if w.onComplete != nil {
		w.onComplete(result)
	}
	w.session = w.session.Reset()
	w.session.Step = StepDone
	if w.onClose != nil {
		w.onClose()
	}
	return nil
}

// cancel discards the session and fires onClose. Nothing entered so far
// survives a cancel.
func (w *Wizard) cancel() error {
	w.session = w.session.Reset()
	if w.onClose != nil {
		w.onClose()
	}
	return ErrCanceled
}

// runContent dispatches to the current step's form. The review step has no
// form of its own; it prints the summary and leaves the decision to the
// navigation prompt.
func (w *Wizard) runContent(ctx context.Context, s Session) (Session, error) {
	switch s.Step {
	case StepSiteType:
		return runSiteTypeStep(ctx, s)
	case StepSiteDetails:
		return runSiteDetailsStep(ctx, s)
	case StepAssets:
		return runAssetsStep(ctx, s)
	case StepMeters:
		return runMetersStep(ctx, s)
	case StepBill:
		return runBillStep(ctx, s)
	case StepReview:
		fmt.Fprint(w.output, Summary(s))
		return s, nil
	default:
		return s, nil
	}
}
