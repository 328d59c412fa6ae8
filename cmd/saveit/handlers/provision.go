package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gal07143/Save-It.AI-sub004/internal/api"
	"github.com/Gal07143/Save-It.AI-sub004/internal/provisioning"
	"github.com/Gal07143/Save-It.AI-sub004/internal/ui/tui"
	"github.com/Gal07143/Save-It.AI-sub004/internal/wizard"
)

// isTerminal gates the progress TUI - can be replaced in tests.
var isTerminal = tui.IsTerminal

// Provision handles the provision command.
//
// It runs the interactive wizard and, on submit, executes the ordered
// creation sequence. With a terminal attached the sequence renders as a
// live progress display; otherwise events go to the console log.
func Provision(ctx context.Context, configPath string, manual bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	client := newResourceManager(cfg)

	variant := wizard.VariantTemplate
	if manual {
		variant = wizard.VariantManual
	}

	w := wizard.New(client, variant,
		wizard.WithDefaultCountry(cfg.DefaultCountry),
		wizard.WithProvisionFunc(provisionExecutor(client)),
	)

	if err := w.Run(ctx); err != nil {
		if errors.Is(err, wizard.ErrCanceled) {
			fmt.Println("Provisioning canceled.")
			return nil
		}
		return err
	}
	return nil
}

// provisionExecutor runs a plan against the API, with or without the TUI.
func provisionExecutor(client api.ResourceManager) func(ctx context.Context, plan *provisioning.Plan) (*provisioning.Result, error) {
	return func(ctx context.Context, plan *provisioning.Plan) (*provisioning.Result, error) {
		run := func(obs provisioning.Observer) (*provisioning.Result, error) {
			return provisioning.NewProvisioner(client, provisioning.WithObserver(obs)).Run(ctx, plan)
		}
		if isTerminal() {
			return tui.RunProvisionTUI(plan, run)
		}
		return run(provisioning.NewConsoleObserver())
	}
}
