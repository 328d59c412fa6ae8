package wizard

import (
	"testing"

	"github.com/Gal07143/Save-It.AI-sub004/internal/provisioning"
)

func TestAssetLinkOptions(t *testing.T) {
	opts := AssetLinkOptions([]string{"Main Breaker", "HVAC Panel"})
	if len(opts) != 3 {
		t.Fatalf("got %d options, want 3", len(opts))
	}
	if opts[0].Value != provisioning.NoLinkedAsset {
		t.Errorf("first option = %d, want the unlinked sentinel", opts[0].Value)
	}
	if opts[1].Value != 0 || opts[2].Value != 1 {
		t.Errorf("link values = %d, %d, want positions 0, 1", opts[1].Value, opts[2].Value)
	}
}

func TestCountriesToOptionsKeepsEmptyChoice(t *testing.T) {
	opts := CountriesToOptions()
	if len(opts) != len(Countries)+1 {
		t.Fatalf("got %d options, want %d", len(opts), len(Countries)+1)
	}
	if opts[0].Value != "" {
		t.Errorf("first option should be the empty choice, got %q", opts[0].Value)
	}
}

func TestActionsToOptions(t *testing.T) {
	opts := ActionsToOptions([]Action{ActionCreate, ActionBack, ActionCancel})
	if len(opts) != 3 {
		t.Fatalf("got %d options, want 3", len(opts))
	}
	if opts[0].Value != ActionCreate || opts[0].Key != "Create site" {
		t.Errorf("first option = %q/%v", opts[0].Key, opts[0].Value)
	}
}
