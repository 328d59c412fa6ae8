package provisioning

import (
	"context"
	"fmt"

	"github.com/Gal07143/Save-It.AI-sub004/internal/api"
	"github.com/Gal07143/Save-It.AI-sub004/internal/util/ptr"
)

// AssetRecord is one server-assigned asset identity, recorded in creation
// order so meters can resolve their asset link by position.
type AssetRecord struct {
	ID   int64
	Name string
}

// Result holds what a creation sequence persisted server-side. When Run
// returns an error, Result still reflects the partial state: the site and
// any assets or meters created before the failing call remain persisted
// and are reported here.
type Result struct {
	SiteID        int64
	SiteName      string
	AssetRecords  []AssetRecord
	MetersCreated int
	BillCreated   bool
}

// Provisioner executes creation sequences against the platform API.
type Provisioner struct {
	client   api.ResourceManager
	observer Observer
}

// ProvisionerOption configures a Provisioner.
type ProvisionerOption func(*Provisioner)

// WithObserver sets the observer receiving provisioning events.
func WithObserver(observer Observer) ProvisionerOption {
	return func(p *Provisioner) { p.observer = observer }
}

// NewProvisioner creates a provisioner using the given API client.
func NewProvisioner(client api.ResourceManager, opts ...ProvisionerOption) *Provisioner {
	p := &Provisioner{
		client:   client,
		observer: NewConsoleObserver(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the plan's create calls strictly in order: site, assets,
// meters, bill. Each call is awaited before the next is issued because
// later calls reference identifiers returned by earlier ones.
//
// If the site call fails, nothing was created and the returned Result is
// empty. If a later call fails, the sequence stops immediately; everything
// created so far stays persisted server-side with no rollback and no
// automatic retry. On full success the cached site/asset/meter listings
// are invalidated so other views observe the new records.
func (p *Provisioner) Run(ctx context.Context, plan *Plan) (*Result, error) {
	result := &Result{SiteName: plan.Site.Name}

	site, err := p.createSite(ctx, plan)
	if err != nil {
		return result, err
	}
	result.SiteID = site.ID

	if err := p.createAssets(ctx, plan, site.ID, result); err != nil {
		return result, err
	}

	if err := p.createMeters(ctx, plan, site.ID, result); err != nil {
		return result, err
	}

	if err := p.createBill(ctx, plan, site.ID, result); err != nil {
		return result, err
	}

	p.client.InvalidateSites()
	p.client.InvalidateAssets()
	p.client.InvalidateMeters()

	return result, nil
}

func (p *Provisioner) createSite(ctx context.Context, plan *Plan) (*api.Site, error) {
	p.observer.Event(Event{Type: EventPhaseStarted, Phase: PhaseSite})
	p.observer.Event(Event{Type: EventResourceCreating, Phase: PhaseSite, Resource: plan.Site.Name})

	site, err := p.client.CreateSite(ctx, plan.Site)
	if err != nil {
		p.observer.Event(Event{Type: EventResourceFailed, Phase: PhaseSite, Resource: plan.Site.Name, Message: err.Error()})
		p.observer.Event(Event{Type: EventPhaseFailed, Phase: PhaseSite, Message: err.Error()})
		return nil, fmt.Errorf("failed to create site: %w", err)
	}

	p.observer.Event(Event{Type: EventResourceCreated, Phase: PhaseSite, Resource: site.Name, Message: fmt.Sprintf("id=%d", site.ID)})
	p.observer.Event(Event{Type: EventPhaseCompleted, Phase: PhaseSite})
	return site, nil
}

func (p *Provisioner) createAssets(ctx context.Context, plan *Plan, siteID int64, result *Result) error {
	if len(plan.Assets) == 0 {
		return nil
	}

	p.observer.Event(Event{Type: EventPhaseStarted, Phase: PhaseAssets})
	for i, planned := range plan.Assets {
		p.observer.Event(Event{Type: EventResourceCreating, Phase: PhaseAssets, Resource: planned.Name})

		asset, err := p.client.CreateAsset(ctx, api.CreateAssetOpts{
			SiteID:           siteID,
			Name:             planned.Name,
			Type:             planned.Type,
			RatedCapacityKW:  planned.RatedCapacityKW,
			IsCritical:       planned.IsCritical,
			RequiresMetering: planned.RequiresMetering,
		})
		if err != nil {
			p.observer.Event(Event{Type: EventResourceFailed, Phase: PhaseAssets, Resource: planned.Name, Message: err.Error()})
			p.observer.Event(Event{Type: EventPhaseFailed, Phase: PhaseAssets, Message: err.Error()})
			return fmt.Errorf("failed to create asset %q: %w", planned.Name, err)
		}

		result.AssetRecords = append(result.AssetRecords, AssetRecord{ID: asset.ID, Name: asset.Name})
		p.observer.Event(Event{Type: EventResourceCreated, Phase: PhaseAssets, Resource: asset.Name, Message: fmt.Sprintf("id=%d", asset.ID)})
		p.observer.Progress(PhaseAssets, i+1, len(plan.Assets))
	}
	p.observer.Event(Event{Type: EventPhaseCompleted, Phase: PhaseAssets})
	return nil
}

func (p *Provisioner) createMeters(ctx context.Context, plan *Plan, siteID int64, result *Result) error {
	if len(plan.Meters) == 0 {
		return nil
	}

	p.observer.Event(Event{Type: EventPhaseStarted, Phase: PhaseMeters})
	for i, planned := range plan.Meters {
		opts := api.CreateMeterOpts{
			SiteID:   siteID,
			MeterID:  planned.MeterID,
			Name:     planned.Name,
			IsActive: planned.IsActive,
		}
		// The link was recorded as a position; it resolves against the
		// asset ids collected in creation order.
		if planned.AssetIndex != NoLinkedAsset && planned.AssetIndex < len(result.AssetRecords) {
			opts.AssetID = ptr.Int64(result.AssetRecords[planned.AssetIndex].ID)
		}

		p.observer.Event(Event{Type: EventResourceCreating, Phase: PhaseMeters, Resource: planned.MeterID})

		meter, err := p.client.CreateMeter(ctx, opts)
		if err != nil {
			p.observer.Event(Event{Type: EventResourceFailed, Phase: PhaseMeters, Resource: planned.MeterID, Message: err.Error()})
			p.observer.Event(Event{Type: EventPhaseFailed, Phase: PhaseMeters, Message: err.Error()})
			return fmt.Errorf("failed to create meter %q: %w", planned.MeterID, err)
		}

		result.MetersCreated++
		p.observer.Event(Event{Type: EventResourceCreated, Phase: PhaseMeters, Resource: planned.MeterID, Message: fmt.Sprintf("id=%d", meter.ID)})
		p.observer.Progress(PhaseMeters, i+1, len(plan.Meters))
	}
	p.observer.Event(Event{Type: EventPhaseCompleted, Phase: PhaseMeters})
	return nil
}

func (p *Provisioner) createBill(ctx context.Context, plan *Plan, siteID int64, result *Result) error {
	if plan.Bill == nil {
		return nil
	}

	p.observer.Event(Event{Type: EventPhaseStarted, Phase: PhaseBill})
	p.observer.Event(Event{Type: EventResourceCreating, Phase: PhaseBill, Resource: plan.Bill.BillDate})

	_, err := p.client.CreateBill(ctx, api.CreateBillOpts{
		SiteID:      siteID,
		BillDate:    plan.Bill.BillDate,
		PeriodStart: plan.Bill.PeriodStart,
		PeriodEnd:   plan.Bill.PeriodEnd,
		TotalKWH:    plan.Bill.TotalKWH,
		TotalAmount: plan.Bill.TotalAmount,
		IsValidated: false,
	})
	if err != nil {
		p.observer.Event(Event{Type: EventResourceFailed, Phase: PhaseBill, Resource: plan.Bill.BillDate, Message: err.Error()})
		p.observer.Event(Event{Type: EventPhaseFailed, Phase: PhaseBill, Message: err.Error()})
		return fmt.Errorf("failed to create bill: %w", err)
	}

	result.BillCreated = true
	p.observer.Event(Event{Type: EventResourceCreated, Phase: PhaseBill, Resource: plan.Bill.BillDate})
	p.observer.Event(Event{Type: EventPhaseCompleted, Phase: PhaseBill})
	return nil
}
