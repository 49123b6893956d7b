package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/shapedthought/azure-vm-assessment/model"
	azureidentity "github.com/shapedthought/azure-vm-assessment/service/azure/identity"
	"github.com/shapedthought/azure-vm-assessment/service/export"
	"github.com/shapedthought/azure-vm-assessment/service/inventory"
	"go.uber.org/zap"
)

// exporter may be nil when the caller only wants the batches (MCP).
func NewService(identity azureidentity.IdentityService, newFetchers FetcherFactory, exporter export.Writer) *service {
	return &service{
		identity:    identity,
		newFetchers: newFetchers,
		exporter:    exporter,
	}
}

// Run implements service.AssessmentService
func (s *service) Run(ctx context.Context, subscriptionID string) ([]model.ReportBatch, error) {
	log := zap.S().Named("assess")

	subs, err := s.resolveSubscriptions(ctx, subscriptionID)
	if err != nil {
		// Run-level failure: nothing can be assessed.
		return nil, err
	}
	if len(subs) == 0 {
		return nil, errors.New("no subscriptions visible to the credential")
	}

	var batches []model.ReportBatch
	for _, sub := range subs {
		// A run-level abort stops starting new passes.
		if err := ctx.Err(); err != nil {
			return batches, err
		}

		batch, err := s.assessSubscription(ctx, sub)
		if err != nil {
			// Per-subscription failure: abandon this pass, keep going.
			log.Errorf("subscription %s (%s): %v", sub.Name, sub.ID, err)
			continue
		}

		if s.exporter != nil {
			if err := s.exporter.WriteBatch(batch); err != nil {
				return batches, fmt.Errorf("failed to export subscription %s: %w", sub.Name, err)
			}
		}
		batches = append(batches, batch)
	}

	return batches, nil
}

func (s *service) resolveSubscriptions(ctx context.Context, subscriptionID string) ([]model.Subscription, error) {
	if subscriptionID != "" {
		sub, err := s.identity.GetSubscription(ctx, subscriptionID)
		if err != nil {
			return nil, err
		}
		return []model.Subscription{*sub}, nil
	}
	return s.identity.ListSubscriptions(ctx)
}

func (s *service) assessSubscription(ctx context.Context, sub model.Subscription) (model.ReportBatch, error) {
	log := zap.S().Named("assess")

	compute, network, err := s.newFetchers(sub.ID)
	if err != nil {
		return model.ReportBatch{}, err
	}

	// The cache is created from the first subscription's compute client;
	// size catalogs are region-scoped, so it serves every later pass.
	if s.skus == nil {
		s.skus = inventory.NewSKUCache(compute)
		s.correlator = inventory.NewCorrelator(s.skus)
	}

	vms, err := compute.ListVirtualMachines(ctx)
	if err != nil {
		return model.ReportBatch{}, err
	}
	disks, err := compute.ListDisks(ctx)
	if err != nil {
		return model.ReportBatch{}, err
	}
	nics, err := network.ListInterfaces(ctx)
	if err != nil {
		return model.ReportBatch{}, err
	}
	addrs, err := network.ListPublicAddresses(ctx)
	if err != nil {
		return model.ReportBatch{}, err
	}

	log.Infof("subscription %s: %d VMs, %d disks, %d NICs, %d public IPs",
		sub.Name, len(vms), len(disks), len(nics), len(addrs))

	idx := inventory.NewDiskIndex(disks)

	records := make([]model.EnrichedVMRecord, 0, len(vms))
	var diags []string
	for _, vm := range vms {
		rec, vmDiags := s.correlator.Enrich(ctx, sub, vm, idx, nics, addrs)
		records = append(records, rec)
		diags = append(diags, vmDiags...)
	}
	for _, d := range diags {
		log.Warnf("subscription %s: %s", sub.Name, d)
	}

	return inventory.Assemble(sub, records, diags), nil
}
