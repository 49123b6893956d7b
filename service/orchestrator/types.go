package orchestrator

import (
	"context"

	"github.com/shapedthought/azure-vm-assessment/model"
	azurecompute "github.com/shapedthought/azure-vm-assessment/service/azure/compute"
	azureidentity "github.com/shapedthought/azure-vm-assessment/service/azure/identity"
	azurenetwork "github.com/shapedthought/azure-vm-assessment/service/azure/network"
	"github.com/shapedthought/azure-vm-assessment/service/export"
	"github.com/shapedthought/azure-vm-assessment/service/inventory"
)

// FetcherFactory builds the per-subscription resource fetchers.
// Selecting a subscription changes which collections are visible, so
// each pass gets its own clients.
type FetcherFactory func(subscriptionID string) (azurecompute.ComputeService, azurenetwork.NetworkService, error)

type service struct {
	identity    azureidentity.IdentityService
	newFetchers FetcherFactory
	exporter    export.Writer

	// skus persists across subscription passes: capability data is
	// keyed by region, and regions repeat between subscriptions.
	skus       *inventory.SKUCache
	correlator *inventory.Correlator
}

type AssessmentService interface {
	// Run assesses every visible subscription, or just one when
	// subscriptionID is set. It returns the batches that completed;
	// only subscription enumeration failures are fatal.
	Run(ctx context.Context, subscriptionID string) ([]model.ReportBatch, error)
}
