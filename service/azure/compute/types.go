package azurecompute

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/shapedthought/azure-vm-assessment/model"
)

type service struct {
	subscriptionID string
	vmClient       *armcompute.VirtualMachinesClient
	disksClient    *armcompute.DisksClient
	sizesClient    *armcompute.VirtualMachineSizesClient
}

type ComputeService interface {
	ListVirtualMachines(ctx context.Context) ([]model.VirtualMachine, error)
	ListDisks(ctx context.Context) ([]model.Disk, error)

	// ListSizes satisfies inventory.SizeCatalogFetcher. Size catalogs
	// are region-scoped, not subscription-scoped, so any subscription's
	// client can serve the whole run.
	ListSizes(ctx context.Context, location string) ([]model.SizeCapability, error)
}

// Credential is passed to allow reuse across services
type Credential = azidentity.DefaultAzureCredential
