package azurenetwork

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v5"
	"github.com/shapedthought/azure-vm-assessment/model"
)

type service struct {
	subscriptionID string
	nicClient      *armnetwork.InterfacesClient
	publicIPClient *armnetwork.PublicIPAddressesClient
}

type NetworkService interface {
	// ListInterfaces returns only interfaces attached to a VM; the
	// correlator never sees ownerless NICs.
	ListInterfaces(ctx context.Context) ([]model.NetworkInterface, error)
	ListPublicAddresses(ctx context.Context) ([]model.PublicAddress, error)
}

// Credential is passed to allow reuse across services
type Credential = azidentity.DefaultAzureCredential
