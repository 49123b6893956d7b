package azureidentity

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/shapedthought/azure-vm-assessment/model"
)

type service struct {
	client *armsubscriptions.Client
}

type IdentityService interface {
	ListSubscriptions(ctx context.Context) ([]model.Subscription, error)
	GetSubscription(ctx context.Context, subscriptionID string) (*model.Subscription, error)
}

// Credential is passed to allow reuse across services
type Credential = azidentity.DefaultAzureCredential
