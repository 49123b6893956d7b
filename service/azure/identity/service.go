package azureidentity

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/shapedthought/azure-vm-assessment/model"
)

func NewService(credential *Credential) (*service, error) {
	client, err := armsubscriptions.NewClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriptions client: %w", err)
	}

	return &service{client: client}, nil
}

// ListSubscriptions implements service.IdentityService
// Returns every subscription the credential can see, in API order.
func (s *service) ListSubscriptions(ctx context.Context) ([]model.Subscription, error) {
	var subscriptions []model.Subscription

	pager := s.client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list subscriptions: %w", err)
		}

		for _, sub := range page.Value {
			subscriptions = append(subscriptions, convertSubscription(sub))
		}
	}

	return subscriptions, nil
}

// GetSubscription returns a single subscription, for runs scoped with
// --subscription.
func (s *service) GetSubscription(ctx context.Context, subscriptionID string) (*model.Subscription, error) {
	resp, err := s.client.Get(ctx, subscriptionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription %s: %w", subscriptionID, err)
	}

	sub := convertSubscription(&resp.Subscription)
	return &sub, nil
}

func convertSubscription(sub *armsubscriptions.Subscription) model.Subscription {
	out := model.Subscription{}
	if sub.SubscriptionID != nil {
		out.ID = *sub.SubscriptionID
	}
	if sub.DisplayName != nil {
		out.Name = *sub.DisplayName
	} else {
		out.Name = out.ID
	}
	if sub.TenantID != nil {
		out.TenantID = *sub.TenantID
	}
	return out
}
