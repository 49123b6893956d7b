package azurereservations

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/reservations/armreservations"
	"github.com/shapedthought/azure-vm-assessment/model"
)

func NewService(credential *Credential) (*service, error) {
	client, err := armreservations.NewReservationOrderClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservations client: %w", err)
	}

	return &service{client: client}, nil
}

// ListExpiringReservations implements service.ReservationsService
func (s *service) ListExpiringReservations(ctx context.Context) ([]model.Reservation, error) {
	orders, err := s.listOrders(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	next30Days := now.Add(30 * 24 * time.Hour)
	prev30Days := now.Add(-30 * 24 * time.Hour)

	var result []model.Reservation
	for _, order := range orders {
		if order.Properties == nil || order.Properties.ExpiryDate == nil {
			continue
		}

		name := ""
		if order.Name != nil {
			name = *order.Name
		}
		displayName := ""
		if order.Properties.DisplayName != nil {
			displayName = *order.Properties.DisplayName
		}

		expiryTime := *order.Properties.ExpiryDate
		daysDiff := int(expiryTime.Sub(now).Hours() / 24)

		if order.Properties.ProvisioningState != nil &&
			*order.Properties.ProvisioningState == armreservations.ProvisioningStateSucceeded &&
			expiryTime.Before(next30Days) && expiryTime.After(now) {
			result = append(result, model.Reservation{
				ID:              name,
				DisplayName:     displayName,
				Status:          "expiring",
				DaysUntilExpiry: daysDiff,
			})
		}

		if expiryTime.After(prev30Days) && expiryTime.Before(now) {
			result = append(result, model.Reservation{
				ID:              name,
				DisplayName:     displayName,
				Status:          "expired",
				DaysUntilExpiry: daysDiff,
			})
		}
	}

	return result, nil
}

func (s *service) listOrders(ctx context.Context) ([]*armreservations.ReservationOrderResponse, error) {
	var orders []*armreservations.ReservationOrderResponse

	pager := s.client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			// The reservations API may be unavailable or unauthorized
			// for the credential; commitments are best-effort.
			return orders, nil
		}
		orders = append(orders, page.Value...)
	}

	return orders, nil
}
