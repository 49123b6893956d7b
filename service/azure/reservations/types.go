package azurereservations

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/reservations/armreservations"
	"github.com/shapedthought/azure-vm-assessment/model"
)

type service struct {
	client *armreservations.ReservationOrderClient
}

type ReservationsService interface {
	// ListExpiringReservations returns reserved VM instance orders
	// expiring within the next 30 days or expired within the last 30.
	ListExpiringReservations(ctx context.Context) ([]model.Reservation, error)
}

// Credential is passed to allow reuse across services
type Credential = azidentity.DefaultAzureCredential
