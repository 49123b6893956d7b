package response

import "github.com/shapedthought/azure-vm-assessment/model"

func ConvertSubscription(sub model.Subscription) Subscription {
	return Subscription{
		SubscriptionID: sub.ID,
		DisplayName:    sub.Name,
		TenantID:       sub.TenantID,
	}
}

func ConvertBatch(batch model.ReportBatch) Assessment {
	out := Assessment{
		Subscription: ConvertSubscription(batch.Subscription),
		VMCount:      len(batch.Records),
		Diagnostics:  batch.Diagnostics,
	}

	for _, rec := range batch.Records {
		out.TotalDiskGB += int64(rec.TotalDiskGB)
		out.Records = append(out.Records, VMRecord{
			Name:           rec.Name,
			ResourceGroup:  rec.ResourceGroup,
			Location:       rec.Location,
			Size:           rec.Size,
			OSType:         rec.OSType,
			Cores:          rec.Cores,
			MemoryGB:       rec.MemoryGB,
			PowerState:     rec.PowerState,
			DiskCount:      rec.DiskCount,
			TotalDiskGB:    rec.TotalDiskGB,
			DiskDetails:    rec.DiskDetails,
			VNet:           rec.VNet,
			Subnet:         rec.Subnet,
			PrivateIP:      rec.PrivateIP,
			SecurityGroups: rec.SecurityGroups,
			PublicIP:       rec.PublicIP,
			ExtraNICs:      rec.ExtraNICs,
		})
	}

	return out
}

func ConvertReservations(reservations []model.Reservation) []Reservation {
	out := make([]Reservation, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, Reservation{
			ID:              r.ID,
			DisplayName:     r.DisplayName,
			Status:          r.Status,
			DaysUntilExpiry: r.DaysUntilExpiry,
		})
	}
	return out
}
