package inventory

import "github.com/shapedthought/azure-vm-assessment/model"

// Assemble collects a subscription's enriched records into one batch,
// preserving the order in which the VMs were enumerated. Batches across
// subscriptions are independent of each other.
func Assemble(sub model.Subscription, records []model.EnrichedVMRecord, diags []string) model.ReportBatch {
	return model.ReportBatch{
		Subscription: sub,
		Records:      records,
		Diagnostics:  diags,
	}
}
