package inventory

import (
	"context"

	"github.com/shapedthought/azure-vm-assessment/model"
)

// Placeholder values used when a cross-reference does not resolve.
// Records always carry these instead of omitting fields so the output
// schema stays uniform.
const (
	NotAvailable  = "N/A"
	TierUnmanaged = "unmanaged"
	Unparseable   = "unparseable"
)

// SizeCatalogFetcher retrieves the full VM size catalog for one region.
// The SKU cache calls it at most once per distinct region in a run.
type SizeCatalogFetcher interface {
	ListSizes(ctx context.Context, location string) ([]model.SizeCapability, error)
}
