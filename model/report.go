package model

// EnrichedVMRecord is the flat output row produced for every VM in a
// subscription. Optional fields that failed to resolve carry explicit
// placeholders ("N/A" for capability data, empty string for public IP
// and power state) so the schema is uniform for downstream consumers.
type EnrichedVMRecord struct {
	Subscription  string
	VMID          string
	Name          string
	ResourceGroup string
	Location      string
	Size          string
	OSType        string
	Cores         string
	MemoryGB      string
	PowerState    string

	DiskCount   int
	TotalDiskGB int32
	DiskDetails []string

	VNet           string
	Subnet         string
	PrivateIP      string
	SecurityGroups []string
	PublicIP       string
	// ExtraNICs counts interfaces beyond the primary one; the record
	// stays one-per-VM instead of duplicating rows per interface.
	ExtraNICs int
}

// ReportBatch is the ordered per-subscription result handed to the
// export layer. Diagnostics are the non-fatal failures collected during
// the pass, each tagged with the resource it concerns.
type ReportBatch struct {
	Subscription Subscription
	Records      []EnrichedVMRecord
	Diagnostics  []string
}

// Reservation is a reserved-instance order that is expiring soon or
// recently expired, surfaced by the commitments report.
type Reservation struct {
	ID              string
	DisplayName     string
	Status          string // "expiring", "expired"
	DaysUntilExpiry int
}
