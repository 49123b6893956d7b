package response

// Subscription represents one Azure subscription
type Subscription struct {
	SubscriptionID string `json:"subscription_id"`
	DisplayName    string `json:"display_name"`
	TenantID       string `json:"tenant_id"`
}

// VMRecord is the JSON shape of one enriched footprint row
type VMRecord struct {
	Name           string   `json:"name"`
	ResourceGroup  string   `json:"resource_group"`
	Location       string   `json:"location"`
	Size           string   `json:"size"`
	OSType         string   `json:"os_type"`
	Cores          string   `json:"cores"`
	MemoryGB       string   `json:"memory_gb"`
	PowerState     string   `json:"power_state,omitempty"`
	DiskCount      int      `json:"disk_count"`
	TotalDiskGB    int32    `json:"total_disk_gb"`
	DiskDetails    []string `json:"disk_details,omitempty"`
	VNet           string   `json:"vnet,omitempty"`
	Subnet         string   `json:"subnet,omitempty"`
	PrivateIP      string   `json:"private_ip,omitempty"`
	SecurityGroups []string `json:"security_groups,omitempty"`
	PublicIP       string   `json:"public_ip,omitempty"`
	ExtraNICs      int      `json:"extra_nics,omitempty"`
}

// Assessment is one subscription's footprint with its diagnostics
type Assessment struct {
	Subscription Subscription `json:"subscription"`
	VMCount      int          `json:"vm_count"`
	TotalDiskGB  int64        `json:"total_disk_gb"`
	Records      []VMRecord   `json:"records"`
	Diagnostics  []string     `json:"diagnostics,omitempty"`
}

// Reservation represents an expiring or expired reservation order
type Reservation struct {
	ID              string `json:"id"`
	DisplayName     string `json:"display_name"`
	Status          string `json:"status"`
	DaysUntilExpiry int    `json:"days_until_expiry"`
}
