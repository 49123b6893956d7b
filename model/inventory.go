package model

// Subscription identifies the root scope for all other entities.
type Subscription struct {
	ID       string
	Name     string
	TenantID string
}

// DiskRef is a VM's reference to an attached disk: the managed disk
// resource ID may point outside the subscription (or at no managed disk
// at all), so the declared size travels with the reference.
type DiskRef struct {
	ID     string
	Name   string
	SizeGB int32
}

// VirtualMachine is an immutable snapshot of one VM for the duration of
// an assessment pass.
type VirtualMachine struct {
	ID            string
	Name          string
	ResourceGroup string
	Location      string
	Size          string
	OSType        string
	OSDisk        DiskRef
	DataDisks     []DiskRef
	// PowerState is empty when the instance view query failed.
	PowerState string
}

// Disk is a managed disk as enumerated from the subscription.
type Disk struct {
	ID     string
	Name   string
	Tier   string
	SizeGB int32
}

// SizeCapability is the hardware profile of one VM size in one region.
type SizeCapability struct {
	Name     string
	Cores    int32
	MemoryGB float64
}

// NetworkInterface is an owner-attached NIC. Interfaces without a VM
// reference are filtered out by the fetcher and never reach the
// correlator.
type NetworkInterface struct {
	ID             string
	VMID           string
	IPConfigID     string
	SubnetID       string
	PrivateIP      string
	SecurityGroups []string
}

// PublicAddress associates a public IP with the NIC IP configuration
// it is bound to.
type PublicAddress struct {
	ID         string
	IPConfigID string
	Address    string
}
