package inventory

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/shapedthought/azure-vm-assessment/model"
)

// Correlator joins a VM with its disk, network and size-capability data
// into one enriched record. It holds no per-subscription state; the
// disk index and the per-subscription collections are passed in per
// call so the same correlator can serve every pass in a run.
type Correlator struct {
	skus *SKUCache
}

func NewCorrelator(skus *SKUCache) *Correlator {
	return &Correlator{skus: skus}
}

// Enrich produces exactly one record for the VM, regardless of how many
// cross-references fail to resolve. Non-fatal failures are returned as
// diagnostics tagged with the VM ID; they never abort the batch.
func (c *Correlator) Enrich(ctx context.Context, sub model.Subscription, vm model.VirtualMachine, disks *DiskIndex, nics []model.NetworkInterface, addrs []model.PublicAddress) (model.EnrichedVMRecord, []string) {
	var diags []string

	rec := model.EnrichedVMRecord{
		Subscription:  sub.Name,
		VMID:          vm.ID,
		Name:          vm.Name,
		ResourceGroup: vm.ResourceGroup,
		Location:      vm.Location,
		Size:          vm.Size,
		OSType:        vm.OSType,
		PowerState:    vm.PowerState,
		Cores:         NotAvailable,
		MemoryGB:      NotAvailable,
	}

	capability, found, err := c.skus.Resolve(ctx, vm.Location, vm.Size)
	switch {
	case err != nil:
		diags = append(diags, fmt.Sprintf("vm %s: %v", vm.ID, err))
	case found:
		rec.Cores = strconv.Itoa(int(capability.Cores))
		rec.MemoryGB = strconv.FormatFloat(capability.MemoryGB, 'f', -1, 64)
	}

	c.addDisk(&rec, disks, vm.OSDisk)
	for _, dd := range vm.DataDisks {
		c.addDisk(&rec, disks, dd)
	}

	primaryFound := false
	for _, nic := range nics {
		if !strings.EqualFold(nic.VMID, vm.ID) {
			continue
		}
		if primaryFound {
			rec.ExtraNICs++
			continue
		}
		primaryFound = true

		rec.VNet, rec.Subnet = splitSubnetID(nic.SubnetID)
		rec.PrivateIP = nic.PrivateIP
		for _, nsg := range nic.SecurityGroups {
			rec.SecurityGroups = append(rec.SecurityGroups, resourceName(nsg))
		}
		rec.PublicIP = matchPublicAddress(nic.IPConfigID, addrs)
	}

	return rec, diags
}

// addDisk accumulates one disk reference into the record: declared size
// always counts toward the total, and the tier falls back to the
// unmanaged sentinel when the reference is absent from the index.
func (c *Correlator) addDisk(rec *model.EnrichedVMRecord, disks *DiskIndex, ref model.DiskRef) {
	tier := TierUnmanaged
	if d, ok := disks.Lookup(ref.ID); ok {
		tier = d.Tier
	}

	name := ref.Name
	if name == "" {
		name = resourceName(ref.ID)
	}

	rec.DiskCount++
	rec.TotalDiskGB += ref.SizeGB
	rec.DiskDetails = append(rec.DiskDetails, fmt.Sprintf("%s, %d GiB, %s", name, ref.SizeGB, tier))
}

// matchPublicAddress returns the first public address whose IP
// configuration reference matches the interface's IP configuration, in
// fetch order. No match yields an empty string.
func matchPublicAddress(ipConfigID string, addrs []model.PublicAddress) string {
	if ipConfigID == "" {
		return ""
	}
	for _, a := range addrs {
		if strings.EqualFold(a.IPConfigID, ipConfigID) {
			return a.Address
		}
	}
	return ""
}

// splitSubnetID parses a subnet resource ID into its virtual network
// and subnet names. An unexpected path shape yields the unparseable
// placeholder for both, never an error.
func splitSubnetID(subnetID string) (vnet, subnet string) {
	id, err := arm.ParseResourceID(subnetID)
	if err != nil || id.Parent == nil || id.Parent.Name == "" ||
		!strings.EqualFold(id.ResourceType.Type, "virtualNetworks/subnets") {
		return Unparseable, Unparseable
	}
	return id.Parent.Name, id.Name
}

// resourceName extracts the trailing resource name from an ARM ID,
// falling back to the raw string when it does not parse.
func resourceName(resourceID string) string {
	id, err := arm.ParseResourceID(resourceID)
	if err != nil {
		return resourceID
	}
	return id.Name
}
