package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/shapedthought/azure-vm-assessment/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	diskOS    = "/subscriptions/s1/resourceGroups/rg1/providers/Microsoft.Compute/disks/vm1-os"
	diskData1 = "/subscriptions/s1/resourceGroups/rg1/providers/Microsoft.Compute/disks/vm1-data-1"
	diskData2 = "/subscriptions/s1/resourceGroups/rg1/providers/Microsoft.Compute/disks/vm1-data-2"
	subnetID  = "/subscriptions/s1/resourceGroups/rg1/providers/Microsoft.Network/virtualNetworks/vnet1/subnets/web"
	nsgID     = "/subscriptions/s1/resourceGroups/rg1/providers/Microsoft.Network/networkSecurityGroups/web-nsg"
)

var testSub = model.Subscription{ID: "s1", Name: "prod", TenantID: "t1"}

func testVM() model.VirtualMachine {
	return model.VirtualMachine{
		ID:            "/subscriptions/s1/resourceGroups/rg1/providers/Microsoft.Compute/virtualMachines/vm1",
		Name:          "vm1",
		ResourceGroup: "rg1",
		Location:      "westeurope",
		Size:          "Standard_B2s",
		OSType:        "Linux",
		PowerState:    "running",
		OSDisk:        model.DiskRef{ID: diskOS, Name: "vm1-os", SizeGB: 30},
		DataDisks: []model.DiskRef{
			{ID: diskData1, Name: "vm1-data-1", SizeGB: 128},
			{ID: diskData2, Name: "vm1-data-2", SizeGB: 256},
		},
	}
}

func testCorrelator() (*Correlator, *fakeCatalog) {
	catalog := newFakeCatalog(map[string][]model.SizeCapability{
		"westeurope": {{Name: "Standard_B2s", Cores: 2, MemoryGB: 4}},
		"eastus":     {{Name: "Standard_D4s_v5", Cores: 4, MemoryGB: 16}},
	})
	return NewCorrelator(NewSKUCache(catalog)), catalog
}

func TestEnrichAggregatesDiskCapacity(t *testing.T) {
	c, _ := testCorrelator()
	idx := NewDiskIndex([]model.Disk{
		{ID: diskOS, Name: "vm1-os", Tier: "Premium_LRS", SizeGB: 30},
		{ID: diskData1, Name: "vm1-data-1", Tier: "Standard_LRS", SizeGB: 128},
		{ID: diskData2, Name: "vm1-data-2", Tier: "StandardSSD_LRS", SizeGB: 256},
	})

	rec, diags := c.Enrich(context.Background(), testSub, testVM(), idx, nil, nil)

	assert.Empty(t, diags)
	assert.Equal(t, 3, rec.DiskCount)
	assert.Equal(t, int32(414), rec.TotalDiskGB)
	// Data disk annotations follow the VM's own data-disk ordering.
	require.Len(t, rec.DiskDetails, 3)
	assert.Equal(t, "vm1-os, 30 GiB, Premium_LRS", rec.DiskDetails[0])
	assert.Equal(t, "vm1-data-1, 128 GiB, Standard_LRS", rec.DiskDetails[1])
	assert.Equal(t, "vm1-data-2, 256 GiB, StandardSSD_LRS", rec.DiskDetails[2])
}

func TestEnrichUnmanagedDiskStillCounts(t *testing.T) {
	c, _ := testCorrelator()
	// Only the OS disk is present in the index; the data disks resolve
	// to the unmanaged sentinel but their sizes still accumulate.
	idx := NewDiskIndex([]model.Disk{
		{ID: diskOS, Name: "vm1-os", Tier: "Premium_LRS", SizeGB: 30},
	})

	rec, diags := c.Enrich(context.Background(), testSub, testVM(), idx, nil, nil)

	assert.Empty(t, diags)
	assert.Equal(t, int32(414), rec.TotalDiskGB)
	assert.Equal(t, "vm1-data-1, 128 GiB, unmanaged", rec.DiskDetails[1])
	assert.Equal(t, "vm1-data-2, 256 GiB, unmanaged", rec.DiskDetails[2])
}

func TestEnrichResolvesCapability(t *testing.T) {
	c, _ := testCorrelator()

	rec, diags := c.Enrich(context.Background(), testSub, testVM(), NewDiskIndex(nil), nil, nil)

	assert.Empty(t, diags)
	assert.Equal(t, "2", rec.Cores)
	assert.Equal(t, "4", rec.MemoryGB)
}

func TestEnrichUnknownSizeGetsPlaceholders(t *testing.T) {
	c, _ := testCorrelator()
	vm := testVM()
	vm.Size = "Basic_A0_Legacy"

	rec, diags := c.Enrich(context.Background(), testSub, vm, NewDiskIndex(nil), nil, nil)

	assert.Empty(t, diags)
	assert.Equal(t, NotAvailable, rec.Cores)
	assert.Equal(t, NotAvailable, rec.MemoryGB)
}

func TestEnrichCatalogFailureEmitsPartialRecord(t *testing.T) {
	c, catalog := testCorrelator()
	catalog.err = errors.New("throttled")

	rec, diags := c.Enrich(context.Background(), testSub, testVM(), NewDiskIndex(nil), nil, nil)

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "vm "+rec.VMID)
	assert.Equal(t, NotAvailable, rec.Cores)
	assert.Equal(t, NotAvailable, rec.MemoryGB)
	// Everything that does not depend on the catalog still resolved.
	assert.Equal(t, "vm1", rec.Name)
	assert.Equal(t, int32(414), rec.TotalDiskGB)
}

func TestEnrichNetworkIdentity(t *testing.T) {
	c, _ := testCorrelator()
	vm := testVM()

	nics := []model.NetworkInterface{
		{
			ID:             "/subscriptions/s1/resourceGroups/rg1/providers/Microsoft.Network/networkInterfaces/other-nic",
			VMID:           "/subscriptions/s1/resourceGroups/rg1/providers/Microsoft.Compute/virtualMachines/vm2",
			IPConfigID:     "other-ipconfig",
			PrivateIP:      "10.0.0.9",
			SubnetID:       subnetID,
			SecurityGroups: []string{nsgID},
		},
		{
			ID:             "/subscriptions/s1/resourceGroups/rg1/providers/Microsoft.Network/networkInterfaces/vm1-nic",
			VMID:           vm.ID,
			IPConfigID:     "/subscriptions/s1/resourceGroups/rg1/providers/Microsoft.Network/networkInterfaces/vm1-nic/ipConfigurations/ipconfig1",
			PrivateIP:      "10.0.0.4",
			SubnetID:       subnetID,
			SecurityGroups: []string{nsgID},
		},
	}
	addrs := []model.PublicAddress{
		{
			ID:         "/subscriptions/s1/resourceGroups/rg1/providers/Microsoft.Network/publicIPAddresses/vm1-pip",
			IPConfigID: "/subscriptions/s1/resourceGroups/rg1/providers/Microsoft.Network/networkInterfaces/vm1-nic/ipConfigurations/ipconfig1",
			Address:    "20.50.100.1",
		},
	}

	rec, diags := c.Enrich(context.Background(), testSub, vm, NewDiskIndex(nil), nics, addrs)

	assert.Empty(t, diags)
	assert.Equal(t, "vnet1", rec.VNet)
	assert.Equal(t, "web", rec.Subnet)
	assert.Equal(t, "10.0.0.4", rec.PrivateIP)
	assert.Equal(t, []string{"web-nsg"}, rec.SecurityGroups)
	assert.Equal(t, "20.50.100.1", rec.PublicIP)
	assert.Equal(t, 0, rec.ExtraNICs)
}

func TestEnrichNoMatchingPublicAddress(t *testing.T) {
	c, _ := testCorrelator()
	vm := testVM()

	nics := []model.NetworkInterface{
		{VMID: vm.ID, IPConfigID: "ipconfig-a", PrivateIP: "10.0.0.4", SubnetID: subnetID},
	}
	addrs := []model.PublicAddress{
		{IPConfigID: "ipconfig-b", Address: "20.50.100.2"},
	}

	rec, _ := c.Enrich(context.Background(), testSub, vm, NewDiskIndex(nil), nics, addrs)

	assert.Empty(t, rec.PublicIP)
}

func TestEnrichCountsExtraInterfaces(t *testing.T) {
	c, _ := testCorrelator()
	vm := testVM()

	nics := []model.NetworkInterface{
		{VMID: vm.ID, IPConfigID: "ipconfig-a", PrivateIP: "10.0.0.4", SubnetID: subnetID},
		{VMID: vm.ID, IPConfigID: "ipconfig-b", PrivateIP: "10.0.1.4", SubnetID: subnetID},
	}

	rec, _ := c.Enrich(context.Background(), testSub, vm, NewDiskIndex(nil), nics, nil)

	// One record per VM: the first interface in fetch order is the
	// primary, the rest are counted.
	assert.Equal(t, "10.0.0.4", rec.PrivateIP)
	assert.Equal(t, 1, rec.ExtraNICs)
}

func TestEnrichTwoRegionScenario(t *testing.T) {
	c, catalog := testCorrelator()
	idx := NewDiskIndex(nil)

	vms := []model.VirtualMachine{
		{ID: "vm-a1", Name: "a1", Location: "westeurope", Size: "Standard_B2s", OSDisk: model.DiskRef{Name: "a1-os", SizeGB: 30}},
		{ID: "vm-a2", Name: "a2", Location: "westeurope", Size: "Standard_B2s", OSDisk: model.DiskRef{Name: "a2-os", SizeGB: 30}},
		{ID: "vm-b1", Name: "b1", Location: "eastus", Size: "Standard_Unknown", OSDisk: model.DiskRef{Name: "b1-os", SizeGB: 30}},
	}

	var records []model.EnrichedVMRecord
	for _, vm := range vms {
		rec, diags := c.Enrich(context.Background(), testSub, vm, idx, nil, nil)
		assert.Empty(t, diags)
		records = append(records, rec)
	}

	// Exactly one catalog fetch per region and one record per VM.
	require.Len(t, records, 3)
	assert.Equal(t, 1, catalog.calls["westeurope"])
	assert.Equal(t, 1, catalog.calls["eastus"])

	assert.Equal(t, "2", records[0].Cores)
	assert.Equal(t, records[0].Cores, records[1].Cores)
	assert.Equal(t, records[0].MemoryGB, records[1].MemoryGB)
	assert.Equal(t, NotAvailable, records[2].Cores)
	assert.Equal(t, NotAvailable, records[2].MemoryGB)
}

func TestSplitSubnetID(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		wantVNet   string
		wantSubnet string
	}{
		{
			name:       "well formed subnet path",
			id:         subnetID,
			wantVNet:   "vnet1",
			wantSubnet: "web",
		},
		{
			name:       "empty path",
			id:         "",
			wantVNet:   Unparseable,
			wantSubnet: Unparseable,
		},
		{
			name:       "not a subnet resource",
			id:         nsgID,
			wantVNet:   Unparseable,
			wantSubnet: Unparseable,
		},
		{
			name:       "garbage path",
			id:         "vnet1/web",
			wantVNet:   Unparseable,
			wantSubnet: Unparseable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vnet, subnet := splitSubnetID(tt.id)
			assert.Equal(t, tt.wantVNet, vnet)
			assert.Equal(t, tt.wantSubnet, subnet)
		})
	}
}
