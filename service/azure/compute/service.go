package azurecompute

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/shapedthought/azure-vm-assessment/model"
	"go.uber.org/zap"
)

func NewService(subscriptionID string, credential *Credential) (*service, error) {
	vmClient, err := armcompute.NewVirtualMachinesClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create VM client: %w", err)
	}

	disksClient, err := armcompute.NewDisksClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create disks client: %w", err)
	}

	sizesClient, err := armcompute.NewVirtualMachineSizesClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create VM sizes client: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		vmClient:       vmClient,
		disksClient:    disksClient,
		sizesClient:    sizesClient,
	}, nil
}

// ListVirtualMachines implements service.ComputeService
// Returns every VM in the subscription as an immutable snapshot. The
// power state comes from a per-VM instance view query; a failed query
// leaves the field empty and the VM is still returned.
func (s *service) ListVirtualMachines(ctx context.Context) ([]model.VirtualMachine, error) {
	var vms []model.VirtualMachine

	pager := s.vmClient.NewListAllPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list VMs: %w", err)
		}

		for _, vm := range page.Value {
			if vm.ID == nil {
				continue
			}
			vms = append(vms, s.convertVM(ctx, vm))
		}
	}

	return vms, nil
}

func (s *service) convertVM(ctx context.Context, vm *armcompute.VirtualMachine) model.VirtualMachine {
	out := model.VirtualMachine{ID: *vm.ID}

	if vm.Name != nil {
		out.Name = *vm.Name
	}
	if vm.Location != nil {
		out.Location = *vm.Location
	}
	if id, err := arm.ParseResourceID(*vm.ID); err == nil {
		out.ResourceGroup = id.ResourceGroupName
	}

	if vm.Properties == nil {
		return out
	}

	if vm.Properties.HardwareProfile != nil && vm.Properties.HardwareProfile.VMSize != nil {
		out.Size = string(*vm.Properties.HardwareProfile.VMSize)
	}

	if sp := vm.Properties.StorageProfile; sp != nil {
		if sp.OSDisk != nil {
			if sp.OSDisk.OSType != nil {
				out.OSType = string(*sp.OSDisk.OSType)
			}
			if sp.OSDisk.Name != nil {
				out.OSDisk.Name = *sp.OSDisk.Name
			}
			if sp.OSDisk.DiskSizeGB != nil {
				out.OSDisk.SizeGB = *sp.OSDisk.DiskSizeGB
			}
			if sp.OSDisk.ManagedDisk != nil && sp.OSDisk.ManagedDisk.ID != nil {
				out.OSDisk.ID = *sp.OSDisk.ManagedDisk.ID
			}
		}
		for _, dd := range sp.DataDisks {
			ref := model.DiskRef{}
			if dd.Name != nil {
				ref.Name = *dd.Name
			}
			if dd.DiskSizeGB != nil {
				ref.SizeGB = *dd.DiskSizeGB
			}
			if dd.ManagedDisk != nil && dd.ManagedDisk.ID != nil {
				ref.ID = *dd.ManagedDisk.ID
			}
			out.DataDisks = append(out.DataDisks, ref)
		}
	}

	out.PowerState = s.powerState(ctx, out.ResourceGroup, out.Name)
	return out
}

// powerState queries the instance view for the VM's power status. A
// failure here is the unresolvable-reference case: the state stays
// empty and the VM is still emitted.
func (s *service) powerState(ctx context.Context, resourceGroup, vmName string) string {
	if resourceGroup == "" || vmName == "" {
		return ""
	}

	instanceView, err := s.vmClient.InstanceView(ctx, resourceGroup, vmName, nil)
	if err != nil {
		zap.S().Named("compute").Debugf("instance view for %s/%s: %v", resourceGroup, vmName, err)
		return ""
	}

	for _, status := range instanceView.Statuses {
		if status.Code != nil && strings.HasPrefix(*status.Code, "PowerState/") {
			return strings.TrimPrefix(*status.Code, "PowerState/")
		}
	}
	return ""
}

// ListDisks implements service.ComputeService
// Returns every managed disk in the subscription.
func (s *service) ListDisks(ctx context.Context) ([]model.Disk, error) {
	var disks []model.Disk

	pager := s.disksClient.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list disks: %w", err)
		}

		for _, disk := range page.Value {
			if disk.ID == nil {
				continue
			}

			out := model.Disk{ID: *disk.ID}
			if disk.Name != nil {
				out.Name = *disk.Name
			}
			if disk.SKU != nil && disk.SKU.Name != nil {
				out.Tier = string(*disk.SKU.Name)
			}
			if disk.Properties != nil && disk.Properties.DiskSizeGB != nil {
				out.SizeGB = *disk.Properties.DiskSizeGB
			}
			disks = append(disks, out)
		}
	}

	return disks, nil
}

// ListSizes implements inventory.SizeCatalogFetcher
// Returns the full VM size catalog for one region. Catalog entries
// without a name are skipped.
func (s *service) ListSizes(ctx context.Context, location string) ([]model.SizeCapability, error) {
	var sizes []model.SizeCapability

	pager := s.sizesClient.NewListPager(location, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list VM sizes in %s: %w", location, err)
		}

		for _, size := range page.Value {
			if size.Name == nil {
				continue
			}

			out := model.SizeCapability{Name: *size.Name}
			if size.NumberOfCores != nil {
				out.Cores = *size.NumberOfCores
			}
			if size.MemoryInMB != nil {
				out.MemoryGB = float64(*size.MemoryInMB) / 1024
			}
			sizes = append(sizes, out)
		}
	}

	return sizes, nil
}
