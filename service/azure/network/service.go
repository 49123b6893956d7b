package azurenetwork

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v5"
	"github.com/shapedthought/azure-vm-assessment/model"
)

func NewService(subscriptionID string, credential *Credential) (*service, error) {
	nicClient, err := armnetwork.NewInterfacesClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create network interfaces client: %w", err)
	}

	publicIPClient, err := armnetwork.NewPublicIPAddressesClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create public IP client: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		nicClient:      nicClient,
		publicIPClient: publicIPClient,
	}, nil
}

// ListInterfaces implements service.NetworkService
// Interfaces with no attached VM are filtered out here so downstream
// correlation only ever deals with owner-attached NICs.
func (s *service) ListInterfaces(ctx context.Context) ([]model.NetworkInterface, error) {
	var nics []model.NetworkInterface

	pager := s.nicClient.NewListAllPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list network interfaces: %w", err)
		}

		for _, nic := range page.Value {
			if nic.ID == nil || nic.Properties == nil {
				continue
			}
			if nic.Properties.VirtualMachine == nil || nic.Properties.VirtualMachine.ID == nil {
				continue
			}

			out := model.NetworkInterface{
				ID:   *nic.ID,
				VMID: *nic.Properties.VirtualMachine.ID,
			}

			if nic.Properties.NetworkSecurityGroup != nil && nic.Properties.NetworkSecurityGroup.ID != nil {
				out.SecurityGroups = append(out.SecurityGroups, *nic.Properties.NetworkSecurityGroup.ID)
			}

			// The primary IP configuration carries the NIC's subnet and
			// private address; secondary configurations are rare and
			// not part of the report schema.
			for _, ipcfg := range nic.Properties.IPConfigurations {
				if ipcfg == nil {
					continue
				}
				if ipcfg.ID != nil {
					out.IPConfigID = *ipcfg.ID
				}
				if ipcfg.Properties != nil {
					if ipcfg.Properties.Subnet != nil && ipcfg.Properties.Subnet.ID != nil {
						out.SubnetID = *ipcfg.Properties.Subnet.ID
					}
					if ipcfg.Properties.PrivateIPAddress != nil {
						out.PrivateIP = *ipcfg.Properties.PrivateIPAddress
					}
				}
				break
			}

			nics = append(nics, out)
		}
	}

	return nics, nil
}

// ListPublicAddresses implements service.NetworkService
// Returns every public IP in the subscription. Addresses without an IP
// configuration (unassociated) keep an empty reference and simply never
// match an interface.
func (s *service) ListPublicAddresses(ctx context.Context) ([]model.PublicAddress, error) {
	var addrs []model.PublicAddress

	pager := s.publicIPClient.NewListAllPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list public IPs: %w", err)
		}

		for _, ip := range page.Value {
			if ip.ID == nil {
				continue
			}

			out := model.PublicAddress{ID: *ip.ID}
			if ip.Properties != nil {
				if ip.Properties.IPConfiguration != nil && ip.Properties.IPConfiguration.ID != nil {
					out.IPConfigID = *ip.Properties.IPConfiguration.ID
				}
				if ip.Properties.IPAddress != nil {
					out.Address = *ip.Properties.IPAddress
				}
			}
			addrs = append(addrs, out)
		}
	}

	return addrs, nil
}
