package inventory

import (
	"testing"

	"github.com/shapedthought/azure-vm-assessment/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskIndexLookup(t *testing.T) {
	idx := NewDiskIndex([]model.Disk{
		{ID: "/subscriptions/s1/resourceGroups/rg1/providers/Microsoft.Compute/disks/os-disk", Name: "os-disk", Tier: "Premium_LRS", SizeGB: 30},
		{ID: "/subscriptions/s1/resourceGroups/rg1/providers/Microsoft.Compute/disks/data-1", Name: "data-1", Tier: "Standard_LRS", SizeGB: 128},
	})
	require.Equal(t, 2, idx.Len())

	d, ok := idx.Lookup("/subscriptions/s1/resourceGroups/rg1/providers/Microsoft.Compute/disks/data-1")
	require.True(t, ok)
	assert.Equal(t, "Standard_LRS", d.Tier)

	// ARM IDs compare case-insensitively.
	d, ok = idx.Lookup("/subscriptions/S1/resourcegroups/RG1/providers/microsoft.compute/disks/OS-DISK")
	require.True(t, ok)
	assert.Equal(t, "Premium_LRS", d.Tier)
}

func TestDiskIndexMissIsNotAnError(t *testing.T) {
	idx := NewDiskIndex(nil)

	_, ok := idx.Lookup("/subscriptions/other/resourceGroups/rg/providers/Microsoft.Compute/disks/foreign")
	assert.False(t, ok)
}
