package inventory

import (
	"strings"

	"github.com/shapedthought/azure-vm-assessment/model"
)

// DiskIndex is an identifier-keyed lookup over all managed disks in a
// subscription, built once per pass. ARM resource IDs are compared
// case-insensitively.
type DiskIndex struct {
	byID map[string]model.Disk
}

func NewDiskIndex(disks []model.Disk) *DiskIndex {
	idx := &DiskIndex{byID: make(map[string]model.Disk, len(disks))}
	for _, d := range disks {
		idx.byID[strings.ToLower(d.ID)] = d
	}
	return idx
}

// Lookup returns the disk for a resource ID. A miss is the normal
// unmanaged or cross-subscription disk case, not an error.
func (i *DiskIndex) Lookup(id string) (model.Disk, bool) {
	d, ok := i.byID[strings.ToLower(id)]
	return d, ok
}

func (i *DiskIndex) Len() int {
	return len(i.byID)
}
