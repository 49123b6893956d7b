package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shapedthought/azure-vm-assessment/model"
)

// Writer persists one report batch per subscription. Implementations
// share the same column schema so output is uniform across formats.
type Writer interface {
	WriteBatch(batch model.ReportBatch) error
	Close() error
}

// NewWriter selects the writer for an output format.
func NewWriter(format, dir string) (Writer, error) {
	switch strings.ToLower(format) {
	case "csv":
		return NewCSVWriter(dir), nil
	case "xlsx":
		return NewXLSXWriter(dir), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

var header = []string{
	"Subscription",
	"VM Name",
	"Resource Group",
	"Location",
	"Size",
	"OS Type",
	"Cores",
	"Memory GB",
	"Power State",
	"Disk Count",
	"Total Disk GB",
	"Disk Details",
	"VNet",
	"Subnet",
	"Private IP",
	"Security Groups",
	"Public IP",
	"Extra NICs",
}

func row(rec model.EnrichedVMRecord) []string {
	return []string{
		rec.Subscription,
		rec.Name,
		rec.ResourceGroup,
		rec.Location,
		rec.Size,
		rec.OSType,
		rec.Cores,
		rec.MemoryGB,
		rec.PowerState,
		strconv.Itoa(rec.DiskCount),
		strconv.Itoa(int(rec.TotalDiskGB)),
		strings.Join(rec.DiskDetails, "; "),
		rec.VNet,
		rec.Subnet,
		rec.PrivateIP,
		strings.Join(rec.SecurityGroups, "; "),
		rec.PublicIP,
		strconv.Itoa(rec.ExtraNICs),
	}
}

// sanitizeName makes a subscription display name safe for file and
// sheet names.
func sanitizeName(name string) string {
	if name == "" {
		return "subscription"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
}
