package utils

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shapedthought/azure-vm-assessment/model"
)

// DrawFootprintTable renders one subscription's enriched records as a
// terminal table, with VM count and aggregate disk capacity in the
// footer.
func DrawFootprintTable(batch model.ReportBatch) {
	fmt.Printf("\n%s %s\n",
		text.FgHiWhite.Sprint(" 🖥  COMPUTE FOOTPRINT"),
		text.FgBlue.Sprint(batch.Subscription.Name))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"VM", "Resource Group", "Location", "Size", "Cores", "Memory GB", "Disks", "Disk GB", "Private IP", "Public IP", "Power State"})

	var totalDiskGB int64
	for _, rec := range batch.Records {
		tw.AppendRow(table.Row{
			rec.Name,
			rec.ResourceGroup,
			rec.Location,
			rec.Size,
			rec.Cores,
			rec.MemoryGB,
			rec.DiskCount,
			rec.TotalDiskGB,
			rec.PrivateIP,
			rec.PublicIP,
			rec.PowerState,
		})
		totalDiskGB += int64(rec.TotalDiskGB)
	}

	tw.AppendFooter(table.Row{
		fmt.Sprintf("%d VMs", len(batch.Records)), "", "", "", "", "", "", totalDiskGB, "", "", "",
	})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
	})
	tw.Render()

	for _, diag := range batch.Diagnostics {
		fmt.Printf(" %s %s\n", text.FgHiRed.Sprint("⚠"), text.FgRed.Sprint(diag))
	}
}
