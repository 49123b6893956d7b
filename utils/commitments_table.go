package utils

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shapedthought/azure-vm-assessment/model"
)

// DrawCommitmentsTable renders reserved-instance orders expiring around
// the current date.
func DrawCommitmentsTable(reservations []model.Reservation) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 📅 RESERVED INSTANCE COMMITMENTS"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	if len(reservations) == 0 {
		fmt.Println(text.FgGreen.Sprint(" No reservations expiring within 30 days."))
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Order", "Name", "Status", "Days Until Expiry"})

	for _, r := range reservations {
		status := text.FgYellow.Sprint(r.Status)
		if r.Status == "expired" {
			status = text.FgRed.Sprint(r.Status)
		}
		tw.AppendRow(table.Row{r.ID, r.DisplayName, status, r.DaysUntilExpiry})
	}

	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
	})
	tw.Render()
}
