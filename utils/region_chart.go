package utils

import (
	"fmt"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shapedthought/azure-vm-assessment/model"
)

var regionPalette = []string{
	"#66c2a5",
	"#abdda4",
	"#fee08b",
	"#f46d43",
	"#d73027",
	"#1a9850",
}

var chartBorder = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawRegionChart renders VM counts per region across every assessed
// subscription.
func DrawRegionChart(batches []model.ReportBatch) {
	counts := make(map[string]int)
	for _, batch := range batches {
		for _, rec := range batch.Records {
			counts[rec.Location]++
		}
	}
	if len(counts) == 0 {
		return
	}

	regions := make([]string, 0, len(counts))
	for region := range counts {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🌍 VMs BY REGION"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	bc := barchart.New(80, 15)
	for i, region := range regions {
		bc.Push(barchart.BarData{
			Label: region,
			Values: []barchart.BarValue{
				{
					Value: float64(counts[region]),
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(regionPalette[i%len(regionPalette)])),
				},
			},
		})
	}

	bc.Draw()
	fmt.Println(chartBorder.Render(bc.View()))
}
