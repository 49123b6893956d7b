package cli

import (
	"fmt"

	azurecompute "github.com/shapedthought/azure-vm-assessment/service/azure/compute"
	azureconfig "github.com/shapedthought/azure-vm-assessment/service/azure/config"
	azureidentity "github.com/shapedthought/azure-vm-assessment/service/azure/identity"
	azurenetwork "github.com/shapedthought/azure-vm-assessment/service/azure/network"
	"github.com/shapedthought/azure-vm-assessment/service/export"
	"github.com/shapedthought/azure-vm-assessment/service/orchestrator"
	"github.com/shapedthought/azure-vm-assessment/utils"
	"github.com/spf13/cobra"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Enumerate VMs and write the enriched footprint report",
	RunE:  runAssess,
}

func runAssess(cmd *cobra.Command, args []string) error {
	utils.DrawBanner()

	cfgService, err := azureconfig.NewService()
	if err != nil {
		return err
	}
	credential := cfgService.GetCredential()

	identityService, err := azureidentity.NewService(credential)
	if err != nil {
		return err
	}

	factory := func(subscriptionID string) (azurecompute.ComputeService, azurenetwork.NetworkService, error) {
		computeService, err := azurecompute.NewService(subscriptionID, credential)
		if err != nil {
			return nil, nil, err
		}
		networkService, err := azurenetwork.NewService(subscriptionID, credential)
		if err != nil {
			return nil, nil, err
		}
		return computeService, networkService, nil
	}

	dir, err := export.NewRunDirectory(cfg.OutputDir, cfg.Prefix)
	if err != nil {
		return err
	}
	writer, err := export.NewWriter(cfg.Format, dir)
	if err != nil {
		return err
	}

	utils.StartSpinner("gathering inventory...")
	assessmentService := orchestrator.NewService(identityService, factory, writer)
	batches, err := assessmentService.Run(cmd.Context(), cfg.SubscriptionID)
	utils.StopSpinner()
	if err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	for _, batch := range batches {
		utils.DrawFootprintTable(batch)
	}
	utils.DrawRegionChart(batches)

	fmt.Printf("\n Report written to %s\n", dir)
	return nil
}
