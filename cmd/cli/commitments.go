package cli

import (
	"fmt"

	azureconfig "github.com/shapedthought/azure-vm-assessment/service/azure/config"
	azurereservations "github.com/shapedthought/azure-vm-assessment/service/azure/reservations"
	"github.com/shapedthought/azure-vm-assessment/utils"
	"github.com/spf13/cobra"
)

var commitmentsCmd = &cobra.Command{
	Use:   "commitments",
	Short: "List reserved VM instance orders expiring around today",
	RunE:  runCommitments,
}

func runCommitments(cmd *cobra.Command, args []string) error {
	cfgService, err := azureconfig.NewService()
	if err != nil {
		return err
	}

	reservationsService, err := azurereservations.NewService(cfgService.GetCredential())
	if err != nil {
		return err
	}

	utils.StartSpinner("checking reservations...")
	reservations, err := reservationsService.ListExpiringReservations(cmd.Context())
	utils.StopSpinner()
	if err != nil {
		return fmt.Errorf("failed to list reservations: %w", err)
	}

	utils.DrawCommitmentsTable(reservations)
	return nil
}
