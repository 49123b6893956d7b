// Package cli provides the commands for the assessment tool.
package cli

import (
	"github.com/shapedthought/azure-vm-assessment/internal/config"
	"github.com/shapedthought/azure-vm-assessment/internal/logging"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "azure-vm-assessment",
	Short: "Assess the compute footprint of Azure subscriptions",
	Long: `azure-vm-assessment enumerates the virtual machines, disks, network
interfaces and public IPs of one or more Azure subscriptions and writes
one enriched record per VM to a timestamped report directory.

Authentication uses the default Azure credential chain (environment
variables, managed identity, az login).

Examples:
  azure-vm-assessment assess
  azure-vm-assessment assess --subscription 00000000-0000-0000-0000-000000000000
  azure-vm-assessment assess --format xlsx --output ./reports
  azure-vm-assessment commitments`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.New()
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd)
		return logging.Initialize(cfg.LogLevel)
	},
}

func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("subscription", "", "limit the run to one subscription ID")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	assessCmd.Flags().String("output", "", "base directory for the report directory")
	assessCmd.Flags().String("prefix", "", "report directory name prefix")
	assessCmd.Flags().String("format", "", "report format: csv or xlsx")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(commitmentsCmd)
	rootCmd.AddCommand(versionCmd)
}

// applyFlagOverrides lets flags win over environment configuration.
func applyFlagOverrides(cmd *cobra.Command) {
	if v, _ := cmd.Flags().GetString("subscription"); v != "" {
		cfg.SubscriptionID = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if f := cmd.Flags().Lookup("output"); f != nil && f.Value.String() != "" {
		cfg.OutputDir = f.Value.String()
	}
	if f := cmd.Flags().Lookup("prefix"); f != nil && f.Value.String() != "" {
		cfg.Prefix = f.Value.String()
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Value.String() != "" {
		cfg.Format = f.Value.String()
	}
}
