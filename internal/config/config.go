package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config is the environment-based configuration; CLI flags override the
// corresponding fields after loading.
type Config struct {
	SubscriptionID string `envconfig:"AZURE_SUBSCRIPTION_ID" default:""`
	OutputDir      string `envconfig:"VM_ASSESSMENT_OUTPUT_DIR" default:"."`
	Prefix         string `envconfig:"VM_ASSESSMENT_PREFIX" default:"azure-footprint"`
	Format         string `envconfig:"VM_ASSESSMENT_FORMAT" default:"csv"`
	LogLevel       string `envconfig:"VM_ASSESSMENT_LOG_LEVEL" default:"info"`
}

func New() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
