package main

import "os"

// Config holds environment-based configuration for the MCP server
type Config struct {
	AzureSubscriptionID string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		AzureSubscriptionID: os.Getenv("AZURE_SUBSCRIPTION_ID"),
	}
}
