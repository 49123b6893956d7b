package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/shapedthought/azure-vm-assessment/cmd/mcp/tools"
)

func main() {
	cfg := LoadConfig()

	s := server.NewMCPServer(
		"azure-vm-assessment-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterAssessmentTools(s, cfg.AzureSubscriptionID)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
