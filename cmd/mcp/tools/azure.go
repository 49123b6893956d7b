package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/shapedthought/azure-vm-assessment/cmd/mcp/response"
	azurecompute "github.com/shapedthought/azure-vm-assessment/service/azure/compute"
	azureconfig "github.com/shapedthought/azure-vm-assessment/service/azure/config"
	azureidentity "github.com/shapedthought/azure-vm-assessment/service/azure/identity"
	azurenetwork "github.com/shapedthought/azure-vm-assessment/service/azure/network"
	azurereservations "github.com/shapedthought/azure-vm-assessment/service/azure/reservations"
	"github.com/shapedthought/azure-vm-assessment/service/orchestrator"
)

// RegisterAssessmentTools registers the footprint tools with the MCP server
func RegisterAssessmentTools(s *server.MCPServer, defaultSubscriptionID string) {
	s.AddTool(
		mcp.NewTool("azure_list_subscriptions",
			mcp.WithDescription("List all Azure subscriptions the current credential has access to"),
		),
		makeListSubscriptionsHandler(),
	)

	s.AddTool(
		mcp.NewTool("azure_assess_subscription",
			mcp.WithDescription("Assess the compute footprint of one subscription: one enriched record per VM with size capability, disk capacity and network identity. Uses AZURE_SUBSCRIPTION_ID when no subscription_id argument is given."),
			mcp.WithString("subscription_id",
				mcp.Description("Subscription ID to assess"),
			),
		),
		makeAssessSubscriptionHandler(defaultSubscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_get_expiring_reservations",
			mcp.WithDescription("List Reserved VM Instances that are expiring within 30 days or have recently expired."),
		),
		makeExpiringReservationsHandler(),
	)
}

func makeListSubscriptionsHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cfgSvc, err := azureconfig.NewService()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create Azure credential: %v", err)), nil
		}

		identitySvc, err := azureidentity.NewService(cfgSvc.GetCredential())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create identity service: %v", err)), nil
		}

		subs, err := identitySvc.ListSubscriptions(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list subscriptions: %v", err)), nil
		}

		out := make([]response.Subscription, 0, len(subs))
		for _, sub := range subs {
			out = append(out, response.ConvertSubscription(sub))
		}

		data, _ := json.MarshalIndent(out, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeAssessSubscriptionHandler(defaultSubscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		subscriptionID := request.GetString("subscription_id", defaultSubscriptionID)
		if subscriptionID == "" {
			return mcp.NewToolResultError("subscription_id argument or AZURE_SUBSCRIPTION_ID environment variable is required"), nil
		}

		cfgSvc, err := azureconfig.NewService()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create Azure credential: %v", err)), nil
		}
		credential := cfgSvc.GetCredential()

		identitySvc, err := azureidentity.NewService(credential)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create identity service: %v", err)), nil
		}

		factory := func(subID string) (azurecompute.ComputeService, azurenetwork.NetworkService, error) {
			computeSvc, err := azurecompute.NewService(subID, credential)
			if err != nil {
				return nil, nil, err
			}
			networkSvc, err := azurenetwork.NewService(subID, credential)
			if err != nil {
				return nil, nil, err
			}
			return computeSvc, networkSvc, nil
		}

		assessmentSvc := orchestrator.NewService(identitySvc, factory, nil)
		batches, err := assessmentSvc.Run(ctx, subscriptionID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Assessment failed: %v", err)), nil
		}
		if len(batches) == 0 {
			return mcp.NewToolResultError(fmt.Sprintf("Subscription %s could not be assessed", subscriptionID)), nil
		}

		data, _ := json.MarshalIndent(response.ConvertBatch(batches[0]), "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeExpiringReservationsHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cfgSvc, err := azureconfig.NewService()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create Azure credential: %v", err)), nil
		}

		reservationsSvc, err := azurereservations.NewService(cfgSvc.GetCredential())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create reservations service: %v", err)), nil
		}

		reservations, err := reservationsSvc.ListExpiringReservations(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list reservations: %v", err)), nil
		}

		data, _ := json.MarshalIndent(response.ConvertReservations(reservations), "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}
