package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asisaga/erpnext-mcp/internal/adapters/driven/frappe"
	"github.com/asisaga/erpnext-mcp/internal/adapters/driving/mcp"
	"github.com/asisaga/erpnext-mcp/internal/core/services"
	"github.com/asisaga/erpnext-mcp/internal/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP
  - Prometheus metrics on /metrics

Examples:
  # Stdio mode (default, for Claude Desktop)
  erpnext-mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  erpnext-mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "erpnext": {
        "command": "/path/to/erpnext-mcp",
        "args": ["serve"],
        "env": {
          "ERPNEXT_URL": "https://erp.example.com",
          "ERPNEXT_API_KEY": "...",
          "ERPNEXT_API_SECRET": "..."
        }
      }
    }
  }`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	m := metrics.New()
	client, err := frappe.New(cfg, log.Named("frappe"), m)
	if err != nil {
		return fmt.Errorf("creating ERPNext client: %w", err)
	}

	ports := &mcp.Ports{
		Accounting:    services.NewAccountingService(client, log.Named("accounting")),
		Sales:         services.NewSalesService(client, log.Named("sales")),
		Purchasing:    services.NewPurchasingService(client, log.Named("purchasing")),
		Inventory:     services.NewInventoryService(client, log.Named("inventory")),
		HR:            services.NewHRService(client, log.Named("hr")),
		Projects:      services.NewProjectsService(client, log.Named("projects")),
		Manufacturing: services.NewManufacturingService(client, log.Named("manufacturing")),
		CRM:           services.NewCRMService(client, log.Named("crm")),
		Assets:        services.NewAssetsService(client, log.Named("assets")),
		Support:       services.NewSupportService(client, log.Named("support")),
		Utilities:     services.NewUtilitiesService(client, log.Named("utilities")),
	}

	server, err := mcp.NewServer(ports, log.Named("mcp"), m)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
