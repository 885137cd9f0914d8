package cli

import (
	"github.com/spf13/cobra"

	"github.com/asisaga/erpnext-mcp/internal/adapters/driving/mcp"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("erpnext-mcp version %s\n", mcp.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
