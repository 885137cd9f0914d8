// Package cli implements the erpnext-mcp command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/asisaga/erpnext-mcp/internal/config"
	"github.com/asisaga/erpnext-mcp/internal/logger"
)

var (
	cfg *config.Config
	log *zap.Logger

	cfgPath  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "erpnext-mcp",
	Short: "MCP server for ERPNext",
	Long: `erpnext-mcp exposes an ERPNext instance to AI assistants through the
Model Context Protocol. Business operations across accounting, sales,
purchasing, inventory, HR, projects, manufacturing, CRM, assets and
support are published as MCP tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		log, err = logger.New(cfg.Log)
		if err != nil {
			return fmt.Errorf("initialising logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if log != nil {
			log.Sync() //nolint:errcheck
		}
	},
}

func init() {
	// Empty default keeps config.Load on its standard lookup path.
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to the config file (default ~/.erpnext-mcp/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
