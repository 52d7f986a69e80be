package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/surreal-look0e/Base-Horizon/internal/config"
	"github.com/surreal-look0e/Base-Horizon/internal/logging"
	"github.com/surreal-look0e/Base-Horizon/internal/ui"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/surreal-look0e/Base-Horizon/cmd.Version=1.2.3" .
var Version = "1.0.0"

var (
	cfgDir      string
	cfg         *config.Config
	log         *zap.Logger
	verbose     bool
	networkFlag string
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "base-horizon",
	Short: "Read-only wallet console for Base",
	Long: `base-horizon — a read-only console for the Base networks.

  Connect a watch-only wallet, check balances and network pulse on
  Base Sepolia and Base Mainnet, and jump to the block explorer.
  No private keys, no signing, no transactions.

The --network flag overrides the configured startup network for a
single invocation. Persist with: base-horizon network toggle`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if networkFlag != "" {
			cfg.DefaultNetwork = networkFlag
		}
		log = logging.New(verbose)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Err(err.Error()))
		os.Exit(1)
	}
}

func init() {
	// BASE_HORIZON_CONFIG_DIR env var overrides --config flag.
	if envDir := os.Getenv("BASE_HORIZON_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.base-horizon)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&networkFlag, "network", "", "network for this invocation: base-sepolia or base-mainnet")

	rootCmd.AddCommand(
		connectCmd,
		pulseCmd,
		balanceCmd,
		networkCmd,
		walletCmd,
		rpcCmd,
		dashboardCmd,
	)
}
