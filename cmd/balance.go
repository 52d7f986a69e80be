package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/surreal-look0e/Base-Horizon/internal/ui"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Check the ETH balance of an address",
	Long: `Connect the default watch-only wallet, then print the ETH balance of
the given address. Without an address the connected wallet's own
balance is shown.

Examples:
  base-horizon balance                 # connected wallet's balance
  base-horizon balance 0xd8dA6BF2...   # any address
  base-horizon balance --network base-mainnet`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var address string
		if len(args) == 1 {
			address = args[0]
		}

		out := &latestRenderer{}
		ctrl, err := buildController(out)
		if err != nil {
			return err
		}

		spin := ui.NewSpinner("Fetching balance on " + ui.NetworkName(ctrl.ActiveNetwork().Label) + "...")
		spin.Start()
		return runActionWithSpinner(spin, out, func(ctx context.Context) error {
			if err := ctrl.Connect(ctx); err != nil {
				return err
			}
			return ctrl.CheckBalance(ctx, address)
		})
	},
}
