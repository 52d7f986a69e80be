package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/surreal-look0e/Base-Horizon/internal/ui"
)

var pulseCmd = &cobra.Command{
	Use:   "pulse",
	Short: "Show the network pulse: latest block and fee estimate",
	Long: `Connect the default watch-only wallet, then print the network pulse:
latest block details plus an EIP-1559 fee estimate. Fee fields the node
cannot answer are shown as n/a.

Examples:
  base-horizon pulse
  base-horizon pulse --network base-mainnet`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := &latestRenderer{}
		ctrl, err := buildController(out)
		if err != nil {
			return err
		}

		spin := ui.NewSpinner("Reading pulse of " + ui.NetworkName(ctrl.ActiveNetwork().Label) + "...")
		spin.Start()
		return runActionWithSpinner(spin, out, func(ctx context.Context) error {
			if err := ctrl.Connect(ctx); err != nil {
				return err
			}
			return ctrl.FetchPulse(ctx)
		})
	},
}
