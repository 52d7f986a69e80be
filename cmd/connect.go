package cmd

import (
	"github.com/spf13/cobra"

	"github.com/surreal-look0e/Base-Horizon/internal/ui"
)

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect the default watch-only wallet and show the account summary",
	Long: `Connect the default watch-only wallet and print the connect summary:
address, chain id, latest block, ETH balance and an explorer link.

The wallet must report the same chain as the active network; otherwise
the connect fails and nothing is shown as connected.

Examples:
  base-horizon connect
  base-horizon connect --network base-mainnet`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := &latestRenderer{}
		ctrl, err := buildController(out)
		if err != nil {
			return err
		}

		spin := ui.NewSpinner("Connecting to " + ui.NetworkName(ctrl.ActiveNetwork().Label) + "...")
		spin.Start()
		err = runActionWithSpinner(spin, out, ctrl.Connect)
		return err
	},
}
