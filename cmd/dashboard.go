package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/surreal-look0e/Base-Horizon/internal/ui"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Open the interactive single-page console",
	Long: `Open the interactive console. Every action maps to one key:

  c   connect the default watch-only wallet
  t   toggle between Base Sepolia and Base Mainnet
  p   fetch the network pulse
  b   check the balance of any address
  q   quit

The view always shows the result of the last completed action. While
connected, the pulse refreshes automatically every watch_interval
seconds (config, default 10).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := ui.NewSnapshotRenderer()
		ctrl, err := buildController(r)
		if err != nil {
			return err
		}

		prog := ui.NewDashboard(ctrl, r, time.Duration(cfg.WatchInterval)*time.Second)
		_, err = prog.Run()
		return err
	},
}
