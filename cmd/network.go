package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/surreal-look0e/Base-Horizon/internal/chain"
	"github.com/surreal-look0e/Base-Horizon/internal/ui"
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Show or toggle the active network",
}

var networkShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List both networks and mark the active one",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := chain.NewRegistry()
		for _, n := range reg.Networks() {
			marker := "  "
			if n.Name == cfg.DefaultNetwork {
				marker = ui.StyleSuccess.Render("▸ ")
			}
			fmt.Printf("%s%s  %s  %s\n",
				marker,
				ui.NetworkName(n.Label),
				ui.Meta(fmt.Sprintf("chainId %d", n.ChainID)),
				ui.Meta(n.Explorer),
			)
		}
		return nil
	},
}

var networkToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch to the other network and persist the choice",
	Long: `Switch between Base Sepolia and Base Mainnet. The new network is
persisted as the startup default. Any wallet connection belongs to the
network it was made on, so the next command starts disconnected.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := chain.NewRegistry()
		cur, err := reg.ByName(cfg.DefaultNetwork)
		if err != nil {
			cur = reg.Default()
		}
		next := reg.Other(cur)

		cfg.DefaultNetwork = next.Name
		if err := cfg.Save(); err != nil {
			return err
		}

		fmt.Println(ui.Success(fmt.Sprintf("Switched to %s (chainId %d)", ui.NetworkName(next.Label), next.ChainID)))
		fmt.Println(ui.Meta("Status: disconnected"))
		return nil
	},
}

func init() {
	networkCmd.AddCommand(networkShowCmd, networkToggleCmd)
}
