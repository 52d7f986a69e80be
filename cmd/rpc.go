package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/surreal-look0e/Base-Horizon/internal/chain"
	"github.com/surreal-look0e/Base-Horizon/internal/rpc"
	"github.com/surreal-look0e/Base-Horizon/internal/ui"
)

var rpcCmd = &cobra.Command{
	Use:   "rpc",
	Short: "Manage and probe RPC endpoints",
}

var rpcListCmd = &cobra.Command{
	Use:   "list [network]",
	Short: "Probe the endpoints of a network and show health and latency",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := cfg.DefaultNetwork
		if len(args) == 1 {
			name = args[0]
		}
		reg := chain.NewRegistry()
		net, err := reg.ByName(name)
		if err != nil {
			return fmt.Errorf("unknown network %q, valid: base-sepolia, base-mainnet", name)
		}

		urls := append(cfg.GetRPCs(net.Name), net.RPCs...)

		spin := ui.NewSpinner("Probing " + ui.NetworkName(net.Label) + " endpoints...")
		spin.Start()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		endpoints := rpc.Probe(ctx, urls)
		spin.Stop()

		for _, ep := range endpoints {
			status := ui.Err("down")
			detail := ""
			if ep.Healthy {
				status = ui.Success("up")
				detail = ui.Meta(fmt.Sprintf("%dms · block %d", ep.Latency.Milliseconds(), ep.BlockNumber))
			}
			fmt.Printf("  %s  %s  %s\n", status, ui.Addr(ep.URL), detail)
		}
		return nil
	},
}

var rpcAddCmd = &cobra.Command{
	Use:   "add <network> <url>",
	Short: "Add a custom RPC endpoint for a network",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, url := args[0], args[1]
		if _, err := chain.NewRegistry().ByName(name); err != nil {
			return fmt.Errorf("unknown network %q, valid: base-sepolia, base-mainnet", name)
		}
		if err := cfg.AddRPC(name, url); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Custom RPC added for %s: %s", name, url)))
		fmt.Println(ui.Meta("Custom endpoints are tried before the built-in ones."))
		return nil
	},
}

var rpcRemoveCmd = &cobra.Command{
	Use:   "remove <network> <url>",
	Short: "Remove a custom RPC endpoint",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, url := args[0], args[1]
		if err := cfg.RemoveRPC(name, url); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Custom RPC removed for %s: %s", name, url)))
		return nil
	},
}

func init() {
	rpcCmd.AddCommand(rpcListCmd, rpcAddCmd, rpcRemoveCmd)
}
