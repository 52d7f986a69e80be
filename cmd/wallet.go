package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/surreal-look0e/Base-Horizon/internal/chain"
	"github.com/surreal-look0e/Base-Horizon/internal/ui"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Manage watch-only wallets",
}

var walletAddCmd = &cobra.Command{
	Use:   "add <name> <address>",
	Short: "Add a watch-only wallet",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, address := args[0], args[1]
		mgr := newWalletManager()
		if err := mgr.Add(name, address); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Watch-only wallet %q added: %s", name, ui.Addr(chain.ChecksumAddress(address)))))
		fmt.Println(ui.Meta("Set as default with: base-horizon wallet use " + name))
		return nil
	},
}

var walletListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all wallets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := newWalletManager()
		wallets := mgr.List()

		if len(wallets) == 0 {
			fmt.Println(ui.Meta("No wallets configured yet."))
			fmt.Println(ui.Meta("Add one with: base-horizon wallet add myWallet 0xYourAddress"))
			return nil
		}

		for _, w := range wallets {
			def := " "
			if w.IsDefault {
				def = ui.StyleSuccess.Render("✓")
			}
			fmt.Printf("  %s %-16s %s\n", def, ui.Val(w.Name), ui.Addr(chain.ChecksumAddress(w.Address)))
		}
		fmt.Println(ui.Meta(fmt.Sprintf("%d wallet(s) configured", len(wallets))))
		return nil
	},
}

var walletUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the default wallet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		mgr := newWalletManager()
		if err := mgr.SetDefault(name); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Default wallet set to %q.", name)))
		fmt.Println(ui.Meta("This wallet is connected when you run connect, pulse or balance."))
		return nil
	},
}

var walletRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a wallet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		mgr := newWalletManager()
		if err := mgr.Remove(name); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Wallet %q removed.", name)))
		return nil
	},
}

func init() {
	walletCmd.AddCommand(walletAddCmd, walletListCmd, walletUseCmd, walletRemoveCmd)
}
