package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/surreal-look0e/Base-Horizon/internal/app"
	"github.com/surreal-look0e/Base-Horizon/internal/chain"
	"github.com/surreal-look0e/Base-Horizon/internal/rpc"
	"github.com/surreal-look0e/Base-Horizon/internal/ui"
	"github.com/surreal-look0e/Base-Horizon/internal/wallet"
)

// actionTimeout bounds one user action end to end, wallet negotiation
// and RPC reads included.
const actionTimeout = 30 * time.Second

// buildController wires a controller for the current config: registry,
// watch-only wallet provider, RPC picker and the given renderer.
func buildController(out app.Renderer) (*app.Controller, error) {
	reg := chain.NewRegistry()
	start, err := reg.ByName(cfg.DefaultNetwork)
	if err != nil {
		return nil, fmt.Errorf("unknown network %q, valid: base-sepolia, base-mainnet", cfg.DefaultNetwork)
	}

	mgr := newWalletManager()

	// The local provider reports the controller's active network so a
	// watch-only wallet always matches the tool. The closure resolves
	// after the controller exists.
	var ctrl *app.Controller
	provider := wallet.NewLocalProvider(mgr, func() int64 {
		return ctrl.ActiveNetwork().ChainID
	})

	ctrl = app.NewController(reg, start, provider, readerFactory, out, log)
	return ctrl, nil
}

// readerFactory picks the best RPC for the network and returns a
// client bound to it. Custom RPCs from config are tried first. Picker
// failures fall through to the primary endpoint so the query itself
// reports the real error.
func readerFactory(net chain.Network) app.ChainReader {
	urls := append(cfg.GetRPCs(net.Name), net.RPCs...)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	url, err := rpc.Best(ctx, urls, rpc.Algorithm(cfg.RPCAlgorithm))
	if err != nil {
		url = urls[0]
	}
	return chain.NewEVMClient(url)
}

// newWalletManager creates a Manager backed by the config-dir JSON store.
func newWalletManager() *wallet.Manager {
	store := wallet.NewJSONStore(cfg.WalletsPath())
	return wallet.NewManager(wallet.WithStore(store))
}

// latestRenderer keeps only the newest snapshot. One-shot commands
// run connect plus their action and print a single final block, the
// same last-wins rule the dashboard follows.
type latestRenderer struct {
	lines []string
}

func (r *latestRenderer) Render(lines []string) {
	r.lines = lines
}

// Flush prints the final snapshot, styling error lines.
func (r *latestRenderer) Flush() {
	for _, line := range r.lines {
		if msg, ok := strings.CutPrefix(line, "Error: "); ok {
			fmt.Println(ui.Err(msg))
			continue
		}
		fmt.Println(line)
	}
}

// runActionWithSpinner executes a one-shot controller action behind a
// spinner and prints the last snapshot whether it succeeded or failed.
func runActionWithSpinner(spin *ui.Spinner, out *latestRenderer, action func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
	defer cancel()

	err := action(ctx)
	spin.Stop()
	if err != nil {
		// Execute prints the error once; the error snapshot would
		// duplicate it.
		return err
	}
	out.Flush()
	return err
}
