package app

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/surreal-look0e/Base-Horizon/internal/chain"
	"github.com/surreal-look0e/Base-Horizon/internal/wallet"
)

// Action classes. At most one action per class may be in flight; a
// second trigger fails with ErrBusy instead of racing the first.
const (
	actionConnect = "connect"
	actionPulse   = "pulse"
	actionBalance = "balance"
)

// ReaderFactory builds the RPC collaborator for a network snapshot.
// The controller calls it once per action so every query pair runs
// against the network that was active when the action started.
type ReaderFactory func(net chain.Network) ChainReader

// Controller sequences user actions against the session state and the
// query layer. It owns the active network and the session exclusively;
// both are mutated only under its lock.
type Controller struct {
	mu       sync.Mutex
	active   chain.Network
	epoch    uint64 // bumped on every toggle; stale results are discarded
	inflight map[string]bool

	reg       *chain.Registry
	sessions  SessionStore
	wallet    wallet.Provider
	newReader ReaderFactory
	out       Renderer
	log       *zap.Logger
}

// NewController wires a controller. active should come from the
// registry; a zero Network falls back to the registry default.
func NewController(reg *chain.Registry, active chain.Network, provider wallet.Provider, factory ReaderFactory, out Renderer, log *zap.Logger) *Controller {
	if active.ChainID == 0 {
		active = reg.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		active:    active,
		inflight:  make(map[string]bool),
		reg:       reg,
		wallet:    provider,
		newReader: factory,
		out:       out,
		log:       log,
	}
}

// ActiveNetwork returns the currently selected network.
func (c *Controller) ActiveNetwork() chain.Network {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Connected reports whether a live session exists.
func (c *Controller) Connected() bool {
	_, ok := c.sessions.Current()
	return ok
}

// CurrentSession returns the live session, if any.
func (c *Controller) CurrentSession() (Session, bool) {
	return c.sessions.Current()
}

// ToggleNetwork flips the active network to the other registry entry.
// The session is always discarded first: a session is only valid for
// the network it was created under, and a session/network mismatch
// must never be observable. Synchronous, cannot fail.
func (c *Controller) ToggleNetwork() chain.Network {
	c.mu.Lock()
	c.sessions.Clear()
	c.active = c.reg.Other(c.active)
	c.epoch++
	next := c.active
	c.mu.Unlock()

	c.log.Debug("network toggled", zap.String("network", next.Name), zap.Int64("chainId", next.ChainID))
	c.out.Render(networkLines(next))
	return next
}

// Connect negotiates with the wallet provider, stores a session and
// renders the connect summary. The wallet-reported chain id must match
// the active network; on mismatch the connect fails and no session is
// stored.
func (c *Controller) Connect(ctx context.Context) error {
	net, epoch, err := c.begin(actionConnect)
	if err != nil {
		return c.fail(err)
	}
	defer c.finish(actionConnect)

	accounts, err := c.wallet.RequestAccounts(ctx)
	if err != nil {
		return c.fail(fmt.Errorf("%w: %v", ErrWalletConnection, err))
	}
	if len(accounts) == 0 {
		return c.fail(fmt.Errorf("%w: no accounts disclosed", ErrWalletConnection))
	}

	hexID, err := c.wallet.RequestChainID(ctx)
	if err != nil {
		return c.fail(fmt.Errorf("%w: %v", ErrWalletConnection, err))
	}
	chainID, err := wallet.ParseChainID(hexID)
	if err != nil {
		return c.fail(fmt.Errorf("%w: %v", ErrWalletConnection, err))
	}
	if chainID != net.ChainID {
		reported := fmt.Sprintf("chain %d", chainID)
		if known, err := c.reg.ByChainID(chainID); err == nil {
			reported = fmt.Sprintf("%s (%d)", known.Label, known.ChainID)
		}
		return c.fail(fmt.Errorf("%w: wallet reports %s, active network is %s (%d)",
			ErrNetworkMismatch, reported, net.Label, net.ChainID))
	}

	// Store the session only if the network has not moved on while the
	// wallet negotiation was in flight.
	c.mu.Lock()
	if c.epoch != epoch {
		c.mu.Unlock()
		c.log.Debug("discarding connect: network changed during negotiation")
		return nil
	}
	sess := c.sessions.Connect(accounts[0], chainID)
	c.mu.Unlock()

	q := NewQuerier(net, c.newReader(net), c.log)
	sum, err := q.ReadSummary(ctx, sess.Address)
	if err != nil {
		return c.fail(err)
	}

	if !c.stillCurrent(epoch) {
		c.log.Debug("discarding stale connect summary", zap.String("network", net.Name))
		return nil
	}
	c.out.Render(summaryLines(net, sess, sum))
	return nil
}

// FetchPulse renders the network heartbeat. Requires a live session.
func (c *Controller) FetchPulse(ctx context.Context) error {
	net, epoch, err := c.begin(actionPulse)
	if err != nil {
		return c.fail(err)
	}
	defer c.finish(actionPulse)

	if !c.Connected() {
		return c.fail(ErrNotConnected)
	}

	q := NewQuerier(net, c.newReader(net), c.log)
	pulse, err := q.ReadPulse(ctx)
	if err != nil {
		return c.fail(err)
	}

	if !c.stillCurrent(epoch) {
		c.log.Debug("discarding stale pulse", zap.String("network", net.Name))
		return nil
	}
	c.out.Render(pulseLines(net, pulse))
	return nil
}

// CheckBalance renders the balance for address, falling back to the
// connected session's address when none is given.
func (c *Controller) CheckBalance(ctx context.Context, address string) error {
	net, epoch, err := c.begin(actionBalance)
	if err != nil {
		return c.fail(err)
	}
	defer c.finish(actionBalance)

	sess, connected := c.sessions.Current()
	if address == "" {
		if !connected {
			return c.fail(ErrMissingAddress)
		}
		address = sess.Address
	} else if !connected {
		return c.fail(ErrNotConnected)
	}

	q := NewQuerier(net, c.newReader(net), c.log)
	wei, err := q.ReadBalance(ctx, address)
	if err != nil {
		return c.fail(err)
	}

	if !c.stillCurrent(epoch) {
		c.log.Debug("discarding stale balance", zap.String("network", net.Name))
		return nil
	}
	c.out.Render(balanceLines(net, address, wei))
	return nil
}

// --- internal ---

// begin claims the in-flight slot for an action class and snapshots
// the active network and epoch.
func (c *Controller) begin(action string) (chain.Network, uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight[action] {
		return chain.Network{}, 0, fmt.Errorf("%w: %s", ErrBusy, action)
	}
	c.inflight[action] = true
	return c.active, c.epoch, nil
}

func (c *Controller) finish(action string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight[action] = false
}

// stillCurrent reports whether no toggle happened since epoch. Results
// computed under a stale epoch belong to the previous network and are
// discarded instead of rendered.
func (c *Controller) stillCurrent(epoch uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.epoch == epoch
}

// fail renders the error in place of the last snapshot and propagates
// it. The controller never leaves the session or the active network
// partially updated on failure.
func (c *Controller) fail(err error) error {
	c.log.Debug("action failed", zap.Error(err))
	c.out.Render(errorLines(err))
	return err
}
