package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Provider is the wallet collaborator contract: account disclosure
// only. Implementations must never expose signing capability.
type Provider interface {
	// RequestAccounts returns the disclosed account addresses, or an
	// error if the wallet declines.
	RequestAccounts(ctx context.Context) ([]string, error)
	// RequestChainID returns the wallet's chain id as a hex-encoded
	// string, e.g. "0x14a34".
	RequestChainID(ctx context.Context) (string, error)
}

// ErrNoAccounts is returned when the provider has no account to disclose.
var ErrNoAccounts = errors.New("wallet has no accounts configured")

// LocalProvider serves accounts from the watch-only wallet manager.
// The reported chain id comes from chainID, normally wired to the
// controller's active network so a local wallet tracks the tool.
type LocalProvider struct {
	mgr     *Manager
	chainID func() int64
}

// NewLocalProvider creates a provider over mgr.
func NewLocalProvider(mgr *Manager, chainID func() int64) *LocalProvider {
	return &LocalProvider{mgr: mgr, chainID: chainID}
}

// RequestAccounts returns the default wallet's address.
func (p *LocalProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	w := p.mgr.Default()
	if w == nil {
		return nil, ErrNoAccounts
	}
	return []string{w.Address}, nil
}

// RequestChainID reports the configured chain id in hex form.
func (p *LocalProvider) RequestChainID(ctx context.Context) (string, error) {
	return fmt.Sprintf("0x%x", p.chainID()), nil
}

// ParseChainID decodes a hex-encoded chain id string as reported by a
// wallet provider.
func ParseChainID(s string) (int64, error) {
	clean := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	n, ok := new(big.Int).SetString(clean, 16)
	if !ok {
		return 0, fmt.Errorf("could not parse chain id: %q", s)
	}
	return n.Int64(), nil
}
