package app

import (
	"context"
	"math/big"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/surreal-look0e/Base-Horizon/internal/chain"
)

// ChainReader is the read-only surface of the RPC collaborator that
// the query layer depends on. *chain.EVMClient satisfies it; tests
// substitute mocks.
type ChainReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
	Balance(ctx context.Context, address string) (*big.Int, error)
	LatestBlock(ctx context.Context) (*chain.BlockHeader, error)
	EstimateFeesPerGas(ctx context.Context) (*chain.FeeEstimate, error)
}

// Summary is the snapshot rendered right after a connect.
type Summary struct {
	BlockNumber uint64
	Balance     *big.Int
}

// Pulse is the network heartbeat snapshot: latest block plus current
// fee suggestions. Fee fields may be absent.
type Pulse struct {
	Block chain.BlockHeader
	Fees  chain.FeeEstimate
}

// Querier issues read-only queries against one network. The network
// and reader are fixed at construction, so both halves of a concurrent
// pair always target the same chain even if the active network changes
// mid-flight.
type Querier struct {
	net    chain.Network
	reader ChainReader
	log    *zap.Logger
}

// NewQuerier creates a querier over reader for net.
func NewQuerier(net chain.Network, reader ChainReader, log *zap.Logger) *Querier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Querier{net: net, reader: reader, log: log}
}

// Network returns the network snapshot this querier is bound to.
func (q *Querier) Network() chain.Network { return q.net }

// ReadSummary fetches the latest block number and the balance of
// address concurrently. If either call rejects the whole summary fails
// and the other result is discarded; no partial summary is returned.
func (q *Querier) ReadSummary(ctx context.Context, address string) (*Summary, error) {
	q.log.Debug("reading summary",
		zap.String("network", q.net.Name),
		zap.String("address", address))

	var sum Summary
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := q.reader.BlockNumber(ctx)
		if err != nil {
			return &QueryError{Op: "block number", Err: err}
		}
		sum.BlockNumber = n
		return nil
	})
	g.Go(func() error {
		wei, err := q.reader.Balance(ctx, address)
		if err != nil {
			return &QueryError{Op: "balance", Err: err}
		}
		sum.Balance = wei
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &sum, nil
}

// ReadPulse fetches the latest block header and a fee estimate
// concurrently, with the same all-or-nothing policy as ReadSummary.
func (q *Querier) ReadPulse(ctx context.Context) (*Pulse, error) {
	q.log.Debug("reading pulse", zap.String("network", q.net.Name))

	var pulse Pulse
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		header, err := q.reader.LatestBlock(ctx)
		if err != nil {
			return &QueryError{Op: "latest block", Err: err}
		}
		pulse.Block = *header
		return nil
	})
	g.Go(func() error {
		fees, err := q.reader.EstimateFeesPerGas(ctx)
		if err != nil {
			return &QueryError{Op: "fee estimate", Err: err}
		}
		pulse.Fees = *fees
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &pulse, nil
}

// ReadBalance validates address syntactically, then fetches its native
// balance. Validation failures never reach the network.
func (q *Querier) ReadBalance(ctx context.Context, address string) (*big.Int, error) {
	if !chain.IsValidAddress(address) {
		return nil, ErrInvalidAddress
	}

	q.log.Debug("reading balance",
		zap.String("network", q.net.Name),
		zap.String("address", address))

	wei, err := q.reader.Balance(ctx, address)
	if err != nil {
		return nil, &QueryError{Op: "balance", Err: err}
	}
	return wei, nil
}
