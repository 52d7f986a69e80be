package app_test

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surreal-look0e/Base-Horizon/internal/app"
	"github.com/surreal-look0e/Base-Horizon/internal/chain"
)

const (
	validAddr = "0xd8da6bf26964af9d7eed9e03e53415d37aa96045"
	// EIP-55 form of validAddr; snapshots render addresses checksummed.
	checksumAddr = "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"
)

// mockReader is a scripted ChainReader with call counters.
type mockReader struct {
	mu sync.Mutex

	blockNumber uint64
	blockErr    error
	balance     *big.Int
	balanceErr  error
	header      *chain.BlockHeader
	headerErr   error
	fees        *chain.FeeEstimate
	feesErr     error

	blockCalls   int
	balanceCalls int
	headerCalls  int
	feeCalls     int

	// gate, when set, blocks every call until closed.
	gate chan struct{}
}

func (r *mockReader) wait() {
	if r.gate != nil {
		<-r.gate
	}
}

func (r *mockReader) count(n *int) {
	r.mu.Lock()
	*n++
	r.mu.Unlock()
}

func (r *mockReader) BlockNumber(ctx context.Context) (uint64, error) {
	r.count(&r.blockCalls)
	r.wait()
	return r.blockNumber, r.blockErr
}

func (r *mockReader) Balance(ctx context.Context, address string) (*big.Int, error) {
	r.count(&r.balanceCalls)
	r.wait()
	return r.balance, r.balanceErr
}

func (r *mockReader) LatestBlock(ctx context.Context) (*chain.BlockHeader, error) {
	r.count(&r.headerCalls)
	r.wait()
	return r.header, r.headerErr
}

func (r *mockReader) EstimateFeesPerGas(ctx context.Context) (*chain.FeeEstimate, error) {
	r.count(&r.feeCalls)
	r.wait()
	return r.fees, r.feesErr
}

func (r *mockReader) calls() (block, balance, header, fee int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.blockCalls, r.balanceCalls, r.headerCalls, r.feeCalls
}

func sepolia(t *testing.T) chain.Network {
	t.Helper()
	return chain.NewRegistry().Default()
}

func TestReadSummary(t *testing.T) {
	reader := &mockReader{blockNumber: 1000, balance: big.NewInt(0).SetUint64(2500000000000000000)}
	q := app.NewQuerier(sepolia(t), reader, nil)

	sum, err := q.ReadSummary(context.Background(), validAddr)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), sum.BlockNumber)
	assert.Equal(t, "2.5", chain.FormatWei(sum.Balance))

	block, balance, _, _ := reader.calls()
	assert.Equal(t, 1, block)
	assert.Equal(t, 1, balance)
}

// handshakeReader proves both summary reads are in flight at once:
// each call signals its start and waits for the other before
// returning. Sequential execution would deadlock into the timeout.
type handshakeReader struct {
	mockReader
	blockStarted   chan struct{}
	balanceStarted chan struct{}
}

func (r *handshakeReader) BlockNumber(ctx context.Context) (uint64, error) {
	close(r.blockStarted)
	select {
	case <-r.balanceStarted:
	case <-time.After(2 * time.Second):
		return 0, errors.New("balance read never started: reads are not concurrent")
	}
	return r.blockNumber, nil
}

func (r *handshakeReader) Balance(ctx context.Context, address string) (*big.Int, error) {
	close(r.balanceStarted)
	select {
	case <-r.blockStarted:
	case <-time.After(2 * time.Second):
		return nil, errors.New("block read never started: reads are not concurrent")
	}
	return r.balance, nil
}

func TestReadSummaryIssuesConcurrentReads(t *testing.T) {
	reader := &handshakeReader{
		mockReader:     mockReader{blockNumber: 42, balance: big.NewInt(1)},
		blockStarted:   make(chan struct{}),
		balanceStarted: make(chan struct{}),
	}
	q := app.NewQuerier(sepolia(t), reader, nil)

	sum, err := q.ReadSummary(context.Background(), validAddr)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), sum.BlockNumber)
}

func TestReadSummaryFailsAsUnit(t *testing.T) {
	reader := &mockReader{
		blockErr: errors.New("node unreachable"),
		balance:  big.NewInt(7),
	}
	q := app.NewQuerier(sepolia(t), reader, nil)

	sum, err := q.ReadSummary(context.Background(), validAddr)
	assert.Nil(t, sum, "no partial summary may be returned")

	var qerr *app.QueryError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, "block number", qerr.Op)
}

func TestReadPulse(t *testing.T) {
	reader := &mockReader{
		header: &chain.BlockHeader{Number: 1000, Timestamp: 1700000000, GasUsed: 21000},
		fees: &chain.FeeEstimate{
			MaxFeePerGas:         big.NewInt(2_000_000_000),
			MaxPriorityFeePerGas: big.NewInt(100_000_000),
		},
	}
	q := app.NewQuerier(sepolia(t), reader, nil)

	pulse, err := q.ReadPulse(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), pulse.Block.Number)
	require.NotNil(t, pulse.Fees.MaxFeePerGas)

	_, _, header, fee := reader.calls()
	assert.Equal(t, 1, header)
	assert.Equal(t, 1, fee)
}

func TestReadPulseFailsAsUnit(t *testing.T) {
	reader := &mockReader{
		header:  &chain.BlockHeader{Number: 5},
		feesErr: errors.New("fee market query rejected"),
	}
	q := app.NewQuerier(sepolia(t), reader, nil)

	pulse, err := q.ReadPulse(context.Background())
	assert.Nil(t, pulse)

	var qerr *app.QueryError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, "fee estimate", qerr.Op)
}

func TestReadBalance(t *testing.T) {
	reader := &mockReader{balance: big.NewInt(12)}
	q := app.NewQuerier(sepolia(t), reader, nil)

	wei, err := q.ReadBalance(context.Background(), validAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(12), wei.Int64())
}

func TestReadBalanceInvalidAddressMakesNoCall(t *testing.T) {
	reader := &mockReader{balance: big.NewInt(12)}
	q := app.NewQuerier(sepolia(t), reader, nil)

	_, err := q.ReadBalance(context.Background(), "definitely-not-an-address")
	assert.ErrorIs(t, err, app.ErrInvalidAddress)

	_, balance, _, _ := reader.calls()
	assert.Zero(t, balance, "validation failures must never reach the RPC collaborator")
}

func TestReadBalanceWrapsRPCFailure(t *testing.T) {
	reader := &mockReader{balanceErr: errors.New("connection reset")}
	q := app.NewQuerier(sepolia(t), reader, nil)

	_, err := q.ReadBalance(context.Background(), validAddr)

	var qerr *app.QueryError
	require.ErrorAs(t, err, &qerr)
	assert.Contains(t, err.Error(), "connection reset")
}
