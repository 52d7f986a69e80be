package chain

import (
	"context"
	"math/big"
)

// FeeEstimate holds EIP-1559 fee suggestions in wei. A nil field means
// the chain did not report a value for it; consumers must handle
// absence explicitly.
type FeeEstimate struct {
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}

// EstimateFeesPerGas suggests maxFeePerGas and maxPriorityFeePerGas for
// the endpoint's chain. The base fee comes from the latest block header
// and the tip from eth_maxPriorityFeePerGas; maxFee = 2*baseFee + tip.
// On a chain without an EIP-1559 fee market both fields stay nil. Only
// a failed header fetch is an error: a node that rejects the tip query
// degrades to an absent tip rather than failing the estimate.
func (c *EVMClient) EstimateFeesPerGas(ctx context.Context) (*FeeEstimate, error) {
	header, err := c.LatestBlock(ctx)
	if err != nil {
		return nil, err
	}

	est := &FeeEstimate{}

	if tipResult, err := c.call(ctx, "eth_maxPriorityFeePerGas"); err == nil {
		if tip, err := resultToBig(tipResult); err == nil {
			est.MaxPriorityFeePerGas = tip
		}
	}

	if header.BaseFee != nil {
		maxFee := new(big.Int).Mul(header.BaseFee, big.NewInt(2))
		if est.MaxPriorityFeePerGas != nil {
			maxFee.Add(maxFee, est.MaxPriorityFeePerGas)
		}
		est.MaxFeePerGas = maxFee
	}

	return est, nil
}
