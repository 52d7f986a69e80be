package app

import (
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	"github.com/surreal-look0e/Base-Horizon/internal/chain"
)

// Renderer receives the full text snapshot for display. Each call
// replaces whatever was shown before; the last call wins.
type Renderer interface {
	Render(lines []string)
}

// WriterRenderer prints each snapshot as a block of lines. It is the
// renderer behind the one-shot CLI commands.
type WriterRenderer struct {
	w io.Writer
}

// NewWriterRenderer creates a renderer writing to w.
func NewWriterRenderer(w io.Writer) *WriterRenderer {
	return &WriterRenderer{w: w}
}

func (r *WriterRenderer) Render(lines []string) {
	fmt.Fprintln(r.w, strings.Join(lines, "\n"))
}

// --- snapshot line builders ---
// One logical fact per line; explorer links use the active network's
// base URL.

func summaryLines(net chain.Network, sess Session, sum *Summary) []string {
	addr := chain.ChecksumAddress(sess.Address)
	return []string{
		"Connected: " + addr,
		fmt.Sprintf("chainId: %d", sess.ChainID),
		"Network: " + net.Label,
		fmt.Sprintf("Latest block: %d", sum.BlockNumber),
		fmt.Sprintf("ETH balance: %s ETH", chain.FormatWei(sum.Balance)),
		"Explorer: " + net.AddressURL(addr),
	}
}

func pulseLines(net chain.Network, pulse *Pulse) []string {
	return []string{
		"Network pulse: " + net.Label,
		fmt.Sprintf("Latest block: %d", pulse.Block.Number),
		"Block time: " + time.Unix(int64(pulse.Block.Timestamp), 0).UTC().Format(time.RFC3339),
		fmt.Sprintf("Gas used: %d", pulse.Block.GasUsed),
		"Max fee per gas: " + feeLine(pulse.Fees.MaxFeePerGas),
		"Max priority fee per gas: " + feeLine(pulse.Fees.MaxPriorityFeePerGas),
		"Explorer: " + net.BlockURL(pulse.Block.Number),
	}
}

func balanceLines(net chain.Network, address string, wei *big.Int) []string {
	addr := chain.ChecksumAddress(address)
	return []string{
		"Address: " + addr,
		"Network: " + net.Label,
		fmt.Sprintf("ETH balance: %s ETH", chain.FormatWei(wei)),
		"Explorer: " + net.AddressURL(addr),
	}
}

func networkLines(net chain.Network) []string {
	return []string{
		"Network: " + net.Label,
		fmt.Sprintf("chainId: %d", net.ChainID),
		"Status: disconnected",
	}
}

func errorLines(err error) []string {
	return []string{"Error: " + err.Error()}
}

func feeLine(wei *big.Int) string {
	if wei == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.3f gwei", chain.WeiToGwei(wei))
}
