package chain_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/surreal-look0e/Base-Horizon/internal/chain"
)

func eth(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
}

func TestFormatWei(t *testing.T) {
	tests := []struct {
		name string
		wei  *big.Int
		want string
	}{
		{"nil", nil, "0"},
		{"zero", big.NewInt(0), "0"},
		{"one wei", big.NewInt(1), "0.000000000000000001"},
		{"one ether", eth(1), "1"},
		{"two and a half", big.NewInt(0).SetUint64(2500000000000000000), "2.5"},
		{"thousand ether", eth(1000), "1000"},
		{"tenth", new(big.Int).Exp(big.NewInt(10), big.NewInt(17), nil), "0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chain.FormatWei(tt.wei))
		})
	}
}

func TestWeiToGwei(t *testing.T) {
	assert.Equal(t, float64(0), chain.WeiToGwei(nil))
	assert.Equal(t, float64(1), chain.WeiToGwei(big.NewInt(1_000_000_000)))
	assert.Equal(t, 1.5, chain.WeiToGwei(big.NewInt(1_500_000_000)))
}
