package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/surreal-look0e/Base-Horizon/internal/chain"
)

func TestIsValidAddress(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"lowercase", "0xd8da6bf26964af9d7eed9e03e53415d37aa96045", true},
		{"checksummed", "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", true},
		{"no prefix", "d8da6bf26964af9d7eed9e03e53415d37aa96045", true},
		{"too short", "0xd8da6bf2", false},
		{"too long", "0xd8da6bf26964af9d7eed9e03e53415d37aa9604512", false},
		{"non-hex", "0xZZda6bf26964af9d7eed9e03e53415d37aa96045", false},
		{"empty", "", false},
		{"ens name", "vitalik.eth", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, chain.IsValidAddress(tt.input))
		})
	}
}

func TestChecksumAddress(t *testing.T) {
	// Reference vector from EIP-55.
	assert.Equal(t,
		"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
		chain.ChecksumAddress("0xd8da6bf26964af9d7eed9e03e53415d37aa96045"))
}

func TestChecksumAddressUppercaseInput(t *testing.T) {
	assert.Equal(t,
		"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
		chain.ChecksumAddress("0XD8DA6BF26964AF9D7EED9E03E53415D37AA96045"))
}
