package chain

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// IsValidAddress reports whether s is a syntactically valid
// 0x-prefixed 20-byte hex address. Purely local; no network call.
func IsValidAddress(s string) bool {
	return common.IsHexAddress(s)
}

// ChecksumAddress returns the EIP-55 mixed-case form of addr.
// The input must already be a valid hex address.
func ChecksumAddress(addr string) string {
	lower := strings.ToLower(strings.TrimPrefix(strings.TrimPrefix(addr, "0x"), "0X"))

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	hash := hex.EncodeToString(h.Sum(nil))

	var result strings.Builder
	result.WriteString("0x")
	for i, c := range lower {
		if c >= '0' && c <= '9' {
			result.WriteByte(byte(c))
		} else if hash[i] >= '8' {
			result.WriteByte(byte(c - 32)) // to uppercase
		} else {
			result.WriteByte(byte(c))
		}
	}
	return result.String()
}
