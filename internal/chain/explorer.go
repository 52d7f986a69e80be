package chain

import "fmt"

// AddressURL returns the explorer page for an address.
func (n Network) AddressURL(address string) string {
	return n.Explorer + "/address/" + address
}

// BlockURL returns the explorer page for a block number.
func (n Network) BlockURL(number uint64) string {
	return fmt.Sprintf("%s/block/%d", n.Explorer, number)
}
