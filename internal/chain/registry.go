package chain

import "errors"

// ErrNetworkNotFound is returned when a network is not in the registry.
var ErrNetworkNotFound = errors.New("network not found")

// Network holds the configuration for one supported chain. Values are
// fixed at process start; nothing mutates a Network after NewRegistry.
type Network struct {
	Name     string   // slug, e.g. "base-sepolia"
	Label    string   // human-readable display label
	ChainID  int64
	RPCs     []string // candidate JSON-RPC endpoints, primary first
	Explorer string   // explorer base URL, no trailing slash
}

// Registry is the fixed two-network registry: Base Sepolia and Base
// Mainnet. Base Sepolia is the startup default.
type Registry struct {
	networks [2]Network
}

// NewRegistry returns the registry with both Base networks.
func NewRegistry() *Registry {
	return &Registry{networks: [2]Network{
		{
			Name:    "base-sepolia",
			Label:   "Base Sepolia",
			ChainID: 84532,
			RPCs: []string{
				"https://sepolia.base.org",
				"https://base-sepolia-rpc.publicnode.com",
			},
			Explorer: "https://sepolia.basescan.org",
		},
		{
			Name:    "base-mainnet",
			Label:   "Base Mainnet",
			ChainID: 8453,
			RPCs: []string{
				"https://mainnet.base.org",
				"https://base.llamarpc.com",
			},
			Explorer: "https://basescan.org",
		},
	}}
}

// Networks returns both entries in fixed order: Base Sepolia first.
func (r *Registry) Networks() []Network {
	return r.networks[:]
}

// Default returns the startup network (Base Sepolia).
func (r *Registry) Default() Network {
	return r.networks[0]
}

// Other returns the entry that is not cur. The toggle is its own
// inverse; it is only meaningful for a two-element registry, so
// extending the registry means replacing this with selection by
// chain id.
func (r *Registry) Other(cur Network) Network {
	if cur.ChainID == r.networks[0].ChainID {
		return r.networks[1]
	}
	return r.networks[0]
}

// ByName finds a network by its slug name.
func (r *Registry) ByName(name string) (Network, error) {
	for _, n := range r.networks {
		if n.Name == name {
			return n, nil
		}
	}
	return Network{}, ErrNetworkNotFound
}

// ByChainID finds a network by its numeric chain id.
func (r *Registry) ByChainID(id int64) (Network, error) {
	for _, n := range r.networks {
		if n.ChainID == id {
			return n, nil
		}
	}
	return Network{}, ErrNetworkNotFound
}
