// Package config persists the few settings Base Horizon keeps between
// runs: the startup network, the RPC selection algorithm, custom RPC
// endpoints and the dashboard refresh interval. Sessions are never
// persisted; they live and die with the process.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

const (
	defaultNetwork   = "base-sepolia"
	defaultAlgorithm = "fastest"
	defaultInterval  = 10

	configFile  = "config.json"
	walletsFile = "wallets.json"
)

// Config holds the persisted settings.
type Config struct {
	DefaultNetwork string              `json:"default_network"`
	RPCAlgorithm   string              `json:"rpc_algorithm"`
	WatchInterval  int                 `json:"watch_interval"`
	CustomRPCs     map[string][]string `json:"custom_rpcs,omitempty"`

	configDir string
}

// Load reads config from dir (or creates defaults). dir defaults to
// ~/.base-horizon.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".base-horizon")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.configDir = dir
	if cfg.CustomRPCs == nil {
		cfg.CustomRPCs = make(map[string][]string)
	}

	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// AddRPC adds a custom RPC URL for a network.
func (c *Config) AddRPC(network, url string) error {
	if c.CustomRPCs == nil {
		c.CustomRPCs = make(map[string][]string)
	}
	if slices.Contains(c.CustomRPCs[network], url) {
		return fmt.Errorf("RPC %s already exists for network %s", url, network)
	}
	c.CustomRPCs[network] = append(c.CustomRPCs[network], url)
	return nil
}

// RemoveRPC removes a custom RPC URL for a network.
func (c *Config) RemoveRPC(network, url string) error {
	rpcs := c.CustomRPCs[network]
	idx := slices.Index(rpcs, url)
	if idx == -1 {
		return fmt.Errorf("RPC %s not found for network %s", url, network)
	}
	c.CustomRPCs[network] = slices.Delete(rpcs, idx, idx+1)
	return nil
}

// GetRPCs returns custom RPCs for a network.
func (c *Config) GetRPCs(network string) []string {
	return c.CustomRPCs[network]
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// WalletsPath returns the wallets.json location inside the config dir.
func (c *Config) WalletsPath() string {
	return filepath.Join(c.configDir, walletsFile)
}

func defaults(dir string) *Config {
	return &Config{
		DefaultNetwork: defaultNetwork,
		RPCAlgorithm:   defaultAlgorithm,
		WatchInterval:  defaultInterval,
		CustomRPCs:     make(map[string][]string),
		configDir:      dir,
	}
}
