package network

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings maps a network name to the addresses a verification client needs
// on that network.
type Settings map[string]NetworkSettings

// NetworkSettings holds the per-network contract addresses and RPC endpoint.
type NetworkSettings struct {
	NetworkURL      string `yaml:"networkURL"`
	RegistryAddress string `yaml:"registryAddress"`
	HubAddress      string `yaml:"hubAddress"`
}

// Default network names.
const (
	Mainnet = "celo"
	Testnet = "celo-testnet"
)

// defaultSettings covers the networks the verification hub is deployed on.
// A resolver settings file extends or overrides these entries.
var defaultSettings = Settings{
	Mainnet: {
		NetworkURL:      "https://forno.celo.org",
		RegistryAddress: "0x77117D60eaB7C044e785D68edB6C7E0e134970Ea",
		HubAddress:      "0x77117D60eaB7C044e785D68edB6C7E0e134970Eb",
	},
	Testnet: {
		NetworkURL:      "https://alfajores-forno.celo-testnet.org",
		RegistryAddress: "0x3deB59b5449225fBa5b787b0C425dBd6397cb60E",
		HubAddress:      "0x3deB59b5449225fBa5b787b0C425dBd6397cb60F",
	},
}

// ParseSettings reads resolver settings from a yaml document and merges them
// over the built-in defaults.
func ParseSettings(r io.Reader) (Settings, error) {
	parsed := Settings{}
	if err := yaml.NewDecoder(r).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("parse resolver settings: %w", err)
	}
	merged := Settings{}
	for name, s := range defaultSettings {
		merged[name] = s
	}
	for name, s := range parsed {
		merged[name] = s
	}
	return merged, nil
}

// LoadSettings reads resolver settings from a file path. An empty path
// returns the built-in defaults.
func LoadSettings(path string) (Settings, error) {
	if path == "" {
		return defaultSettings, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open resolver settings: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ParseSettings(f)
}

// Resolve returns the settings for the named network.
func (s Settings) Resolve(name string) (NetworkSettings, error) {
	ns, ok := s[name]
	if !ok {
		return NetworkSettings{}, fmt.Errorf("unknown network %q", name)
	}
	return ns, nil
}
