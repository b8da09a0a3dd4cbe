// Package config loads runtime configuration for the batcher CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
package config

// Config holds runtime settings for the batcher CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the batcher gRPC endpoint.
//   - CallerAddress: address sent with every request; privileged operations
//     are checked against it on the server side.
type Config struct {
	ServerEndpointAddr string
	CallerAddress      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.CallerAddress = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
