package config

import (
	"encoding/json"
	"os"

	"github.com/tidemill/haulbatch/internal/flagx"
)

// JsonConfig is the DTO for reading the optional JSON configuration file.
type JsonConfig struct {
	ServerEndpointAddr string `json:"server_endpoint_addr"`
	CallerAddress      string `json:"caller_address"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path is taken from the -c or -config flags; if
// unset, nothing is loaded. Unreadable or invalid files cause a panic.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.ServerEndpointAddr = c.ServerEndpointAddr
	config.CallerAddress = c.CallerAddress
}
