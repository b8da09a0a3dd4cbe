package config

import (
	"encoding/json"
	"os"

	"github.com/tidemill/haulbatch/internal/flagx"
	"github.com/tidemill/haulbatch/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
//
// This struct is an intermediate DTO (Data Transfer Object) used only for
// reading JSON configuration files. After unmarshalling, its fields are
// copied into the runtime Config struct.
type JsonConfig struct {
	EndpointAddrGRPC   string         `json:"endpoint_addr_grpc"`
	DatabaseDSN        string         `json:"database_dsn"`
	HaulerAddrGRPC     string         `json:"hauler_addr_grpc"`
	SelfAddress        string         `json:"self_address"`
	VaultID            string         `json:"vault_id"`
	InputAsset         string         `json:"input_asset"`
	PoolID             string         `json:"pool_id"`
	PoolAssetIndex     int32          `json:"pool_asset_index"`
	MaxPendingDeposits string         `json:"max_pending_deposits"`
	SlippageBps        int32          `json:"slippage_bps"`
	Governance         string         `json:"governance"`
	AuthorityKey       string         `json:"authority_key"`
	ReplayCacheSize    int            `json:"replay_cache_size"`
	S3RootUser         string         `json:"s3_root_user"`
	S3RootPassword     string         `json:"s3_root_password"`
	S3Bucket           string         `json:"s3_bucket"`
	S3Region           string         `json:"s3_region"`
	S3BaseEndpoint     string         `json:"s3_base_endpoint"`
	S3ArchiveEnabled   bool           `json:"s3_archive_enabled"`
	ArchiveTimeout     timex.Duration `json:"archive_timeout"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags. If it is
// not set, no JSON file is loaded. If the file cannot be read or contains
// invalid JSON, the function panics.
//
// The caller is expected to merge these values with defaults and
// command-line flags as part of the full configuration process.
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

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.DatabaseDSN = c.DatabaseDSN
	config.HaulerAddrGRPC = c.HaulerAddrGRPC
	config.SelfAddress = c.SelfAddress
	config.VaultID = c.VaultID
	config.InputAsset = c.InputAsset
	config.PoolID = c.PoolID
	config.PoolAssetIndex = c.PoolAssetIndex
	config.MaxPendingDeposits = c.MaxPendingDeposits
	config.SlippageBps = c.SlippageBps
	config.Governance = c.Governance
	config.AuthorityKey = c.AuthorityKey
	config.ReplayCacheSize = c.ReplayCacheSize
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
	config.S3ArchiveEnabled = c.S3ArchiveEnabled
	config.ArchiveTimeout = c.ArchiveTimeout.Duration
}
