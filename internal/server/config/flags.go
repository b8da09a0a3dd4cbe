package config

import (
	"flag"
	"os"
	"time"

	"github.com/tidemill/haulbatch/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-n string   hauler node gRPC address
//	-f string   batcher self address
//	-v string   bound vault id
//	-i string   conversion input asset
//	-l string   conversion pool id
//	-x int      accepted-asset index inside the pool
//	-m string   initial pending-deposit cap (decimal)
//	-t int      initial slippage tolerance, basis points
//	-g string   initial governance address
//	-k string   authority public key, hex
//	-z int      replay cache size
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-r string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-o bool     enable S3 settlement archiving
//	-w int      archive upload timeout in seconds
//
// Duration flags are accepted as integers in seconds and then converted to
// time.Duration values.
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-n", "-f", "-v", "-i", "-l", "-x", "-m", "-t", "-g", "-k", "-z", "-u", "-p", "-b", "-r", "-e", "-o", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.HaulerAddrGRPC, "n", config.HaulerAddrGRPC, "hauler node gRPC address")
	fs.StringVar(&config.SelfAddress, "f", config.SelfAddress, "batcher self address")
	fs.StringVar(&config.VaultID, "v", config.VaultID, "bound vault id")
	fs.StringVar(&config.InputAsset, "i", config.InputAsset, "conversion input asset")
	fs.StringVar(&config.PoolID, "l", config.PoolID, "conversion pool id")

	poolAssetIndex := fs.Int("x", int(config.PoolAssetIndex), "accepted-asset index inside the pool")

	fs.StringVar(&config.MaxPendingDeposits, "m", config.MaxPendingDeposits, "initial pending-deposit cap")

	slippageBps := fs.Int("t", int(config.SlippageBps), "initial slippage tolerance (basis points)")

	fs.StringVar(&config.Governance, "g", config.Governance, "initial governance address")
	fs.StringVar(&config.AuthorityKey, "k", config.AuthorityKey, "authority public key (hex)")
	fs.IntVar(&config.ReplayCacheSize, "z", config.ReplayCacheSize, "replay cache size")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "r", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.BoolVar(&config.S3ArchiveEnabled, "o", config.S3ArchiveEnabled, "enable S3 settlement archiving")

	archiveTimeout := fs.Int("w", int(config.ArchiveTimeout.Seconds()), "archive upload timeout (in seconds)")

	err := fs.Parse(args)
	if err != nil {
		panic(err)
	}

	config.PoolAssetIndex = int32(*poolAssetIndex)
	config.SlippageBps = int32(*slippageBps)
	config.ArchiveTimeout = time.Duration(*archiveTimeout) * time.Second
}
