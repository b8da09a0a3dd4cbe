package config

import (
	"flag"
	"os"

	"github.com/tidemill/haulbatch/internal/flagx"
)

// parseFlags populates CLI Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address:port of the batcher gRPC endpoint
//	-w string   caller address sent with every request
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "batcher gRPC endpoint")
	fs.StringVar(&config.CallerAddress, "w", config.CallerAddress, "caller address")

	err := fs.Parse(args)
	if err != nil {
		panic(err)
	}
}
