// Package cli implements the operator REPL for the batcher.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/tidemill/haulbatch/internal/client/client"
	"github.com/tidemill/haulbatch/internal/client/config"
)

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.CallerAddress)
	if err != nil {
		return nil, err
	}

	return &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	statusFn := func() string {
		if a.config.CallerAddress == "" {
			return "anonymous"
		}
		return a.config.CallerAddress
	}

	runREPL(ctx, a, statusFn, bufio.NewScanner(os.Stdin))
}
