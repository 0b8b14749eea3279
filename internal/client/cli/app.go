// Package cli implements the interactive client: a small REPL that drives
// every API operation over the HTTP endpoint.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/deepthoughts/internal/client/client"
	"github.com/dmitrijs2005/deepthoughts/internal/client/config"
)

type App struct {
	config   *config.Config
	api      *client.APIClient
	reader   *bufio.Reader
	out      io.Writer
	username string
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    client.NewAPIClient(c.ServerEndpointAddr),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *App) isLoggedIn() bool {
	return a.username != ""
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
