// Package cli implements the interactive filebox client: a small REPL that
// reads commands from stdin, calls the server over HTTP and prints OK/FAILED
// results.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dpetrovs/filebox/internal/client/api"
	"github.com/dpetrovs/filebox/internal/client/config"
)

// Session holds the client-side login state. The server keeps no session;
// the username remembered here scopes every owner-bound command.
type Session struct {
	Username string
}

// IsActive reports whether a user is logged in.
func (s *Session) IsActive() bool {
	return s.Username != ""
}

// commandAPI is the server surface the CLI needs; satisfied by *api.Client,
// stubbed in tests.
type commandAPI interface {
	Put(ctx context.Context, filename, user string, content []byte) (*api.Result, error)
	View(ctx context.Context, user string) (*api.Result, error)
	Get(ctx context.Context, filename, user string) (*api.Result, error)
	NewUser(ctx context.Context, username, password string) (*api.Result, error)
	Login(ctx context.Context, username, password string) (*api.Result, error)
	Share(ctx context.Context, from, to, filename string) (*api.Result, error)
}

type App struct {
	config  *config.Config
	api     commandAPI
	session Session
	reader  *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerEndpointAddr, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, func() string { return a.session.Username }, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsActive()
}
