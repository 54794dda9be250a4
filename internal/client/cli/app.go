// Package cli is the interactive prover client. It keeps private keys in
// an encrypted local key file, runs the commit/challenge/respond exchange
// against the server and holds the resulting credential for the session.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/sonarauth/internal/client/client"
	"github.com/dmitrijs2005/sonarauth/internal/client/config"
	"github.com/dmitrijs2005/sonarauth/internal/client/keystore"
	"github.com/dmitrijs2005/sonarauth/internal/group"
)

// apiClient is the remote surface the CLI needs; the real GRPCClient
// satisfies it, tests provide a fake.
type apiClient interface {
	Register(ctx context.Context, userName string, pubKey string) error
	Challenge(ctx context.Context, userName string, r string) (string, error)
	Verify(ctx context.Context, userName string, response string) error
	ValidateToken(ctx context.Context) (string, error)
	Unregister(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

type App struct {
	config   *config.Config
	api      apiClient
	keys     *keystore.Keystore
	group    group.Group
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewSonarAuthClientService(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{
		config: c,
		api:    apiClient,
		keys:   keystore.New(c.KeyFilePath),
		group:  group.NewSecp256k1(),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}
