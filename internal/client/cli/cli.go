// Package cli реализует консольные команды клиента каталога.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	httpClient "github.com/iudanet/moviekeeper/internal/client/api"
	"github.com/iudanet/moviekeeper/internal/client/auth"
	"github.com/iudanet/moviekeeper/internal/client/catalog"
	"github.com/iudanet/moviekeeper/internal/client/conflict"
	"github.com/iudanet/moviekeeper/internal/client/connectivity"
	"github.com/iudanet/moviekeeper/internal/client/iocli"
	"github.com/iudanet/moviekeeper/internal/client/storage"
	"github.com/iudanet/moviekeeper/internal/client/sync"
)

type Cli struct {
	io          iocli.IO
	apiClient   httpClient.ClientAPI
	authService auth.Service
	movieStore  storage.MovieStorage
	monitor     connectivity.Monitor
	logger      *slog.Logger
}

func New(
	io iocli.IO,
	apiClient httpClient.ClientAPI,
	authService auth.Service,
	movieStore storage.MovieStorage,
	monitor connectivity.Monitor,
	logger *slog.Logger,
) *Cli {
	return &Cli{
		io:          io,
		apiClient:   apiClient,
		authService: authService,
		movieStore:  movieStore,
		monitor:     monitor,
		logger:      logger,
	}
}

// session возвращает сохраненную сессию или понятную ошибку
func (c *Cli) session(ctx context.Context) (*storage.AuthData, error) {
	authData, err := c.authService.Session(ctx)
	if err != nil {
		return nil, fmt.Errorf("not authenticated. Please run 'moviekeeper login' first")
	}
	return authData, nil
}

// newEngine собирает движок синхронизации для текущей сессии.
// Резолвер привязывается к движку после его создания: они ссылаются
// друг на друга.
func (c *Cli) newEngine(ctx context.Context) (*sync.Engine, *conflict.Resolver, *catalog.Store, error) {
	authData, err := c.session(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	catalogStore := catalog.NewStore(c.logger)
	resolver := conflict.NewResolver(nil, c.logger)
	engine := sync.NewEngine(c.apiClient, c.movieStore, catalogStore, c.monitor,
		resolver, authData.AccessToken, authData.UserID, c.logger)
	resolver.BindSaver(engine)

	return engine, resolver, catalogStore, nil
}

func PrintUsage() {
	fmt.Println("MovieKeeper Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  moviekeeper [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version      Show version information")
	fmt.Println("  --server URL   Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH      Path to local database (default: moviekeeper-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                Register new user")
	fmt.Println("  login                   Login to server")
	fmt.Println("  logout                  Logout from server")
	fmt.Println("  status                  Show session and connectivity status")
	fmt.Println("  list [--3d|--2d] [prefix]  List catalog (optionally filtered)")
	fmt.Println("  add                     Add a movie")
	fmt.Println("  edit <id>               Edit a movie")
	fmt.Println("  delete <id>             Delete a movie")
	fmt.Println("  sync                    Reconcile offline edits with server")
	fmt.Println("  resolve                 Resolve pending version conflicts")
	fmt.Println("  watch                   Follow live catalog updates")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  moviekeeper register")
	fmt.Println("  moviekeeper login")
	fmt.Println("  moviekeeper list --3d Dune")
	fmt.Println("  moviekeeper add")
	fmt.Println("  moviekeeper delete b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	fmt.Println("  moviekeeper --server https://example.com login")
}
