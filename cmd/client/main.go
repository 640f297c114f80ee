package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/moviekeeper/internal/client/api"
	"github.com/iudanet/moviekeeper/internal/client/auth"
	"github.com/iudanet/moviekeeper/internal/client/cli"
	"github.com/iudanet/moviekeeper/internal/client/connectivity"
	"github.com/iudanet/moviekeeper/internal/client/iocli"
	"github.com/iudanet/moviekeeper/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "moviekeeper-client.db", "Path to local database")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Ctrl+C завершает долгоживущие команды (watch)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)
	authService := auth.NewService(apiClient, boltStorage, logger)

	// Монитор связности: первый опрос выполняется синхронно,
	// одноразовые команды сразу видят актуальное состояние
	monitor := connectivity.NewProbeMonitor(*serverURL, 5*time.Second, logger)
	monitor.Start(ctx)
	defer monitor.Stop()

	c := cli.New(iocli.NewStdio(), apiClient, authService, boltStorage, monitor, logger)
	c.Run(ctx, command, args[1:])
}

func printVersion() {
	fmt.Printf("MovieKeeper Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
