package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/talariafits/talaria/internal/client/api"
	"github.com/talariafits/talaria/internal/client/catalog"
	"github.com/talariafits/talaria/internal/client/cli"
	"github.com/talariafits/talaria/internal/client/config"
	"github.com/talariafits/talaria/internal/client/history"
	"github.com/talariafits/talaria/internal/client/iocli"
	"github.com/talariafits/talaria/internal/client/session"
	"github.com/talariafits/talaria/internal/client/storage/boltdb"
	"github.com/talariafits/talaria/internal/crypto"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg := config.Load()

	showVersion := flag.Bool("version", false, "Show version information")
	backendURL := flag.String("backend", cfg.BackendURL, "Backend URL")
	dbPath := flag.String("db", cfg.DBPath, "Path to local session database")
	keyPath := flag.String("keyfile", cfg.KeyPath, "Path to device keyfile")
	historyPath := flag.String("history", cfg.HistoryPath, "Path to local history database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	setupLogging(cfg.LogLevel)

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	ctx := context.Background()

	// Derive the storage key from the device keyfile
	secret, salt, err := crypto.LoadOrCreateDeviceSecret(*keyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load device keyfile: %v\n", err)
		os.Exit(1)
	}
	storageKey, err := crypto.DeriveStorageKey(secret, salt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to derive storage key: %v\n", err)
		os.Exit(1)
	}

	boltStorage, err := boltdb.New(ctx, *dbPath, storageKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	historyStore, err := history.New(ctx, *historyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open history database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := historyStore.Close(); err != nil {
			slog.Error("failed to close history database", "error", err)
		}
	}()

	backend := api.NewClient(*backendURL)
	if deviceID, err := boltStorage.DeviceID(ctx); err == nil {
		backend.SetDeviceID(deviceID)
	} else {
		slog.Warn("device id unavailable", "error", err)
	}

	catalogClient := catalog.NewClient(cfg.CatalogURL, cfg.CatalogAPIKey, cfg.CatalogHost)
	queryCache := catalog.NewQueryCache(catalogClient)

	sess := session.NewManager(boltStorage, backend)
	sess.Restore(ctx)

	app := cli.New(iocli.NewStdio(), backend, queryCache, sess, historyStore)
	if err := app.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

func printVersion() {
	fmt.Printf("Talaria Fits Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
