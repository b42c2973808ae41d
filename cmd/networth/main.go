package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/simaogato/networth/internal/adapter/cli"
	"github.com/simaogato/networth/internal/adapter/repository/memory"
	"github.com/simaogato/networth/internal/adapter/repository/postgres"
	"github.com/simaogato/networth/internal/adapter/repository/sqlite"
	"github.com/simaogato/networth/internal/config"
	"github.com/simaogato/networth/internal/domain"
	"github.com/simaogato/networth/internal/log"
	"github.com/simaogato/networth/internal/usecase/tracker"
)

func main() {
	// Answers shell completion requests and exits when COMP_LINE is set
	cli.Completion().Complete("networth")

	// 1. Configuration and logging
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	logConfig := log.DefaultConfig()
	logConfig.Level = log.ParseLevel(cfg.LogLevel)
	logConfig.Format = cfg.LogFormat
	logger := log.New(logConfig)
	log.SetDefault(logger)

	// 2. Storage
	kv, closeStore, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open storage", log.FieldOperation, log.OpStartup, log.FieldBackend, cfg.DataBackend, log.FieldError, err)
		os.Exit(int(subcommands.ExitFailure))
	}

	// 3. Tracker
	ctx := context.Background()
	svc := tracker.NewTrackerService(kv, logger)
	if err := svc.Load(ctx); err != nil {
		logger.Error("failed to load records", log.FieldOperation, log.OpStartup, log.FieldError, err)
		closeStore()
		os.Exit(int(subcommands.ExitFailure))
	}

	// 4. Command line
	app := cli.NewApp(svc, cli.NewRenderer(cfg.Currency), logger)
	app.SnapshotLimit = cfg.SnapshotDisplayLimit
	app.Serve = func(ctx context.Context) error {
		return serve(ctx, cfg, svc, logger)
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cli.Register(commander, app)

	flag.Parse()
	status := commander.Execute(ctx)

	closeStore()
	os.Exit(int(status))
}

// openStore opens the configured persistence backend.
// The returned close function is never nil.
func openStore(cfg *config.Config, logger *log.Logger) (domain.KeyValueStore, func(), error) {
	storageLogger := logger.WithComponent(log.ComponentStorage)

	switch cfg.DataBackend {
	case config.BackendMemory:
		storageLogger.Warn("using in-memory storage, nothing will be saved", log.FieldBackend, cfg.DataBackend)
		return memory.NewKeyValueStore(), func() {}, nil

	case config.BackendPostgres:
		db, err := postgres.NewDB(cfg.PostgresConnStr)
		if err != nil {
			return nil, func() {}, fmt.Errorf("failed to connect to database: %w", err)
		}
		storageLogger.Debug("storage opened", log.FieldBackend, cfg.DataBackend)
		return postgres.NewKeyValueStore(db), closer(db.Close, storageLogger), nil

	default:
		db, err := sqlite.NewDB(cfg.SQLiteDBPath)
		if err != nil {
			return nil, func() {}, fmt.Errorf("failed to open sqlite database %q: %w", cfg.SQLiteDBPath, err)
		}
		storageLogger.Debug("storage opened", log.FieldBackend, cfg.DataBackend, "path", cfg.SQLiteDBPath)
		return sqlite.NewKeyValueStore(db), closer(db.Close, storageLogger), nil
	}
}

func closer(closeFn func() error, logger *log.Logger) func() {
	return func() {
		if err := closeFn(); err != nil {
			logger.Warn("failed to close storage", log.FieldOperation, log.OpShutdown, log.FieldError, err)
		}
	}
}
