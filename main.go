package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"github.com/urfave/cli/v3"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/logging"
	"storefront/internal/repositories"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:   "storefront",
		Usage:  "E-commerce REST backend for users, products and orders",
		Flags:  globalFlags(),
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "indexes",
				Usage:  "Create the MongoDB unique indexes and exit",
				Flags:  globalFlags(),
				Action: ensureIndexes,
			},
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "env-file",
			Value: ".env",
			Usage: "Path to a dotenv file loaded before reading the environment",
		},
		&cli.StringFlag{
			Name:  "port",
			Usage: "Listen address, overrides APP_PORT (e.g. :3001)",
		},
		&cli.StringFlag{
			Name:  "store",
			Usage: fmt.Sprintf("Storage backend, overrides STORE (%s or %s)", config.StoreMongo, config.StoreMemory),
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level, overrides LOG_LEVEL (debug, info, warn, error)",
		},
	}
}

// resolveConfig loads the env file, then lets explicitly set flags win over
// the environment and defaults.
func resolveConfig(cmd *cli.Command, v *viper.Viper) (*config.Config, error) {
	if err := config.LoadEnvFile(cmd.String("env-file")); err != nil {
		return nil, err
	}
	overrides := map[string]string{
		"port":      "APP_PORT",
		"store":     "STORE",
		"log-level": "LOG_LEVEL",
	}
	for flag, key := range overrides {
		if cmd.IsSet(flag) {
			v.Set(key, cmd.String(flag))
		}
	}
	return config.Load(v)
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := resolveConfig(cmd, viper.New())
	if err != nil {
		return err
	}
	logger := logging.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	var deps Deps
	switch cfg.Store {
	case config.StoreMemory:
		deps = Deps{
			Products: repositories.NewMemoryProductRepository(),
			Users:    repositories.NewMemoryUserRepository(),
			Orders:   repositories.NewMemoryOrderRepository(),
		}
		logger.Warn("using in-memory store, data is lost on exit")
	default:
		m, err := database.Connect(ctx, cfg.MongoURI(), cfg.DBName)
		if err != nil {
			return err
		}
		defer func() {
			if err := m.Close(context.Background()); err != nil {
				logger.Error("failed to disconnect from MongoDB", "error", err)
			}
		}()
		names, err := database.EnsureIndexes(ctx, m.DB)
		if err != nil {
			return err
		}
		logger.Info("connected to MongoDB", "db", cfg.DBName, "indexes", names)
		deps = Deps{
			Products: repositories.NewMongoProductRepository(m.Products()),
			Users:    repositories.NewMongoUserRepository(m.Users()),
			Orders:   repositories.NewMongoOrderRepository(m.Orders()),
			Store:    m,
		}
	}

	app := NewApp(cfg, logger, deps)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.Port, "store", cfg.Store)
		errCh <- app.Listen(cfg.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}

func ensureIndexes(ctx context.Context, cmd *cli.Command) error {
	cfg, err := resolveConfig(cmd, viper.New())
	if err != nil {
		return err
	}
	logger := logging.New(os.Stdout, cfg.LogLevel)

	m, err := database.Connect(ctx, cfg.MongoURI(), cfg.DBName)
	if err != nil {
		return err
	}
	defer m.Close(context.Background())

	names, err := database.EnsureIndexes(ctx, m.DB)
	if err != nil {
		return err
	}
	logger.Info("indexes ensured", "db", cfg.DBName, "indexes", names)
	return nil
}
