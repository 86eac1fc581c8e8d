package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and WebSocket server",
		Long: `Run the HTTP API, the notification WebSocket and the scheduled jobs.

The schema is migrated on start. Kafka, RabbitMQ and Redis relays are enabled
when KAFKA_BROKERS, RABBITMQ_URL or REDIS_ADDR is set.

Example:
  restaurant serve --port 9090
  restaurant serve --env-file ./deploy/.env`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(rootOpts.EnvFile)
			if err != nil {
				return err
			}
			if port != "" {
				cfg.HTTPPort = port
				if err = cfg.Validate(); err != nil {
					return err
				}
			}
			return Serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "HTTP port (overrides HTTP_PORT)")

	return cmd
}

// Serve runs the service until ctx is cancelled.
func Serve(ctx context.Context, cfg Config) error {
	logger, err := NewLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg, logger)
	if err != nil {
		return err
	}
	defer closeDatabase(db, logger)

	root := NewCompositionRoot(cfg, db, logger)
	defer func() {
		if err := root.Close(); err != nil {
			logger.WithError(err).Warn("closing relays")
		}
	}()
	if err = root.ConnectRelays(ctx); err != nil {
		return err
	}

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := httpin.NewEcho(logger)
	root.CreateServer(Version).Register(e)

	serveErr := make(chan error, 1)
	go func() {
		logger.WithField("port", cfg.HTTPPort).Info("http server listening")
		serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func openDatabase(cfg Config, logger *logrus.Logger) (*gorm.DB, error) {
	db, err := postgres.Open(cfg.DBDriver, cfg.DSN(), gormLogLevel(logger.GetLevel()))
	if err != nil {
		return nil, err
	}

	if err = postgres.Migrate(db); err != nil {
		closeDatabase(db, logger)
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.WithField("driver", cfg.DBDriver).Info("database ready")
	return db, nil
}

func closeDatabase(db *gorm.DB, logger logrus.FieldLogger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err = sqlDB.Close(); err != nil {
		logger.WithError(err).Warn("closing database")
	}
}
