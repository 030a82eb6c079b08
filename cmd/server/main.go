package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/opiegroup/boscotek2026-sub003/config"
	"github.com/opiegroup/boscotek2026-sub003/internal/api"
	"github.com/opiegroup/boscotek2026-sub003/internal/export"
	"github.com/opiegroup/boscotek2026-sub003/internal/health"
	"github.com/opiegroup/boscotek2026-sub003/internal/ifc"
	"github.com/opiegroup/boscotek2026-sub003/internal/observability"
	"github.com/opiegroup/boscotek2026-sub003/internal/store/blob"
	"github.com/opiegroup/boscotek2026-sub003/internal/store/postgres"
)

var (
	// Build-time variables (set via ldflags)
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "boscotek-server",
		Short: "Boscotek Configurator Export Server",
		Long:  "Parametric IFC export service for the Boscotek industrial furniture configurator.",
		RunE:  runServer,
	}

	rootCmd.Flags().StringP("config", "c", "", "Path to configuration file")
	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Boscotek Export Server\n")
			fmt.Printf("Version: %s\n", version)
			fmt.Printf("Commit: %s\n", commit)
			fmt.Printf("Build Time: %s\n", buildTime)
		},
	}
	rootCmd.AddCommand(versionCmd)

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE:  runMigrations,
	}
	migrateCmd.Flags().StringP("config", "c", "", "Path to configuration file")
	rootCmd.AddCommand(migrateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	if versionFlag, _ := cmd.Flags().GetBool("version"); versionFlag {
		fmt.Printf("Boscotek Export Server %s (commit: %s, built: %s)\n", version, commit, buildTime)
		return nil
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := observability.NewLogger(observability.LoggingConfig{
		Level:  observability.LogLevel(cfg.Logging.Level),
		Format: observability.LogFormat(cfg.Logging.Format),
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	observability.SetGlobalLogger(logger)

	logger.Info("Starting Boscotek export server")
	buildLogger := logger.GetZerologLogger()
	buildLogger.Info().
		Str("version", version).
		Str("commit", commit).
		Str("build_time", buildTime).
		Msg("Build information")

	app, err := NewApplication(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.Close()

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      app.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverChan := make(chan error, 1)
	go func() {
		startLogger := logger.GetZerologLogger()
		startLogger.Info().Str("address", cfg.GetServerAddress()).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverChan <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverChan:
		return err
	case sig := <-quit:
		signalLogger := logger.GetZerologLogger()
		signalLogger.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	}

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error().Msg("Server forced to shutdown")
		return err
	}

	logger.Info("Server shutdown completed")
	return nil
}

func runMigrations(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	pgStore, err := postgres.NewPostgresStore(cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pgStore.Close()

	migrator := postgres.NewMigrator(pgStore.GetPool())
	if err := migrator.Run(context.Background()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Println("Database migrations completed successfully")
	return nil
}

// Application holds all components of the export service
type Application struct {
	cfg           *config.Config
	logger        *observability.Logger
	metrics       *observability.MetricsManager
	tracing       *observability.TracingManager
	recordStore   *postgres.PostgresStore
	blobStore     *blob.LocalStore
	service       *export.Service
	healthChecker *health.HealthChecker
	router        *api.Router
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *config.Config, logger *observability.Logger) (*Application, error) {
	app := &Application{cfg: cfg, logger: logger}

	logger.Info("Initializing PostgreSQL connection")
	recordStore, err := postgres.NewPostgresStore(cfg.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PostgreSQL: %w", err)
	}
	app.recordStore = recordStore

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := recordStore.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}
	logger.Info("PostgreSQL connection established")

	if cfg.Database.MigrateOnStart {
		logger.Info("Running database migrations")
		migrator := postgres.NewMigrator(recordStore.GetPool())
		if err := migrator.Run(ctx); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		logger.Info("Database migrations completed")
	}

	logger.Info("Initializing blob store")
	blobStore, err := blob.NewLocalStore(cfg.Storage.Root, cfg.Storage.BaseURL, cfg.Storage.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize blob store: %w", err)
	}
	app.blobStore = blobStore

	app.metrics = observability.NewMetricsManager(observability.MetricsConfig{
		Enabled:   cfg.Metrics.Enabled,
		Path:      cfg.Metrics.Path,
		Namespace: cfg.Metrics.Namespace,
		Subsystem: cfg.Metrics.Subsystem,
	})
	app.metrics.SetBuildInfo(version, commit, buildTime)
	app.metrics.StartUptimeTracker(context.Background(), time.Now())

	tracing, err := observability.NewTracingManager(observability.TracingConfig{
		Enabled:     cfg.Tracing.Enabled,
		JaegerURL:   cfg.Tracing.JaegerURL,
		Environment: cfg.Environment,
		SampleRate:  cfg.Tracing.SampleRate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	app.tracing = tracing

	logger.Info("Initializing export service")
	app.service = export.NewService(
		ifc.NewGenerator(),
		blobStore,
		recordStore,
		logger,
		app.metrics,
		tracing,
		cfg.Export.URLTTL,
	)

	healthChecker := health.NewHealthChecker(5 * time.Second)
	healthChecker.RegisterComponent("database", health.CreateDatabaseHealthCheck(recordStore))
	healthChecker.RegisterComponent("blob_store", health.CreateBlobHealthCheck(blobStore))
	healthChecker.StartPeriodicChecks(context.Background(), 30*time.Second)
	app.healthChecker = healthChecker

	app.router = api.NewRouter(app.service, blobStore, healthChecker, app.metrics, tracing)

	logger.Info("Application initialization completed")
	return app, nil
}

// Handler returns the HTTP handler for the application
func (app *Application) Handler() http.Handler {
	return app.router.SetupRoutes()
}

// Close gracefully closes all application components
func (app *Application) Close() error {
	app.logger.Info("Closing application components")

	var errs []error

	if app.tracing != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := app.tracing.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracing shutdown failed: %w", err))
		}
		cancel()
	}

	if app.blobStore != nil {
		if err := app.blobStore.Close(); err != nil {
			errs = append(errs, fmt.Errorf("blob store close failed: %w", err))
		}
	}

	if app.recordStore != nil {
		if err := app.recordStore.Close(); err != nil {
			errs = append(errs, fmt.Errorf("record store close failed: %w", err))
		}
	}

	if len(errs) > 0 {
		for _, err := range errs {
			app.logger.WithError(err).Error().Msg("Component close failed")
		}
		return fmt.Errorf("application close failed with %d errors", len(errs))
	}

	app.logger.Info("Application closed successfully")
	return nil
}
