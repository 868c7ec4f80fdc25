package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodorder/cmd"
	httpin "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/pkg/logging"
	"foodorder/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	serviceName     = "foodorder"
	shutdownTimeout = 10 * time.Second
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "foodorder: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return err
	}

	log, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, serviceName, version, cfg.OTLPTracesEndpoint, log)
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	defer shutdownWithTimeout(log, "tracer", shutdownTracer)

	if err = postgres.RunMigrations(cfg.DSN(), log); err != nil {
		return err
	}

	db, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	publisher, closePublisher, err := cmd.NewEventPublisher(cfg, log)
	if err != nil {
		return fmt.Errorf("event publisher: %w", err)
	}
	defer func() {
		if err := closePublisher(); err != nil {
			log.Warn("close event publisher", zap.Error(err))
		}
	}()

	app := cmd.NewCompositionRoot(cfg, db, publisher, log)

	if err = ensureStaffUser(ctx, app, cfg, log); err != nil {
		return err
	}

	sessions, err := app.CreateSessionManager()
	if err != nil {
		return fmt.Errorf("session manager: %w", err)
	}

	router, err := httpin.NewRouter(httpin.NewServer(app.CreateCommands(), app.CreateQueries(), sessions), httpin.RouterConfig{
		Sessions:       sessions,
		Logger:         log,
		LoginRateLimit: cfg.LoginRateLimit,
		Ready:          sqlDB.PingContext,
	})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.HTTPPort,
		Handler:           otelhttp.NewHandler(router, serviceName),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr), zap.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err = <-errCh:
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown", zap.Error(err))
	}
	return nil
}

// ensureStaffUser creates the back-office account on first start. Existing
// accounts keep their password.
func ensureStaffUser(ctx context.Context, app cmd.CompositionRoot, cfg cmd.Config, log *zap.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Info("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping staff bootstrap")
		return nil
	}

	command, err := commands.NewEnsureStaffUserCommand(cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("staff bootstrap: %w", err)
	}
	created, err := app.CreateEnsureStaffUserCommandHandler().Handle(ctx, command)
	if err != nil {
		return fmt.Errorf("staff bootstrap: %w", err)
	}
	if created {
		log.Info("staff account created", zap.String("email", command.Email()))
	}
	return nil
}

func shutdownWithTimeout(log *zap.Logger, name string, shutdown telemetry.ShutdownFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Warn("shutdown", zap.String("component", name), zap.Error(err))
	}
}
