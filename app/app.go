package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodshare-api/internal/config"
	"foodshare-api/internal/controller"
	"foodshare-api/internal/feed"
	"foodshare-api/internal/metrics"
	"foodshare-api/internal/repo"
	"foodshare-api/internal/repo/memdb"
	"foodshare-api/internal/repo/pgdb"
	"foodshare-api/internal/service"
	"foodshare-api/migrations"
	"foodshare-api/pkg/http_server"
	"foodshare-api/pkg/postgres"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

const connectTimeout = 5 * time.Second

var log = logrus.WithField("prefix", "app")

func initLog(level string) {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logLevel)
	}

	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

// openStore builds the repositories for the configured driver. The returned func releases
// everything it opened.
func openStore(ctx context.Context, cfg *config.Config, hub *feed.Hub) (*repo.Repositories, func(), error) {
	if cfg.StoreDriver == config.MemoryDriver {
		log.Warn("Using the in-memory store, data is lost on restart")
		return repo.NewMemoryRepositories(memdb.NewStore(hub)), func() {}, nil
	}

	log.Info("Connecting database...")
	pg, err := postgres.NewDB(cfg.PostgresUrl)
	if err != nil {
		return nil, nil, err
	}
	if err = pg.Ping(connectTimeout); err != nil {
		_ = pg.Close()
		return nil, nil, fmt.Errorf("error occurred while connecting to db: %w", err)
	}

	log.Info("Running migrations...")
	version, err := pg.Migrate(migrations.FS, cfg.PostgresDatabase)
	if err != nil {
		_ = pg.Close()
		return nil, nil, err
	}
	log.WithField("version", version).Info("Schema is up to date")

	listener, err := pgdb.NewChangeListener(pg, hub)
	if err != nil {
		_ = pg.Close()
		return nil, nil, err
	}
	go listener.Run(ctx)

	release := func() {
		if err := listener.Close(); err != nil {
			log.WithError(err).Warn("closing change listener")
		}
		if err := pg.Close(); err != nil {
			log.WithError(err).Warn("closing database")
		}
	}

	return repo.NewRepositories(pg), release, nil
}

func Run(configFile string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	initLog(cfg.LogLevel)

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDsn,
		AttachStacktrace: true,
		Environment:      cfg.SentryEnvironment,
	}); err != nil {
		log.Error(err)
	}
	defer sentry.Flush(2 * time.Second)
	log.Info("Initialized sentry")

	scope, scopeCloser := metrics.NewRootScope(cfg.MetricsPrefix, cfg.MetricsReportInterval, metrics.NewLogReporter(logrus.StandardLogger()))
	defer scopeCloser.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := feed.NewHub()
	repositories, release, err := openStore(ctx, cfg, hub)
	if err != nil {
		return err
	}
	defer release()

	services := service.NewServices(service.Dependencies{Repos: repositories, Hub: hub, Scope: scope})
	handler := echo.New()
	handler.HideBanner = true
	handler.Use(middleware.Recover())

	log.Info("Setup routes...")
	controller.SetupRoutesHandlers(handler, services, cfg.JwtSecret)

	log.WithField("address", cfg.ServerAddress).Info("Starting server...")
	httpServer := http_server.New(handler, cfg.ServerAddress)

	log.Info("Ready to process requests...")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("Got signal: " + s.String())
	case err = <-httpServer.Notify():
		log.WithError(err).Error("Server stopped")
	}

	log.Info("Shutting down...")
	cancel()
	if shutdownErr := httpServer.Shutdown(context.Background()); shutdownErr != nil {
		return fmt.Errorf("shutdown error: %w", shutdownErr)
	}
	log.Info("Successful shutdown")

	return err
}
