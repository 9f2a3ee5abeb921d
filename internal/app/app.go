package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/CristianSsousa/new-kitchen-web/internal/cache"
	"github.com/CristianSsousa/new-kitchen-web/internal/config"
	"github.com/CristianSsousa/new-kitchen-web/internal/handler"
	"github.com/CristianSsousa/new-kitchen-web/internal/middleware"
	"github.com/CristianSsousa/new-kitchen-web/internal/notification"
	"github.com/CristianSsousa/new-kitchen-web/internal/registry"
	"github.com/CristianSsousa/new-kitchen-web/internal/repository"
	"github.com/CristianSsousa/new-kitchen-web/internal/router"
	"github.com/CristianSsousa/new-kitchen-web/internal/scheduler"
	"github.com/CristianSsousa/new-kitchen-web/internal/service"
	"github.com/CristianSsousa/new-kitchen-web/internal/service/ports"
	"github.com/CristianSsousa/new-kitchen-web/internal/session"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"new-kitchen-web",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initCache() (ports.CollectionCache, error) {
	if !a.cfg.Cache.Enabled {
		return cache.Noop{}, nil
	}

	client, err := cache.NewRedisClient(a.cfg.Cache.Addr, a.cfg.Cache.Password, a.cfg.Cache.DB)
	if err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Cache.Addr),
	)

	return cache.NewRedis(client, a.cfg.Cache.TTL), nil
}

func (a *App) initServices() error {
	collections, err := a.initCache()
	if err != nil {
		return err
	}

	client := registry.New(a.cfg.Registry.BaseURL, a.cfg.Registry.Timeout)
	sessionRepo := repository.NewSessionRepo(a.db)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.AdminChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	resolver := session.NewResolver(client, sessionRepo, a.cfg.Session.TTL, a.log)

	itemService := service.NewItemService(client, collections, n, a.log)
	messageService := service.NewMessageService(client, collections, n, a.log)
	confirmationService := service.NewConfirmationService(client, collections, n, a.log)
	eventService := service.NewEventService(client, collections, a.log)
	adminService := service.NewAdminService(client, collections, a.log)

	a.scheduler = scheduler.New(
		resolver,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(
		resolver,
		itemService,
		messageService,
		confirmationService,
		eventService,
		adminService,
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.SessionToken(a.cfg.Session.CookieName, a.cfg.Session.TTL, a.cfg.Session.CookieSecure),
		middleware.AdminAuth(),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
