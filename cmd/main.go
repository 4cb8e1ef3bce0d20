// Package main wires the HTTP server for the freelance collaboration service.
package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"freelance-flow/config"
	"freelance-flow/internal/notify"
	"freelance-flow/internal/repository"
	"freelance-flow/internal/session"
	"freelance-flow/internal/transport/http/middleware"
	"freelance-flow/internal/transport/http/server/handlers-fiber"
	"freelance-flow/internal/usecase"
	"freelance-flow/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.New(ctx, cfg.Storage.Backend, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	store, closeStore, err := newSessionStore(ctx, cfg)
	if err != nil {
		log.Errorw("session store start error", "error", err)
		return
	}
	defer closeStore()
	sessions := session.NewManager(store, cfg.Session.Secret, cfg.Session.TTL, cfg.Session.Issuer)

	pub, err := newPublisher(cfg, log)
	if err != nil {
		log.Errorw("event publisher start error", "error", err)
		return
	}
	defer func() { _ = pub.Close() }()

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, repo, pub, timeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.Identity(sessions, cfg.Session.CookieName, log))
	serv.Use(middleware.RequestLogger(log))

	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		serv.Use(middleware.NewMetrics(reg).Handler())
		serv.Get(cfg.Metrics.Path, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc, sessions, handlers_fiber.CookieConfig{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.CookieSecure,
	})
	var authGuards []fiber.Handler
	if cfg.HTTP.AuthRate > 0 {
		authGuards = append(authGuards, middleware.NewRateLimiter(cfg.HTTP.AuthRate, cfg.HTTP.AuthBurst).Handler())
	}
	h.RegisterRoutes(serv, authGuards...)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}

func newSessionStore(ctx context.Context, cfg *config.Config) (session.Store, func(), error) {
	switch cfg.Session.Store {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return session.NewRedisStore(client, cfg.Redis.KeyPrefix), func() { _ = client.Close() }, nil
	default:
		return session.NewMemoryStore(), func() {}, nil
	}
}

func newPublisher(cfg *config.Config, log *zap.SugaredLogger) (notify.Publisher, error) {
	if cfg.NATS.URL == "" {
		return notify.Nop{}, nil
	}
	return notify.NewNATS(cfg.NATS.URL, cfg.NATS.SubjectPrefix, log)
}
