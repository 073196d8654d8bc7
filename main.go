package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"ucentric_backend/internals/configs"
	database "ucentric_backend/internals/databases"
	txService "ucentric_backend/internals/features/finance/transactions/service"
	authRepo "ucentric_backend/internals/features/users/auth/repository"
	scheduler "ucentric_backend/internals/features/users/auth/scheduler"
	helper "ucentric_backend/internals/helpers"
	"ucentric_backend/internals/helpers/applog"
	"ucentric_backend/internals/helpers/cache"
	"ucentric_backend/internals/infra/queue"
	middlewares "ucentric_backend/internals/middlewares"
	"ucentric_backend/internals/middlewares/authz"
	routes "ucentric_backend/internals/route"
	"ucentric_backend/internals/seeds"
)

func main() {
	cfg, err := configs.LoadEnv()
	if err != nil {
		applog.Log.WithError(err).Fatal("load config")
	}
	applog.Setup(cfg.LogLevel, cfg.IsProduction())

	mode, err := authz.ParseMode(cfg.AuthzMode, cfg.AuthzAllowDisabled)
	if err != nil {
		applog.Log.WithError(err).Fatal("authz mode")
	}
	authorizer, err := authz.NewAuthorizer(mode)
	if err != nil {
		applog.Log.WithError(err).Fatal("authz policy")
	}

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ErrorHandler:            helper.FiberErrorHandler,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
		ReadTimeout:             15 * time.Second,
		WriteTimeout:            30 * time.Second,
		IdleTimeout:             90 * time.Second,
	})

	middlewares.SetupMiddlewares(app, cfg)

	// 🔌 DB connect + migrate + pool + warm-up
	if cfg.RunMigrations {
		if err := database.RunMigrations(cfg.DSN()); err != nil {
			applog.Log.WithError(err).Fatal("migrations")
		}
	}
	db, err := database.ConnectDB(cfg)
	if err != nil {
		applog.Log.WithError(err).Fatal("database")
	}
	database.TunePool(db)
	database.WarmUpQueries(db)

	if cfg.RunSeeds {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := seeds.RunAllSeeds(ctx, db); err != nil {
			applog.Log.WithError(err).Error("seeding failed")
		}
		cancel()
	}

	// Redis opsional: tanpa REDIS_URL cache jadi no-op
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	rc, err := cache.Connect(ctx, cfg.RedisURL, "ucentric")
	cancel()
	if err != nil {
		applog.Log.WithError(err).Warn("redis unavailable, caching disabled")
	}

	producer := queue.NewProducer(queue.ProducerConfig{
		Brokers:  cfg.KafkaBrokers,
		Topic:    cfg.KafkaTopicApplications,
		Username: cfg.KafkaUsername,
		Password: cfg.KafkaPassword,
	})
	if producer == nil {
		applog.Log.Info("KAFKA_BROKERS not set, application events disabled")
	}

	// ✅ MIDTRANS
	gateway := txService.NewMidtransGateway(cfg.MidtransServerKey, cfg.MidtransUseProd)
	if gateway == nil {
		applog.Log.Warn("MIDTRANS_SERVER_KEY not set, gateway status lookups disabled")
	}

	// ⏱ scheduler setelah DB siap
	cleanup, err := scheduler.StartBlacklistCleanupScheduler(
		authRepo.NewBlacklistRepository(db, cfg.JWTSecret), cfg.TokenBlacklistTTLDays, cfg.Location(),
	)
	if err != nil {
		applog.Log.WithError(err).Fatal("cleanup scheduler")
	}

	routes.SetupRoutes(app, routes.Deps{
		DB:         db,
		Config:     cfg,
		Cache:      rc,
		Events:     queue.OrNoop(producer),
		Gateway:    gateway,
		Authorizer: authorizer,
	})

	go func() {
		applog.Log.Infof("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			applog.Log.WithError(err).Fatal("server error")
		}
	}()

	// graceful shutdown: HTTP dulu, lalu cron, kafka, redis, pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	applog.Log.Info("shutting down...")

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	_ = app.ShutdownWithContext(shutdownCtx)

	<-cleanup.Stop().Done()
	if err := producer.Close(); err != nil {
		applog.Log.WithError(err).Warn("kafka close")
	}
	_ = rc.Close()
	database.Close(db)
}
