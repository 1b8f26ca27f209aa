package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"altroway_backend/internals/configs"
	database "altroway_backend/internals/databases"
	"altroway_backend/internals/features/admin/views"
	documentService "altroway_backend/internals/features/documents/service"
	notificationScheduler "altroway_backend/internals/features/home/notifications/scheduler"
	authScheduler "altroway_backend/internals/features/users/auth/scheduler"
	authService "altroway_backend/internals/features/users/auth/service"
	helper "altroway_backend/internals/helpers"
	"altroway_backend/internals/helpers/logger"
	helperStorage "altroway_backend/internals/helpers/storage"
	"altroway_backend/internals/middlewares"
	accessLog "altroway_backend/internals/middlewares/logger"
	routes "altroway_backend/internals/route"
	"altroway_backend/internals/seeds"
)

func main() {
	zl, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	logger.SetDefault(zl)
	defer zl.Sync()
	log := logger.L()

	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.FiberErrorHandler,
		Views:                   views.NewEngine(),
		BodyLimit:               20 * 1024 * 1024,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	app.Use(middlewares.RecoveryMiddleware())
	app.Use(middlewares.RequestContext(5*time.Second, 30*time.Second))
	app.Use(accessLog.LoggerMiddleware())
	app.Use(accessLog.RequestTimer(time.Second))
	app.Use(middlewares.CorsMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	if err := database.AutoMigrate(database.DB); err != nil {
		log.Fatal("migration failed", "err", err)
	}
	database.WarmUpQueries()

	blobs, err := helperStorage.NewFromEnv(configs.StorageDriver, configs.DocumentsPrefix, log)
	if err != nil {
		log.Fatal("blob store init failed", "driver", configs.StorageDriver, "err", err)
	}
	auth := authService.NewAuthService(database.DB, configs.JWTSecret, configs.AccessTokenTTL)

	if configs.SeedOnStart {
		seeds.RunAllSeeds(database.DB)
	}

	// schedulers stop with bgCtx
	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	authScheduler.StartBlacklistCleanupScheduler(bgCtx, database.DB)
	notificationScheduler.StartDocumentExpiryScheduler(bgCtx,
		documentService.NewDocumentService(database.DB, blobs), configs.DocumentExpiryInterval)

	routes.SetupRoutes(app, database.DB, blobs, auth)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Info("listening", "port", configs.Port, "env", configs.AppEnv)
		if err := app.Listen("0.0.0.0:" + configs.Port); err != nil {
			log.Fatal("server error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")
	stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Warn("shutdown", "err", err)
	}
	if c, ok := blobs.(io.Closer); ok {
		_ = c.Close()
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
