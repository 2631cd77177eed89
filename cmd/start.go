package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sync-gateway/core/cache"
	"sync-gateway/core/loader"
	"sync-gateway/core/logger"
	"sync-gateway/core/middleware/auth"
	"sync-gateway/core/middleware/rayid"

	"sync-gateway/feature/dashboard"
	"sync-gateway/feature/ingest"
	"sync-gateway/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Sync Gateway API
// @version 1.0
// @description ERP synchronisation endpoint and read-only dashboard.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the sync gateway server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		// 1. Load Configuration and Logger
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Connect to Database
		db, err := openDatabase(cfg.Database, logg, cfg.Database.AutoMigrate)
		if err != nil {
			return err
		}

		// 3. Initialize Archive and Cache
		client, archiver, err := openArchive(ctx, cfg, logg)
		if err != nil {
			return err
		}
		store, err := cache.New(cfg.Cache, logg)
		if err != nil {
			return err
		}
		if closer, ok := store.(interface{ Close() error }); ok {
			defer closer.Close()
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
			ReadTimeout:           cfg.Server.ReadTimeout(),
		})

		// 5. Register Features
		engine := newEngine(db, logg)
		mgr := loader.NewManager()
		mgr.Register(ingest.NewFeature(ingest.NewService(engine, archiver, store, logg), logg))
		mgr.Register(dashboard.NewFeature(dashboard.NewService(db, store, dashboard.Config{
			PageSize:    cfg.Dashboard.PageSize,
			MaxPageSize: cfg.Dashboard.MaxPageSize,
			Location:    cfg.Dashboard.Location(),
			StatsTTL:    cfg.Cache.TTL(),
		}, logg)))
		mgr.Register(integrity.NewFeature(integrity.NewService(db, ingest.Models(), client, cfg.Storage.Bucket, logg)))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			fields := []zap.Field{
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				l.Error("Request error", append(fields, zap.Error(err))...)
				return err
			}
			l.Info("Request completed", fields...)
			return nil
		})

		// 3. Auth (Protect every route)
		if !cfg.Server.AuthEnabled() {
			logg.Warn("No API key configured, requests are not authenticated")
		}
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 6. Load Features
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			return err
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
			logg.Warn("Shutdown incomplete", zap.Error(err))
		}
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
