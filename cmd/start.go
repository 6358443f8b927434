package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wardrobe/core/cache"
	"wardrobe/core/loader"
	"wardrobe/core/logger"
	"wardrobe/core/middleware/auth"
	"wardrobe/core/middleware/rayid"
	"wardrobe/feature/clothing"
	"wardrobe/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "wardrobe/docs/swagger"
)

// @title Wardrobe API
// @version 1.0
// @description Classified Habbo clothing catalog and avatar imaging URLs.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the wardrobe server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := bootstrap()
		if err != nil {
			return err
		}
		logg := d.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		src, err := d.source()
		if err != nil {
			return err
		}
		store := cache.New(d.cfg.Cache, logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)

		wardrobeFeature, err := clothing.NewFeature(src, store, d.cfg.Server.Origin(), logg, d.options()...)
		if err != nil {
			return err
		}
		mgr.Register(wardrobeFeature)
		mgr.Register(integrity.NewFeature(d.store, d.cfg.Storage.Bucket, d.cfg.Feeds.MirrorPrefix, d.upstream(), logg, d.db, d.cfg.Server.Emulator))

		// RayID first so every later log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Use(cors.New())

		// Swagger stays public.
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: d.cfg.Server.ApiKey, Skip: []string{"/swagger"}}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go sweep(ctx, store, d.cfg.Cache.TTL(cache.ClassVolatile), logg)

		// Warm the catalog so the first request does not pay for the build.
		go func() {
			cat := wardrobeFeature.Service().Catalog(ctx)
			logg.Info("Catalog ready",
				zap.String("source", string(cat.Source)),
				zap.Int("items", cat.Len()))
		}()

		go func() {
			logg.Info("Starting server", zap.String("port", d.cfg.Server.Port), zap.String("hotel", d.cfg.Server.Origin()))
			if err := app.Listen(":" + d.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(10 * time.Second)
	},
}

// sweep drops expired cache entries until ctx is done.
func sweep(ctx context.Context, store *cache.Cache, every time.Duration, logg *zap.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Sweep(); n > 0 {
				logg.Debug("Swept expired cache entries", zap.Int("removed", n))
			}
		}
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
