package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"bulk-editor/core/loader"
	"bulk-editor/core/logger"
	"bulk-editor/core/middleware/auth"
	"bulk-editor/core/middleware/rayid"
	"bulk-editor/core/queue"
	"bulk-editor/core/storage"

	"bulk-editor/feature/bulkedit"
	"bulk-editor/feature/images"
	"bulk-editor/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "bulk-editor/docs/swagger"
)

// @title Bulk Editor API
// @version 1.0
// @description API for previewing and applying bulk edits to marketplace listings.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the bulk editor server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := bootstrap()
		if err != nil {
			return err
		}
		logg := env.logger
		defer logg.Sync()

		// Storage is optional: images and storage checks stay off without it
		var store storage.Client
		if client, err := storage.NewClient(env.cfg.Storage); err != nil {
			logg.Warn("Optional storage client failed", zap.Error(err))
		} else {
			store = client
		}

		// The queue is optional: without it batches cannot be submitted
		var publisher queue.Publisher
		if conn, err := queue.Dial(env.cfg.Queue, logg); err != nil {
			logg.Warn("Optional queue connection failed", zap.Error(err))
		} else {
			defer conn.Close()
			publisher = conn
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             env.cfg.Server.BodyLimit(),
			ReadTimeout:           env.cfg.Server.ReadTimeout(),
		})

		mgr := loader.NewManager(logg)
		mgr.Register(bulkedit.NewFeature(env.registry(), publisher, env.db, logg))
		mgr.Register(images.NewFeature(store, env.cfg.Storage.Bucket, logg))
		mgr.Register(integrity.NewFeature(store, env.cfg.Storage.Bucket, env.cfg.Storage.Region, logg, env.db))

		// RayID first so every later log line carries it
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

		// Swagger stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: env.cfg.Server.ApiKey, Skip: []string{"/swagger"}}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		go func() {
			logg.Info("Starting server", zap.String("address", env.cfg.Server.Address()))
			if err := app.Listen(env.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
