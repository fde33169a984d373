package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"tunebridge/core/config"
	"tunebridge/core/database"
	"tunebridge/core/loader"
	"tunebridge/core/logger"
	"tunebridge/core/middleware/auth"
	"tunebridge/core/middleware/rayid"
	"tunebridge/core/storage"

	"tunebridge/feature/catalog"
	"tunebridge/feature/library"
	libmodels "tunebridge/feature/library/models"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the tunebridge server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional; only the library index needs it)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			if err := db.AutoMigrate(&libmodels.Artist{}, &libmodels.Album{}); err != nil {
				logg.Warn("Library schema migration failed", zap.Error(err))
				db = nil
			} else {
				logg.Info("Connected to library database")
			}
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(catalog.NewFeature(catalog.NewClient(cfg.Catalog), logg))
		mgr.Register(library.NewFeature(store, cfg.Storage.Bucket, cfg.Library.Prefix, logg, db))

		// Middleware Registration
		// RayID must be first to trace everything
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

		// Basic Auth protects the whole API surface when configured
		if cfg.Server.AuthConfigured() {
			app.Use(auth.New(auth.Config{
				Username: cfg.Server.AuthUsername,
				Password: cfg.Server.AuthPassword,
			}))
		} else {
			logg.Warn("AUTH_USERNAME/AUTH_PASSWORD not set, serving API without authentication")
		}

		// 7. Load Features under /api
		api := app.Group("/api")
		if err := mgr.LoadAll(api); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
