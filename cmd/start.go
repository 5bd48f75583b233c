package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"menu-manager/core/loader"
	"menu-manager/core/logger"
	"menu-manager/core/middleware/auth"
	"menu-manager/core/middleware/rayid"
	"menu-manager/core/storage"

	"menu-manager/feature/catalog"
	"menu-manager/feature/integrity"
	"menu-manager/feature/snapshot"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateOnStart bool

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the menu manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration, logger, database
		e, err := setup(migrateOnStart)
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := e.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)
		logg.Info("Connected to database", zap.String("driver", e.cfg.Database.Driver), zap.String("name", e.cfg.Database.Name))

		// 2. Storage (optional: snapshots are disabled without it)
		var client storage.Client
		if c, err := storage.NewClient(e.cfg.Storage); err != nil {
			logg.Warn("Storage client unavailable, snapshots disabled", zap.Error(err))
		} else {
			client = c
		}

		// 3. Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             e.cfg.Server.BodyLimit(),
		})

		// 4. Features
		mgr := loader.NewManager(logg)
		catalogFeature := catalog.NewFeature(e.db, logg)
		mgr.Register(catalogFeature)
		mgr.Register(snapshot.NewFeature(catalogFeature.Service(), client, e.cfg.Storage, logg))
		mgr.Register(integrity.NewFeature(e.db, client, e.cfg.Storage, logg))

		// 5. RayID middleware (must be first to trace everything)
		app.Use(rayid.New())

		// 6. Request logging with the ray id
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

		// 7. Auth (protect API)
		app.Use(auth.New(auth.Config{ApiKey: e.cfg.Server.ApiKey}))

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("addr", e.cfg.Server.Addr()))
			if err := app.Listen(e.cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	startCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Create or update the catalog tables before serving")
	RootCmd.AddCommand(startCmd)
}
