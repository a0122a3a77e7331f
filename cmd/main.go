package main

import (
	"FoodBridge/cmd/config"
	migration "FoodBridge/cmd/database/migrate"
	"FoodBridge/internal/utils"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	configPath      string
	autoMigrate     bool
	shutdownTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "foodbridge",
	Short: "FoodBridge API: donors, volunteers and NGOs moving surplus food",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return utils.LoadConfig(configPath)
	},
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.ConnectDB()
		if err != nil {
			return err
		}
		return migration.Migrate(db)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the yaml config file")
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "run migrations before serving")
	serveCmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 10*time.Second, "graceful shutdown limit")

	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.ConnectDB()
	if err != nil {
		return err
	}
	if autoMigrate {
		if err := migration.Migrate(db); err != nil {
			return err
		}
	}

	app, cleanup, err := config.NewApp(ctx, db)
	if err != nil {
		return err
	}
	defer cleanup()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		addr := ":" + utils.GetConfig("APP_PORT")
		log.Infof("listening on %s", addr)
		if err := app.Listen(addr); err != nil {
			return fmt.Errorf("listen %s: %w", addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		return app.ShutdownWithTimeout(shutdownTimeout)
	})
	return g.Wait()
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
