// Command storefront runs the headless storefront engine against a shop
// backend: it loads the catalog, keeps the session loop alive and logs what
// it rendered. Useful as a smoke check against a running cmd/api.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/larekshop/storefront/internal/session"
	"github.com/larekshop/storefront/internal/shopapi"
	"github.com/larekshop/storefront/internal/view"
	"github.com/larekshop/storefront/pkg/config"
	"github.com/larekshop/storefront/pkg/events"
	"github.com/larekshop/storefront/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	shopClient, err := shopapi.NewClient(cfg.ShopAPI)
	if err != nil {
		logg.Error(context.Background(), "failed to create shop api client", err)
		os.Exit(1)
	}

	bus := events.NewBus(logg)
	sess, err := session.NewSession(session.Params{
		Log:  logg,
		Bus:  bus,
		Shop: shopClient,
		View: view.Config{
			CDNBaseURL:    cfg.View.CDNBaseURL,
			CurrencyLabel: cfg.View.CurrencyLabel,
		},
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create session", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sess.Start(ctx)
	sess.Flush()

	sess.Do(func() {
		loaded := logg.WithField(ctx, "products", sess.Catalog().Len())
		logg.Info(loaded, "catalog loaded")
	})
	sess.Sync()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logg.Info(ctx, "shutting down storefront")
}
