package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/spf13/pflag"

	adminapp "github.com/dwikikusuma/storefront/internal/admin/app"
	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartadapter "github.com/dwikikusuma/storefront/internal/cart/infra/adapter"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/infra/memory"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/storefront/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/storefront/internal/checkout/infra/upload"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	orderfile "github.com/dwikikusuma/storefront/internal/order/infra/file"
	"github.com/dwikikusuma/storefront/internal/web"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/session"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
)

func main() {
	cfg := config.Load()

	pflag.IntVar(&cfg.HTTPPort, "port", cfg.HTTPPort, "HTTP listen port")
	pflag.StringVar(&cfg.OrdersDir, "orders-dir", cfg.OrdersDir, "directory for persisted order records")
	pflag.StringVar(&cfg.UploadsDir, "uploads-dir", cfg.UploadsDir, "directory for uploaded screenshots")
	pflag.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "optional catalog seed file (YAML)")
	pflag.Parse()

	log := logger.New(logger.Options{Service: "web", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Catalog
	products := memory.DefaultProducts()
	if cfg.CatalogPath != "" {
		seeded, err := memory.LoadSeed(cfg.CatalogPath)
		if err != nil {
			log.Warn("catalog seed load failed, using defaults",
				slog.String("path", cfg.CatalogPath), slog.Any("err", err))
		} else {
			products = seeded
		}
	}
	catalogRepo := memory.NewProductRepo(products)
	catalogSvc := catalogapp.NewService(catalogRepo)

	// Cart
	cartSvc := cartapp.NewService(cartadapter.NewCatalogServiceReader(catalogSvc))

	// Orders
	orderRepo, err := orderfile.NewOrderRepo(cfg.OrdersDir, log)
	if err != nil {
		log.Error("order repo init failed", slog.Any("err", err))
		os.Exit(1)
	}
	orderSvc := orderapp.NewService(orderRepo)

	// Checkout
	uploads, err := upload.NewDiskStore(cfg.UploadsDir)
	if err != nil {
		log.Error("upload store init failed", slog.Any("err", err))
		os.Exit(1)
	}
	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewCartServiceReader(cartSvc),
		checkoutadapter.NewOrderServiceWriter(orderSvc),
		uploads,
	)

	// Admin
	var verifier adminapp.CredentialVerifier
	if cfg.AdminPassHash != "" {
		verifier = adminapp.NewBcryptVerifier(cfg.AdminUser, cfg.AdminPassHash)
	} else {
		verifier = adminapp.NewStaticVerifier(cfg.AdminUser, cfg.AdminPass)
	}
	adminSvc := adminapp.NewService(verifier)

	sessions := session.NewCodec(session.DefaultCookieName, []byte(cfg.SessionSecret))

	srv, err := web.NewServer(web.Options{
		Log:        log,
		Catalog:    catalogSvc,
		Cart:       cartSvc,
		Checkout:   checkoutSvc,
		Orders:     orderSvc,
		Admin:      adminSvc,
		Sessions:   sessions,
		UploadsDir: cfg.UploadsDir,
	})
	if err != nil {
		log.Error("server init failed", slog.Any("err", err))
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}
