package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jayraj2301/Tier-Base-Showcase/internal/app"
	"github.com/jayraj2301/Tier-Base-Showcase/internal/catalog"
	"github.com/jayraj2301/Tier-Base-Showcase/internal/clock"
	"github.com/jayraj2301/Tier-Base-Showcase/internal/config"
	"github.com/jayraj2301/Tier-Base-Showcase/internal/identity"
	"github.com/jayraj2301/Tier-Base-Showcase/internal/metrics"
	"github.com/jayraj2301/Tier-Base-Showcase/internal/storage/postgres"
	transporthttp "github.com/jayraj2301/Tier-Base-Showcase/internal/transport/http"
	"github.com/jayraj2301/Tier-Base-Showcase/migrations"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := log.Default()

	cfg, err := config.Load(logger)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(startupCtx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect to db: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(startupCtx); err != nil {
		log.Fatalf("db ping: %v", err)
	}
	if err := migrations.Apply(startupCtx, pool); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	sample, err := catalog.Sample()
	if err != nil {
		log.Fatalf("load sample catalog: %v", err)
	}

	metrics.Register(prometheus.DefaultRegisterer)

	identityClient := identity.NewClient(cfg.IdentityBaseURL, cfg.IdentitySecretKey, cfg.IdentityTimeout)
	authenticator := identity.NewAuthenticator(identityClient, logger)

	eventRepo := postgres.NewEventRepository(pool)
	listingSvc := app.NewListingService(eventRepo)
	tierSvc := app.NewTierService(identityClient)
	catalogSvc := app.NewCatalogService(eventRepo, clock.NewSystem(), sample)

	router := transporthttp.NewRouter(transporthttp.RouterDeps{
		Auth:       authenticator,
		Listing:    listingSvc,
		Tiers:      tierSvc,
		Catalog:    catalogSvc,
		DB:         pool,
		AdminToken: cfg.AdminToken,
		Pages: transporthttp.PageOptions{
			SignInURL: cfg.SignInURL,
			SignUpURL: cfg.SignUpURL,
			ShowSeed:  cfg.AdminToken == "",
		},
		Metrics: promhttp.Handler(),
		Logger:  logger,
	})
	handler := transporthttp.RequestLogger(transporthttp.CORS(cfg.CORSOrigins, router), logger)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("api listening on :%s", cfg.Port)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server error: %v", err)
		}
	case <-stopCtx.Done():
		log.Printf("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("server shutdown error: %v", err)
	}
	log.Printf("server stopped")
}
