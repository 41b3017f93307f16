package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/minions-03/billing-system/internal/auth"
	"github.com/minions-03/billing-system/internal/billing"
	"github.com/minions-03/billing-system/internal/catalog"
	"github.com/minions-03/billing-system/internal/config"
	"github.com/minions-03/billing-system/internal/ledger"
	"github.com/minions-03/billing-system/internal/metrics"
	"github.com/minions-03/billing-system/internal/middleware"
	"github.com/minions-03/billing-system/internal/service"
	"github.com/minions-03/billing-system/internal/storage/postgres"
	"github.com/minions-03/billing-system/internal/storage/sqlite"
	"github.com/minions-03/billing-system/internal/storage/sqlstore"
	"github.com/minions-03/billing-system/pkg/api/apiconnect"
	"github.com/minions-03/billing-system/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.Setup(level)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "driver", cfg.DB.Driver)

	mux := http.NewServeMux()

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m = metrics.New(reg)
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}

	public := connect.WithInterceptors(middleware.MetricsInterceptor(m), middleware.LoggingInterceptor())
	var protected connect.HandlerOption
	if cfg.Auth.Disabled {
		slog.Warn("Authentication disabled; all requests run as the admin user", "username", cfg.Auth.Username)
		protected = connect.WithInterceptors(
			middleware.StaticUser(cfg.Auth.Username),
			middleware.MetricsInterceptor(m),
			middleware.LoggingInterceptor(),
		)
	} else {
		cred, err := auth.NewSharedCredential(cfg.Auth.Username, cfg.Auth.Password)
		if err != nil {
			return fmt.Errorf("failed to set up credentials: %w", err)
		}
		jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

		authService := service.NewAuthService(cred, jwtManager, m, slog.Default())
		authService.SecureCookie = cfg.Auth.SecureCookie
		mux.Handle(apiconnect.NewAuthServiceHandler(authService, public))

		protected = connect.WithInterceptors(
			middleware.MetricsInterceptor(m),
			middleware.LoggingInterceptor(),
			middleware.RequireAuth(jwtManager),
		)
	}

	workflow := billing.NewWorkflow(store, billing.WithMetrics(m))
	mux.Handle(apiconnect.NewCatalogServiceHandler(service.NewCatalogService(catalog.New(store)), protected))
	mux.Handle(apiconnect.NewBillingServiceHandler(service.NewBillingService(workflow, store), protected))
	mux.Handle(apiconnect.NewPaymentServiceHandler(service.NewPaymentService(ledger.New(store)), protected))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		pingCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := store.DB().PingContext(pingCtx); err != nil {
			slog.Warn("Health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	})

	handler := middleware.CORS(middleware.HTTPLogging(mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func openStore(ctx context.Context, cfg config.DBConfig) (*sqlstore.Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.New(ctx, cfg.URL, postgres.Options{
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
		})
	default:
		return sqlite.New(cfg.Path)
	}
}
