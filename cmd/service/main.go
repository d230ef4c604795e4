package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "afyalinks/internal/app"
	"afyalinks/internal/entities"
	"afyalinks/internal/handlers/rest/clinic_profile_post"
	"afyalinks/internal/handlers/rest/driver_profile_put"
	"afyalinks/internal/handlers/rest/healthcheck_head"
	"afyalinks/internal/handlers/rest/invoice_proof_post"
	"afyalinks/internal/handlers/rest/invoice_verify_post"
	"afyalinks/internal/handlers/rest/invoices_get"
	"afyalinks/internal/handlers/rest/notification_post"
	"afyalinks/internal/handlers/rest/order_confirm_post"
	"afyalinks/internal/handlers/rest/order_post"
	"afyalinks/internal/handlers/rest/order_respond_post"
	"afyalinks/internal/handlers/rest/orders_get"
	"afyalinks/internal/handlers/rest/otp_request_post"
	"afyalinks/internal/handlers/rest/otp_verify_post"
	"afyalinks/internal/handlers/rest/pharmacy_profile_post"
	"afyalinks/internal/handlers/rest/ping_get"
	"afyalinks/internal/handlers/rest/user_approve_post"
	"afyalinks/internal/handlers/rest/user_driver_profile_put"
	"afyalinks/internal/handlers/rest/user_post"
	"afyalinks/internal/handlers/rest/users_get"
	"afyalinks/internal/handlers/rest/ussd_post"
	"afyalinks/internal/pkg/config"
	"afyalinks/internal/pkg/dotenv"
	kafkapkg "afyalinks/internal/pkg/kafka"
	metrics_system "afyalinks/internal/pkg/metrics"
	authmw "afyalinks/internal/pkg/middlewares/auth"
	"afyalinks/internal/pkg/middlewares/graceful_shutdown"
	"afyalinks/internal/pkg/middlewares/metrics"
	"afyalinks/internal/pkg/middlewares/rate_limiter"
	"afyalinks/internal/pkg/middlewares/timeout"
	"afyalinks/internal/pkg/postgres"
	redispkg "afyalinks/internal/pkg/redis"
	"afyalinks/pkg/logger"
	"afyalinks/pkg/logger/zap_adapter"
	"afyalinks/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting afyalinks application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // shutdown paths intentionally derive from context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	redisClient, err := redispkg.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		err := redisClient.Close()
		if err != nil {
			runLog.Error("failed to close redis client",
				logger.NewField("error", err),
			)
		}
	}()

	producer, err := kafkapkg.NewSyncProducer(cfg.Kafka.Sarama.Version, strings.Split(cfg.Kafka.Brokers, ","))
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		err := producer.Close()
		if err != nil {
			runLog.Error("failed to close kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx backs BaseContext and must survive SIGTERM. It is cancelled
	// only after server.Shutdown() so in-flight requests can finish.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// main http server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// main http server

	// pprof http server
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http server

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // stays nil when pprof is disabled, so this case never fires
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must be independent from ctx, which is already cancelled here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// open endpoints: OTP bootstrap and telco callbacks carry no bearer token
	router.Handle("/auth/otp/request", otp_request_post.New(log, app.ServiceAuth)).Methods("POST")
	router.Handle("/auth/otp/verify", otp_verify_post.New(log, app.ServiceAuth)).Methods("POST")
	router.Handle("/ussd", ussd_post.New(log, app.ServiceUSSD)).Methods("POST")

	authed := router.NewRoute().Subrouter()
	authed.Use(authmw.Middleware(app.TokenManager))

	clinics := authed.NewRoute().Subrouter()
	clinics.Use(authmw.RequireRoles(entities.RoleClinic, entities.RoleHealthWorker))
	clinics.Handle("/orders", order_post.New(log, app.ServiceOrder)).Methods("POST")
	clinics.Handle("/orders/{id}/confirm", order_confirm_post.New(log, app.ServiceConfirmation)).Methods("POST")
	clinics.Handle("/profile/clinic", clinic_profile_post.New(log, app.ServiceUser)).Methods("POST")

	pharmacies := authed.NewRoute().Subrouter()
	pharmacies.Use(authmw.RequireRoles(entities.RolePharmacy))
	pharmacies.Handle("/orders/{id}/respond", order_respond_post.New(log, app.ServiceOrder)).Methods("POST")
	pharmacies.Handle("/invoices/{id}/proof", invoice_proof_post.New(log, app.ServiceInvoice)).Methods("POST")
	pharmacies.Handle("/profile/pharmacy", pharmacy_profile_post.New(log, app.ServiceUser)).Methods("POST")

	authed.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods("GET")

	invoiceViewers := authed.NewRoute().Subrouter()
	invoiceViewers.Use(authmw.RequireRoles(entities.RolePharmacy, entities.RoleAdmin))
	invoiceViewers.Handle("/invoices", invoices_get.New(log, app.ServiceInvoice)).Methods("GET")

	drivers := authed.NewRoute().Subrouter()
	drivers.Use(authmw.RequireRoles(entities.RoleDriver))
	drivers.Handle("/drivers/profile", driver_profile_put.New(log, app.ServiceUser)).Methods("PUT")

	admins := authed.NewRoute().Subrouter()
	admins.Use(authmw.RequireRoles(entities.RoleAdmin))
	admins.Handle("/users", users_get.New(log, app.ServiceUser)).Methods("GET")
	admins.Handle("/users", user_post.New(log, app.ServiceUser)).Methods("POST")
	admins.Handle("/users/{id}/approve", user_approve_post.New(log, app.ServiceUser)).Methods("POST")
	admins.Handle("/users/{id}/driver-profile", user_driver_profile_put.New(log, app.ServiceUser)).Methods("PUT")
	admins.Handle("/invoices/{id}/verify", invoice_verify_post.New(log, app.ServiceInvoice)).Methods("POST")
	admins.Handle("/notifications", notification_post.New(log, app.ServiceNotification)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
