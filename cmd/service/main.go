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
	application "freight/internal/app"
	"freight/internal/handlers/rest/container_aggregates_get"
	"freight/internal/handlers/rest/container_docs_delete"
	"freight/internal/handlers/rest/container_docs_put"
	"freight/internal/handlers/rest/container_manifest_delete"
	"freight/internal/handlers/rest/container_manifest_put"
	"freight/internal/handlers/rest/container_slots_get"
	"freight/internal/handlers/rest/container_state_get"
	"freight/internal/handlers/rest/delivery_date_delete"
	"freight/internal/handlers/rest/delivery_date_post"
	"freight/internal/handlers/rest/delivery_range_delete"
	"freight/internal/handlers/rest/delivery_range_post"
	"freight/internal/handlers/rest/delivery_range_put"
	"freight/internal/handlers/rest/healthcheck_head"
	"freight/internal/handlers/rest/ping_get"
	"freight/internal/handlers/rest/quotation_aggregates_get"
	"freight/internal/handlers/rest/quotation_confirm_delete"
	"freight/internal/handlers/rest/quotation_confirm_post"
	"freight/internal/handlers/rest/shipment_post"
	"freight/internal/handlers/rest/shipment_quantities_post"
	"freight/internal/handlers/rest/shipment_status_post"
	"freight/internal/handlers/rest/shipment_tracking_get"
	"freight/internal/handlers/rest/slot_assign_post"
	"freight/internal/handlers/rest/slot_unassign_post"
	"freight/internal/pkg/config"
	"freight/internal/pkg/dotenv"
	"freight/internal/pkg/kafka"
	metrics_system "freight/internal/pkg/metrics"
	"freight/internal/pkg/middlewares/graceful_shutdown"
	"freight/internal/pkg/middlewares/metrics"
	"freight/internal/pkg/middlewares/rate_limiter"
	"freight/internal/pkg/middlewares/timeout"
	"freight/internal/pkg/postgres"
	"freight/pkg/logger"
	"freight/pkg/logger/zap_adapter"
	"freight/pkg/token_bucket"
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

	mainLog.Info("starting freight-service application")

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

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
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

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	producer, err := kafka.NewSyncProducer(&cfg.Kafka, brokers)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		err := producer.Close()
		if err != nil {
			runLog.Error("failed to close Kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
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
	// основной http сервер

	// pprof http сервер
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
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
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

	router.Handle("/shipments/{id}/status", shipment_status_post.New(log, app.ServiceWorkflow)).Methods("POST")
	router.Handle("/shipments/{id}/quantities", shipment_quantities_post.New(log, app.ServiceWorkflow)).Methods("POST")
	router.Handle("/shipments/{id}/tracking", shipment_tracking_get.New(log, app.ServiceWorkflow)).Methods("GET")

	router.Handle("/quotations/{id}/shipments", shipment_post.New(log, app.ServiceWorkflow)).Methods("POST")
	router.Handle("/quotations/{id}/confirm", quotation_confirm_post.New(log, app.ServiceQuotation)).Methods("POST")
	router.Handle("/quotations/{id}/confirm", quotation_confirm_delete.New(log, app.ServiceQuotation)).Methods("DELETE")
	router.Handle("/quotations/{id}/aggregates", quotation_aggregates_get.New(log, app.ServiceAggregation)).Methods("GET")

	router.Handle("/containers/{id}/aggregates", container_aggregates_get.New(log, app.ServiceAggregation)).Methods("GET")
	router.Handle("/containers/{id}/state", container_state_get.New(log, app.ServiceCompletion)).Methods("GET")
	router.Handle("/containers/{id}/manifest", container_manifest_put.New(log, app.ServiceCompletion)).Methods("PUT")
	router.Handle("/containers/{id}/manifest", container_manifest_delete.New(log, app.ServiceCompletion)).Methods("DELETE")
	router.Handle("/containers/{id}/docs", container_docs_put.New(log, app.ServiceCompletion)).Methods("PUT")
	router.Handle("/containers/{id}/docs", container_docs_delete.New(log, app.ServiceCompletion)).Methods("DELETE")
	router.Handle("/containers/{id}/slots", container_slots_get.New(log, app.ServiceSchedule)).Methods("GET")

	router.Handle("/delivery/dates", delivery_date_post.New(log, app.ServiceSchedule)).Methods("POST")
	router.Handle("/delivery/dates/{id}", delivery_date_delete.New(log, app.ServiceSchedule)).Methods("DELETE")
	router.Handle("/delivery/ranges", delivery_range_post.New(log, app.ServiceSchedule)).Methods("POST")
	router.Handle("/delivery/ranges/{id}", delivery_range_put.New(log, app.ServiceSchedule)).Methods("PUT")
	router.Handle("/delivery/ranges/{id}", delivery_range_delete.New(log, app.ServiceSchedule)).Methods("DELETE")

	router.Handle("/slots/assign", slot_assign_post.New(log, app.ServiceSchedule)).Methods("POST")
	router.Handle("/slots/unassign", slot_unassign_post.New(log, app.ServiceSchedule)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
