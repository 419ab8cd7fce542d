package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	appointmentsReportHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/appointments_report"
	createAppointmentHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/create_appointment"
	exportDocumentHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/export_document"
	exportHistoryHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/export_history"
	gatewayRelayHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/gateway_relay"
	getConfigHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_config"
	listDocumentsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/list_documents"
	listShopServicesHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/list_shop_services"
	listShopsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/list_shops"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/config"
	documentStorage "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/documents"
	exportsRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/exports"
	backendClient "github.com/m04kA/SMC-BarberBooking/internal/integrations/backend"
	gatewayClient "github.com/m04kA/SMC-BarberBooking/internal/integrations/gateway"
	storageProxyClient "github.com/m04kA/SMC-BarberBooking/internal/integrations/storageproxy"
	catalogService "github.com/m04kA/SMC-BarberBooking/internal/service/catalog"
	documentsService "github.com/m04kA/SMC-BarberBooking/internal/service/documents"
	exporterService "github.com/m04kA/SMC-BarberBooking/internal/service/exporter"
	reportsService "github.com/m04kA/SMC-BarberBooking/internal/service/reports"
	createAppointmentUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/metrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/tracing"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-BarberBooking...")
	log.Info("Configuration loaded from config.toml")

	loc, err := cfg.Workflow.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Workflow.Timezone, err)
	}

	// Трассировка
	shutdownTracing, err := tracing.Setup(context.Background(), tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRatio:  cfg.Tracing.SampleRatio,
	})
	if err != nil {
		log.Fatal("Failed to set up tracing: %v", err)
	}
	if cfg.Tracing.Enabled {
		log.Info("Tracing enabled, exporting spans to %s", cfg.Tracing.OTLPEndpoint)
	}
	transport := tracing.Transport(http.DefaultTransport)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем интеграционных клиентов
	backend := backendClient.NewClient(
		cfg.Backend.BaseURL(),
		time.Duration(cfg.Backend.Timeout)*time.Second,
		log,
		backendClient.WithTransport(transport),
		backendClient.WithLocation(loc),
		backendClient.WithMetrics(metricsCollector),
	)
	gateway := gatewayClient.NewClient(
		cfg.Gateway.URL,
		time.Duration(cfg.Gateway.Timeout)*time.Second,
		transport,
	)
	storageProxy := storageProxyClient.NewClient(
		cfg.Storage.ProxyURL,
		time.Duration(cfg.Storage.ProxyTimeout)*time.Second,
		transport,
		log,
	)
	log.Info("Integration clients initialized (Backend=%s timeout=%ds, Gateway=%q, StorageProxy=%s)",
		cfg.Backend.BaseURL(), cfg.Backend.Timeout, cfg.Gateway.URL, cfg.Storage.ProxyURL)

	// Хранилища документов: S3 с резервной файловой системой или только файловая система
	uploads := documentStorage.NewFilesystem(cfg.Storage.Path, cfg.Storage.PublicPrefix)
	var (
		primaryStore  documentsService.ObjectStore = uploads
		fallbackStore documentsService.ObjectStore
	)
	if cfg.Storage.Type == config.StorageS3 {
		s3Store, err := documentStorage.NewS3Store(context.Background(), documentStorage.S3Config{
			Region:          cfg.S3.Region,
			Bucket:          cfg.S3.Bucket,
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		})
		if err != nil {
			log.Fatal("Failed to initialize S3 storage: %v", err)
		}
		primaryStore = s3Store
		fallbackStore = uploads
		log.Info("Document storage: s3 bucket=%s region=%s, fallback=%s", cfg.S3.Bucket, cfg.S3.Region, cfg.Storage.Path)
	} else {
		log.Info("Document storage: local path=%s", cfg.Storage.Path)
	}

	// Журнал экспортов (если включена база данных)
	var registry documentsService.ExportRegistry
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		registry = exportsRepo.NewRepository(db)
	} else {
		log.Info("Database disabled, export history is not recorded")
	}

	// Инициализируем сервисы
	documentsSvc := documentsService.NewService(primaryStore, fallbackStore, registry, metricsCollector, log)
	exporterSvc := exporterService.NewService(
		documentStorage.NewFilesystem(cfg.Export.DownloadsDir, ""),
		storageProxy,
		exporterService.Options{
			SaveRemote: cfg.Export.SaveToServer,
			Location:   loc,
		},
		metricsCollector,
		log,
	)
	catalogSvc := catalogService.NewService(backend.Shops(), backend.Services(), log)
	reportsSvc := reportsService.NewService(backend.Appointments(), log)

	// Инициализируем use cases
	lookupPolicy, err := createAppointmentUC.ParseCustomerLookupPolicy(cfg.Workflow.LookupPolicy)
	if err != nil {
		log.Fatal("Invalid customer lookup policy: %v", err)
	}
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		backend.Customers(),
		backend.Appointments(),
		backend.Shops(),
		backend.Services(),
		exporterSvc,
		metricsCollector,
		createAppointmentUC.Options{
			LookupPolicy:  lookupPolicy,
			SubmitTimeout: time.Duration(cfg.Workflow.SubmitTimeout) * time.Second,
			Location:      loc,
		},
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	listShops := listShopsHandler.NewHandler(catalogSvc, log)
	listShopServices := listShopServicesHandler.NewHandler(catalogSvc, log)
	appointmentsReport := appointmentsReportHandler.NewHandler(reportsSvc, loc, log)
	exportDocument := exportDocumentHandler.NewHandler(documentsSvc, log)
	exportHistory := exportHistoryHandler.NewHandler(documentsSvc, log)
	listDocuments := listDocumentsHandler.NewHandler(documentsSvc, log)
	gatewayRelay := gatewayRelayHandler.NewHandler(gateway, log)
	getConfig := getConfigHandler.NewHandler(getConfigHandler.RuntimeConfig{
		BaseURL:      cfg.Backend.BaseURL(),
		GatewayURL:   cfg.Gateway.URL,
		SaveToServer: cfg.Export.SaveToServer,
		StorageType:  documentsSvc.StorageType(),
	})

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// API формы записи
	// ============================================================

	apiV1 := r.PathPrefix("/api/v1").Subrouter()

	// Отправка формы записи
	apiV1.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Справочники для формы
	apiV1.HandleFunc("/shops", listShops.Handle).Methods(http.MethodGet)
	apiV1.HandleFunc("/shops/{shopId}/services", listShopServices.Handle).Methods(http.MethodGet)

	// Отчет по записям за период
	apiV1.HandleFunc("/reports/appointments", appointmentsReport.Handle).Methods(http.MethodGet)

	// ============================================================
	// Storage proxy и служебные маршруты
	// ============================================================

	api := r.PathPrefix("/api").Subrouter()

	exportRoutes := api.PathPrefix("/agendamentos").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
		exportRoutes.Use(middleware.RateLimit(limiter, log))
		log.Info("Rate limit for export endpoint: %.1f rps, burst %d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}
	exportRoutes.HandleFunc("/exportar", exportDocument.Handle).Methods(http.MethodPost)
	exportRoutes.HandleFunc("/{protocolo}/historico", exportHistory.Handle).Methods(http.MethodGet)
	exportRoutes.HandleFunc("/historico/{id:[0-9]+}", exportHistory.HandleRecord).Methods(http.MethodGet)

	api.HandleFunc("/gateway/test", gatewayRelay.Handle).Methods(http.MethodGet)
	api.HandleFunc("/gateway/documents", listDocuments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/config", getConfig.Handle).Methods(http.MethodGet)

	// Локальные документы доступны по публичному префиксу
	if cfg.Storage.PublicPrefix != "" {
		prefix := cfg.Storage.PublicPrefix + "/"
		r.PathPrefix(prefix).Handler(http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.Storage.Path))))
	}

	// CORS оборачивает весь роутер, чтобы preflight OPTIONS не отсекался по методу
	handler := tracing.Handler(middleware.CORS(cfg.CORS.AllowedOrigins)(r), cfg.Metrics.ServiceName)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to flush traces: %v", err)
	}

	log.Info("Server stopped gracefully")
}
