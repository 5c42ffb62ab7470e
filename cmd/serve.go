package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	closeBookingHandler "github.com/m04kA/HotelPrincipal-Site/internal/api/handlers/close_booking"
	contactLinkHandler "github.com/m04kA/HotelPrincipal-Site/internal/api/handlers/contact_link"
	dispatchActionHandler "github.com/m04kA/HotelPrincipal-Site/internal/api/handlers/dispatch_action"
	getBookingHandler "github.com/m04kA/HotelPrincipal-Site/internal/api/handlers/get_booking"
	getQuoteHandler "github.com/m04kA/HotelPrincipal-Site/internal/api/handlers/get_quote"
	getRoomHandler "github.com/m04kA/HotelPrincipal-Site/internal/api/handlers/get_room"
	getSiteHandler "github.com/m04kA/HotelPrincipal-Site/internal/api/handlers/get_site"
	listExtrasHandler "github.com/m04kA/HotelPrincipal-Site/internal/api/handlers/list_extras"
	listRoomsHandler "github.com/m04kA/HotelPrincipal-Site/internal/api/handlers/list_rooms"
	openBookingHandler "github.com/m04kA/HotelPrincipal-Site/internal/api/handlers/open_booking"
	"github.com/m04kA/HotelPrincipal-Site/internal/api/middleware"
	"github.com/m04kA/HotelPrincipal-Site/internal/config"
	notificationRepo "github.com/m04kA/HotelPrincipal-Site/internal/infra/storage/notification"
	sessionRepo "github.com/m04kA/HotelPrincipal-Site/internal/infra/storage/session"
	"github.com/m04kA/HotelPrincipal-Site/internal/integrations/whatsapp"
	catalogService "github.com/m04kA/HotelPrincipal-Site/internal/service/catalog"
	flowService "github.com/m04kA/HotelPrincipal-Site/internal/service/flow"
	siteService "github.com/m04kA/HotelPrincipal-Site/internal/service/site"
	getQuoteUC "github.com/m04kA/HotelPrincipal-Site/internal/usecase/get_quote"
	"github.com/m04kA/HotelPrincipal-Site/pkg/deferred"
	"github.com/m04kA/HotelPrincipal-Site/pkg/logger"
	"github.com/m04kA/HotelPrincipal-Site/pkg/metrics"
	"github.com/m04kA/HotelPrincipal-Site/pkg/money"
)

const (
	// cleanupInterval период очистки просроченных сессий и неиспользуемых ограничителей
	cleanupInterval = time.Minute
	limiterIdle     = 10 * time.Minute
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP сервис",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(*configPath)
		},
	}
}

func serve(configPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting HotelPrincipal-Site...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		flowMetrics      flowService.FlowMetrics
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		flowMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	stopCh := make(chan struct{})

	// Каталог комнат
	rooms, closeCatalog, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeCatalog(); err != nil {
			log.Error("Failed to close catalog: %v", err)
		}
	}()
	log.Info("Room catalog source: %s", cfg.Catalog.Source)

	// Хранилище сессий и уведомлений
	var (
		sessions flowService.SessionRepository
		inbox    flowService.NotificationInbox
	)
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := client.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			return fmt.Errorf("failed to ping redis at %s: %w", cfg.Redis.Addr, err)
		}

		sessions = sessionRepo.NewRedisRepository(client, cfg.Session.TTL())
		inbox = notificationRepo.NewRedisInbox(client, cfg.Session.TTL())
		log.Info("Session store: redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	default:
		memory := sessionRepo.NewMemoryRepository(cfg.Session.TTL())
		go memory.RunCleanup(cleanupInterval, stopCh)

		sessions = memory
		inbox = notificationRepo.NewMemoryInbox()
		log.Info("Session store: memory (ttl=%s)", cfg.Session.TTL())
	}

	// Интеграции
	links, err := whatsapp.NewLinkBuilder(cfg.Contact.WhatsAppBaseURL, cfg.Contact.WhatsAppPhone)
	if err != nil {
		return fmt.Errorf("failed to initialize contact links: %w", err)
	}
	formatter := money.NewFormatter(cfg.Contact.Locale)

	// Инициализируем сервисы
	scheduler := deferred.NewScheduler()
	defer scheduler.Stop()

	flowSvc := flowService.NewService(
		sessions,
		rooms,
		inbox,
		scheduler,
		flowMetrics,
		cfg.Booking.ResetDelay(),
		log,
	)
	catalogSvc := catalogService.NewService(rooms, links, formatter, log)
	siteSvc := siteService.NewService(rooms, links, formatter, log)

	// Инициализируем use cases
	getQuoteUseCase := getQuoteUC.NewUseCase(rooms, log)

	// Сессии посетителей и ограничение частоты запросов
	hashKey, blockKey, err := cfg.Session.Keys()
	if err != nil {
		return err
	}
	sessionManager := middleware.NewSessionManager(
		cfg.Session.CookieName,
		hashKey,
		blockKey,
		cfg.Session.TTL(),
		cfg.Session.CookieSecure,
	)
	rateLimiter := middleware.NewRateLimiter(cfg.Booking.RateLimitPerMinute, cfg.Booking.RateLimitBurst, log)
	go rateLimiter.RunCleanup(cleanupInterval, limiterIdle, stopCh)

	r := newRouter(routerDeps{
		flow:           flowSvc,
		catalog:        catalogSvc,
		site:           siteSvc,
		quote:          getQuoteUseCase,
		links:          links,
		sessionManager: sessionManager,
		rateLimiter:    rateLimiter,
		metrics:        metricsCollector,
		metricsPath:    cfg.Metrics.Path,
		logger:         log,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		close(stopCh)
		return fmt.Errorf("server failed to start: %w", err)
	}

	log.Info("Shutting down server...")

	// Останавливаем фоновые задачи очистки
	close(stopCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// routerDeps зависимости HTTP роутера
type routerDeps struct {
	flow           *flowService.Service
	catalog        *catalogService.Service
	site           *siteService.Service
	quote          *getQuoteUC.UseCase
	links          *whatsapp.LinkBuilder
	sessionManager *middleware.SessionManager
	rateLimiter    *middleware.RateLimiter
	metrics        *metrics.Metrics // nil - метрики выключены
	metricsPath    string
	logger         *logger.Logger
}

// newRouter регистрирует обработчики и middleware
func newRouter(deps routerDeps) *mux.Router {
	log := deps.logger

	// Инициализируем handlers
	listRooms := listRoomsHandler.NewHandler(deps.catalog, log)
	getRoom := getRoomHandler.NewHandler(deps.catalog, log)
	listExtras := listExtrasHandler.NewHandler(deps.catalog, log)
	getSite := getSiteHandler.NewHandler(deps.site, log)
	contactLink := contactLinkHandler.NewHandler(deps.links, log)
	getQuote := getQuoteHandler.NewHandler(deps.quote, log)
	getBooking := getBookingHandler.NewHandler(deps.flow, log)
	openBooking := openBookingHandler.NewHandler(deps.flow, log)
	closeBooking := closeBookingHandler.NewHandler(deps.flow, log)
	dispatchAction := dispatchActionHandler.NewHandler(deps.flow, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(log))

	// Добавляем metrics middleware (если метрики включены)
	if deps.metrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.metrics))
		r.Handle(deps.metricsPath, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", deps.metricsPath)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// CONTENT ROUTES (без сессии)
	// ============================================================

	api.HandleFunc("/site", getSite.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)
	api.HandleFunc("/extras", listExtras.Handle).Methods(http.MethodGet)
	api.HandleFunc("/contact-link", contactLink.Handle).Methods(http.MethodGet)
	api.HandleFunc("/quote", getQuote.Handle).Methods(http.MethodGet)

	// ============================================================
	// BOOKING ROUTES (cookie сессии + ограничение частоты)
	// ============================================================

	booking := api.PathPrefix("/booking").Subrouter()
	booking.Use(deps.sessionManager.Session)
	booking.Use(deps.rateLimiter.Limit)

	// Текущее состояние мастера и уведомления
	booking.HandleFunc("", getBooking.Handle).Methods(http.MethodGet)

	// Открытие и закрытие мастера
	booking.HandleFunc("/open", openBooking.Handle).Methods(http.MethodPost)
	booking.HandleFunc("/close", closeBooking.Handle).Methods(http.MethodPost)

	// Действия мастера
	booking.HandleFunc("/actions", dispatchAction.Handle).Methods(http.MethodPost)

	return r
}
