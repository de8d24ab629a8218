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
	"github.com/redis/go-redis/v9"

	confirmBookingHandler "github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers/confirm_booking"
	getCalendarHandler "github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers/get_calendar"
	getDateSaturationHandler "github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers/get_date_saturation"
	getOperatorAvailabilityHandler "github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers/get_operator_availability"
	getSlotStatesHandler "github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers/get_slot_states"
	listRequestsHandler "github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers/list_requests"
	operatorLoginHandler "github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers/operator_login"
	operatorLogoutHandler "github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers/operator_logout"
	submitRequestHandler "github.com/pr-poehali-dev/booking-site-hazard/internal/api/handlers/submit_request"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/api/middleware"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/config"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/domain"
	bookingRepo "github.com/pr-poehali-dev/booking-site-hazard/internal/infra/storage/booking"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/infra/storage/memory"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/infra/storage/redislog"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/integrations/logservice"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/service/availability"
	"github.com/pr-poehali-dev/booking-site-hazard/internal/service/operator"
	bookingWorkflow "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/booking_workflow"
	confirmBookingUC "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/confirm_booking"
	getCalendarUC "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/get_calendar"
	getDateSaturationUC "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/get_date_saturation"
	getSlotStatesUC "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/get_slot_states"
	listRequestsUC "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/list_requests"
	submitRequestUC "github.com/pr-poehali-dev/booking-site-hazard/internal/usecase/submit_request"
	"github.com/pr-poehali-dev/booking-site-hazard/pkg/clock"
	"github.com/pr-poehali-dev/booking-site-hazard/pkg/logger"
	"github.com/pr-poehali-dev/booking-site-hazard/pkg/metrics"
	"github.com/pr-poehali-dev/booking-site-hazard/pkg/txmanager"
)

const sessionSweepInterval = time.Minute

// BookingStore оба лога: заявки посетителей и подтверждения оператора
type BookingStore interface {
	AppendRequest(ctx context.Context, request *domain.BookingRequest) error
	ReadAllRequests(ctx context.Context) ([]*domain.BookingRequest, error)
	AppendConfirmed(ctx context.Context, booking *domain.ConfirmedBooking) error
	ReadAllConfirmed(ctx context.Context) ([]*domain.ConfirmedBooking, error)
}

// TxManager сериализует проверку слота и запись подтверждения
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

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

	log.Info("Starting quest booking service...")
	log.Info("Configuration loaded from config.toml (storage=%s)", cfg.Storage.Driver)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Часовой пояс площадки и каталог квестов
	loc, err := cfg.Venue.Location()
	if err != nil {
		log.Fatal("Failed to load venue timezone %q: %v", cfg.Venue.Timezone, err)
	}
	venueClock := clock.NewVenue(loc)
	catalog := domain.NewQuestCatalog(cfg.Venue.Quests...)
	log.Info("Venue timezone=%s, quests=%d", loc, len(catalog))

	// Инициализируем хранилище логов
	var (
		store BookingStore
		txMgr TxManager
	)

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
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

		if cfg.Metrics.Enabled {
			go metricsCollector.CollectDBStats(db, 15*time.Second, stopMetricsCh)
			log.Info("Database metrics collection started")
		}

		store = bookingRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(db)

	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisStore, err := redislog.NewStore(pingCtx, client, cfg.Redis.KeyPrefix)
		cancel()
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

		store = redisStore
		txMgr = txmanager.NewLocal()

	case config.StorageRemote:
		store = logservice.NewClient(
			cfg.RemoteLog.URL,
			time.Duration(cfg.RemoteLog.Timeout)*time.Second,
			log,
		)
		txMgr = txmanager.NewLocal()
		log.Info("Remote log client initialized (url=%s, timeout=%ds)", cfg.RemoteLog.URL, cfg.RemoteLog.Timeout)

	default:
		store = memory.NewStore()
		txMgr = txmanager.NewLocal()
		log.Warn("In-memory storage: logs are lost on restart")
	}

	// Инициализируем сервисы
	availabilitySvc := availability.NewService(store, venueClock, log)

	sessions := operator.NewManager(
		cfg.Operator.PasswordHash,
		cfg.Operator.SessionTTL(),
		availabilitySvc,
		cfg.Reconcile.Interval(),
		venueClock,
		metricsCollector,
		log,
	)

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go sessions.RunJanitor(janitorCtx, sessionSweepInterval)

	// Инициализируем use cases
	submitRequestUseCase := submitRequestUC.NewUseCase(store, catalog, venueClock, metricsCollector, log)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(store, txMgr, catalog, venueClock, metricsCollector, log)
	getSlotStatesUseCase := getSlotStatesUC.NewUseCase(availabilitySvc, catalog, venueClock, log)
	getDateSaturationUseCase := getDateSaturationUC.NewUseCase(availabilitySvc, catalog, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(availabilitySvc, catalog, venueClock, log)
	listRequestsUseCase := listRequestsUC.NewUseCase(store, catalog, log)

	workflows := bookingWorkflow.NewFactory(bookingWorkflow.Deps{
		Availability: availabilitySvc,
		Clock:        venueClock,
		Submitter:    submitRequestUseCase,
		Confirmer:    confirmBookingUseCase,
		Logger:       log,
	})

	// Инициализируем handlers
	getSlotStates := getSlotStatesHandler.NewHandler(getSlotStatesUseCase, log)
	getDateSaturation := getDateSaturationHandler.NewHandler(getDateSaturationUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	submitRequest := submitRequestHandler.NewHandler(workflows, log)
	operatorLogin := operatorLoginHandler.NewHandler(sessions, log)
	operatorLogout := operatorLogoutHandler.NewHandler(sessions, log)
	getOperatorAvailability := getOperatorAvailabilityHandler.NewHandler(sessions, catalog, venueClock, log)
	listRequests := listRequestsHandler.NewHandler(listRequestsUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(workflows, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Состояние слотов на дату
	api.HandleFunc("/quests/{quest}/slots", getSlotStates.Handle).Methods(http.MethodGet)

	// Насыщенность даты
	api.HandleFunc("/quests/{quest}/saturation", getDateSaturation.Handle).Methods(http.MethodGet)

	// Сетка месяца с насыщенностью дней
	api.HandleFunc("/quests/{quest}/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Заявка посетителя (ограничение частоты на IP)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.TrustForwardedFor)
	api.Handle("/requests", limiter.Middleware(http.HandlerFunc(submitRequest.Handle))).Methods(http.MethodPost)

	// Вход оператора
	api.HandleFunc("/operator/sessions", operatorLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// OPERATOR ROUTES (требуют X-Operator-Session header)
	// ============================================================

	protected := api.PathPrefix("/operator").Subrouter()
	protected.Use(middleware.OperatorAuth(sessions))

	protected.HandleFunc("/sessions/{sessionId}", operatorLogout.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/availability", getOperatorAvailability.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/requests", listRequests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings", confirmBooking.Handle).Methods(http.MethodPost)

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

	// Останавливаем циклы обновления сессий оператора
	stopJanitor()
	sessions.Shutdown()

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
