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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createAppointmentHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/delete_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_available_slots"
	getServiceHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_service"
	getSessionHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_session"
	healthHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/health"
	listAppointmentsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/list_appointments"
	listServicesHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/list_services"
	signInHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/sign_in"
	signOutHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/sign_out"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/update_appointment_status"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/availability"
	"github.com/m04kA/SMC-BarberBooking/internal/config"
	sessionStore "github.com/m04kA/SMC-BarberBooking/internal/infra/session"
	adminRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/admin"
	appointmentRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/service"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/whatsapp"
	appointmentsService "github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
	authService "github.com/m04kA/SMC-BarberBooking/internal/service/auth"
	catalogService "github.com/m04kA/SMC-BarberBooking/internal/service/catalog"
	"github.com/m04kA/SMC-BarberBooking/internal/session"
	createAppointmentUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/metrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/txmanager"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting barber booking service...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обёртка работает как обычный *sql.DB
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.New(wrappedDB)

	// Подключаемся к Redis (сессии администраторов)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		log.Fatal("Failed to ping redis: %v", err)
	}
	pingCancel()
	log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)

	// Правила работы заведения
	location, err := cfg.Business.Location()
	if err != nil {
		log.Fatal("Invalid business timezone %q: %v", cfg.Business.Timezone, err)
	}
	closedDays, err := cfg.Business.Weekdays()
	if err != nil {
		log.Fatal("Invalid closed weekdays: %v", err)
	}
	calendar := availability.NewCalendar(location, closedDays, cfg.Business.AllowPeriodSpillover)

	notifier, err := whatsapp.NewNotifier(cfg.Notification.WhatsAppBaseURL, cfg.Notification.WhatsAppNumber, location)
	if err != nil {
		log.Fatal("Invalid notification config: %v", err)
	}

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	adminRepository := adminRepo.NewRepository(wrappedDB)

	// Сессии: хранилище в Redis и локальный кэш с подпиской на события
	sessions := sessionStore.NewStore(redisClient, cfg.Redis.SessionPrefix, cfg.Redis.EventsChannel)
	tokens := session.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	gate := session.NewGate(sessions, tokens, log)

	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	if err := gate.Start(appCtx); err != nil {
		log.Fatal("Failed to start session gate: %v", err)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(serviceRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, location, log)
	authSvc := authService.NewService(adminRepository, sessions, tokens, cfg.Auth.SessionTTL(), log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		calendar,
		notifier,
		txMgr,
		metricsCollector,
		cfg.Business.AdvanceBookingDays,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		calendar,
		cfg.Business.AdvanceBookingDays,
		log,
	)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	signIn := signInHandler.NewHandler(authSvc, log)
	signOut := signOutHandler.NewHandler(authSvc, log)
	getSession := getSessionHandler.NewHandler(log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)

	health := healthHandler.NewHandler(map[string]healthHandler.Checker{
		"postgres": wrappedDB.PingContext,
		"redis": func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	}, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestLogging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)

	// Свободные слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Публичные операции записи ограничиваются по IP
	limited := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
		limited.Use(limiter.Middleware(log))
		log.Info("Rate limit enabled (%.0f req/min, burst=%d)", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	// Создание записи клиентом
	limited.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Вход администратора
	limited.HandleFunc("/auth/sign-in", signIn.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен администратора)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(gate, log))

	// --- Сессия ---
	protected.HandleFunc("/auth/sign-out", signOut.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/auth/session", getSession.Handle).Methods(http.MethodGet)

	// --- Панель администратора ---
	protected.HandleFunc("/admin/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/appointments/{appointmentId}/status",
		updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/admin/appointments/{appointmentId}",
		deleteAppointment.Handle).Methods(http.MethodDelete)

	// CORS и восстановление после паники поверх всего роутера
	handler := gorillaHandlers.RecoveryHandler(
		gorillaHandlers.RecoveryLogger(log),
		gorillaHandlers.PrintRecoveryStack(true),
	)(gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.Server.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		}),
		gorillaHandlers.AllowedHeaders([]string{"Authorization", "Content-Type", "X-Request-ID"}),
	)(r))

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

	// Останавливаем подписку на события сессий
	appCancel()
	if err := gate.Close(); err != nil {
		log.Warn("Failed to close session gate: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
