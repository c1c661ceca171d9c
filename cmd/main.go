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

	approveBookingHandler "github.com/axlexpert/AX-BookingService/internal/api/handlers/approve_booking"
	completeBookingHandler "github.com/axlexpert/AX-BookingService/internal/api/handlers/complete_booking"
	createBookingHandler "github.com/axlexpert/AX-BookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/axlexpert/AX-BookingService/internal/api/handlers/delete_booking"
	getAvailableSlotsHandler "github.com/axlexpert/AX-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/axlexpert/AX-BookingService/internal/api/handlers/get_booking"
	getBranchBookingsHandler "github.com/axlexpert/AX-BookingService/internal/api/handlers/get_branch_bookings"
	getBranchConfigHandler "github.com/axlexpert/AX-BookingService/internal/api/handlers/get_branch_config"
	getCalendarHandler "github.com/axlexpert/AX-BookingService/internal/api/handlers/get_calendar"
	getUserBookingsHandler "github.com/axlexpert/AX-BookingService/internal/api/handlers/get_user_bookings"
	listBranchesHandler "github.com/axlexpert/AX-BookingService/internal/api/handlers/list_branches"
	listEmployeesHandler "github.com/axlexpert/AX-BookingService/internal/api/handlers/list_employees"
	listServicesHandler "github.com/axlexpert/AX-BookingService/internal/api/handlers/list_services"
	rejectBookingHandler "github.com/axlexpert/AX-BookingService/internal/api/handlers/reject_booking"
	updateBranchConfigHandler "github.com/axlexpert/AX-BookingService/internal/api/handlers/update_branch_config"
	"github.com/axlexpert/AX-BookingService/internal/api/middleware"
	"github.com/axlexpert/AX-BookingService/internal/config"
	"github.com/axlexpert/AX-BookingService/internal/infra/cache"
	appointmentRepo "github.com/axlexpert/AX-BookingService/internal/infra/storage/appointment"
	configRepo "github.com/axlexpert/AX-BookingService/internal/infra/storage/config"
	branchServiceClient "github.com/axlexpert/AX-BookingService/internal/integrations/branchservice"
	staffServiceClient "github.com/axlexpert/AX-BookingService/internal/integrations/staffservice"
	appointmentsService "github.com/axlexpert/AX-BookingService/internal/service/appointments"
	catalogService "github.com/axlexpert/AX-BookingService/internal/service/catalog"
	configService "github.com/axlexpert/AX-BookingService/internal/service/config"
	approveBookingUC "github.com/axlexpert/AX-BookingService/internal/usecase/approve_booking"
	createBookingUC "github.com/axlexpert/AX-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/axlexpert/AX-BookingService/internal/usecase/get_available_slots"
	getCalendarUC "github.com/axlexpert/AX-BookingService/internal/usecase/get_calendar"
	"github.com/axlexpert/AX-BookingService/pkg/dbmetrics"
	"github.com/axlexpert/AX-BookingService/pkg/logger"
	"github.com/axlexpert/AX-BookingService/pkg/metrics"
	"github.com/axlexpert/AX-BookingService/pkg/simpletxmanager"
	"github.com/axlexpert/AX-BookingService/pkg/txmanager"
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

	log.Info("Starting AX-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	branchClient := branchServiceClient.NewClient(
		cfg.BranchService.URL,
		time.Duration(cfg.BranchService.Timeout)*time.Second,
		log,
	)
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (BranchService=%s timeout=%ds, StaffService=%s timeout=%ds)",
		cfg.BranchService.URL, cfg.BranchService.Timeout, cfg.StaffService.URL, cfg.StaffService.Timeout)

	// Инициализируем кеш справочных данных (опционально)
	var refCache catalogService.ReferenceCache
	if cfg.Redis.Enabled {
		redisCache, err := cache.New(
			cfg.Redis.Addr,
			cfg.Redis.Password,
			cfg.Redis.DB,
			time.Duration(cfg.Redis.TTLSeconds)*time.Second,
			log,
		)
		if err != nil {
			// Кеш не критичен - продолжаем без него
			log.Warn("Failed to connect to Redis, continuing without cache: %v", err)
		} else {
			refCache = redisCache
			defer redisCache.Close()
			log.Info("Reference cache connected (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
		}
	}

	// Инициализируем репозитории и сервисы (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		configRepository      *configRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		configRepository = configRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		appointmentRepository = appointmentRepo.NewRepository(db)
		configRepository = configRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		branchClient,
		log,
	)
	configSvc := configService.NewService(
		configRepository,
		branchClient,
		log,
	)
	catalogSvc := catalogService.NewService(
		branchClient,
		staffClient,
		refCache,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		configRepository,
		branchClient,
		staffClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		configRepository,
		branchClient,
		log,
	)

	getCalendarUseCase := getCalendarUC.NewUseCase(
		appointmentRepository,
		branchClient,
		log,
	)

	approveBookingUseCase := approveBookingUC.NewUseCase(
		appointmentRepository,
		branchClient,
		staffClient,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	approveBooking := approveBookingHandler.NewHandler(approveBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(appointmentsSvc, log)
	rejectBooking := rejectBookingHandler.NewHandler(appointmentsSvc, log)
	completeBooking := completeBookingHandler.NewHandler(appointmentsSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(appointmentsSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(appointmentsSvc, log)
	getBranchBookings := getBranchBookingsHandler.NewHandler(appointmentsSvc, log)
	getBranchConfig := getBranchConfigHandler.NewHandler(configSvc, log)
	updateBranchConfig := updateBranchConfigHandler.NewHandler(configSvc, log)
	listBranches := listBranchesHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	listEmployees := listEmployeesHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Справочники: филиалы и каталог услуг
	api.HandleFunc("/branches", listBranches.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Получение доступных слотов для записи
	api.HandleFunc("/branches/{branchId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Получение действующей конфигурации слотов филиала
	api.HandleFunc("/branches/{branchId}/config",
		getBranchConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи на обслуживание ---
	// Создание записи
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/bookings/{appointmentId}", getBooking.Handle).Methods(http.MethodGet)

	// Подтверждение записи с назначением сотрудника
	protected.HandleFunc("/bookings/{appointmentId}/approve", approveBooking.Handle).Methods(http.MethodPatch)

	// Отклонение записи
	protected.HandleFunc("/bookings/{appointmentId}/reject", rejectBooking.Handle).Methods(http.MethodPatch)

	// Завершение записи
	protected.HandleFunc("/bookings/{appointmentId}/complete", completeBooking.Handle).Methods(http.MethodPatch)

	// Удаление записи (только в статусе PENDING)
	protected.HandleFunc("/bookings/{appointmentId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// История записей пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление филиалом (для менеджеров) ---
	// Список записей филиала
	protected.HandleFunc("/branches/{branchId}/bookings", getBranchBookings.Handle).Methods(http.MethodGet)

	// Календарь записей филиала
	protected.HandleFunc("/branches/{branchId}/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Все конфигурации филиала
	protected.HandleFunc("/branches/{branchId}/configs", getBranchConfig.HandleList).Methods(http.MethodGet)

	// Обновление конфигурации филиала
	protected.HandleFunc("/branches/{branchId}/config", updateBranchConfig.Handle).Methods(http.MethodPut)

	// Список сотрудников для назначения
	protected.HandleFunc("/employees", listEmployees.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
