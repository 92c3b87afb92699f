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

	createSlotHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_slot"
	deleteBookingHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/delete_booking"
	getAdminBookingsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_admin_bookings"
	getPublicBookingsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_public_bookings"
	requestSlotHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/request_slot"
	updateStatusHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_status"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/config"
	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
	mailServiceClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/mailservice"
	bookingsService "github.com/m04kA/SMC-AppointmentService/internal/service/bookings"
	notificationsService "github.com/m04kA/SMC-AppointmentService/internal/service/notifications"
	createSlotUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_slot"
	deleteBookingUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/delete_booking"
	requestSlotUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/request_slot"
	updateStatusUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_status"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
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

	log.Info("Starting SMC-AppointmentService...")
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

	// Инициализируем клиент почтового шлюза
	mailClient := mailServiceClient.NewClient(
		cfg.MailService.URL,
		time.Duration(cfg.MailService.Timeout)*time.Second,
		log,
	)
	log.Info("MailService client initialized (url=%s, timeout=%ds)",
		cfg.MailService.URL, cfg.MailService.Timeout)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		txMgr             TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		bookingsService.QueryConfig{
			SortFields:  cfg.Bookings.SortFields,
			DefaultSort: cfg.Bookings.DefaultSort,
		},
		log,
	)

	notificationSvc, err := notificationsService.NewService(
		mailClient,
		cfg.MailService.AdminEmail,
		cfg.Bookings.DisplayTimeZone,
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize notification service: %v", err)
	}

	// Инициализируем use cases
	createSlotUseCase := createSlotUC.NewUseCase(bookingRepository, log)
	requestSlotUseCase := requestSlotUC.NewUseCase(bookingRepository, txMgr, notificationSvc, log)
	updateStatusUseCase := updateStatusUC.NewUseCase(bookingRepository, txMgr, notificationSvc, log)
	deleteBookingUseCase := deleteBookingUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	createSlot := createSlotHandler.NewHandler(createSlotUseCase, log)
	requestSlot := requestSlotHandler.NewHandler(requestSlotUseCase, log)
	updateStatus := updateStatusHandler.NewHandler(updateStatusUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(deleteBookingUseCase, log)
	getPublicBookings := getPublicBookingsHandler.NewHandler(bookingSvc, log)
	getAdminBookings := getAdminBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

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

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Публичная витрина доступных слотов
	r.HandleFunc("/booking/public", getPublicBookings.Handle).Methods(http.MethodGet)

	// Заявка посетителя на слот
	r.HandleFunc("/booking/request/{bookingId}", requestSlot.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (HTTP Basic аутентификация)
	// ============================================================

	admin := r.PathPrefix("/booking/admin").Subrouter()
	admin.Use(middleware.BasicAuth(cfg.Auth.AdminUser, cfg.Auth.AdminPassword))

	// Листинг бронирований с фильтрацией
	admin.HandleFunc("", getAdminBookings.Handle).Methods(http.MethodGet)

	// Публикация нового слота
	admin.HandleFunc("", createSlot.Handle).Methods(http.MethodPost)

	// Смена статуса бронирования
	admin.HandleFunc("/{bookingId}", updateStatus.Handle).Methods(http.MethodPatch)

	// Удаление бронирования
	admin.HandleFunc("/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

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
