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

	cancelAppointmentHandler "github.com/techydad05/nail-artist-website/internal/api/handlers/cancel_appointment"
	checkAvailabilityHandler "github.com/techydad05/nail-artist-website/internal/api/handlers/check_availability"
	createAppointmentHandler "github.com/techydad05/nail-artist-website/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/techydad05/nail-artist-website/internal/api/handlers/get_appointment"
	getAppointmentStatsHandler "github.com/techydad05/nail-artist-website/internal/api/handlers/get_appointment_stats"
	getAvailableSlotsHandler "github.com/techydad05/nail-artist-website/internal/api/handlers/get_available_slots"
	getBusinessHoursHandler "github.com/techydad05/nail-artist-website/internal/api/handlers/get_business_hours"
	listAppointmentsHandler "github.com/techydad05/nail-artist-website/internal/api/handlers/list_appointments"
	listServicesHandler "github.com/techydad05/nail-artist-website/internal/api/handlers/list_services"
	updateStatusHandler "github.com/techydad05/nail-artist-website/internal/api/handlers/update_appointment_status"
	"github.com/techydad05/nail-artist-website/internal/api/middleware"
	"github.com/techydad05/nail-artist-website/internal/config"
	apptRepo "github.com/techydad05/nail-artist-website/internal/infra/storage/appointment"
	serviceRepo "github.com/techydad05/nail-artist-website/internal/infra/storage/service"
	"github.com/techydad05/nail-artist-website/internal/notify"
	"github.com/techydad05/nail-artist-website/internal/schedule"
	appointmentsService "github.com/techydad05/nail-artist-website/internal/service/appointments"
	catalogService "github.com/techydad05/nail-artist-website/internal/service/catalog"
	checkAvailabilityUC "github.com/techydad05/nail-artist-website/internal/usecase/check_availability"
	createAppointmentUC "github.com/techydad05/nail-artist-website/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/techydad05/nail-artist-website/internal/usecase/get_available_slots"
	"github.com/techydad05/nail-artist-website/pkg/dbmetrics"
	"github.com/techydad05/nail-artist-website/pkg/logger"
	"github.com/techydad05/nail-artist-website/pkg/metrics"
	"github.com/techydad05/nail-artist-website/pkg/simpletxmanager"
	"github.com/techydad05/nail-artist-website/pkg/txmanager"
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

	log.Info("Starting nail-artist-website...")
	log.Info("Configuration loaded from config.toml")

	// Собираем бизнес-календарь: сломанный календарь - это причина не
	// стартовать вовсе
	calendar, err := schedule.FromConfig(cfg.Calendar)
	if err != nil {
		log.Fatal("Failed to build business calendar: %v", err)
	}
	log.Info("Business calendar loaded: open=%s, close=%s, slot=%dm, buffer=%dm",
		calendar.DailyOpen, calendar.DailyClose, calendar.SlotDurationMinutes, calendar.BufferMinutes)

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

	// Отправитель писем: SendGrid при настроенном ключе, иначе заглушка
	var emailSender notify.EmailSender
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.Email.APIKey,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}, log); sg != nil {
		emailSender = sg
		log.Info("Email notifications enabled via SendGrid (from=%s)", cfg.Email.FromEmail)
	} else {
		emailSender = notify.NewStubEmailSender(log)
		log.Info("SendGrid API key not set, email notifications disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *apptRepo.Repository
		serviceRepository     *serviceRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = apptRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = apptRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		emailSender,
		log,
	)
	catalogSvc := catalogService.NewService(
		serviceRepository,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		calendar,
		txMgr,
		emailSender,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		calendar,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		appointmentRepository,
		calendar,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, calendar, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentsSvc, log)
	getStats := getAppointmentStatsHandler.NewHandler(appointmentsSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(calendar, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг и часы работы салона
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/business-hours", getBusinessHours.Handle).Methods(http.MethodGet)

	// Доступность слотов
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/check", checkAvailability.Handle).Methods(http.MethodPost)

	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-Token header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AdminAuth(cfg.Admin.Token, log))

	// Статистика должна регистрироваться раньше /appointments/{appointmentId}
	protected.HandleFunc("/appointments/stats", getStats.Handle).Methods(http.MethodGet)

	// Список записей с фильтрацией
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Запись по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи (письмо клиенту уходит из сервиса)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Смена статуса записи
	protected.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)

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
