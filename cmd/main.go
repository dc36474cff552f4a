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

	cancelAppointmentHandler "github.com/zubkit/ZK-ScheduleService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/zubkit/ZK-ScheduleService/internal/api/handlers/create_appointment"
	deleteClinicScheduleHandler "github.com/zubkit/ZK-ScheduleService/internal/api/handlers/delete_clinic_schedule"
	getAppointmentHandler "github.com/zubkit/ZK-ScheduleService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/zubkit/ZK-ScheduleService/internal/api/handlers/get_available_slots"
	getClinicAppointmentsHandler "github.com/zubkit/ZK-ScheduleService/internal/api/handlers/get_clinic_appointments"
	getClinicScheduleHandler "github.com/zubkit/ZK-ScheduleService/internal/api/handlers/get_clinic_schedule"
	getDayGridHandler "github.com/zubkit/ZK-ScheduleService/internal/api/handlers/get_day_grid"
	getPatientAppointmentsHandler "github.com/zubkit/ZK-ScheduleService/internal/api/handlers/get_patient_appointments"
	updateAppointmentStatusHandler "github.com/zubkit/ZK-ScheduleService/internal/api/handlers/update_appointment_status"
	updateClinicScheduleHandler "github.com/zubkit/ZK-ScheduleService/internal/api/handlers/update_clinic_schedule"
	"github.com/zubkit/ZK-ScheduleService/internal/api/middleware"
	"github.com/zubkit/ZK-ScheduleService/internal/config"
	appointmentRepo "github.com/zubkit/ZK-ScheduleService/internal/infra/storage/appointment"
	scheduleRepo "github.com/zubkit/ZK-ScheduleService/internal/infra/storage/schedule"
	clinicServiceClient "github.com/zubkit/ZK-ScheduleService/internal/integrations/clinicservice"
	patientServiceClient "github.com/zubkit/ZK-ScheduleService/internal/integrations/patientservice"
	appointmentsService "github.com/zubkit/ZK-ScheduleService/internal/service/appointments"
	scheduleService "github.com/zubkit/ZK-ScheduleService/internal/service/schedule"
	createAppointmentUC "github.com/zubkit/ZK-ScheduleService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/zubkit/ZK-ScheduleService/internal/usecase/get_available_slots"
	getDayGridUC "github.com/zubkit/ZK-ScheduleService/internal/usecase/get_day_grid"
	"github.com/zubkit/ZK-ScheduleService/pkg/dbmetrics"
	"github.com/zubkit/ZK-ScheduleService/pkg/logger"
	"github.com/zubkit/ZK-ScheduleService/pkg/metrics"
	"github.com/zubkit/ZK-ScheduleService/pkg/simpletxmanager"
	"github.com/zubkit/ZK-ScheduleService/pkg/txmanager"
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

	log.Info("Starting ZK-ScheduleService...")
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
	clinicClient := clinicServiceClient.NewClient(
		cfg.ClinicService.URL,
		time.Duration(cfg.ClinicService.Timeout)*time.Second,
		log,
	)
	patientClient := patientServiceClient.NewClient(
		cfg.PatientService.URL,
		time.Duration(cfg.PatientService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ClinicService=%s timeout=%ds, PatientService=%s timeout=%ds)",
		cfg.ClinicService.URL, cfg.ClinicService.Timeout, cfg.PatientService.URL, cfg.PatientService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
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
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		appointmentRepository = appointmentRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		clinicClient,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		clinicClient,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		clinicClient,
		patientClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		clinicClient,
		log,
	)

	getDayGridUseCase := getDayGridUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		clinicClient,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getDayGrid := getDayGridHandler.NewHandler(getDayGridUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getPatientAppointments := getPatientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getClinicAppointments := getClinicAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getClinicSchedule := getClinicScheduleHandler.NewHandler(scheduleSvc, log)
	updateClinicSchedule := updateClinicScheduleHandler.NewHandler(scheduleSvc, log)
	deleteClinicSchedule := deleteClinicScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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

	// Получение доступных слотов для записи на приём
	api.HandleFunc("/clinics/{clinicId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Получение расписания клиники
	api.HandleFunc("/clinics/{clinicId}/schedule",
		getClinicSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи на приём ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Обновление статуса записи (для менеджеров)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// История записей пациента
	protected.HandleFunc("/patients/{patientId}/appointments", getPatientAppointments.Handle).Methods(http.MethodGet)

	// --- Управление клиникой (для менеджеров) ---
	// Список записей клиники
	protected.HandleFunc("/clinics/{clinicId}/appointments", getClinicAppointments.Handle).Methods(http.MethodGet)

	// Дневная сетка расписания по врачам
	protected.HandleFunc("/clinics/{clinicId}/day-grid", getDayGrid.Handle).Methods(http.MethodGet)

	// Обновление расписания клиники
	protected.HandleFunc("/clinics/{clinicId}/schedule", updateClinicSchedule.Handle).Methods(http.MethodPut)

	// Сброс расписания клиники к дефолтным настройкам
	protected.HandleFunc("/clinics/{clinicId}/schedule", deleteClinicSchedule.Handle).Methods(http.MethodDelete)

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
