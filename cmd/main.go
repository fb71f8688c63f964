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

	approveReservationHandler "github.com/avolkhov/SFP-FieldService/internal/api/handlers/approve_reservation"
	calculatePriceHandler "github.com/avolkhov/SFP-FieldService/internal/api/handlers/calculate_price"
	cancelReservationHandler "github.com/avolkhov/SFP-FieldService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/avolkhov/SFP-FieldService/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/avolkhov/SFP-FieldService/internal/api/handlers/get_available_slots"
	getClubFieldsHandler "github.com/avolkhov/SFP-FieldService/internal/api/handlers/get_club_fields"
	getFieldConfigHandler "github.com/avolkhov/SFP-FieldService/internal/api/handlers/get_field_config"
	getFieldReservationsHandler "github.com/avolkhov/SFP-FieldService/internal/api/handlers/get_field_reservations"
	getReservationHandler "github.com/avolkhov/SFP-FieldService/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/avolkhov/SFP-FieldService/internal/api/handlers/get_user_reservations"
	rejectReservationHandler "github.com/avolkhov/SFP-FieldService/internal/api/handlers/reject_reservation"
	updateFieldConfigHandler "github.com/avolkhov/SFP-FieldService/internal/api/handlers/update_field_config"
	updateReservationTimeHandler "github.com/avolkhov/SFP-FieldService/internal/api/handlers/update_reservation_time"
	validateReservationTimeHandler "github.com/avolkhov/SFP-FieldService/internal/api/handlers/validate_reservation_time"
	"github.com/avolkhov/SFP-FieldService/internal/api/middleware"
	"github.com/avolkhov/SFP-FieldService/internal/config"
	fieldRepo "github.com/avolkhov/SFP-FieldService/internal/infra/storage/field"
	reservationRepo "github.com/avolkhov/SFP-FieldService/internal/infra/storage/reservation"
	clubServiceClient "github.com/avolkhov/SFP-FieldService/internal/integrations/clubservice"
	notifyServiceClient "github.com/avolkhov/SFP-FieldService/internal/integrations/notifyservice"
	fieldsService "github.com/avolkhov/SFP-FieldService/internal/service/fields"
	reservationsService "github.com/avolkhov/SFP-FieldService/internal/service/reservations"
	approveReservationUC "github.com/avolkhov/SFP-FieldService/internal/usecase/approve_reservation"
	calculatePriceUC "github.com/avolkhov/SFP-FieldService/internal/usecase/calculate_price"
	createReservationUC "github.com/avolkhov/SFP-FieldService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/avolkhov/SFP-FieldService/internal/usecase/get_available_slots"
	updateReservationTimeUC "github.com/avolkhov/SFP-FieldService/internal/usecase/update_reservation_time"
	validateReservationTimeUC "github.com/avolkhov/SFP-FieldService/internal/usecase/validate_reservation_time"
	"github.com/avolkhov/SFP-FieldService/pkg/dbmetrics"
	"github.com/avolkhov/SFP-FieldService/pkg/logger"
	"github.com/avolkhov/SFP-FieldService/pkg/metrics"
	"github.com/avolkhov/SFP-FieldService/pkg/simpletxmanager"
	"github.com/avolkhov/SFP-FieldService/pkg/txmanager"
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

	log.Info("Starting SFP-FieldService...")
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
	clubClient := clubServiceClient.NewClient(
		cfg.ClubService.URL,
		time.Duration(cfg.ClubService.Timeout)*time.Second,
		log,
	)
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ClubService=%s timeout=%ds, NotifyService=%s timeout=%ds)",
		cfg.ClubService.URL, cfg.ClubService.Timeout, cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		fieldRepository       *fieldRepo.Repository
		reservationRepository *reservationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		fieldRepository = fieldRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		fieldRepository = fieldRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		fieldRepository,
		clubClient,
		log,
	)
	fieldsSvc := fieldsService.NewService(fieldRepository, clubClient, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(fieldRepository, reservationRepository, log)
	validateReservationTimeUseCase := validateReservationTimeUC.NewUseCase(fieldRepository, reservationRepository, log)
	calculatePriceUseCase := calculatePriceUC.NewUseCase(fieldRepository, log)

	createReservationUseCase := createReservationUC.NewUseCase(
		fieldRepository,
		reservationRepository,
		txMgr,
		log,
	)
	approveReservationUseCase := approveReservationUC.NewUseCase(
		fieldRepository,
		reservationRepository,
		clubClient,
		txMgr,
		log,
	)
	updateReservationTimeUseCase := updateReservationTimeUC.NewUseCase(
		fieldRepository,
		reservationRepository,
		clubClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	validateReservationTime := validateReservationTimeHandler.NewHandler(validateReservationTimeUseCase, log)
	calculatePrice := calculatePriceHandler.NewHandler(calculatePriceUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, notifyClient, log)
	approveReservation := approveReservationHandler.NewHandler(approveReservationUseCase, notifyClient, log)
	updateReservationTime := updateReservationTimeHandler.NewHandler(updateReservationTimeUseCase, notifyClient, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, notifyClient, log)
	rejectReservation := rejectReservationHandler.NewHandler(reservationsSvc, notifyClient, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	getFieldReservations := getFieldReservationsHandler.NewHandler(reservationsSvc, log)
	getFieldConfig := getFieldConfigHandler.NewHandler(fieldsSvc, log)
	updateFieldConfig := updateFieldConfigHandler.NewHandler(fieldsSvc, log)
	getClubFields := getClubFieldsHandler.NewHandler(fieldsSvc, log)

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

	// Расписание свободных и ожидающих слотов поля на дату
	api.HandleFunc("/fields/{fieldId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Проверка интервала перед созданием бронирования
	api.HandleFunc("/fields/{fieldId}/validate-reservation-time",
		validateReservationTime.Handle).Methods(http.MethodGet)

	// Расчет стоимости бронирования
	api.HandleFunc("/fields/{fieldId}/price",
		calculatePrice.Handle).Methods(http.MethodGet)

	// Конфигурация поля
	api.HandleFunc("/fields/{fieldId}/config",
		getFieldConfig.Handle).Methods(http.MethodGet)

	// Список полей клуба
	api.HandleFunc("/clubs/{clubId}/fields",
		getClubFields.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание заявки на бронирование
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Подтверждение заявки менеджером (с назначением площадки)
	protected.HandleFunc("/reservations/{reservationId}/approve", approveReservation.Handle).Methods(http.MethodPatch)

	// Перенос бронирования на другое время
	protected.HandleFunc("/reservations/{reservationId}/time-slot", updateReservationTime.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Отклонение заявки менеджером
	protected.HandleFunc("/reservations/{reservationId}/reject", rejectReservation.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Управление полем (для менеджеров) ---
	// Список бронирований поля
	protected.HandleFunc("/fields/{fieldId}/reservations", getFieldReservations.Handle).Methods(http.MethodGet)

	// Обновление конфигурации поля
	protected.HandleFunc("/fields/{fieldId}/config", updateFieldConfig.Handle).Methods(http.MethodPut)

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
