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

	applyDiscountHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/apply_discount"
	changeDepartureHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/change_departure"
	convertBookingTypeHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/convert_booking_type"
	createBookingHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/create_booking"
	deleteDepartureHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/delete_departure"
	getAvailabilityHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/get_booking"
	getDepartureHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/get_departure"
	getTourHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/get_tour"
	joinBookingHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/join_booking"
	listDeparturesHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/list_departures"
	listToursHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/list_tours"
	listUnknownCommandsHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/list_unknown_commands"
	moveBookingHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/move_booking"
	quotePriceHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/quote_price"
	splitDepartureHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/split_departure"
	transferBookingHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/transfer_booking"
	updateBookingDetailsHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/update_booking_details"
	updateBookingPaxHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/update_booking_pax"
	updateBookingStatusHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/update_booking_status"
	updateTourPricingHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/update_tour_pricing"
	"github.com/m04kA/SMC-TourBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-TourBookingService/internal/config"
	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/engine"
	"github.com/m04kA/SMC-TourBookingService/internal/infra/cache"
	"github.com/m04kA/SMC-TourBookingService/internal/infra/events"
	"github.com/m04kA/SMC-TourBookingService/internal/infra/storage/journal"
	"github.com/m04kA/SMC-TourBookingService/internal/integrations/reservationstore"
	bookingsService "github.com/m04kA/SMC-TourBookingService/internal/service/bookings"
	departuresService "github.com/m04kA/SMC-TourBookingService/internal/service/departures"
	toursService "github.com/m04kA/SMC-TourBookingService/internal/service/tours"
	changeDepartureUC "github.com/m04kA/SMC-TourBookingService/internal/usecase/change_departure"
	convertBookingTypeUC "github.com/m04kA/SMC-TourBookingService/internal/usecase/convert_booking_type"
	createBookingUC "github.com/m04kA/SMC-TourBookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/SMC-TourBookingService/internal/usecase/get_availability"
	joinBookingUC "github.com/m04kA/SMC-TourBookingService/internal/usecase/join_booking"
	moveBookingUC "github.com/m04kA/SMC-TourBookingService/internal/usecase/move_booking"
	splitDepartureUC "github.com/m04kA/SMC-TourBookingService/internal/usecase/split_departure"
	transferBookingUC "github.com/m04kA/SMC-TourBookingService/internal/usecase/transfer_booking"
	"github.com/m04kA/SMC-TourBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourBookingService/pkg/logger"
	"github.com/m04kA/SMC-TourBookingService/pkg/metrics"
)

// Префикс ключей сервиса в общем Redis
const redisKeyPrefix = "tour-booking:"

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

	log.Info("Starting SMC-TourBookingService...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Журнал команд нужен и диспетчеру, и эндпоинту сверки
	type commandJournal interface {
		engine.Journal
		ListUnknown(ctx context.Context, limit uint64) ([]*journal.Entry, error)
	}
	var journalStore commandJournal = journal.Noop{}

	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to journal database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
			journalStore = journal.NewRepository(wrappedDB)
			log.Info("Database metrics collection started")
		} else {
			journalStore = journal.NewRepository(db)
		}
	} else {
		log.Warn("Command journal disabled: commands with unknown outcome will only be logged")
	}

	// Кэш сущностей и защита от параллельных команд
	var (
		entityStore cache.Store
		guard       engine.InFlightGuard
	)

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}

		entityStore = cache.NewRedisStore(redisClient, redisKeyPrefix)
		guard = engine.NewRedisInFlightGuard(redisClient, time.Duration(cfg.Redis.InFlightTTLSeconds)*time.Second, log)
		log.Info("Redis cache and in-flight guard enabled (addr=%s)", cfg.Redis.Addr)
	} else {
		entityStore = cache.NewMemoryStore()
		guard = engine.NewMemoryInFlightGuard()
		log.Warn("Redis disabled: using in-process cache and in-flight guard (single instance only)")
	}

	// События о выполненных командах
	var publisher engine.Publisher = events.Noop{}
	if cfg.Kafka.Enabled {
		kafkaPublisher := events.NewKafkaPublisher(events.NewKafkaWriter(cfg.Kafka.Brokers), cfg.Kafka.EventsTopic, log)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Info("Kafka publisher enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.EventsTopic)
	}

	// Клиент хранилища бронирований
	storeClient := reservationstore.NewClient(
		cfg.ReservationStore.URL,
		time.Duration(cfg.ReservationStore.Timeout)*time.Second,
		cfg.ReservationStore.ReadRetries,
		time.Duration(cfg.ReservationStore.RetryBackoffMs)*time.Millisecond,
		log,
	)
	log.Info("Reservation store client initialized (url=%s, timeout=%ds, read_retries=%d)",
		cfg.ReservationStore.URL, cfg.ReservationStore.Timeout, cfg.ReservationStore.ReadRetries)

	reader := cache.NewReader(
		entityStore,
		storeClient,
		time.Duration(cfg.Redis.EntityTTLSeconds)*time.Second,
		metricsCollector,
		log,
	)

	dispatcher := engine.NewDispatcher(guard, journalStore, reader, publisher, metricsCollector, log)

	defaultCurrency := domain.Currency(cfg.Booking.DefaultCurrency)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(reader, storeClient, dispatcher, metricsCollector, log)
	departureSvc := departuresService.NewService(reader, storeClient, dispatcher, log)
	tourSvc := toursService.NewService(reader, storeClient, dispatcher, defaultCurrency, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		reader,
		storeClient,
		dispatcher,
		metricsCollector,
		cfg.Booking.DefaultMaxPax,
		defaultCurrency,
		log,
	)
	joinBookingUseCase := joinBookingUC.NewUseCase(reader, storeClient, dispatcher, metricsCollector, defaultCurrency, log)
	moveBookingUseCase := moveBookingUC.NewUseCase(reader, storeClient, dispatcher, metricsCollector, log)
	transferBookingUseCase := transferBookingUC.NewUseCase(reader, storeClient, dispatcher, metricsCollector, log)
	splitDepartureUseCase := splitDepartureUC.NewUseCase(reader, storeClient, dispatcher, log)
	convertBookingTypeUseCase := convertBookingTypeUC.NewUseCase(reader, storeClient, dispatcher, log)
	changeDepartureUseCase := changeDepartureUC.NewUseCase(reader, storeClient, dispatcher, metricsCollector, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(reader, cfg.Booking.DefaultMaxPax, defaultCurrency, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	updateBookingPax := updateBookingPaxHandler.NewHandler(bookingSvc, log)
	updateBookingDetails := updateBookingDetailsHandler.NewHandler(bookingSvc, log)
	applyDiscount := applyDiscountHandler.NewHandler(bookingSvc, log)
	moveBooking := moveBookingHandler.NewHandler(moveBookingUseCase, log)
	transferBooking := transferBookingHandler.NewHandler(transferBookingUseCase, log)
	convertBookingType := convertBookingTypeHandler.NewHandler(convertBookingTypeUseCase, log)
	joinBooking := joinBookingHandler.NewHandler(joinBookingUseCase, log)
	getDeparture := getDepartureHandler.NewHandler(departureSvc, log)
	changeDeparture := changeDepartureHandler.NewHandler(changeDepartureUseCase, log)
	splitDeparture := splitDepartureHandler.NewHandler(splitDepartureUseCase, log)
	deleteDeparture := deleteDepartureHandler.NewHandler(departureSvc, log)
	listDepartures := listDeparturesHandler.NewHandler(departureSvc, log)
	listTours := listToursHandler.NewHandler(tourSvc, log)
	getTour := getTourHandler.NewHandler(tourSvc, log)
	quotePrice := quotePriceHandler.NewHandler(tourSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	updateTourPricing := updateTourPricingHandler.NewHandler(tourSvc, log)
	listUnknownCommands := listUnknownCommandsHandler.NewHandler(journalStore, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix, заголовок Authorization передается в хранилище как есть
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Credential)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/pax", updateBookingPax.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/details", updateBookingDetails.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}/discount", applyDiscount.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/move", moveBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/transfer", transferBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/convert", convertBookingType.Handle).Methods(http.MethodPost)

	// --- Выезды ---
	api.HandleFunc("/departures/{departureId}", getDeparture.Handle).Methods(http.MethodGet)
	api.HandleFunc("/departures/{departureId}", deleteDeparture.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/departures/{departureId}/bookings", joinBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/departures/{departureId}/date", changeDeparture.HandleDate).Methods(http.MethodPatch)
	api.HandleFunc("/departures/{departureId}/tour", changeDeparture.HandleTour).Methods(http.MethodPatch)
	api.HandleFunc("/departures/{departureId}/split", splitDeparture.Handle).Methods(http.MethodPost)

	// --- Туры ---
	api.HandleFunc("/tours", listTours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tours/{tourId}", getTour.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tours/{tourId}/quote", quotePrice.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tours/{tourId}/departures", listDepartures.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tours/{tourId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tours/{tourId}/pricing", updateTourPricing.Handle).Methods(http.MethodPut)

	// --- Сверка команд ---
	api.HandleFunc("/commands/unknown", listUnknownCommands.Handle).Methods(http.MethodGet)

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
	close(stopMetricsCh)

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
