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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/api/handlers"
	bookingActionHandler "github.com/m04kA/SMC-ReceptionistDashboard/internal/api/handlers/booking_action"
	dashboardHandler "github.com/m04kA/SMC-ReceptionistDashboard/internal/api/handlers/dashboard"
	getBookingsHandler "github.com/m04kA/SMC-ReceptionistDashboard/internal/api/handlers/get_bookings"
	loginHandler "github.com/m04kA/SMC-ReceptionistDashboard/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-ReceptionistDashboard/internal/api/handlers/logout"
	registerHandler "github.com/m04kA/SMC-ReceptionistDashboard/internal/api/handlers/register"
	servicesHandler "github.com/m04kA/SMC-ReceptionistDashboard/internal/api/handlers/services"
	staffHandler "github.com/m04kA/SMC-ReceptionistDashboard/internal/api/handlers/staff"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/api/middleware"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/config"
	sessionStorage "github.com/m04kA/SMC-ReceptionistDashboard/internal/infra/storage/session"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/integrations/receptionistapi"
	bookingsService "github.com/m04kA/SMC-ReceptionistDashboard/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-ReceptionistDashboard/internal/service/catalog"
	dashboardService "github.com/m04kA/SMC-ReceptionistDashboard/internal/service/dashboard"
	sessionService "github.com/m04kA/SMC-ReceptionistDashboard/internal/service/session"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/web"
	"github.com/m04kA/SMC-ReceptionistDashboard/pkg/logger"
	"github.com/m04kA/SMC-ReceptionistDashboard/pkg/metrics"
)

const (
	sessionCleanupInterval = 10 * time.Minute
	limiterIdleTimeout     = 30 * time.Minute
)

// expiredSessionsCleaner хранилище, которое само не удаляет истекшие слоты
type expiredSessionsCleaner interface {
	DeleteExpired(ctx context.Context) (int64, error)
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

	log.Info("Starting SMC-ReceptionistDashboard...")

	// Метрики (nil, если выключены; наблюдатели это допускают)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour
	stopCleanup := make(chan struct{})

	displayLocation, err := cfg.Display.Location()
	if err != nil {
		log.Fatal("Failed to load display timezone: %v", err)
	}

	// Хранилище сессий; redis удаляет истекшие ключи сам
	var (
		store   sessionStorage.Store
		cleaner expiredSessionsCleaner
	)
	switch cfg.Session.Store {
	case config.SessionStorePostgres:
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
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		repo := sessionStorage.NewRepository(db, sessionTTL)
		if err := repo.EnsureSchema(context.Background()); err != nil {
			log.Fatal("Failed to prepare session table: %v", err)
		}
		store, cleaner = repo, repo

	case config.SessionStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
		store = sessionStorage.NewRedisStore(client, sessionTTL)

	default:
		memory := sessionStorage.NewMemoryStore(sessionTTL)
		store, cleaner = memory, memory
	}
	log.Info("Session store: %s (ttl=%s)", cfg.Session.Store, sessionTTL)

	// Клиент API записи
	apiClient := receptionistapi.NewClient(
		cfg.API.URL,
		time.Duration(cfg.API.Timeout)*time.Second,
		metricsCollector,
		log,
	)
	log.Info("Receptionist API client initialized (url=%s, timeout=%ds)", cfg.API.URL, cfg.API.Timeout)

	// Инициализируем сервисы
	sessionSvc := sessionService.NewService(apiClient, store, log)
	bookingsSvc := bookingsService.NewService(apiClient, metricsCollector, log)
	dashboardSvc := dashboardService.NewService(apiClient, log)
	servicesWorkflow := catalogService.NewServicesWorkflow(apiClient, log)
	staffWorkflow := catalogService.NewStaffWorkflow(apiClient, log)

	renderer, err := web.NewRenderer(displayLocation)
	if err != nil {
		log.Fatal("Failed to parse templates: %v", err)
	}

	cookie := handlers.SessionCookie{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.SecureCookie,
		TTL:    sessionTTL,
	}

	// Инициализируем handlers
	login := loginHandler.NewHandler(sessionSvc, bookingsSvc, renderer, cookie, log)
	register := registerHandler.NewHandler(sessionSvc, bookingsSvc, renderer, cookie, log)
	logout := logoutHandler.NewHandler(sessionSvc, bookingsSvc, cookie, log)
	dashboard := dashboardHandler.NewHandler(dashboardSvc, renderer, log)
	getBookings := getBookingsHandler.NewHandler(bookingsSvc, renderer, log)
	bookingAction := bookingActionHandler.NewHandler(bookingsSvc, log)
	services := servicesHandler.NewHandler(servicesWorkflow, renderer, log)
	staff := staffHandler.NewHandler(staffWorkflow, renderer, log)

	limiter := middleware.NewRateLimiter(
		cfg.RateLimit.RequestsPerMinute,
		cfg.RateLimit.Burst,
		cfg.RateLimit.TrustForwardedFor,
		log,
	)

	// Периодическая очистка истекших сессий, экранов бронирований и лимитеров
	go runCleanup(cleaner, bookingsSvc, limiter, sessionTTL, log, stopCleanup)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(log))
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Страницы с формами закрыты CSRF-токеном
	pages := r.PathPrefix("").Subrouter()
	pages.Use(middleware.CSRF(cfg.Session.CSRFKey, cfg.Session.SecureCookie))
	if cfg.Session.CSRFKey == "" {
		log.Warn("CSRF protection disabled: session.csrf_key is empty")
	}

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	pages.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	}).Methods(http.MethodGet)

	pages.HandleFunc("/login", login.Show).Methods(http.MethodGet)
	pages.Handle("/login", limiter.Limit(http.HandlerFunc(login.Submit))).Methods(http.MethodPost)
	pages.HandleFunc("/register", register.Show).Methods(http.MethodGet)
	pages.Handle("/register", limiter.Limit(http.HandlerFunc(register.Submit))).Methods(http.MethodPost)
	pages.HandleFunc("/logout", logout.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют сессию)
	// ============================================================

	protected := pages.PathPrefix("").Subrouter()
	protected.Use(middleware.SessionGuard(sessionSvc, bookingsSvc, cookie, log))

	protected.HandleFunc("/dashboard", dashboard.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}/{action}", bookingAction.Handle).Methods(http.MethodPost)

	// --- Услуги ---
	protected.HandleFunc("/services", services.List).Methods(http.MethodGet)
	protected.HandleFunc("/services", services.Save).Methods(http.MethodPost)
	protected.HandleFunc("/services/{id}/delete", services.ConfirmDelete).Methods(http.MethodGet)
	protected.HandleFunc("/services/{id}/delete", services.Delete).Methods(http.MethodPost)

	// --- Сотрудники ---
	protected.HandleFunc("/staff", staff.List).Methods(http.MethodGet)
	protected.HandleFunc("/staff", staff.Save).Methods(http.MethodPost)
	protected.HandleFunc("/staff/{id}/delete", staff.ConfirmDelete).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{id}/delete", staff.Delete).Methods(http.MethodPost)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	close(stopCleanup)

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

// runCleanup периодически освобождает состояние мертвых сессий
// cleaner может быть nil (redis)
func runCleanup(
	cleaner expiredSessionsCleaner,
	boards *bookingsService.Service,
	limiter *middleware.RateLimiter,
	sessionTTL time.Duration,
	log *logger.Logger,
	stop <-chan struct{},
) {
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if cleaner != nil {
				n, err := cleaner.DeleteExpired(context.Background())
				if err != nil {
					log.Error("Failed to delete expired sessions: %v", err)
				} else if n > 0 {
					log.Info("Deleted %d expired session slots", n)
				}
			}
			if n := boards.ForgetIdle(sessionTTL); n > 0 {
				log.Info("Dropped %d idle booking boards", n)
			}
			if n := limiter.Sweep(limiterIdleTimeout); n > 0 {
				log.Debug("Dropped %d idle rate limiters", n)
			}
		}
	}
}
