package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/getawayapp/getaway-backend/internal/facades"
	"github.com/getawayapp/getaway-backend/internal/handlers"
	"github.com/getawayapp/getaway-backend/internal/jwt"
	"github.com/getawayapp/getaway-backend/internal/logger"
	"github.com/getawayapp/getaway-backend/internal/middlewares"
	"github.com/getawayapp/getaway-backend/internal/repositories"
	"github.com/getawayapp/getaway-backend/internal/services"

	_ "github.com/getawayapp/getaway-backend/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title getaway-backend API
// @version 1.0.0
// @description CRUD backend for the getaway trip-planning application
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds all application, database, Redis, Kafka, token, and
// external-API configuration.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost     string
	redisPort     int
	redisDB       int
	redisPassword string

	kafkaAddr  string
	kafkaTopic string

	accessSecret   string
	refreshSecret  string
	accessExpHour  int
	refreshExpHour int

	googleAPIKey  string
	weatherAPIKey string
	openaiAPIKey  string

	weatherTTLSecond int
	enforceOwnership bool
}

// parseConfig loads environment variables from a file and validates them.
// Token secrets have no defaults: starting without them is an error.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.enforceOwnership = getEnv("APP_ENFORCE_OWNERSHIP", "false") == "true"

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "getaway")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.weatherTTLSecond, err = strconv.Atoi(getEnv("WEATHER_CACHE_TTL_SECOND", "600")); err != nil {
		return
	}

	// Kafka config; empty address disables audit events
	cfg.kafkaAddr = getEnv("KAFKA_ADDR", "")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "getaway-events")

	// Token config
	cfg.accessSecret = getEnv("ACCESS_TOKEN_SECRET", "")
	cfg.refreshSecret = getEnv("REFRESH_TOKEN_SECRET", "")
	if cfg.accessSecret == "" || cfg.refreshSecret == "" {
		err = errors.New("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must be set")
		return
	}
	if cfg.accessExpHour, err = strconv.Atoi(getEnv("ACCESS_TOKEN_EXP_HOUR", "24")); err != nil {
		return
	}
	if cfg.refreshExpHour, err = strconv.Atoi(getEnv("REFRESH_TOKEN_EXP_HOUR", "168")); err != nil {
		return
	}

	// External API keys; requests to the matching endpoints fail without them
	cfg.googleAPIKey = getEnv("GOOGLEAPIKEY", "")
	cfg.weatherAPIKey = getEnv("OPENWEATHERAPIKEY", "")
	cfg.openaiAPIKey = getEnv("OPENAI_API_KEY", "")

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server. It
// sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password: cfg.redisPassword,
		DB:       cfg.redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for audit events, optional
	var kafkaWriter services.KafkaWriter
	if cfg.kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaAddr),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer initialized for topic %s", cfg.kafkaTopic)
	} else {
		logger.Log.Warn("Kafka address not set, audit events disabled")
	}

	// Token signers, one per kind
	accessJWT, err := jwt.New(cfg.accessSecret, time.Duration(cfg.accessExpHour)*time.Hour)
	if err != nil {
		return err
	}
	refreshJWT, err := jwt.New(cfg.refreshSecret, time.Duration(cfg.refreshExpHour)*time.Hour)
	if err != nil {
		return err
	}

	// Repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	tripReadRepo := repositories.NewTripReadRepository(db)
	tripWriteRepo := repositories.NewTripWriteRepository(db)
	wishlistReadRepo := repositories.NewWishlistReadRepository(db)
	wishlistWriteRepo := repositories.NewWishlistWriteRepository(db)
	weatherCacheRepo := repositories.NewWeatherCacheRepository(rdb, time.Duration(cfg.weatherTTLSecond)*time.Second)

	// External facades
	placesFacade := facades.NewPlacesHTTPFacade(cfg.googleAPIKey)
	weatherFacade := facades.NewWeatherHTTPFacade(cfg.weatherAPIKey)
	chatFacade := facades.NewChatGPTHTTPFacade(cfg.openaiAPIKey)

	// Services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, accessJWT, refreshJWT)
	tripService := services.NewTripService(tripReadRepo, tripWriteRepo, userReadRepo, kafkaWriter, cfg.enforceOwnership)
	wishlistService := services.NewWishlistService(wishlistReadRepo, wishlistWriteRepo, kafkaWriter)
	externalService := services.NewExternalService(weatherCacheRepo, weatherFacade, placesFacade, chatFacade)

	// Middlewares
	authMiddleware := middlewares.AuthMiddleware(accessJWT)
	txMiddleware := middlewares.TxMiddleware(db)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/health", handlers.NewHealthHandler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", handlers.NewRegisterHandler(authService))
			r.Post("/login", handlers.NewLoginHandler(authService))
			r.Get("/logout", handlers.NewLogoutHandler())
			r.Get("/refresh_token", handlers.NewRefreshTokenHandler(authService))

			r.Get("/profile/{id}", handlers.NewGetProfileHandler(authService))
			r.Put("/profile/{id}", handlers.NewUpdateProfileHandler(authService))

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware)
				r.Get("/infor", handlers.NewUserInfoHandler(authService))
			})
		})

		r.Route("/trips", func(r chi.Router) {
			r.Get("/getaway-trip", handlers.NewListTripsHandler(tripService, false))
			r.Get("/favorites", handlers.NewListTripsHandler(tripService, true))
			r.Get("/getaway/{id}", handlers.NewGetTripHandler(tripService))

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware, txMiddleware)
				r.Post("/getaway-trip", handlers.NewCreateTripHandler(tripService))
				r.Put("/getaway/{id}", handlers.NewUpdateTripHandler(tripService))
				r.Delete("/getaway/{id}", handlers.NewDeleteTripHandler(tripService))
			})
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/getlists", handlers.NewListWishlistsHandler(wishlistService))
			r.Get("/spec-wishlist/{id}", handlers.NewGetWishlistHandler(wishlistService))

			r.Group(func(r chi.Router) {
				r.Use(txMiddleware)
				r.Post("/createlist", handlers.NewCreateWishlistHandler(wishlistService))
				r.Put("/editlist/{id}", handlers.NewEditWishlistHandler(wishlistService))
				r.Post("/addtrip/{id}", handlers.NewAddTripToWishlistHandler(wishlistService))
				r.Delete("/{wishlistId}/remove-trip/{tripId}", handlers.NewRemoveTripFromWishlistHandler(wishlistService))
				r.Delete("/removewishlist/{id}", handlers.NewDeleteWishlistHandler(wishlistService))
			})
		})

		r.Get("/places-details", handlers.NewPlaceDetailsHandler(externalService))
		r.Get("/places-pics", handlers.NewPlacePhotoHandler(externalService))
		r.Get("/weather", handlers.NewWeatherHandler(externalService))
		r.Post("/chatgpt/fun-places", handlers.NewFunPlacesHandler(externalService))
		r.Post("/chatgpt/trip-suggestion", handlers.NewTripSuggestionsHandler(externalService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
