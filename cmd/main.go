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
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/gw-currency-converter/docs"
	"github.com/sbilibin2017/gw-currency-converter/internal/currencies"
	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-converter/internal/repositories"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-currency-converter API
// @version 1.0.0
// @description Currency converter backed by the exchangerate-api v6 provider
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, logEncoding,
		rateAPIURL, rateAPIKey, rateTimeoutSecond,
		sessionTTLSecond,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, logEncoding,
		rateAPIURL, rateAPIKey, rateTimeoutSecond,
		sessionTTLSecond,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, logging, rate provider, session and Redis configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, logEncoding string,
	rateAPIURL, rateAPIKey string, rateTimeoutSecond int,
	sessionTTLSecond int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	logEncoding = getEnv("APP_LOG_ENCODING", logger.EncodingJSON)

	// Exchange rate provider config
	rateAPIURL = getEnv("EXCHANGE_RATE_API_URL", facades.DefaultBaseURL)
	rateAPIKey = getEnv("EXCHANGE_RATE_API_KEY", "")
	if rateAPIKey == "" {
		err = errors.New("EXCHANGE_RATE_API_KEY is required")
		return
	}
	if rateTimeoutSecond, err = strconv.Atoi(getEnv("EXCHANGE_RATE_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	// Session config
	if sessionTTLSecond, err = strconv.Atoi(getEnv("SESSION_TTL_SECOND", "1800")); err != nil {
		return
	}

	// Redis config, an empty host keeps sessions in memory
	redisHost = getEnv("REDIS_HOST", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	return
}

// run initializes the logger, the session store, the rate provider client and the HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, logEncoding string,
	rateAPIURL, rateAPIKey string, rateTimeoutSecond int,
	sessionTTLSecond int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel, logEncoding); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	table, err := currencies.Default()
	if err != nil {
		return fmt.Errorf("load currency table: %w", err)
	}
	logger.Log.Infof("Loaded %d currencies", table.Len())

	sessionTTL := time.Duration(sessionTTLSecond) * time.Second

	// Session store
	var repo services.SelectionRepository
	if redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password:     redisPassword,
			DB:           redisDB,
			PoolSize:     redisPoolSize,
			MinIdleConns: redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		repo = repositories.NewSelectionRedisRepository(rdb, sessionTTL)
		logger.Log.Infof("Sessions stored in Redis at %s:%d", redisHost, redisPort)
	} else {
		repo = repositories.NewSelectionMemoryRepository(sessionTTL)
		logger.Log.Info("Sessions stored in memory")
	}

	// Rate provider and services
	rateFacade := facades.NewExchangeRateHTTPFacade(rateAPIURL, rateAPIKey, nil)
	sessionService := services.NewSessionService(
		rateFacade,
		table,
		repo,
		time.Duration(rateTimeoutSecond)*time.Second,
		sessionTTL,
	)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/currencies", handlers.NewSearchCurrenciesHandler(table))
		r.Post("/sessions", handlers.NewCreateSessionHandler(sessionService))
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", handlers.NewGetSessionHandler(sessionService))
			r.Delete("/", handlers.NewDeleteSessionHandler(sessionService))
			r.Put("/from", handlers.NewSelectFromHandler(sessionService))
			r.Put("/to", handlers.NewSelectToHandler(sessionService))
			r.Put("/amount", handlers.NewSetAmountHandler(sessionService))
			r.Put("/mode", handlers.NewSetModeHandler(sessionService))
			r.Put("/date", handlers.NewSetHistoryDateHandler(sessionService))
			r.Post("/refresh", handlers.NewRefreshSessionHandler(sessionService))
		})
	})

	// Browser page
	r.Group(func(r chi.Router) {
		r.Use(middlewares.SessionMiddleware)
		page := handlers.NewPageHandler(sessionService, table, middlewares.SessionIDFromContext)
		r.Get("/", page)
		r.Post("/", page)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	sessionsDone := make(chan struct{})
	go func() {
		sessionService.Run(ctxShutdown)
		close(sessionsDone)
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		stop()
		<-sessionsDone
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	<-sessionsDone

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
