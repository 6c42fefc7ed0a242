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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-contacts/internal/config"
	"github.com/sbilibin2017/gw-contacts/internal/facades"
	"github.com/sbilibin2017/gw-contacts/internal/handlers"
	"github.com/sbilibin2017/gw-contacts/internal/hasher"
	"github.com/sbilibin2017/gw-contacts/internal/jwt"
	"github.com/sbilibin2017/gw-contacts/internal/logger"
	"github.com/sbilibin2017/gw-contacts/internal/middlewares"
	"github.com/sbilibin2017/gw-contacts/internal/migrations"
	"github.com/sbilibin2017/gw-contacts/internal/repositories"
	"github.com/sbilibin2017/gw-contacts/internal/services"
	"github.com/sbilibin2017/gw-contacts/internal/workers"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-contacts/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const serviceName = "gw-contacts"

// @title gw-contacts API
// @version 1.0.0
// @description Address book service: personal contact lists behind email-verified JWT accounts
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// run initializes the logger, database, Redis, Kafka, SMTP and object
// storage clients and the HTTP server, then blocks until shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.Postgres.Host, "db", cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := migrations.Run(ctx, db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka mail queue
	mailWriter := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Kafka.Brokers...),
		Topic:        cfg.Kafka.MailTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Log.Errorw("failed to deliver mail messages to Kafka", "count", len(messages), "error", err)
			}
		},
	}
	defer mailWriter.Close()

	// Object storage
	minioClient, err := facades.NewMinioClient(ctx, cfg.Minio)
	if err != nil {
		return fmt.Errorf("minio connection error: %w", err)
	}

	// Token codec and password hasher
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithAlgorithm(cfg.JWT.Algorithm),
		jwt.WithAccessExpiration(cfg.JWT.AccessExp),
		jwt.WithRefreshExpiration(cfg.JWT.RefreshExp),
		jwt.WithEmailExpiration(cfg.JWT.EmailExp),
	)
	passwords := hasher.New()

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	contactReadRepo := repositories.NewContactReadRepository(db, middlewares.GetTxFromContext)
	contactWriteRepo := repositories.NewContactWriteRepository(db, middlewares.GetTxFromContext)
	rateLimitRepo := repositories.NewRateLimitRepository(rdb)
	healthRepo := repositories.NewHealthRepository(db)

	// Initialize services
	authService := services.NewAuthService(
		userReadRepo,
		userWriteRepo,
		passwords,
		tokens,
		services.NewMailPublisher(mailWriter),
		cfg.App.BaseURL,
		services.WithAfterCommit(middlewares.AfterCommit),
	)
	contactService := services.NewContactService(contactReadRepo, contactWriteRepo)
	userService := services.NewUserService(
		facades.NewAvatarMinioFacade(minioClient, cfg.Minio.Bucket, cfg.Minio.PublicURL),
		userWriteRepo,
	)

	// Mail worker
	if cfg.Kafka.WorkerEnabled {
		smtpClient, err := facades.NewSMTPClient(cfg.Mail)
		if err != nil {
			return fmt.Errorf("failed to create SMTP client: %w", err)
		}
		reader := kafka.NewReader(kafka.ReaderConfig{
			Brokers:  cfg.Kafka.Brokers,
			GroupID:  cfg.Kafka.MailGroupID,
			Topic:    cfg.Kafka.MailTopic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
		sender := facades.NewMailSMTPFacade(smtpClient, cfg.Mail.From, cfg.Mail.FromName,
			facades.DefaultCircuitBreakerConfig("smtp"))
		worker := workers.NewMailWorker(reader, sender)
		go func() {
			if err := worker.Run(ctx); err != nil {
				logger.Log.Errorw("mail worker stopped", "error", err)
			}
		}()
	}

	r := newRouter(routerDeps{
		db:         db,
		limiter:    rateLimitRepo,
		limits:     cfg.RateLimit,
		tokens:     tokens,
		auth:       authService,
		contacts:   contactService,
		users:      userService,
		health:     healthRepo,
		swaggerAt:  fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.App.Host, cfg.App.Port),
		trustProxy: cfg.App.TrustProxy,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.App.Host, cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// routerDeps holds everything the HTTP routes are built from.
type routerDeps struct {
	db        *sqlx.DB
	limiter   middlewares.Limiter
	limits    config.RateLimit
	tokens    *jwt.JWT
	auth      *services.AuthService
	contacts  *services.ContactService
	users     *services.UserService
	health    handlers.Pinger
	swaggerAt string
	// per-IP limits key on RemoteAddr unless the proxy is trusted
	trustProxy bool
}

// newRouter mounts the API under /api. Writes run in a request
// transaction; contacts and user routes require an access token.
func newRouter(d routerDeps) http.Handler {
	authMiddleware := middlewares.AuthMiddleware(d.tokens, d.auth)
	txMiddleware := middlewares.TxMiddleware(d.db)

	r := chi.NewRouter()
	if d.trustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(middlewares.LoggingMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware(serviceName))

	r.Route("/api", func(r chi.Router) {
		r.Get("/healthchecker", handlers.NewHealthcheckerHandler(d.health))

		r.Route("/auth", func(r chi.Router) {
			r.Use(middlewares.RateLimitMiddleware(d.limiter, "auth", d.limits.AuthLimit, d.limits.AuthWindow))
			r.Use(txMiddleware)

			r.Post("/signup", handlers.NewSignupHandler(d.auth))
			r.Post("/login", handlers.NewLoginHandler(d.auth))
			r.Get("/refresh_token", handlers.NewRefreshTokenHandler(d.tokens, d.auth))
			r.Get("/confirmed_email/{token}", handlers.NewConfirmedEmailHandler(d.auth))
			r.Post("/request_email", handlers.NewRequestEmailHandler(d.auth))
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(middlewares.RateLimitMiddleware(d.limiter, "contacts", d.limits.ContactsLimit, d.limits.ContactsWindow))
			r.Use(txMiddleware)

			r.Get("/", handlers.NewListContactsHandler(d.contacts))
			r.Post("/", handlers.NewCreateContactHandler(d.contacts))
			r.Get("/search", handlers.NewSearchContactsHandler(d.contacts))
			r.Get("/birthday/next_week", handlers.NewUpcomingBirthdaysHandler(d.contacts))
			r.Get("/id/{contact_id}", handlers.NewGetContactHandler(d.contacts))
			r.Put("/id/{contact_id}", handlers.NewUpdateContactHandler(d.contacts))
			r.Delete("/id/{contact_id}", handlers.NewDeleteContactHandler(d.contacts))
			r.Get("/first_name/{first_name}", handlers.NewFirstNameContactsHandler(d.contacts))
			r.Get("/last_name/{last_name}", handlers.NewLastNameContactsHandler(d.contacts))
			r.Get("/email/{email}", handlers.NewEmailContactHandler(d.contacts))
		})

		r.Route("/user", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(middlewares.RateLimitMiddleware(d.limiter, "users", d.limits.UsersLimit, d.limits.UsersWindow))
			r.Use(txMiddleware)

			r.Get("/me", handlers.NewMeHandler())
			r.Patch("/avatar", handlers.NewAvatarHandler(d.users))
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(d.swaggerAt)))

	return r
}
