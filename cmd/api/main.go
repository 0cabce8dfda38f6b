// Package main is the entrypoint for the Movieshelf API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/movieshelf/movieshelf/docs"
	"github.com/movieshelf/movieshelf/internal/auth"
	"github.com/movieshelf/movieshelf/internal/config"
	"github.com/movieshelf/movieshelf/internal/handler"
	"github.com/movieshelf/movieshelf/internal/middleware"
	"github.com/movieshelf/movieshelf/internal/omdb"
	"github.com/movieshelf/movieshelf/internal/ratelimit"
	"github.com/movieshelf/movieshelf/internal/repository"
	"github.com/movieshelf/movieshelf/internal/server"
	"github.com/movieshelf/movieshelf/internal/service"
	"github.com/movieshelf/movieshelf/internal/validation"
)

//	@title			Movieshelf API
//	@version		1.0
//	@description	Personal movie collection tracker with OMDb search.
//	@BasePath		/
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token issued by /register or /login.
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("connected to database")

	// The limiter state lives in Redis when one is configured, so the
	// window survives restarts and is shared across instances.
	// Otherwise it lives in process memory.
	var limiter ratelimit.Limiter = ratelimit.NewMemoryLimiter(
		cfg.RateLimitMax, cfg.RateLimitWindow, nil)
	if cfg.RedisURL != "" {
		redisLimiter, err := ratelimit.NewRedisLimiter(ctx, cfg.RedisURL,
			int64(cfg.RateLimitMax), cfg.RateLimitWindow)
		if err != nil {
			logger.Error(
				"failed to connect to Redis",
				slog.String("error", sanitizeError(err, cfg.RedisURL)),
				slog.String("redis_url", redactURL(cfg.RedisURL)),
			)
			os.Exit(1)
		}
		defer redisLimiter.Close()
		logger.Info("connected to Redis")
		limiter = redisLimiter
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		logger.Error("failed to initialize token manager", "error", err)
		os.Exit(1)
	}

	omdbClient := omdb.NewClient(cfg.OMDbBaseURL, cfg.OMDbAPIKey)
	validate := validation.New()

	authService := service.NewAuthService(repo, tokens)
	movieService := service.NewMovieService(repo)
	categoryService := service.NewCategoryService(repo)

	healthHandler := handler.NewHealthHandler(repo)
	authHandler := handler.NewAuthHandler(authService, validate, logger)
	movieHandler := handler.NewMovieHandler(movieService, validate, logger)
	categoryHandler := handler.NewCategoryHandler(categoryService, validate, logger)
	omdbHandler := handler.NewOmdbHandler(omdbClient, validate, logger)

	r := setupRouter(routerDeps{
		cfg:      cfg,
		logger:   logger,
		limiter:  limiter,
		tokens:   tokens,
		health:   healthHandler,
		auth:     authHandler,
		movie:    movieHandler,
		category: categoryHandler,
		omdb:     omdbHandler,
	})

	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type routerDeps struct {
	cfg      *config.Config
	logger   *slog.Logger
	limiter  ratelimit.Limiter
	tokens   *auth.TokenManager
	health   *handler.HealthHandler
	auth     *handler.AuthHandler
	movie    *handler.MovieHandler
	category *handler.CategoryHandler
	omdb     *handler.OmdbHandler
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(deps routerDeps) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware. The rate limiter sits in front of everything,
	// health probes included.
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.logger))
	r.Use(middleware.Recoverer(deps.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins(deps.cfg),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.BodyLimit(deps.cfg.MaxRequestBodySize))
	r.Use(middleware.RateLimit(deps.logger, deps.limiter, int64(deps.cfg.RateLimitMax)))

	// Public routes
	r.Get("/health", deps.health.Health)
	r.Get("/health/db", deps.health.HealthDB)
	r.Post("/register", deps.auth.Register)
	r.Post("/login", deps.auth.Login)
	r.Get("/api-docs/*", httpSwagger.Handler(
		httpSwagger.URL("/api-docs/doc.json"),
	))

	// Bearer-protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(deps.logger, deps.tokens))

		r.Post("/logout", deps.auth.Logout)

		r.Route("/movies", func(r chi.Router) {
			r.Get("/", deps.movie.List)
			r.Post("/", deps.movie.Create)
			r.Get("/omdb", deps.omdb.Search)
			r.Get("/omdb-title", deps.omdb.SearchTitle)
			r.Get("/{id}", deps.movie.Get)
			r.Put("/{id}", deps.movie.Update)
			r.Delete("/{id}", deps.movie.Delete)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", deps.category.List)
			r.Post("/", deps.category.Create)
			r.Get("/{id}", deps.category.Get)
			r.Put("/{id}", deps.category.Update)
			r.Delete("/{id}", deps.category.Delete)
		})
	})

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	return r
}

// corsOrigins resolves the allowed origin list. An empty configuration
// allows any origin.
func corsOrigins(cfg *config.Config) []string {
	origins := cfg.GetCORSAllowedOrigins()
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
