package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/sync/errgroup"

	"fintrack/internal/config"
	pgRepo "fintrack/internal/infra/adapter/persistence/postgres"
	"fintrack/internal/infra/db"
	"fintrack/internal/observability/logging"
	"fintrack/internal/observability/tracing"
	"fintrack/internal/resilience/circuitbreaker"
	"fintrack/internal/resilience/retry"
	pkgconfig "fintrack/pkg/config"

	authUC "fintrack/internal/usecase/auth"
	budUC "fintrack/internal/usecase/budget"
	expUC "fintrack/internal/usecase/expense"
	srcUC "fintrack/internal/usecase/source"

	hhttp "fintrack/internal/handler/http"
	hauth "fintrack/internal/handler/http/auth"
	hbudget "fintrack/internal/handler/http/budget"
	hexpense "fintrack/internal/handler/http/expense"
	"fintrack/internal/handler/http/middleware"
	"fintrack/internal/handler/http/requestid"
	hsource "fintrack/internal/handler/http/source"
)

func main() {
	logger := initLogger()

	secCfg := loadSecurityConfig(logger)
	secret := validateJWTSecret(logger, secCfg.GetJWTSecretEnv())

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler, limiter := setupServer(logger, database, secCfg, secret)
	runServer(logger, handler, limiter, database)
}

// initLogger builds the process logger and installs it as the slog default.
func initLogger() *slog.Logger {
	var logger *slog.Logger
	if os.Getenv("LOG_FORMAT") == "text" {
		logger = logging.NewTextLogger()
	} else {
		logger = logging.NewLogger()
	}
	slog.SetDefault(logger)
	return logger
}

// loadSecurityConfig reads the security YAML. A missing file falls back
// to built-in defaults; a present but invalid file refuses startup.
func loadSecurityConfig(logger *slog.Logger) *config.SecurityConfig {
	path := os.Getenv("SECURITY_CONFIG")
	if path == "" {
		path = "config/security.yaml"
	}

	cfg, err := config.LoadSecurityConfig(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("security config not found, using defaults",
				slog.String("path", path))
			return config.DefaultSecurityConfig()
		}
		logger.Error("failed to load security config",
			slog.String("path", path), slog.Any("error", err))
		os.Exit(1)
	}
	return cfg
}

// validateJWTSecret reads the signing secret named by envName and refuses
// to start with a missing, short, or commonly-used value.
func validateJWTSecret(logger *slog.Logger, envName string) []byte {
	secret := os.Getenv(envName)
	if secret == "" {
		logger.Error("JWT secret must be set", slog.String("env", envName))
		os.Exit(1)
	}
	// 最小32文字（256ビット）を強制
	if len(secret) < 32 {
		logger.Error("JWT secret must be at least 32 characters (256 bits)",
			slog.String("env", envName))
		os.Exit(1)
	}
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT secret must not be a common weak value",
				slog.String("weak_value", weak))
			os.Exit(1)
		}
	}
	return []byte(secret)
}

// initDatabase opens the connection pool and migrates the schema.
// Migration retries with backoff so the API survives a database that is
// still coming up.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	err := retry.WithBackoff(ctx, retry.DBConfig(), func() error {
		return db.MigrateUp(database)
	})
	if err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// setupServer wires repositories, usecases, routes and the middleware
// chain, returning the root handler and the rate limiter (exposed for
// readiness reporting).
func setupServer(logger *slog.Logger, database *sql.DB, secCfg *config.SecurityConfig, secret []byte) (http.Handler, *middleware.RateLimiter) {
	// すべてのクエリはサーキットブレーカー経由
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	srcSvc := srcUC.Service{Repo: pgRepo.NewSourceRepo(breaker)}
	expSvc := expUC.Service{Repo: pgRepo.NewExpenseRepo(breaker)}
	budSvc := budUC.Service{Repo: pgRepo.NewBudgetRepo(breaker)}
	authSvc := &authUC.Service{
		Users:         pgRepo.NewUserRepo(breaker),
		Secret:        secret,
		TokenTTL:      time.Duration(secCfg.GetJWTExpiryHours()) * time.Hour,
		WeakPasswords: secCfg.GetWeakPasswords(),
	}

	rlCfg := pkgconfig.LoadRateLimitConfig()
	extractor := buildIPExtractor(logger, rlCfg)
	limiter := middleware.NewRateLimiter(rlCfg.Limit, rlCfg.Window, extractor, middleware.SystemClock{})
	logger.Info("rate limiting initialized",
		slog.Int("limit", rlCfg.Limit),
		slog.Duration("window", rlCfg.Window),
		slog.Bool("trust_proxy", rlCfg.TrustProxy))

	publicEndpoints := secCfg.GetPublicEndpoints()
	if len(publicEndpoints) == 0 {
		publicEndpoints = hauth.DefaultPublicEndpoints
	}

	publicMux := http.NewServeMux()
	health := &hhttp.HealthHandler{DB: database, Limiter: limiter, Version: getVersion()}
	publicMux.HandleFunc("GET /healthz", health.Liveness)
	publicMux.HandleFunc("GET /readyz", health.Readiness)
	publicMux.Handle("GET /metrics", hhttp.MetricsHandler())
	hauth.Register(publicMux, authSvc)

	privateMux := http.NewServeMux()
	hsource.Register(privateMux, srcSvc)
	hexpense.Register(privateMux, expSvc)
	hbudget.Register(privateMux, budSvc)

	verifier := &hauth.Verifier{Secret: secret, PublicEndpoints: publicEndpoints}
	protected := verifier.Middleware(privateMux)

	rootMux := http.NewServeMux()
	rootMux.Handle("/healthz", publicMux)
	rootMux.Handle("/readyz", publicMux)
	rootMux.Handle("/metrics", publicMux)
	rootMux.Handle("/auth/", publicMux)
	rootMux.Handle("/", protected)

	return applyMiddleware(logger, rootMux, limiter, secCfg), limiter
}

// buildIPExtractor decides how the rate limiter identifies clients.
// Forwarding headers are honored only when a trusted proxy list is
// configured; otherwise RemoteAddr wins and spoofed headers are ignored.
func buildIPExtractor(logger *slog.Logger, cfg pkgconfig.RateLimitConfig) middleware.IPExtractor {
	extractor := &middleware.HeaderIPExtractor{}
	if !cfg.TrustProxy {
		logger.Info("rate limiting: proxy headers not trusted, using RemoteAddr")
		return extractor
	}

	prefixes, err := middleware.ParseProxyList(cfg.TrustedProxies)
	if err != nil {
		logger.Error("invalid trusted proxy list", slog.Any("error", err))
		os.Exit(1)
	}
	extractor.Proxies = middleware.TrustedProxyConfig{Enabled: true, AllowedCIDRs: prefixes}
	logger.Info("rate limiting: trusted proxy mode enabled",
		slog.Int("trusted_proxies_count", len(prefixes)))
	return extractor
}

// applyMiddleware builds the chain around the router. Order, outermost
// first: Recover → RequestID → Tracing → Logging → Metrics → Security
// headers → Rate limit → Input sanity → Input limits → Timeout.
func applyMiddleware(logger *slog.Logger, handler http.Handler, limiter *middleware.RateLimiter, secCfg *config.SecurityConfig) http.Handler {
	securityHeaders := middleware.SecurityHeaders(middleware.SecurityHeadersConfig{
		ScriptCDNs: secCfg.Security.CSP.ScriptCDNs,
		StyleCDNs:  secCfg.Security.CSP.StyleCDNs,
		FontCDNs:   secCfg.Security.CSP.FontCDNs,
	})

	// 内側から外側へ適用
	chain := handler
	chain = hhttp.Timeout(30 * time.Second)(chain)
	chain = hhttp.InputLimits()(chain)
	chain = middleware.InputSanity(chain)
	chain = limiter.Middleware(chain)
	chain = securityHeaders(chain)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	chain = hhttp.Recover(logger)(chain)

	return chain
}

func getVersion() string {
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}

// runServer starts the HTTP server and blocks until SIGINT/SIGTERM, then
// drains in-flight requests before returning.
func runServer(logger *slog.Logger, handler http.Handler, limiter *middleware.RateLimiter, database *sql.DB) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":8080",
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris 対策
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.String("version", getVersion()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...",
			slog.Int("active_rate_limit_clients", limiter.ActiveClients()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
