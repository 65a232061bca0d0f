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

	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/common/validate"
	"newsdesk/internal/config"
	"newsdesk/internal/infra/adapter/persistence"
	"newsdesk/internal/infra/cache"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/infra/messaging"
	"newsdesk/internal/infra/webhook"
	"newsdesk/internal/infra/worker"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/observability/tracing"
	"newsdesk/internal/resilience/circuitbreaker"
	"newsdesk/internal/revalidate"
	pkgconfig "newsdesk/pkg/config"

	artUC "newsdesk/internal/usecase/article"
	catUC "newsdesk/internal/usecase/category"

	hhttp "newsdesk/internal/handler/http"
	harticle "newsdesk/internal/handler/http/article"
	hauth "newsdesk/internal/handler/http/auth"
	hcategory "newsdesk/internal/handler/http/category"
	"newsdesk/internal/handler/http/clientip"
	"newsdesk/internal/handler/http/requestid"
	authservice "newsdesk/internal/service/auth"

	_ "newsdesk/docs" // swagger docs
)

// @title           Newsdesk API
// @version         1.0
// @description     ニュースサイトの記事・カテゴリ管理 REST API
// @description     公開ページはページキャッシュから配信され、管理操作は検証・保存・再検証の順で処理されます。

// @contact.name   API Support

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name session_token
// @description POST /auth/login が発行するセッションCookie

func main() {
	// .env は任意。存在しなくてもエラーにしない
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	secCfg := loadSecurityConfig(logger)
	validateAdminCredentials(logger, secCfg)

	shutdownTracing := tracing.Setup(pkgconfig.GetEnvFloat("OTEL_SAMPLE_RATIO", 0.1))
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("failed to shut down tracer provider", slog.Any("error", err))
		}
	}()

	dbCfg := db.ConfigFromEnv()
	database := initDatabase(logger, dbCfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	components := setupServer(logger, database, dbCfg.Driver, secCfg, version)
	defer components.Close()

	runServer(logger, components)
}

// loadSecurityConfig reads SECURITY_CONFIG (YAML, default configs/security.yaml).
// A missing file means defaults.
func loadSecurityConfig(logger *slog.Logger) *config.SecurityConfig {
	cfg, err := config.LoadSecurityConfigOrDefault(pkgconfig.GetEnvString("SECURITY_CONFIG", "configs/security.yaml"))
	if err != nil {
		logger.Error("failed to load security configuration", slog.Any("error", err))
		os.Exit(1)
	}
	return cfg
}

// validateAdminCredentials validates the admin credentials at startup.
// This prevents the server from starting with empty or weak admin credentials.
func validateAdminCredentials(logger *slog.Logger, cfg *config.SecurityConfig) {
	policy := hauth.CredentialPolicy{
		MinPasswordLength: cfg.GetMinPasswordLength(),
		WeakPasswords:     cfg.GetWeakPasswords(),
	}
	if err := hauth.ValidateAdminCredentials(policy); err != nil {
		logger.Error("admin credentials validation failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// initDatabase opens the database connection and runs migrations.
// db.Open keeps pinging with backoff while the database container starts.
func initDatabase(logger *slog.Logger, cfg db.Config) *sql.DB {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	database, err := db.Open(ctx, cfg)
	if err != nil {
		logger.Error("failed to open database", slog.String("driver", cfg.Driver), slog.Any("error", err))
		os.Exit(1)
	}

	if err := db.MigrateUp(ctx, database, cfg.Driver); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database ready", slog.String("driver", cfg.Driver))
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	return pkgconfig.GetEnvString("VERSION", "dev")
}

// ServerComponents holds components needed for server operation and cleanup.
type ServerComponents struct {
	Handler   http.Handler
	Pages     *cache.PageCache
	Publisher *messaging.RabbitPublisher // nil when RABBITMQ_URL is unset
	Limiter   *hauth.LoginLimiter
	Stats     *worker.Scheduler
}

// Close releases the cache and broker connection.
func (c *ServerComponents) Close() {
	if c.Publisher != nil {
		if err := c.Publisher.Close(); err != nil {
			slog.Default().Warn("failed to close revalidation publisher", slog.Any("error", err))
		}
	}
	c.Pages.Close()
}

// setupServer wires repositories, use cases and handlers into one http.Handler.
func setupServer(
	logger *slog.Logger,
	database *sql.DB,
	driver string,
	secCfg *config.SecurityConfig,
	version string,
) *ServerComponents {
	breaker := circuitbreaker.NewDB(database, db.BreakerConfig())
	repos := persistence.New(driver, database, breaker)

	pages, err := cache.New(cache.DefaultConfig())
	if err != nil {
		logger.Error("failed to create page cache", slog.Any("error", err))
		os.Exit(1)
	}

	// 再検証先: ページキャッシュ + (設定時) RabbitMQ / Webhook 経由の外部フロントエンド
	invalidators := revalidate.Multi{pages}
	var publisher *messaging.RabbitPublisher
	if mqCfg := messaging.ConfigFromEnv(); mqCfg.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		publisher, err = messaging.NewRabbitPublisher(ctx, mqCfg, logger)
		cancel()
		if err != nil {
			logger.Error("failed to connect revalidation publisher", slog.Any("error", err))
			os.Exit(1)
		}
		invalidators = append(invalidators, publisher)
		logger.Info("revalidation events enabled", slog.String("exchange", mqCfg.Exchange))
	}
	if hookCfg := webhook.ConfigFromEnv(); hookCfg.Enabled() {
		invalidators = append(invalidators, webhook.New(hookCfg, logger))
		logger.Info("revalidation webhook enabled")
	}

	notifyTimeout := pkgconfig.GetEnvDurationIn("REVALIDATE_TIMEOUT", revalidate.DefaultNotifyTimeout, 100*time.Millisecond, 30*time.Second)
	artSvc := &artUC.Service{
		Repo:          repos.Articles,
		Categories:    repos.Categories,
		Invalidator:   invalidators,
		PageSize:      pagination.LoadFromEnv().PageSize,
		NotifyTimeout: notifyTimeout,
	}
	catSvc := &catUC.Service{
		Repo:          repos.Categories,
		Articles:      repos.Articles,
		Invalidator:   invalidators,
		NotifyTimeout: notifyTimeout,
	}

	codec := newSessionCodec(logger, secCfg)
	authSvc := authservice.NewAuthService(hauth.NewAdminProvider(), codec, secCfg.SessionTTL())

	proxyCfg, err := clientip.LoadProxyConfig()
	if err != nil {
		logger.Error("failed to load trusted proxy configuration", slog.Any("error", err))
		os.Exit(1)
	}
	perMin, burst := secCfg.LoginRate()
	limiter := hauth.NewLoginLimiter(perMin, burst)
	cookies := hauth.CookieOptions{Secure: secCfg.CookieSecure(), TTL: secCfg.SessionTTL()}

	mux := http.NewServeMux()
	harticle.Register(mux, artSvc, pages, logger)
	hcategory.Register(mux, catSvc, pages)

	mux.Handle("POST /auth/login", hauth.LoginHandler{
		Svc:       authSvc,
		Limiter:   limiter,
		IP:        clientip.New(proxyCfg),
		Cookies:   cookies,
		Validator: validate.New(),
		Logger:    logger,
	})
	mux.Handle("POST /auth/logout", hauth.LogoutHandler(cookies))
	mux.HandleFunc("GET /admin/session", hauth.SessionHandler)
	mux.Handle("GET /admin/stats", hhttp.StatsHandler{Articles: repos.Articles, Categories: repos.Categories})

	// ヘルスチェックエンドポイント（認証不要）
	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: version, Breaker: breaker, Cache: pages})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	// Swagger UI（認証不要）
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	stats, err := worker.NewScheduler("stats", &worker.StatsJob{
		Articles:   repos.Articles,
		Categories: repos.Categories,
		Pool:       database,
		Logger:     logger,
	}, worker.LoadConfigFromEnv(logger), logger)
	if err != nil {
		logger.Error("failed to create stats scheduler", slog.Any("error", err))
		os.Exit(1)
	}

	return &ServerComponents{
		Handler:   applyMiddleware(logger, mux, codec),
		Pages:     pages,
		Publisher: publisher,
		Limiter:   limiter,
		Stats:     stats,
	}
}

// newSessionCodec builds the session codec from the configured format and
// the secret held in the environment variable the config names.
func newSessionCodec(logger *slog.Logger, cfg *config.SecurityConfig) authservice.Codec {
	secret := os.Getenv(cfg.SessionSecretEnv())
	// セキュリティ: 最小32文字（256ビット）を強制
	if len(secret) < 32 {
		logger.Error("session secret must be at least 32 characters (256 bits)",
			slog.String("env", cfg.SessionSecretEnv()))
		os.Exit(1)
	}
	codec, err := hauth.NewCodec(cfg.SessionFormat(), []byte(secret), cfg.SessionTTL())
	if err != nil {
		logger.Error("failed to create session codec", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("session codec ready",
		slog.String("format", cfg.SessionFormat()),
		slog.Duration("ttl", cfg.SessionTTL()))
	return codec
}

// applyMiddleware wraps the handler with middleware chain.
// Order (outermost first): Recover → Request ID → Tracing → Logger → Access log →
// Metrics → Input limits → Body limit → Mutation timeout → Session gate
func applyMiddleware(logger *slog.Logger, handler http.Handler, verifier authservice.Verifier) http.Handler {
	timeout := pkgconfig.GetEnvDurationIn("MUTATION_TIMEOUT", 10*time.Second, time.Second, 2*time.Minute)
	maxBody := int64(pkgconfig.GetEnvInt("MAX_REQUEST_BODY_BYTES", 1<<20))

	return hhttp.Chain(handler,
		hhttp.Recover(logger),
		requestid.Middleware,
		tracing.Middleware,
		logging.Middleware(logger),
		hhttp.Logging(logger),
		hhttp.MetricsMiddleware,
		hhttp.InputLimits(),
		hhttp.LimitRequestBody(maxBody),
		hhttp.MutationTimeout(timeout),
		hauth.Gate(verifier),
	)
}

// runServer starts the HTTP server and background jobs, then handles graceful shutdown.
func runServer(logger *slog.Logger, c *ServerComponents) {
	addr := pkgconfig.GetEnvString("HTTP_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           c.Handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go hauth.StartLimiterCleanup(ctx, c.Limiter, hauth.LoadCleanupConfigFromEnv())
	go clearPagesOnHangup(ctx, c.Pages, logger)

	// 起動直後にゲージを埋めてからスケジュール実行を開始
	c.Stats.RunOnce(ctx)
	c.Stats.Start()

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen", slog.String("addr", addr), slog.Any("error", err))
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.Any("error", err))
		}
	}

	c.Stats.Stop()

	shutdownTimeout := pkgconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
		return
	}
	logger.Info("server stopped")
}

// clearPagesOnHangup empties the page cache on SIGHUP until ctx ends.
func clearPagesOnHangup(ctx context.Context, pages *cache.PageCache, logger *slog.Logger) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			pages.Clear()
			logger.Info("page cache cleared", slog.String("signal", "SIGHUP"))
		}
	}
}
