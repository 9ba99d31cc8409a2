package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/landing/modules/landing"
	"github.com/dmitrymomot/landing/modules/landing/content"
	"github.com/dmitrymomot/landing/pkg/config"
	"github.com/dmitrymomot/landing/pkg/cookie"
	"github.com/dmitrymomot/landing/pkg/email"
	"github.com/dmitrymomot/landing/pkg/environment"
	"github.com/dmitrymomot/landing/pkg/httpserver"
	"github.com/dmitrymomot/landing/pkg/logger"
	"github.com/dmitrymomot/landing/pkg/notification"
	"github.com/dmitrymomot/landing/pkg/ratelimiter"
	"github.com/dmitrymomot/landing/pkg/requestid"
	"github.com/dmitrymomot/landing/pkg/siteconfig"
)

// App holds process level settings.
type App struct {
	Env           string        `env:"APP_ENV" envDefault:"development"`
	ServiceName   string        `env:"APP_NAME" envDefault:"landing"`
	LogLevel      string        `env:"LOG_LEVEL"`
	SessionIdle   time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"30m"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		app     App
		site    siteconfig.Config
		httpCfg httpserver.Config
		mailCfg email.Config
		cookCfg cookie.Config
		rateCfg ratelimiter.Config
	)
	if err := errors.Join(
		config.Load(&app),
		config.Load(&site),
		config.Load(&httpCfg),
		config.Load(&mailCfg),
		config.Load(&cookCfg),
		config.Load(&rateCfg),
	); err != nil {
		return err
	}

	env := environment.Parse(app.Env)
	log := logger.New(
		logger.WithEnvironment(app.Env, app.ServiceName),
		logger.WithLevelName(app.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor(), environment.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := notification.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	page, err := content.Load()
	if err != nil {
		return err
	}

	mailer, err := email.New(mailCfg)
	if err != nil {
		return err
	}
	if !mailCfg.UsesPostmark() {
		log.Warn("postmark not configured, contact e-mails are written to disk",
			slog.String("dir", mailCfg.DevDir),
			logger.Component("email"),
		)
	}

	cookies, err := newCookies(cookCfg, env, log)
	if err != nil {
		return err
	}

	sessions := notification.NewSessions(site.AccentColor(),
		notification.WithObserver(metrics),
		notification.WithLogger(log),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go sessions.RunSweeper(ctx, app.SweepInterval, app.SessionIdle)

	limiterStore := ratelimiter.NewMemoryStore()
	contactLimiter, err := ratelimiter.NewBucket(limiterStore, rateCfg)
	if err != nil {
		return err
	}

	errorHandler := landing.NewErrorHandler(log)
	contact := landing.NewContactService(page, mailer, mailCfg.SupportEmail, log, errorHandler,
		landing.WithContactLimiter(contactLimiter),
	)

	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		requestid.Middleware,
		environment.Middleware(env),
		middleware.Recoverer,
	)
	r.Get("/health", httpserver.HealthCheckHandler(log))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	r.Mount("/", landing.Router(landing.RouterOptions{
		Config:        site,
		Sessions:      sessions,
		Cookies:       cookies,
		Logger:        log,
		Page:          landing.NewPageService(page, errorHandler),
		Notifications: landing.NewNotificationService(log, errorHandler),
		Contact:       contact,
		Contract:      landing.NewContractService(site.ContractAddress, errorHandler),
	}))

	server := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithDrainHook(func() {
			if err := sessions.Close(); err != nil {
				log.Error("close sessions", logger.Error(err))
			}
		}),
		httpserver.WithStopHook(func(context.Context) {
			cancel()
			limiterStore.Close()
		}),
	)

	log.Info("starting landing",
		slog.String("addr", httpCfg.Addr),
		slog.String("network", string(site.NetworkType)),
		slog.String("blockchain", string(site.Blockchain)),
	)
	return server.Run(ctx, r)
}

// newCookies builds the session cookie manager. Outside production a missing
// secret is replaced by a random one, which logs every visitor out on restart.
func newCookies(cfg cookie.Config, env environment.Environment, log *slog.Logger) (*cookie.Manager, error) {
	if len(cfg.SecretList()) > 0 {
		return cookie.NewFromConfig(cfg)
	}
	if env == environment.Production {
		return nil, fmt.Errorf("COOKIE_SECRETS is required in production: %w", cookie.ErrNoSecret)
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	log.Warn("COOKIE_SECRETS not set, using a random secret", logger.Component("session"))
	cfg.Secrets = hex.EncodeToString(buf)
	return cookie.NewFromConfig(cfg)
}
