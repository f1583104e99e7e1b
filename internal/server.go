package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Arjunram-pal/portfolio/internal/account"
	"github.com/Arjunram-pal/portfolio/internal/auth"
	"github.com/Arjunram-pal/portfolio/internal/authform"
	"github.com/Arjunram-pal/portfolio/internal/blog"
	"github.com/Arjunram-pal/portfolio/internal/config"
	"github.com/Arjunram-pal/portfolio/internal/contact"
	"github.com/Arjunram-pal/portfolio/internal/events"
	"github.com/Arjunram-pal/portfolio/internal/middleware"
	"github.com/Arjunram-pal/portfolio/internal/misc"
	"github.com/Arjunram-pal/portfolio/internal/routine"
	"github.com/Arjunram-pal/portfolio/internal/siteapi"
	"github.com/Arjunram-pal/portfolio/internal/state"
	"github.com/Arjunram-pal/portfolio/internal/telemetry/metrics"
	"github.com/Arjunram-pal/portfolio/internal/telemetry/tracing"
	"github.com/Arjunram-pal/portfolio/internal/timefmt"
)

const formSessionsCleanupInterval = 30 * time.Minute

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config       *config.Config
	dispatcher   *events.Dispatcher
	formRegistry *authform.Registry

	redisClient  *redis.Client
	loginChecker auth.Checker
	rateLimiter  middleware.RequestRateLimiter

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config          *config.Config
	VersionInfo     string
	RedisPassword   string
	HoneycombParams tracing.HoneycombParams
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	promRegistry := metrics.SetupPrometheus(params.VersionInfo)
	metricsManager := metrics.NewManager("frontend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0) // set to 1 once serving

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		// visitors are still served, admin sessions and rate limiting need redis
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombParams, rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   params.Config.SiteAPITimeout(),
	}
	siteAPI, err := siteapi.NewClient(params.Config.SiteAPIBaseURL, tracedHttpClient, metricsManager)
	if err != nil {
		return nil, fmt.Errorf("new site api client: %w", err)
	}

	formatter, err := timefmt.New(timefmt.Options{
		Timezone: params.Config.Timezone,
		Locale:   params.Config.Locale,
	})
	if err != nil {
		log.Errorf("timestamp formatter [%s, %s]: %s, falling back to defaults", params.Config.Timezone, params.Config.Locale, err)
		formatter = timefmt.MustDefault()
	}
	log.Debugf("timestamps shown in %s, locale %s", formatter.Location(), formatter.Locale())

	formRegistry := authform.NewRegistry(
		params.Config.FormSessionsMax,
		authform.WithBlockedSubmitHook(func(kind authform.Kind) {
			metricsManager.CounterBlockedSubmits.WithLabelValues(kind.String()).Inc()
		}),
	)
	go cleanupFormSessions(ctx, formRegistry)

	return &Server{
		config:      params.Config,
		versionInfo: params.VersionInfo,

		dispatcher:   events.NewDispatcher(siteAPI, state.NewStore(), formatter, metricsManager),
		formRegistry: formRegistry,

		redisClient:  rdb,
		loginChecker: auth.NewLoginChecker(params.Config.AdminSessionTTL(), rdb),
		rateLimiter:  redis_rate.NewLimiter(rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func cleanupFormSessions(ctx context.Context, registry *authform.Registry) {
	ticker := time.NewTicker(formSessionsCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			registry.ScanAndClean(authform.DefaultSessionTTL)
		}
	}
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	misc.NewHandler(s.dispatcher, s.versionInfo).SetupRoutes(
		r,
		s.rateLimiter,
		s.config.ContactRateLimitPerMin,
		s.metricsManager,
	)
	blog.NewHandler(s.dispatcher).SetupRoutes(r)
	routine.NewHandler(s.dispatcher).SetupRoutes(r)
	contact.NewHandler(s.dispatcher).SetupRoutes(
		r,
		s.rateLimiter,
		s.config.ContactRateLimitPerMin,
		s.metricsManager,
	)
	account.NewHandler(s.formRegistry).SetupRoutes(r)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.ResolveViewer(s.loginChecker, s.config.AdminSessionCookie))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}
