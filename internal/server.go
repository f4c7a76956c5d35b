package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/dawarpower/internal/coachapi"
	"github.com/2beens/dawarpower/internal/config"
	"github.com/2beens/dawarpower/internal/localstore"
	"github.com/2beens/dawarpower/internal/middleware"
	"github.com/2beens/dawarpower/internal/profile"
	"github.com/2beens/dawarpower/internal/telemetry/metrics"
	"github.com/2beens/dawarpower/internal/telemetry/tracing"
	"github.com/2beens/dawarpower/internal/views"
	"github.com/2beens/dawarpower/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const serviceName = "coach-companion"

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	redisClient *redis.Client
	backend     localstore.Backend
	store       *profile.Store
	coachApi    *coachapi.Client
	views       *views.Views

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config        *config.Config
	VersionInfo   string
	RedisPassword string
	// HttpClient is used for the remote coaching api; a traced client is
	// created when nil.
	HttpClient *http.Client
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("coach", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	var rdb *redis.Client
	if cfg.RedisHost != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})
		rdb.AddHook(redisotel.NewTracingHook())

		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
	}

	otelShutdown, err := tracing.HoneycombSetup(cfg.HoneycombEnabled, serviceName)
	if err != nil {
		closeRedis(rdb)
		return nil, fmt.Errorf("honeycomb setup: %w", err)
	}

	backend, err := localstore.Open(ctx, cfg, rdb)
	if err != nil {
		otelShutdown()
		closeRedis(rdb)
		return nil, fmt.Errorf("open profile storage: %w", err)
	}

	store := profile.NewStore(ctx, backend, profile.WithDiagnostics(metricsManager))

	httpClient := params.HttpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   time.Duration(cfg.ApiTimeoutSeconds) * time.Second,
		}
	}
	coachApi := coachapi.NewClient(
		cfg.ApiBaseURL,
		httpClient,
		coachapi.WithCallObserver(metricsManager),
	)

	return &Server{
		versionInfo: params.VersionInfo,
		config:      cfg,
		redisClient: rdb,
		backend:     backend,
		store:       store,
		coachApi:    coachApi,
		views: views.New(
			store,
			views.Remote{
				MealPlan:  coachApi,
				Schedule:  coachApi,
				Wellness:  coachApi,
				Exercises: coachApi,
				Users:     coachApi,
			},
			views.WithEvents(metricsManager),
		),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("coach-router"))

	// routes reaching the remote api share one rate limit bucket
	limited := func(h http.HandlerFunc) http.Handler { return h }
	if s.redisClient != nil && s.config.RemoteCallsPerMin > 0 {
		rateLimit := middleware.RateLimit(
			redis_rate.NewLimiter(s.redisClient),
			s.metricsManager,
			"remote-api",
			s.config.RemoteCallsPerMin,
		)
		limited = func(h http.HandlerFunc) http.Handler { return rateLimit(h) }
	} else if s.config.RemoteCallsPerMin > 0 {
		log.Warnln("remote calls rate limit set, but redis is not configured; not limiting")
	}

	h := views.NewHandler(s.views)

	r.HandleFunc("/health", s.handleHealth).Methods("GET", "OPTIONS").Name("health")

	r.HandleFunc("/profile", h.HandleGetProfile).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profile", h.HandleSaveProfile).Methods("PUT", "OPTIONS").Name("save-profile")
	r.HandleFunc("/profile", h.HandleClearProfile).Methods("DELETE", "OPTIONS").Name("clear-profile")
	r.HandleFunc("/profile/onboarding", h.HandleOnboarding).Methods("POST", "OPTIONS").Name("onboarding")

	r.HandleFunc("/presets", h.HandleListPresets).Methods("GET", "OPTIONS").Name("list-presets")
	r.HandleFunc("/presets/{key}", h.HandleApplyPreset).Methods("POST", "OPTIONS").Name("apply-preset")

	r.HandleFunc("/meal-plan", h.HandleGetMealPlan).Methods("GET", "OPTIONS").Name("get-meal-plan")
	r.Handle("/meal-plan", limited(h.HandleGenerateMealPlan)).Methods("POST", "OPTIONS").Name("generate-meal-plan")

	r.HandleFunc("/schedule", h.HandleGetSchedule).Methods("GET", "OPTIONS").Name("get-schedule")
	r.Handle("/schedule", limited(h.HandleBuildSchedule)).Methods("POST", "OPTIONS").Name("build-schedule")
	r.Handle("/schedule/fetch", limited(h.HandleFetchSchedule)).Methods("POST", "OPTIONS").Name("fetch-schedule")
	r.Handle("/schedule/recommendation", limited(h.HandleRecommendation)).Methods("POST", "OPTIONS").Name("recommendation")

	r.HandleFunc("/board", h.HandleGetBoard).Methods("GET", "OPTIONS").Name("get-board")
	r.HandleFunc("/board/move", h.HandleBoardMove).Methods("POST", "OPTIONS").Name("board-move")
	r.HandleFunc("/board/reset", h.HandleBoardReset).Methods("POST", "OPTIONS").Name("board-reset")
	r.HandleFunc("/board/apply", h.HandleBoardApply).Methods("POST", "OPTIONS").Name("board-apply")

	r.HandleFunc("/wellness", h.HandleGetWellness).Methods("GET", "OPTIONS").Name("get-wellness")
	r.Handle("/wellness", limited(h.HandleSubmitWellness)).Methods("POST", "OPTIONS").Name("submit-wellness")
	r.HandleFunc("/wellness/imports", h.HandleWellnessImports).Methods("GET", "OPTIONS").Name("wellness-imports")
	r.Handle("/wellness/import/sample/{source}", limited(h.HandleImportSample)).Methods("POST", "OPTIONS").Name("import-sample")
	r.Handle("/wellness/import/{provider}", limited(h.HandleImportProvider)).Methods("POST", "OPTIONS").Name("import-provider")

	r.HandleFunc("/exercises", h.HandleListExercises).Methods("GET", "OPTIONS").Name("list-exercises")
	r.Handle("/exercises", limited(h.HandleAddExercise)).Methods("POST", "OPTIONS").Name("add-exercise")
	r.HandleFunc("/exercises/{id}", h.HandleGetExercise).Methods("GET", "OPTIONS").Name("get-exercise")
	r.Handle("/exercises/{id}", limited(h.HandleEditExercise)).Methods("PUT", "OPTIONS").Name("edit-exercise")
	r.Handle("/exercises/{id}", limited(h.HandleDeleteExercise)).Methods("DELETE", "OPTIONS").Name("delete-exercise")

	r.Handle("/signup", limited(h.HandleSignup)).Methods("POST", "OPTIONS").Name("signup")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.LimitAndDrainBody(s.config.MaxBodyBytes))

	return r
}

type healthResponse struct {
	Status         string `json:"status"`
	Version        string `json:"version"`
	Storage        string `json:"storage"`
	ProfilePresent bool   `json:"profilePresent"`
	ApiBaseURL     string `json:"apiBaseUrl"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	resp, err := json.Marshal(healthResponse{
		Status:         "ok",
		Version:        s.versionInfo,
		Storage:        s.config.StorageBackend,
		ProfilePresent: s.store.Get() != nil,
		ApiBaseURL:     s.coachApi.BaseURL(),
	})
	if err != nil {
		log.Errorf("marshal health response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resp)
}

// Serve activates the views and starts the main and metrics http servers.
func (s *Server) Serve(host string, port int) {
	s.views.ActivateAll()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	metricsAddr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.MetricsPort))
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
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

	// no request is served anymore; cancel remote calls still in flight
	s.views.DeactivateAll()
	s.store.Close()
	if err := s.backend.Close(); err != nil {
		log.Errorf("failed to close profile storage: %s", err)
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	closeRedis(s.redisClient)

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

func closeRedis(rdb *redis.Client) {
	if rdb == nil {
		return
	}
	if err := rdb.Close(); err != nil {
		log.Errorf("failed to close redis client conn: %s", err)
	}
}
