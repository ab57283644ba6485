package apiserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	api "github.com/covid19-impact/estimator/api/v1"
	"github.com/covid19-impact/estimator/internal/accesslog"
	"github.com/covid19-impact/estimator/internal/config"
	handlers "github.com/covid19-impact/estimator/internal/handlers/v1"
	"github.com/covid19-impact/estimator/internal/service"
	"github.com/covid19-impact/estimator/pkg/log"
	"github.com/covid19-impact/estimator/pkg/metrics"
	"github.com/covid19-impact/estimator/pkg/middleware"
)

const (
	gracefulShutdownTimeout = 5 * time.Second

	// APIPrefix is the base path of the estimator API.
	APIPrefix = "/api/v1/on-covid-19"
)

type Server struct {
	cfg      *config.Config
	listener net.Listener
}

// New returns a new instance of the estimator API server.
func New(cfg *config.Config, listener net.Listener) *Server {
	return &Server{
		cfg:      cfg,
		listener: listener,
	}
}

// NewRouter wires the API routes. Requests under APIPrefix, unmatched ones
// included, are written to the access log sink. Extra middlewares run first.
func NewRouter(
	h *handlers.ServiceHandler,
	sink accesslog.Sink,
	allowedOrigins []string,
	extra ...func(http.Handler) http.Handler,
) chi.Router {
	router := chi.NewRouter()

	router.Use(extra...)
	router.Use(
		cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"*"},
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         300,
		}),
		chiMiddleware.RequestID,
		middleware.RequestID,
		log.Logger(zap.L(), "http"),
	)

	// set before Route so the API subrouter inherits them
	router.NotFound(h.NotFound)
	router.MethodNotAllowed(h.MethodNotAllowed)

	router.With(chiMiddleware.Recoverer).Get(log.HealthPath, h.Health)

	router.Route(APIPrefix, func(r chi.Router) {
		r.Use(
			middleware.AccessLog(sink),
			chiMiddleware.Recoverer,
		)

		r.Get("/", h.Welcome)
		r.Post("/", h.Estimate)
		r.Post("/json", h.EstimateJSON)
		r.Post("/xml", h.EstimateXML)
		r.Get("/logs", h.Logs)
		r.Post("/logs", h.Logs)
		r.Get("/openapi.json", h.OpenAPI)
	})

	return router
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")
	swagger, err := api.GetSwagger()
	if err != nil {
		return fmt.Errorf("failed to load swagger spec: %w", err)
	}

	sink := accesslog.NewFileSink(s.cfg.AccessLog.Path)
	go accesslog.NewSizeMonitor(sink, s.cfg.AccessLog.MonitorInterval, metrics.UpdateAccessLogSizeMetric).Run(ctx)

	h := handlers.NewServiceHandler(
		service.NewEstimationService(),
		service.NewAccessLogService(sink),
		swagger,
	)

	metricMiddleware := metrics.NewMiddleware("api_server")
	metricMiddleware.MustRegisterDefault()

	router := NewRouter(h, sink, s.cfg.Service.CorsAllowedOrigins, metricMiddleware.Handler)
	srv := http.Server{Addr: s.cfg.Service.Address, Handler: router}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infow("Listening", "address", s.listener.Addr().String(), "access_log", sink.Path())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
