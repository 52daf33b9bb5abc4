package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "limpeza_xpto/docs"
	"limpeza_xpto/internal/infrastructure/config"
	"limpeza_xpto/pkg/logger"
	"limpeza_xpto/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Server is the HTTP API plus the reconcile worker that drains the outbox.
type Server struct {
	cfg    config.Config
	log    logger.Logger
	router *gin.Engine
	deps   *dependencies
}

func NewServer(ctx context.Context, cfg config.Config, log logger.Logger) (*Server, error) {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(cfg.MetricsNamespace, reg)

	deps, err := buildDependencies(ctx, cfg, log, m)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBookingRoutes(v1, deps)

	return &Server{cfg: cfg, log: log, router: router, deps: deps}, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves HTTP and runs the reconcile worker until ctx is cancelled, then
// shuts both down and releases the store and broker connections.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.deps.worker.Run(gctx, s.deps.replayer)
		return nil
	})
	g.Go(func() error {
		s.log.Info("[routes] http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		s.log.Info("[routes] shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	if closeErr := s.deps.close(); closeErr != nil {
		s.log.Warn("[routes] closing dependencies failed", "error", closeErr)
	}
	return err
}

func setMiddlewares(router *gin.Engine, log logger.Logger) {
	router.Use(requestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("[routes] recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("[routes] request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		)
	}
}
