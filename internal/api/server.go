package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"feeTierScope/internal/depth"
	"feeTierScope/internal/metrics"
	"feeTierScope/internal/model"
	"feeTierScope/internal/recommend"
	"feeTierScope/internal/source"
)

// Resolver fetches fee-tier records for a pair.
type Resolver interface {
	Resolve(ctx context.Context, pair model.TokenPair) source.Result
}

// DepthService loads the liquidity-depth view of a pool.
type DepthService interface {
	Depth(ctx context.Context, pair model.TokenPair, tier *model.FeeTier) depth.Result
}

// Server exposes the engine over HTTP.
type Server struct {
	listen   string
	resolver Resolver
	depth    DepthService
	logger   *zap.Logger
	router   *gin.Engine
}

func NewServer(listen string, resolver Resolver, depthSvc DepthService, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		listen:   listen,
		resolver: resolver,
		depth:    depthSvc,
		logger:   logger,
		router:   gin.New(),
	}
	s.router.Use(gin.Recovery(), s.logRequests())
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/v1")
	v1.GET("/fee-tiers", s.handleFeeTiers)
	v1.GET("/depth", s.handleDepth)
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.listen,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api listening", zap.String("listen", s.listen))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

type pairQuery struct {
	Token0 string `form:"token0"`
	Token1 string `form:"token1"`
	Fee    string `form:"fee"`
}

func (s *Server) handleFeeTiers(c *gin.Context) {
	var q pairQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair := model.NewTokenPair(q.Token0, q.Token1)
	report := recommend.Evaluate(pair, s.resolver.Resolve(c.Request.Context(), pair))

	fee := "none"
	if report.Recommended != nil {
		fee = report.Recommended.String()
	}
	if report.Status == source.StatusSucceeded {
		metrics.Recommendations.WithLabelValues(fee).Inc()
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleDepth(c *gin.Context) {
	var q pairQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var tier *model.FeeTier
	if q.Fee != "" {
		parsed, err := model.ParseFeeTier(q.Fee)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		tier = &parsed
	}

	res := s.depth.Depth(c.Request.Context(), model.NewTokenPair(q.Token0, q.Token1), tier)
	c.JSON(http.StatusOK, res)
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
