package webhost

import (
	"context"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"vidgram/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server hosts the built front-end assets and proxies /api to the backend
// so the browser talks to a single origin in development.
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	logger *zap.SugaredLogger
}

// HealthChecker reports readiness of a dependency.
type HealthChecker func(ctx context.Context) error

// NewServer builds the router: middleware, health endpoints, the /api
// reverse proxy and the SPA fallback for everything else.
func NewServer(cfg *config.Config, logger *zap.SugaredLogger, ready HealthChecker) (*Server, error) {
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(NewRequestLogMiddleware(logger))
	router.Use(NewRateLimitMiddleware(cfg))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/ready", func(c *gin.Context) {
		if ready != nil {
			if err := ready(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status": "not ready",
					"error":  err.Error(),
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if cfg.Monitoring.PrometheusEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	proxy, err := newAPIProxy(cfg.Backend.URL, logger)
	if err != nil {
		return nil, err
	}
	router.Any("/api/*proxyPath", gin.WrapH(proxy))

	router.NoRoute(spaHandler(cfg.Server.StaticDir))

	return &Server{
		router: router,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Handler returns the HTTP handler for use with an http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// newAPIProxy builds a reverse proxy that strips the /api prefix and
// forwards to the backend.
func newAPIProxy(backendURL string, logger *zap.SugaredLogger) (*httputil.ReverseProxy, error) {
	target, err := url.Parse(backendURL)
	if err != nil {
		return nil, err
	}

	proxy := httputil.NewSingleHostReverseProxy(target)

	director := proxy.Director
	proxy.Director = func(req *http.Request) {
		director(req)
		req.URL.Path = strings.TrimPrefix(req.URL.Path, "/api")
		if req.URL.Path == "" {
			req.URL.Path = "/"
		}
		req.Host = target.Host
	}
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Warnw("backend proxy error", "path", r.URL.Path, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"backend unavailable"}`))
	}

	return proxy, nil
}

// spaHandler serves static assets and falls back to index.html for
// client-routed paths.
func spaHandler(staticDir string) gin.HandlerFunc {
	index := filepath.Join(staticDir, "index.html")

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}
		c.File(index)
	}
}
