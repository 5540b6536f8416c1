package router

import (
	"net/http"

	"github.com/budgetplanner/backend/internal/config"
	"github.com/budgetplanner/backend/internal/controllers"
	"github.com/budgetplanner/backend/internal/controllers/healthz"
	"github.com/budgetplanner/backend/internal/controllers/root"
	versionController "github.com/budgetplanner/backend/internal/controllers/version"
	"github.com/budgetplanner/backend/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Version is set at build time, see Makefile.
var Version = "0.0.0"

// Config sets up the gin engine with all middlewares and the /metrics
// endpoint. The returned teardown function unregisters the Prometheus
// metrics and must always be called.
func Config(cfg *config.Config) (*gin.Engine, func(), error) {
	teardown := func() {
		if !unregisterPrometheusMetrics() {
			log.Error().Msg("could not unregister prometheus metrics")
		}
	}

	err := registerPrometheusMetrics()
	if err != nil {
		return nil, func() {}, err
	}

	httputil.UseJSONFieldNames()

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(cfg.BaseURL()))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "this HTTP method is not allowed for the endpoint you called"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "there is no endpoint at this path"})
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", cfg.CORSAllowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// We do not process any client IPs, so no proxy needs to be trusted
	_ = r.SetTrustedProxies([]string{})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	log.Debug().Str("API Base URL", cfg.APIURL).Str("Path", cfg.BaseURL().Path).Msg("Router")
	log.Info().Str("version", Version).Msg("Router")

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the group. The group is
// usually the one for the path of the API URL.
func AttachRoutes(cfg *config.Config, co controllers.Controller, p healthz.Pinger, group *gin.RouterGroup) {
	root.RegisterRoutes(group)
	versionController.RegisterRoutes(group.Group("/version"), Version)
	healthz.RegisterRoutes(group.Group("/healthz"), p)

	if cfg.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	co.RegisterRoutes(group)
}

// Group returns the router group for the path of the API URL.
func Group(r *gin.Engine, cfg *config.Config) *gin.RouterGroup {
	path := cfg.BaseURL().Path
	if path == "" {
		path = "/"
	}

	return r.Group(path)
}
