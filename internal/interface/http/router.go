package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yanqian/faq-service/internal/domain/auth"
	"github.com/yanqian/faq-service/internal/infra/config"
)

const serviceName = "faq-service"

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, authSvc auth.Service) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	if cfg.Tracing.Enabled {
		router.Use(otelgin.Middleware(serviceName))
	}
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		metricsMiddleware(),
		corsMiddleware(cfg.HTTP.CORSOrigins),
	)
	if cfg.HTTP.Gzip {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))
	}
	router.Use(errorHandlingMiddleware(handler.logger))

	router.NoRoute(func(c *gin.Context) {
		abortWithError(c, NewHTTPError(http.StatusNotFound, "not_found", "route not found", nil))
	})
	router.NoMethod(func(c *gin.Context) {
		abortWithError(c, NewHTTPError(http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", nil))
	})

	router.GET("/healthz", handler.Health)
	if cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router.POST("/signup", handler.Signup)
	router.POST("/login", handler.Login)

	api := router.Group("/api")
	{
		api.GET("/faqs", handler.ListFAQs)
		api.GET("/languages", handler.Languages)

		protected := api.Group("")
		protected.Use(authMiddleware(authSvc))
		protected.POST("/faqs", handler.CreateFAQ)
		protected.DELETE("/faqs/:id", handler.DeleteFAQ)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

// corsMiddleware allows any origin when none are configured.
func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
