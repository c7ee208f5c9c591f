package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/lure/sales-dashboard/internal/config"
	"github.com/lure/sales-dashboard/internal/http/handlers"
	"github.com/lure/sales-dashboard/internal/http/middleware"
	"github.com/lure/sales-dashboard/internal/period"
	"github.com/lure/sales-dashboard/internal/service"
	"github.com/lure/sales-dashboard/internal/telemetry"

	_ "github.com/lure/sales-dashboard/docs"
)

func Router(cfg config.Config, svc *service.DashboardService, periods *period.Resolver, metrics *telemetry.Metrics, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics(metrics))

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.AdminKeyHeader, middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	origins := cfg.CORSOrigins()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Service:    svc,
		Periods:    periods,
		Validator:  validator.New(),
		Logger:     logger,
		DataSource: cfg.DataSource,
		CacheTTL:   cfg.CacheTTL,
	}

	r.GET("/healthz", h.Healthz)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	api.Use(middleware.Timeout(cfg.RequestTimeout))
	{
		api.GET("/dashboard", h.Dashboard)
		api.GET("/dashboard/vendedores", h.Salespeople)
		api.GET("/dashboard/campanhas", h.Campaigns)
		api.GET("/dashboard/leads", h.Leads)
		api.GET("/dashboard/status", h.Statuses)
		api.GET("/dashboard/leaderboard", h.Leaderboard)
		api.GET("/dashboard/cache/status", h.CacheStatus)
		api.GET("/sales-data", h.SalesData)
		api.GET("/quips", h.Quips)
	}

	admin := api.Group("")
	admin.Use(middleware.AdminKey(cfg.AdminKey))
	{
		admin.POST("/dashboard/cache/clear", h.ClearCache)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
