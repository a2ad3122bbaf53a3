package router

import (
	"time"

	"dietplanner/internal/auth"
	"dietplanner/internal/catalog"
	"dietplanner/internal/logger"
	"dietplanner/internal/middleware"
	"dietplanner/internal/plan"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	Plans   *plan.Handler
	Catalog *catalog.Handler

	// JWTSecret turns on bearer-token auth for everything but /health.
	JWTSecret   []byte
	CORSOrigins []string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		logger.Middleware(),
		gin.Recovery(),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── PLANS ─────────────────────────
	plans := r.Group("")
	if d.JWTSecret != nil {
		plans.Use(
			middleware.AuthMiddleware(d.JWTSecret),
			middleware.RequireScope(auth.ScopePlan),
		)
	}
	{
		plans.POST("/plans", d.Plans.Create)
		plans.POST("/metrics", d.Plans.Metrics)
	}

	// ───────────────────────── CATALOG ─────────────────────────
	catalogGroup := r.Group("/catalog")
	if d.JWTSecret != nil {
		catalogGroup.Use(
			middleware.AuthMiddleware(d.JWTSecret),
			middleware.RequireScope(auth.ScopePlan, auth.ScopeReader),
		)
	}
	{
		catalogGroup.GET("", d.Catalog.List)
		catalogGroup.GET("/:slot", d.Catalog.GetSlot)
	}

	return r
}
