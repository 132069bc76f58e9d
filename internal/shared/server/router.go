package server

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"planner-backend/internal/plans"
	"planner-backend/internal/shared/config"
	"planner-backend/internal/shared/metrics"
	"planner-backend/internal/shared/server/middleware"
	"planner-backend/internal/shared/server/respond"
	"planner-backend/internal/shared/storage/db"
)

const (
	rateLimitDefaultGroup    = "DEFAULT"
	rateLimitPlanCreateGroup = "PLAN_CREATE"
	healthCheckTimeout       = 2 * time.Second
)

// RouterDeps carries the handlers and resources the router exposes.
type RouterDeps struct {
	Config       config.Config
	PlansHandler *plans.Handler
	DB           *sql.DB
	Limiter      *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env != "dev" && deps.Config.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(rateLimitConfig(deps)),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", healthHandler(deps.DB))
	registerMeRoutes(api)
	if deps.PlansHandler != nil {
		deps.PlansHandler.RegisterRoutes(api)
	}

	return r
}

func rateLimitConfig(deps RouterDeps) middleware.RateLimitConfig {
	perMinute := deps.Config.PlansPerMinute
	rules := map[string]middleware.RateLimitRule{}
	if perMinute > 0 {
		rules[rateLimitPlanCreateGroup] = middleware.RateLimitRule{
			Rate:  float64(perMinute) / 60.0,
			Burst: perMinute,
		}
	}
	return middleware.RateLimitConfig{
		Rules:        rules,
		DefaultGroup: rateLimitDefaultGroup,
		Limiter:      deps.Limiter,
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/plans" {
				return rateLimitPlanCreateGroup
			}
			return rateLimitDefaultGroup
		},
	}
}

func healthHandler(database *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := db.Check(c.Request.Context(), database, healthCheckTimeout)
		switch {
		case errors.Is(err, db.ErrNotConfigured):
			respond.OK(c, gin.H{"ok": true, "database": "memory"})
		case err != nil:
			respond.JSON(c, http.StatusServiceUnavailable, gin.H{"ok": false, "database": "unreachable"})
		default:
			respond.OK(c, gin.H{"ok": true, "database": "ok"})
		}
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
