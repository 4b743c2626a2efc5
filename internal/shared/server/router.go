package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"string-analyzer/internal/analyses"
	"string-analyzer/internal/services/health"
	"string-analyzer/internal/shared/config"
	"string-analyzer/internal/shared/metrics"
	"string-analyzer/internal/shared/server/middleware"
	"string-analyzer/internal/shared/server/respond"
)

const rateLimitGroupQuery = "QUERY"

// RouterDeps holds handlers wired by bootstrap.
type RouterDeps struct {
	Config          config.Config
	AnalysisHandler *analyses.Handler
	Health          *health.Service
	Limiter         *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	// Texts are addressed by path segment, so escaped slashes must survive
	// routing and reach handlers decoded.
	r.UseRawPath = true
	r.UnescapePathValues = true

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				rateLimitGroupQuery: {Rate: deps.Config.RateLimitRPS, Burst: deps.Config.RateLimitBurst},
			},
			GroupFor: rateLimitGroup,
			Limiter:  deps.Limiter,
		}),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, deps.Health.Status(c.Request.Context()))
	})
	r.GET("/metrics", metrics.Handler())

	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(r)
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

	return r
}

// rateLimitGroup limits listing and lookup reads; writes and probes are not
// limited.
func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method != http.MethodGet {
		return ""
	}
	if strings.HasPrefix(c.Request.URL.Path, "/strings") {
		return rateLimitGroupQuery
	}
	return ""
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
