package bootstrap

import (
	"strings"

	"github.com/gin-gonic/gin"

	"string-analyzer/internal/analyses"
	"string-analyzer/internal/records"
	"string-analyzer/internal/services/health"
	"string-analyzer/internal/shared/config"
	"string-analyzer/internal/shared/server"
	"string-analyzer/internal/shared/server/middleware"
	"string-analyzer/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	Repo            *records.MemoryRepo
	AnalysesService *analyses.Service
	AnalysisHandler *analyses.Handler
	HealthService   *health.Service
	RateLimiter     *middleware.RateLimiter
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	telemetry.Configure(telemetry.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	repo := records.NewMemoryRepo()
	svc := analyses.NewService(repo)

	app := &App{
		Config:          cfg,
		Repo:            repo,
		AnalysesService: svc,
		AnalysisHandler: analyses.NewHandler(svc),
		HealthService:   health.NewService(repo),
		RateLimiter:     middleware.NewRateLimiter(nil),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		AnalysisHandler: app.AnalysisHandler,
		Health:          app.HealthService,
		Limiter:         app.RateLimiter,
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":        cfg.Env,
		"rate_limit": cfg.RateLimitRPS,
	})
	return app, nil
}

// Close releases stored records and flushes logs.
func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Repo != nil {
		a.Repo.Reset()
	}
	telemetry.Sync()
}
