package routes

import (
	"github.com/gin-gonic/gin"

	healthhandlers "github.com/j-kappa/ticketing-system/internal/interfaces/http/handlers/health"
	statshandlers "github.com/j-kappa/ticketing-system/internal/interfaces/http/handlers/stats"
)

type StatsRouteConfig struct {
	StatsHandler  *statshandlers.StatsHandler
	HealthHandler *healthhandlers.HealthHandler
}

func SetupStatsRoutes(engine *gin.Engine, config *StatsRouteConfig) {
	engine.GET("/stats", config.StatsHandler.GetStats)
	engine.GET("/health", config.HealthHandler.Check)
}
