package routes

import (
	"github.com/gin-gonic/gin"

	teamhandlers "github.com/j-kappa/ticketing-system/internal/interfaces/http/handlers/team"
)

type TeamRouteConfig struct {
	TeamHandler *teamhandlers.TeamHandler
}

func SetupTeamRoutes(engine *gin.Engine, config *TeamRouteConfig) {
	team := engine.Group("/team")
	{
		team.GET("", config.TeamHandler.ListMembers)
		team.POST("", config.TeamHandler.CreateMember)
		team.GET("/:id", config.TeamHandler.GetMember)
		team.PUT("/:id", config.TeamHandler.UpdateMember)
		team.DELETE("/:id", config.TeamHandler.DeleteMember)
	}
}
