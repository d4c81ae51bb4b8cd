package routes

import (
	"construtora_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathTeam = "/team"

func addTeamRoutes(rg *gin.RouterGroup, teamMemberHandler *handlers.TeamMemberHandler) {
	team := rg.Group(PathTeam)
	{
		team.POST("", teamMemberHandler.CreateTeamMember)
		team.GET("", teamMemberHandler.ListTeamMembers)
		team.GET("/:id", teamMemberHandler.GetTeamMember)
		team.PUT("/:id", teamMemberHandler.UpdateTeamMember)
		team.DELETE("/:id", teamMemberHandler.DeleteTeamMember)
	}
}
