package routes

import (
	"construtora_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathWorks = "/works"

func addWorkRoutes(rg *gin.RouterGroup, workHandler *handlers.WorkHandler) {
	works := rg.Group(PathWorks)
	{
		works.POST("", workHandler.CreateWork)
		works.GET("", workHandler.ListWorks)
		works.GET("/:id", workHandler.GetWork)
		works.PUT("/:id", workHandler.UpdateWork)
		works.DELETE("/:id", workHandler.DeleteWork)

		works.PATCH("/:id/checklist", workHandler.AddChecklistItem)
		works.PATCH("/:id/checklist/:item_id/toggle", workHandler.ToggleChecklistItem)
		works.DELETE("/:id/checklist/:item_id", workHandler.RemoveChecklistItem)

		// Sanitized client-portal views.
		works.GET("/public/by-client/:clientId", workHandler.PublicWorksByClient)
		works.GET("/:id/public", workHandler.PublicWorkDetail)
	}
}
