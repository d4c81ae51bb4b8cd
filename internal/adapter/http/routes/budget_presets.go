package routes

import (
	"construtora_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathBudgetPresets = "/budget-presets"

func addBudgetPresetRoutes(rg *gin.RouterGroup, presetHandler *handlers.BudgetPresetHandler) {
	presets := rg.Group(PathBudgetPresets)
	{
		presets.POST("", presetHandler.CreateBudgetPreset)
		presets.GET("", presetHandler.ListBudgetPresets)
		presets.GET("/:id", presetHandler.GetBudgetPreset)
		presets.PUT("/:id", presetHandler.UpdateBudgetPreset)
		presets.DELETE("/:id", presetHandler.DeleteBudgetPreset)
	}
}
