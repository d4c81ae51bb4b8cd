package routes

import (
	"construtora_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathClients = "/clients"

func addClientRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)

		clients.POST("/:id/reset-password", clientHandler.ResetClientPassword)
	}
}
