package routes

import (
	"construtora_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathFinance  = "/finance"
	PathPayments = "/finance/payments"
)

func addFinanceRoutes(rg *gin.RouterGroup, transactionHandler *handlers.TransactionHandler) {
	finance := rg.Group(PathFinance)
	{
		finance.POST("/transactions", transactionHandler.CreateTransaction)
		finance.GET("/transactions", transactionHandler.ListTransactions)
		finance.GET("/transactions/:id", transactionHandler.GetTransaction)
		finance.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
		finance.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:work_id", transactionHandler.ChargeWork)
		payments.GET("/:work_id", transactionHandler.GetPaymentsByWork)
	}
}
