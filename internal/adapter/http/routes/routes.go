package routes

import (
	"log"
	"os"
	"strconv"

	_ "construtora_api/docs"
	"construtora_api/internal/adapter/http/handlers"
	"construtora_api/internal/adapter/persistence/repository"
	"construtora_api/internal/infrastructure/database"
	"construtora_api/internal/infrastructure/payments"
	"construtora_api/internal/usecase"
	"construtora_api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	workRepo := repository.NewWorkDynamoRepository(ddb)
	clientRepo := repository.NewClientDynamoRepository(ddb)
	teamMemberRepo := repository.NewTeamMemberDynamoRepository(ddb)
	transactionRepo := repository.NewTransactionDynamoRepository(ddb)
	presetRepo := repository.NewBudgetPresetDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	workUseCase := usecase.NewWorkUseCase(workRepo, clientRepo, presetRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo)
	teamMemberUseCase := usecase.NewTeamMemberUseCase(teamMemberRepo)
	transactionUseCase := usecase.NewTransactionUseCase(transactionRepo)
	presetUseCase := usecase.NewBudgetPresetUseCase(presetRepo)
	workPaymentUseCase := usecase.NewWorkPaymentUseCase(transactionRepo, workRepo, presetRepo, paymentGateway)

	workHandler := handlers.NewWorkHandler(workUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	teamMemberHandler := handlers.NewTeamMemberHandler(teamMemberUseCase)
	transactionHandler := handlers.NewTransactionHandler(transactionUseCase, workPaymentUseCase)
	presetHandler := handlers.NewBudgetPresetHandler(presetUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkRoutes(v1, workHandler)
	addClientRoutes(v1, clientHandler)
	addTeamRoutes(v1, teamMemberHandler)
	addFinanceRoutes(v1, transactionHandler)
	addBudgetPresetRoutes(v1, presetHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
