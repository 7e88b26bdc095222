package routes

import (
	"log"
	_ "grafica_xpto/docs" // This will be auto-generated
	"grafica_xpto/internal/adapter/http/handlers"
	repository2 "grafica_xpto/internal/adapter/persistence/repository"
	"grafica_xpto/internal/infrastructure/database"
	"grafica_xpto/internal/infrastructure/orders"
	"grafica_xpto/internal/usecase"
	"grafica_xpto/internal/usecase/interfaces"
	"os"
	"strconv"

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

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	sessionRepo := repository2.NewSessionDynamoRepository(ddb)
	runRepo := repository2.NewConversionRunDynamoRepository(ddb)

	sessionUseCase := usecase.NewSessionUseCase(sessionRepo, quoteRepo)

	var orderGateway interfaces.IOrderGateway
	gw, err := orders.NewOrderServiceGateway(os.Getenv("ORDER_SERVICE_BASE_URL"), os.Getenv("ORDER_SERVICE_TOKEN"))
	if err != nil {
		log.Printf("Order service gateway not configured: %v", err)
	} else {
		orderGateway = gw
	}

	conversionUseCase := usecase.NewConversionUseCase(sessionRepo, quoteRepo, runRepo, orderGateway)

	sessionHandler := handlers.NewSessionHandler(sessionUseCase)
	conversionHandler := handlers.NewConversionHandler(conversionUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addConversionRoutes(v1, sessionHandler, conversionHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
