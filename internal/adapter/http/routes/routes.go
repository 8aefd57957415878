package routes

import (
	"log"
	"os"
	"strconv"

	_ "evosystem/docs" // This will be auto-generated
	"evosystem/internal/adapter/http/handlers"
	"evosystem/internal/adapter/persistence/repository"
	"evosystem/internal/infrastructure/database"
	"evosystem/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
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

	orderRepo := repository.NewOrderDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)

	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		database.SeedDemoData(orderUseCase, userUseCase)
	}

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)

	// Rotas publicas
	api := router.Group("/api")
	addPingRoutes(api)
	addOrderRoutes(api, orderHandler)
	addAuthRoutes(api, userHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// requestID tags every request so log lines from one call can be correlated.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}
