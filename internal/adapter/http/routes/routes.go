package routes

import (
	"log"
	"os"
	"strconv"

	_ "oficina_xpto/docs" // This will be auto-generated
	"oficina_xpto/internal/adapter/http/handlers"
	"oficina_xpto/internal/adapter/persistence/memory"
	repository2 "oficina_xpto/internal/adapter/persistence/repository"
	"oficina_xpto/internal/infrastructure/database"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/internal/usecase/interfaces"

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
	clientRepo, machineRepo, partRepo, orderRepo := buildRepositories()

	clientUseCase := usecase.NewClientUseCase(clientRepo)
	machineUseCase := usecase.NewMachineUseCase(machineRepo)
	partUseCase := usecase.NewPartUseCase(partRepo)
	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, clientRepo, machineRepo, partRepo)
	viewUseCase := usecase.NewPublicViewUseCase(orderRepo, clientRepo, machineRepo)

	clientHandler := handlers.NewClientHandler(clientUseCase)
	machineHandler := handlers.NewMachineHandler(machineUseCase)
	partHandler := handlers.NewPartHandler(partUseCase)
	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	viewHandler := handlers.NewPublicViewHandler(viewUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRegistryRoutes(v1, clientHandler, machineHandler, partHandler)
	addServiceOrderRoutes(v1, orderHandler, viewHandler)
}

// buildRepositories picks the store backend from the STORE env var. The
// in-memory store keeps local runs and demos free of any DynamoDB setup;
// anything other than "memory" connects to DynamoDB.
func buildRepositories() (
	interfaces.IClientRepository,
	interfaces.IMachineRepository,
	interfaces.IPartRepository,
	interfaces.IServiceOrderRepository,
) {
	if os.Getenv("STORE") == "memory" {
		log.Printf("[routes] using in-memory store")
		return memory.NewClientRepository(),
			memory.NewMachineRepository(),
			memory.NewPartRepository(),
			memory.NewServiceOrderRepository()
	}

	ddb := database.ConnectDynamoDB()
	return repository2.NewClientDynamoRepository(ddb),
		repository2.NewMachineDynamoRepository(ddb),
		repository2.NewPartDynamoRepository(ddb),
		repository2.NewServiceOrderDynamoRepository(ddb)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
