package routes

import (
	"oficina_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients  = "/clients"
	PathMachines = "/machines"
	PathParts    = "/parts"
)

func addRegistryRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler, machineHandler *handlers.MachineHandler, partHandler *handlers.PartHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
	}

	machines := rg.Group(PathMachines)
	{
		machines.POST("", machineHandler.CreateMachine)
		machines.GET("", machineHandler.ListMachines)
		machines.GET("/:id", machineHandler.GetMachine)
	}

	parts := rg.Group(PathParts)
	{
		parts.POST("", partHandler.CreatePart)
		parts.GET("", partHandler.ListParts)
		parts.GET("/:id", partHandler.GetPart)
	}
}
