package routes

import (
	"oficina_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
	PathView   = "/view"
)

func addServiceOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.ServiceOrderHandler, viewHandler *handlers.PublicViewHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateServiceOrder)
		orders.GET("", orderHandler.ListServiceOrders)
		orders.GET("/:id", orderHandler.GetServiceOrder)
		orders.PATCH("/:id", orderHandler.UpdateServiceOrder)
		orders.PATCH("/:id/status", orderHandler.ChangeStatus)
		orders.POST("/:id/payments", orderHandler.RecordPayment)
	}

	// Link compartilhado com o cliente, sem autenticacao.
	view := rg.Group(PathView)
	{
		view.GET("/:id", viewHandler.GetOrderView)
	}
}
