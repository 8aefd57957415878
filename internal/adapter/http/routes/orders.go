package routes

import (
	"evosystem/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.POST("", orderHandler.CreateOrder)
		orders.PUT("/:id/assign", orderHandler.AssignOrder)
		orders.PUT("/:id/finalize", orderHandler.FinalizeOrder)
		orders.POST("/:id/annotate", orderHandler.AnnotateOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
	}
}

func addAuthRoutes(rg *gin.RouterGroup, userHandler *handlers.UserHandler) {
	rg.POST("/login", userHandler.Login)
	rg.POST("/register", userHandler.Register)
	rg.GET("/users", userHandler.ListUsers)
}
