package shopserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiHandleFunctions groups the per-context HTTP handlers mounted by NewRouter.
type ApiHandleFunctions struct {
	OrderAPI   OrderAPI
	ProductAPI ProductAPI
	PlantAPI   PlantAPI
}

// NewRouter builds a gin engine with the shop routes mounted under /api/v1.
func NewRouter(handlers ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handlers)
}

// NewRouterWithGinEngine mounts the shop routes on a caller-provided engine.
func NewRouterWithGinEngine(router *gin.Engine, handlers ApiHandleFunctions) *gin.Engine {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	orders := v1.Group("/orders")
	orders.POST("", handlers.OrderAPI.CreateOrder)
	orders.GET("", handlers.OrderAPI.ListOrders)
	orders.GET("/:orderId", handlers.OrderAPI.GetOrderById)
	orders.PATCH("/:orderId/status", handlers.OrderAPI.UpdateOrderStatus)
	orders.DELETE("/:orderId", handlers.OrderAPI.DeleteOrder)

	products := v1.Group("/products")
	products.POST("", handlers.ProductAPI.AddProduct)
	products.GET("", handlers.ProductAPI.ListProducts)
	products.GET("/:productId", handlers.ProductAPI.GetProductById)
	products.PATCH("/:productId", handlers.ProductAPI.UpdateProduct)
	products.DELETE("/:productId", handlers.ProductAPI.DeleteProduct)

	plants := v1.Group("/plants")
	plants.POST("", handlers.PlantAPI.AddPlant)
	plants.GET("", handlers.PlantAPI.ListPlants)
	plants.GET("/:plantId", handlers.PlantAPI.GetPlantById)

	return router
}
