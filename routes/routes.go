package routes

import (
	"cart-gateway/controllers"
	"cart-gateway/libs"
	"cart-gateway/middleware"
	"cart-gateway/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, carts *services.CartService, notifier *services.Notifier, upstream *libs.UpstreamClient) {
	cartCtrl := &controllers.CartController{Carts: carts}
	authCtrl := &controllers.AuthController{Upstream: upstream, Carts: carts}
	catalogCtrl := &controllers.CatalogController{Catalog: upstream}
	eventsCtrl := &controllers.CartEventsController{Notifier: notifier}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	router.GET("/cart/events", eventsCtrl.CartEvents)

	api := router.Group("/")
	api.Use(middleware.GuestSessionMiddleware(), middleware.OptionalAuthMiddleware())
	{
		api.POST("/auth/login", authCtrl.Login)
		api.POST("/auth/logout", authCtrl.Logout)

		api.GET("/products/:id", catalogCtrl.GetProductByID)

		api.GET("/cart", cartCtrl.GetCart)
		api.GET("/cart/count", cartCtrl.GetCartCount)
		api.POST("/cart/add", cartCtrl.AddToCart)
		api.PUT("/cart/items/:id", cartCtrl.UpdateCartItem)
		api.DELETE("/cart/:id", cartCtrl.RemoveCartItem)
		api.DELETE("/cart", cartCtrl.ClearCart)
	}

	merge := router.Group("/cart")
	merge.Use(middleware.GuestSessionMiddleware(), middleware.AuthMiddleware())
	{
		merge.POST("/merge", cartCtrl.MergeCart)
	}
}
