package main

import (
	"log"

	"cart-gateway/config"
	_ "cart-gateway/docs"
	"cart-gateway/libs"
	"cart-gateway/middleware"
	"cart-gateway/repositories"
	"cart-gateway/routes"
	"cart-gateway/services"

	"github.com/gin-gonic/gin"
)

// @title Cart Gateway API
// @description Storefront cart gateway: uniform cart operations for guest and authenticated shoppers, with guest cart merge on login.
// @version 1.0
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	var store repositories.CartStore
	if client := config.InitRedis(); client != nil {
		store = repositories.NewRedisStore(client, config.AppConfig.GuestCartTTL)
		defer client.Close()
	} else {
		store = repositories.NewMemoryStore()
	}

	upstream := libs.NewUpstreamClient(config.AppConfig.UpstreamBaseURL)
	guestCarts := repositories.NewGuestCartRepository(store)
	notifier := services.NewNotifier()
	carts := services.NewCartService(guestCarts, upstream, upstream, notifier)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, carts, notifier, upstream)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
