package api

import (
	"net/http"
	"sync"

	"cart-gateway/config"
	"cart-gateway/libs"
	"cart-gateway/middleware"
	"cart-gateway/repositories"
	"cart-gateway/routes"
	"cart-gateway/services"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()

		var store repositories.CartStore
		if client := config.InitRedis(); client != nil {
			store = repositories.NewRedisStore(client, config.AppConfig.GuestCartTTL)
		} else {
			store = repositories.NewMemoryStore()
		}

		upstream := libs.NewUpstreamClient(config.AppConfig.UpstreamBaseURL)
		guestCarts := repositories.NewGuestCartRepository(store)
		notifier := services.NewNotifier()
		carts := services.NewCartService(guestCarts, upstream, upstream, notifier)

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, carts, notifier, upstream)
	})
}

// Handler is the serverless entrypoint.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
