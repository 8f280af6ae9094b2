package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"framekart-io/api/catalog"
	"framekart-io/api/controllers"
	"framekart-io/api/middleware"
	"framekart-io/api/services"
)

// InitRoute assembles the storefront router. A nil redis client skips the
// rate limiter, which tests and redis-less dev setups rely on.
func InitRoute(store *catalog.Store, carts *services.CartService, auth *services.AuthService, rdb *redis.Client) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CorsMiddleware())

	api := router.Group("/api")
	if rdb != nil {
		api.Use(middleware.FrameKartRateLimiter(rdb))
	}
	{
		api.GET("/products", controllers.GetProducts(store))
		api.GET("/products/meta/filters", controllers.GetFilterMetadata(store))
		api.GET("/products/:id", controllers.GetProduct(store))
		api.GET("/collections/:name", controllers.GetCollection(store))

		api.GET("/cart", controllers.GetCart(carts))
		api.POST("/cart/items", controllers.AddCartItem(store, carts))
		api.PUT("/cart/items/:productId", controllers.UpdateCartItem(carts))
		api.DELETE("/cart/items/:productId", controllers.RemoveCartItem(carts))
		api.DELETE("/cart", controllers.ClearCart(carts))

		api.POST("/auth/login", controllers.Login(auth))
		api.POST("/auth/signup", controllers.Signup(auth))

		api.POST("/tryon", controllers.TryOn(store))

		session := api.Group("", middleware.Auth())
		{
			session.POST("/auth/logout", controllers.Logout(auth))
			session.GET("/auth/me", controllers.Me(auth))
			session.PATCH("/users/me", controllers.UpdateMe(auth))
			session.POST("/users/me/avatar", controllers.UploadAvatar(auth))
		}
	}

	return router
}
