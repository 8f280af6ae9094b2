package main

import (
	"log"

	"framekart-io/api/catalog"
	"framekart-io/api/configs"
	"framekart-io/api/routes"
	"framekart-io/api/services"
)

func main() {
	rdb := configs.InitRedis()

	store := catalog.NewStore()
	carts := services.NewCartService()
	sessions := services.NewRedisSessionStore(rdb, configs.SessionTTL())
	auth := services.NewAuthService(services.NewMemoryDirectory(), sessions, services.AuthLatencyFromEnv())

	router := routes.InitRoute(store, carts, auth, rdb)
	if err := router.Run(":" + configs.LoadEnvOr("PORT", "8080")); err != nil {
		log.Fatal(err)
	}
}
