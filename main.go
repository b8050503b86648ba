package main

import (
	"fmt"
	"log"
	"os"

	"carwash-backend/config"
	"carwash-backend/routes"
	"carwash-backend/services"
	"carwash-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}

func main() {
	rdb := config.ConnectStore()
	stores := storage.NewStores(storage.NewRedisKV(rdb))

	reminders := services.NewPickupReminderService(stores)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(stores)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
