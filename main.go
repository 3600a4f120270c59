package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"fugazero-backend/config"
	"fugazero-backend/models"
	"fugazero-backend/routes"
	"fugazero-backend/seed"
	"fugazero-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Client{},
		&models.Service{},
		&models.Job{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.CashTransaction{},
		&models.NotificationLog{},
	)
}

func main() {
	runSeed := flag.Bool("seed", false, "load roles, the admin user and the service catalog, then exit")
	flag.Parse()

	if *runSeed {
		if err := seed.Run(config.DB); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
		return
	}

	notifications := services.NewNotificationService(config.DB)
	notifications.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
