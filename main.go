package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/restaurantsys/backoffice/config"
	"github.com/restaurantsys/backoffice/database"
	"github.com/restaurantsys/backoffice/router"
	"github.com/restaurantsys/backoffice/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("could not connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("could not run migrations: %v", err)
	}

	r := router.SetupRouter(db, cfg)

	utils.InfoLogger.Printf("Back office listening on :%s (driver=%s)", cfg.Port, cfg.DBDriver)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatalf("server stopped: %v", err)
	}
}
