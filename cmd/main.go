package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/dealernet/garage-backend/internal/db"
	"github.com/dealernet/garage-backend/internal/events"
	"github.com/dealernet/garage-backend/internal/handlers"
	"github.com/dealernet/garage-backend/internal/logger"
	"github.com/dealernet/garage-backend/internal/repos"
	"github.com/dealernet/garage-backend/internal/server"
	"github.com/dealernet/garage-backend/internal/services"
	"github.com/dealernet/garage-backend/internal/utils"
)

func main() {
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	maxVehicles := utils.GetEnvAsInt("GARAGE_MAX_VEHICLES", services.DefaultMaxVehiclesPerGarage, log)
	kafkaEnabled := utils.GetEnvAsBool("KAFKA_ENABLED", false, log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	garageRepo := repos.NewGarageRepo(thePG, log)
	vehicleRepo := repos.NewVehicleRepo(thePG, log)
	accessoryRepo := repos.NewAccessoryRepo(thePG, log)

	// Notifier
	var notifier events.VehicleNotifier
	if kafkaEnabled {
		kafkaNotifier, err := events.NewKafkaNotifier(log)
		if err != nil {
			log.Error("Could not init KafkaNotifier", "error", err)
			os.Exit(1)
		}
		notifier = kafkaNotifier
	} else {
		log.Info("Vehicle notifications disabled, using noop notifier")
		notifier = events.NewNoopNotifier(log)
	}

	// Services
	log.Info("Setting up Services from main...")
	garageService := services.NewGarageService(thePG, log, garageRepo, vehicleRepo)
	vehicleService := services.NewVehicleService(thePG, log, vehicleRepo, garageRepo, notifier, maxVehicles)
	accessoryService := services.NewAccessoryService(thePG, log, accessoryRepo, vehicleRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	garageHandler := handlers.NewGarageHandler(log, garageService)
	vehicleHandler := handlers.NewVehicleHandler(log, vehicleService)
	accessoryHandler := handlers.NewAccessoryHandler(log, accessoryService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		GarageHandler:    garageHandler,
		VehicleHandler:   vehicleHandler,
		AccessoryHandler: accessoryHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Warn("Server failed", "error", err)
	}
}
