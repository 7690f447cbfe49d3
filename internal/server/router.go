package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dealernet/garage-backend/internal/handlers"
	"github.com/dealernet/garage-backend/internal/middleware"
)

type RouterConfig struct {
	GarageHandler    *handlers.GarageHandler
	VehicleHandler   *handlers.VehicleHandler
	AccessoryHandler *handlers.AccessoryHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	// Param names are uniform per resource (gin requires identical
	// wildcard names at the same path position).
	api := router.Group("/api")
	{
		// Garages
		api.POST("/garages", cfg.GarageHandler.Create)
		api.GET("/garages", cfg.GarageHandler.List)
		api.GET("/garages/search/by-fuel-type", cfg.GarageHandler.SearchByFuelType)
		api.GET("/garages/search/by-accessory", cfg.GarageHandler.SearchByAccessory)
		api.GET("/garages/search/by-name", cfg.GarageHandler.SearchByName)
		api.GET("/garages/search/by-model", cfg.GarageHandler.SearchByModel)
		api.GET("/garages/:garageId", cfg.GarageHandler.GetByID)
		api.PUT("/garages/:garageId", cfg.GarageHandler.Update)
		api.DELETE("/garages/:garageId", cfg.GarageHandler.Delete)

		// Vehicles
		api.POST("/garages/:garageId/vehicles", cfg.VehicleHandler.AddToGarage)
		api.GET("/garages/:garageId/vehicles", cfg.VehicleHandler.GetByGarage)
		api.GET("/vehicles/model/:model", cfg.VehicleHandler.GetByModel)
		api.PUT("/vehicles/:vehicleId", cfg.VehicleHandler.Update)
		api.DELETE("/vehicles/:vehicleId", cfg.VehicleHandler.Delete)
		api.PUT("/vehicles/:vehicleId/transfer/:garageId", cfg.VehicleHandler.Transfer)

		// Accessories
		api.POST("/vehicles/:vehicleId/accessories", cfg.AccessoryHandler.AddToVehicle)
		api.GET("/vehicles/:vehicleId/accessories", cfg.AccessoryHandler.GetByVehicle)
		api.PUT("/accessories/:id", cfg.AccessoryHandler.Update)
		api.DELETE("/accessories/:id", cfg.AccessoryHandler.Delete)
	}

	return router
}
