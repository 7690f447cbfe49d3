package events

import (
	"context"
	"time"

	"github.com/dealernet/garage-backend/internal/logger"
	"github.com/dealernet/garage-backend/internal/types"
)

// VehicleCreatedEvent is the record published when a vehicle is added
// to a garage.
type VehicleCreatedEvent struct {
	VehicleID         uint           `json:"vehicleId"`
	Brand             string         `json:"brand"`
	Model             string         `json:"model"`
	ManufacturingYear int            `json:"manufacturingYear"`
	FuelType          types.FuelType `json:"fuelType"`
	GarageID          *uint          `json:"garageId"`
	GarageName        string         `json:"garageName"`
	CreatedAt         time.Time      `json:"createdAt"`
}

func NewVehicleCreatedEvent(vehicle *types.Vehicle, garageName string) VehicleCreatedEvent {
	return VehicleCreatedEvent{
		VehicleID:         vehicle.ID,
		Brand:             vehicle.Brand,
		Model:             vehicle.Model,
		ManufacturingYear: vehicle.ManufacturingYear,
		FuelType:          vehicle.FuelType,
		GarageID:          vehicle.GarageID,
		GarageName:        garageName,
		CreatedAt:         time.Now(),
	}
}

// VehicleNotifier publishes creation notifications. Implementations are
// fire-and-forget: the outcome is logged and never returned, so vehicle
// creation cannot fail or block on the notifier.
type VehicleNotifier interface {
	NotifyVehicleCreated(ctx context.Context, event VehicleCreatedEvent)
}

// NoopNotifier is installed when messaging is disabled (the default).
type NoopNotifier struct {
	log *logger.Logger
}

func NewNoopNotifier(baseLog *logger.Logger) *NoopNotifier {
	return &NoopNotifier{log: baseLog.With("service", "NoopNotifier")}
}

func (n *NoopNotifier) NotifyVehicleCreated(ctx context.Context, event VehicleCreatedEvent) {
	n.log.Info("Messaging disabled, vehicle creation event not published",
		"vehicle_id", event.VehicleID, "brand", event.Brand, "model", event.Model)
}
