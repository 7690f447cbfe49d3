package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"

	"github.com/dealernet/garage-backend/internal/events"
	"github.com/dealernet/garage-backend/internal/logger"
	"github.com/dealernet/garage-backend/internal/utils"
)

// eco-listener consumes vehicle creation events and highlights the
// eco-friendly ones (electric and hybrid vehicles).
func main() {
	_ = godotenv.Load()

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

	if !utils.GetEnvAsBool("KAFKA_ENABLED", false, log) {
		log.Info("Messaging disabled, nothing to consume")
		return
	}

	brokers := strings.Split(utils.GetEnv("KAFKA_BROKERS", "localhost:9092", log), ",")
	topic := utils.GetEnv("KAFKA_TOPIC_VEHICLE_CREATED", "vehicle-created-topic", log)
	groupID := utils.GetEnv("KAFKA_GROUP_ID", "garage-network-group", log)

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   topic,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Listening for vehicle creation events", "topic", topic, "group", groupID)
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("Shutting down")
				return
			}
			log.Error("Failed to read message", "error", err)
			continue
		}

		var event events.VehicleCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("Could not decode vehicle creation event",
				"partition", msg.Partition, "offset", msg.Offset, "error", err)
			continue
		}

		log.Info("Vehicle created",
			"vehicle_id", event.VehicleID,
			"brand", event.Brand,
			"model", event.Model,
			"manufacturing_year", event.ManufacturingYear,
			"fuel_type", event.FuelType,
			"garage_id", event.GarageID,
			"garage_name", event.GarageName,
			"partition", msg.Partition,
			"offset", msg.Offset,
		)
		if event.FuelType.IsEcoFriendly() {
			log.Info("Eco-friendly vehicle registered",
				"vehicle_id", event.VehicleID, "fuel_type", event.FuelType)
		}
	}
}
