package events

import (
	"context"
	"encoding/json"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/dealernet/garage-backend/internal/logger"
	"github.com/dealernet/garage-backend/internal/utils"
)

const vehicleCreatedPartitions = 3

// messagePublisher is the slice of kafka.Writer the notifier uses.
type messagePublisher interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaNotifier publishes VehicleCreatedEvents to the configured topic,
// keyed by vehicle id. Sends run on a detached goroutine; completion is
// logged either way and never reaches the caller.
type KafkaNotifier struct {
	log       *logger.Logger
	publisher messagePublisher
	topic     string
}

func NewKafkaNotifier(baseLog *logger.Logger) (*KafkaNotifier, error) {
	notifierLog := baseLog.With("service", "KafkaNotifier")

	brokers := strings.Split(utils.GetEnv("KAFKA_BROKERS", "localhost:9092", baseLog), ",")
	topic := utils.GetEnv("KAFKA_TOPIC_VEHICLE_CREATED", "vehicle-created-topic", baseLog)

	if err := ensureTopic(brokers[0], topic); err != nil {
		// The broker may already have the topic or auto-create it.
		notifierLog.Warn("Could not ensure topic exists", "topic", topic, "error", err)
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}

	return &KafkaNotifier{
		log:       notifierLog,
		publisher: writer,
		topic:     topic,
	}, nil
}

func ensureTopic(broker, topic string) error {
	conn, err := kafka.Dial("tcp", broker)
	if err != nil {
		return err
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		return err
	}
	controllerConn, err := kafka.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return err
	}
	defer controllerConn.Close()

	return controllerConn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     vehicleCreatedPartitions,
		ReplicationFactor: 1,
	})
}

func (n *KafkaNotifier) NotifyVehicleCreated(ctx context.Context, event VehicleCreatedEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		n.log.Error("Could not serialize vehicle creation event", "vehicle_id", event.VehicleID, "error", err)
		return
	}

	// Detached from the request context: the HTTP response must not
	// wait on the broker.
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := n.publisher.WriteMessages(sendCtx, kafka.Message{
			Key:   []byte(strconv.FormatUint(uint64(event.VehicleID), 10)),
			Value: payload,
		})
		if err != nil {
			n.log.Error("Failed to publish vehicle creation event",
				"topic", n.topic, "vehicle_id", event.VehicleID, "error", err)
			return
		}
		n.log.Info("Vehicle creation event published",
			"topic", n.topic, "vehicle_id", event.VehicleID, "brand", event.Brand, "model", event.Model)
	}()
}
