package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/sirupsen/logrus"

	"github.com/fleetops/fleet-management/internal/config"
	"github.com/fleetops/fleet-management/internal/db"
)

// OdometerTopic is the subscription filter for vehicle odometer readings.
// The wildcard segment carries the vehicle id.
const OdometerTopic = "fleet/+/odometer"

// OdometerReading is the payload published by on-vehicle units.
type OdometerReading struct {
	VehicleID  string    `json:"vehicle_id"`
	Mileage    float64   `json:"mileage"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Ingestor subscribes to odometer readings and keeps vehicle mileage current.
// Readings lower than the stored odometer are ignored, so late or replayed
// messages never roll a vehicle backwards.
type Ingestor struct {
	client   mqtt.Client
	vehicles db.VehicleCollection
	log      *logrus.Logger
}

// NewIngestor connects to the broker named in cfg. It returns nil without
// error when no broker is configured, leaving the API fully functional on
// REST updates alone.
func NewIngestor(cfg *config.Config, vehicles db.VehicleCollection, log *logrus.Logger) (*Ingestor, error) {
	if cfg.MQTTBroker == "" {
		return nil, nil
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connecting to MQTT broker %s: %w", cfg.MQTTBroker, token.Error())
	}

	return &Ingestor{client: client, vehicles: vehicles, log: log}, nil
}

// Start subscribes to the odometer topic. Messages are handled on paho's
// worker goroutines; each handler gets a bounded context.
func (i *Ingestor) Start() error {
	token := i.client.Subscribe(OdometerTopic, 1, i.handleOdometer)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribing to %s: %w", OdometerTopic, token.Error())
	}
	i.log.WithField("topic", OdometerTopic).Info("Telemetry ingest started")
	return nil
}

// Stop disconnects from the broker, allowing in-flight messages to finish.
func (i *Ingestor) Stop() {
	i.client.Disconnect(250)
}

func (i *Ingestor) handleOdometer(_ mqtt.Client, msg mqtt.Message) {
	var reading OdometerReading
	if err := json.Unmarshal(msg.Payload(), &reading); err != nil {
		i.log.WithError(err).WithField("topic", msg.Topic()).Warn("Dropping malformed odometer payload")
		return
	}
	if reading.VehicleID == "" || reading.Mileage < 0 {
		i.log.WithField("topic", msg.Topic()).Warn("Dropping odometer reading with missing vehicle or negative mileage")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	raised, err := i.vehicles.RaiseVehicleMileage(ctx, reading.VehicleID, reading.Mileage)
	if err != nil {
		i.log.WithError(err).WithField("vehicleId", reading.VehicleID).Error("Failed to apply odometer reading")
		return
	}
	if !raised {
		i.log.WithFields(logrus.Fields{
			"vehicleId": reading.VehicleID,
			"mileage":   reading.Mileage,
		}).Debug("Odometer reading not applied (stale or unknown vehicle)")
		return
	}
	i.log.WithFields(logrus.Fields{
		"vehicleId": reading.VehicleID,
		"mileage":   reading.Mileage,
	}).Info("Vehicle mileage updated from telemetry")
}
