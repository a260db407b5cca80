package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/fleetops/fleet-management/internal/telemetry"
)

// odometerState tracks one simulated vehicle between ticks.
type odometerState struct {
	VehicleID string
	Mileage   float64
}

func (s *odometerState) advance(tick time.Duration) {
	// 30-90 km/h converted to distance over the tick
	speedKmh := 30 + rand.Float64()*60
	s.Mileage += speedKmh * tick.Hours()
}

func (s *odometerState) reading() telemetry.OdometerReading {
	return telemetry.OdometerReading{
		VehicleID:  s.VehicleID,
		Mileage:    s.Mileage,
		RecordedAt: time.Now().UTC(),
	}
}

func publish(client mqtt.Client, reading telemetry.OdometerReading) {
	payload, err := json.Marshal(reading)
	if err != nil {
		log.WithError(err).Error("Failed to marshal odometer reading")
		return
	}
	topic := fmt.Sprintf("fleet/%s/odometer", reading.VehicleID)
	token := client.Publish(topic, 1, false, payload)
	if token.Wait() && token.Error() != nil {
		log.WithError(token.Error()).WithField("topic", topic).Error("Failed to publish reading")
		return
	}
	log.WithFields(log.Fields{
		"vehicle_id": reading.VehicleID,
		"mileage":    reading.Mileage,
	}).Info("Published odometer reading")
}

func main() {
	broker := os.Getenv("MQTT_BROKER")
	if broker == "" {
		broker = "tcp://localhost:1883"
	}

	// Comma-separated vehicle ids to simulate; these must match documents
	// already present in the vehicles collection.
	rawIDs := os.Getenv("SIM_VEHICLE_IDS")
	if rawIDs == "" {
		log.Fatal("SIM_VEHICLE_IDS is required (comma-separated vehicle ids)")
	}

	interval := 5 * time.Second
	if v := os.Getenv("SIM_TICK_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			interval = time.Duration(n) * time.Second
		}
	}

	startMileage := 10000.0
	if v := os.Getenv("SIM_START_MILEAGE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			startMileage = f
		}
	}

	states := make([]*odometerState, 0)
	for _, id := range strings.Split(rawIDs, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		states = append(states, &odometerState{
			VehicleID: id,
			Mileage:   startMileage + rand.Float64()*5000,
		})
	}
	if len(states) == 0 {
		log.Fatal("No vehicle ids to simulate")
	}

	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(fmt.Sprintf("fleet-simulator-%d", os.Getpid())).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.WithError(token.Error()).Fatal("Failed to connect to MQTT broker")
	}
	defer client.Disconnect(250)

	log.WithFields(log.Fields{
		"broker":   broker,
		"vehicles": len(states),
		"interval": interval,
	}).Info("Starting odometer simulation")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			for _, s := range states {
				s.advance(interval)
				publish(client, s.reading())
			}
		case <-quit:
			log.Info("Simulator stopping")
			return
		}
	}
}
