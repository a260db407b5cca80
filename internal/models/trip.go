package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trip represents a vehicle journey by a driver.
type Trip struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID      string             `bson:"vehicle_id" json:"vehicleId"`
	DriverID       string             `bson:"driver_id" json:"driverId"`
	StartTime      time.Time          `bson:"start_time" json:"startTime"`
	EndTime        *time.Time         `bson:"end_time,omitempty" json:"endTime,omitempty"`
	StartMileage   float64            `bson:"start_mileage" json:"startMileage"`
	EndMileage     *float64           `bson:"end_mileage,omitempty" json:"endMileage,omitempty"`
	FuelUsed       *float64           `bson:"fuel_used,omitempty" json:"fuelUsed,omitempty"`
	FuelEfficiency *float64           `bson:"fuel_efficiency,omitempty" json:"fuelEfficiency,omitempty"`
	Notes          string             `bson:"notes" json:"notes"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Ended reports whether the trip has been closed out.
func (t *Trip) Ended() bool {
	return t.EndTime != nil
}

// StartTripRequest starts a trip on an available vehicle.
type StartTripRequest struct {
	VehicleID    string  `json:"vehicleId"`
	StartMileage float64 `json:"startMileage"`
	Notes        string  `json:"notes"`
}

// EndTripRequest closes out a trip.
type EndTripRequest struct {
	EndMileage float64  `json:"endMileage"`
	FuelUsed   *float64 `json:"fuelUsed"`
	Notes      string   `json:"notes"`
}

// ComputeFuelEfficiency returns distance per unit of fuel, or nil when the
// fuel figure is absent or non-positive.
func ComputeFuelEfficiency(startMileage, endMileage float64, fuelUsed *float64) *float64 {
	if fuelUsed == nil || *fuelUsed <= 0 {
		return nil
	}
	eff := (endMileage - startMileage) / *fuelUsed
	return &eff
}
