package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VehicleStatus is the lifecycle state of a fleet vehicle.
type VehicleStatus string

const (
	VehicleAvailable        VehicleStatus = "Available"
	VehicleInUse            VehicleStatus = "InUse"
	VehicleUnderMaintenance VehicleStatus = "UnderMaintenance"
	VehicleOutOfService     VehicleStatus = "OutOfService"
)

// Vehicle represents a fleet vehicle.
type Vehicle struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Make             string             `bson:"make" json:"make"`
	Model            string             `bson:"model" json:"model"`
	Year             int                `bson:"year" json:"year"`
	VIN              string             `bson:"vin" json:"vin"`
	LicensePlate     string             `bson:"license_plate" json:"licensePlate"`
	Color            string             `bson:"color" json:"color"`
	Status           VehicleStatus      `bson:"status" json:"status"`
	CurrentMileage   float64            `bson:"current_mileage" json:"currentMileage"`
	AssignedDriverID string             `bson:"assigned_driver_id,omitempty" json:"assignedDriverId,omitempty"`
	PurchaseDate     *time.Time         `bson:"purchase_date,omitempty" json:"purchaseDate,omitempty"`
	CreatedAt        time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updatedAt"`
}

// CreateVehicleRequest carries the fields accepted when registering a vehicle.
// Status is not accepted: new vehicles always start Available.
type CreateVehicleRequest struct {
	Make           string     `json:"make"`
	Model          string     `json:"model"`
	Year           int        `json:"year"`
	VIN            string     `json:"vin"`
	LicensePlate   string     `json:"licensePlate"`
	Color          string     `json:"color"`
	CurrentMileage float64    `json:"currentMileage"`
	PurchaseDate   *time.Time `json:"purchaseDate"`
}

// UpdateVehicleRequest is a partial update: nil means leave the field alone.
type UpdateVehicleRequest struct {
	Make           *string        `json:"make"`
	Model          *string        `json:"model"`
	Year           *int           `json:"year"`
	Color          *string        `json:"color"`
	Status         *VehicleStatus `json:"status"`
	CurrentMileage *float64       `json:"currentMileage"`
	PurchaseDate   *time.Time     `json:"purchaseDate"`
}

// IsValidVehicleStatus checks if a status is one of the known states.
func IsValidVehicleStatus(s VehicleStatus) bool {
	switch s {
	case VehicleAvailable, VehicleInUse, VehicleUnderMaintenance, VehicleOutOfService:
		return true
	default:
		return false
	}
}
