package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaintenanceStatus is the lifecycle state of a maintenance record.
type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "Scheduled"
	MaintenanceInProgress MaintenanceStatus = "InProgress"
	MaintenanceCompleted  MaintenanceStatus = "Completed"
	MaintenanceCancelled  MaintenanceStatus = "Cancelled"
)

// MaintenanceRecord represents a scheduled or performed service on a vehicle.
type MaintenanceRecord struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID        string             `bson:"vehicle_id" json:"vehicleId"`
	Type             string             `bson:"type" json:"type"`
	ScheduledDate    time.Time          `bson:"scheduled_date" json:"scheduledDate"`
	CompletionDate   *time.Time         `bson:"completion_date,omitempty" json:"completionDate,omitempty"`
	Cost             float64            `bson:"cost" json:"cost"`
	MechanicNotes    string             `bson:"mechanic_notes" json:"mechanicNotes"`
	PartUsedID       string             `bson:"part_used_id,omitempty" json:"partUsedId,omitempty"`
	Status           MaintenanceStatus  `bson:"status" json:"status"`
	MileageAtService float64            `bson:"mileage_at_service" json:"mileageAtService"`
	CreatedAt        time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updatedAt"`
}

// CreateMaintenanceRequest schedules a service. Status is forced to Scheduled.
type CreateMaintenanceRequest struct {
	VehicleID        string    `json:"vehicleId"`
	Type             string    `json:"type"`
	ScheduledDate    time.Time `json:"scheduledDate"`
	Cost             float64   `json:"cost"`
	MechanicNotes    string    `json:"mechanicNotes"`
	PartUsedID       string    `json:"partUsedId"`
	MileageAtService float64   `json:"mileageAtService"`
}

// UpdateMaintenanceRequest is a partial update: nil means leave the field alone.
type UpdateMaintenanceRequest struct {
	Type             *string            `json:"type"`
	ScheduledDate    *time.Time         `json:"scheduledDate"`
	CompletionDate   *time.Time         `json:"completionDate"`
	Cost             *float64           `json:"cost"`
	MechanicNotes    *string            `json:"mechanicNotes"`
	PartUsedID       *string            `json:"partUsedId"`
	Status           *MaintenanceStatus `json:"status"`
	MileageAtService *float64           `json:"mileageAtService"`
}

// MaintenanceAlertType distinguishes why a service alert fired.
type MaintenanceAlertType string

const (
	AlertMileage   MaintenanceAlertType = "Mileage"
	AlertTime      MaintenanceAlertType = "Time"
	AlertNoHistory MaintenanceAlertType = "NoHistory"
)

// MaintenanceAlert is a derived, non-persisted service recommendation.
type MaintenanceAlert struct {
	VehicleID        string               `json:"vehicleId"`
	VehicleName      string               `json:"vehicleName"`
	AlertType        MaintenanceAlertType `json:"alertType"`
	Message          string               `json:"message"`
	LastServiceDate  *time.Time           `json:"lastServiceDate,omitempty"`
	MileageSinceLast float64              `json:"mileageSinceLast"`
}
