package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InspectionType is the kind of statutory or internal check.
type InspectionType string

const (
	InspectionMOT       InspectionType = "MOT"
	InspectionInsurance InspectionType = "Insurance"
	InspectionTax       InspectionType = "Tax"
	InspectionSafety    InspectionType = "Safety"
)

// Inspection represents a compliance check due on a vehicle.
type Inspection struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID      string             `bson:"vehicle_id" json:"vehicleId"`
	Type           InspectionType     `bson:"type" json:"type"`
	DueDate        time.Time          `bson:"due_date" json:"dueDate"`
	CompletionDate *time.Time         `bson:"completion_date,omitempty" json:"completionDate,omitempty"`
	IsCompliant    bool               `bson:"is_compliant" json:"isCompliant"`
	DocumentLink   string             `bson:"document_link" json:"documentLink"`
	Notes          string             `bson:"notes" json:"notes"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updatedAt"`
}

// CreateInspectionRequest records an upcoming inspection. Compliance starts false.
type CreateInspectionRequest struct {
	VehicleID    string         `json:"vehicleId"`
	Type         InspectionType `json:"type"`
	DueDate      time.Time      `json:"dueDate"`
	DocumentLink string         `json:"documentLink"`
	Notes        string         `json:"notes"`
}

// UpdateInspectionRequest is a partial update: nil means leave the field alone.
type UpdateInspectionRequest struct {
	Type           *InspectionType `json:"type"`
	DueDate        *time.Time      `json:"dueDate"`
	CompletionDate *time.Time      `json:"completionDate"`
	IsCompliant    *bool           `json:"isCompliant"`
	DocumentLink   *string         `json:"documentLink"`
	Notes          *string         `json:"notes"`
}

// InspectionAlert is a derived warning for an inspection due soon or overdue.
type InspectionAlert struct {
	Inspection   Inspection `json:"inspection"`
	DaysUntilDue int        `json:"daysUntilDue"`
	IsOverdue    bool       `json:"isOverdue"`
}

// IsValidInspectionType checks if a type is one of the known kinds.
func IsValidInspectionType(t InspectionType) bool {
	switch t {
	case InspectionMOT, InspectionInsurance, InspectionTax, InspectionSafety:
		return true
	default:
		return false
	}
}
