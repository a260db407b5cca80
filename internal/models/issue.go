package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IssueStatus is the lifecycle state of a reported issue.
type IssueStatus string

const (
	IssueReported   IssueStatus = "Reported"
	IssueInProgress IssueStatus = "InProgress"
	IssueResolved   IssueStatus = "Resolved"
	IssueClosed     IssueStatus = "Closed"
)

// IssuePriority is the severity assigned to an issue.
type IssuePriority string

const (
	PriorityLow      IssuePriority = "Low"
	PriorityMedium   IssuePriority = "Medium"
	PriorityHigh     IssuePriority = "High"
	PriorityCritical IssuePriority = "Critical"
)

// Issue represents a problem reported against a vehicle by a driver.
type Issue struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID    string             `bson:"vehicle_id" json:"vehicleId"`
	ReportedByID string             `bson:"reported_by_id" json:"reportedById"`
	ReportDate   time.Time          `bson:"report_date" json:"reportDate"`
	Description  string             `bson:"description" json:"description"`
	Status       IssueStatus        `bson:"status" json:"status"`
	Priority     IssuePriority      `bson:"priority" json:"priority"`
	ResolvedDate *time.Time         `bson:"resolved_date,omitempty" json:"resolvedDate,omitempty"`
	Resolution   string             `bson:"resolution" json:"resolution"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

// CreateIssueRequest reports an issue. The reporter is always taken from the
// authenticated identity, never from the body.
type CreateIssueRequest struct {
	VehicleID   string        `json:"vehicleId"`
	Description string        `json:"description"`
	Priority    IssuePriority `json:"priority"`
}

// UpdateIssueRequest is a partial update: nil means leave the field alone.
type UpdateIssueRequest struct {
	Description  *string        `json:"description"`
	Status       *IssueStatus   `json:"status"`
	Priority     *IssuePriority `json:"priority"`
	ResolvedDate *time.Time     `json:"resolvedDate"`
	Resolution   *string        `json:"resolution"`
}
