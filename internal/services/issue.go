package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fleetops/fleet-management/internal/db"
	"github.com/fleetops/fleet-management/internal/models"
)

// IssueService owns driver-reported vehicle issues.
type IssueService struct {
	issues   db.IssueCollection
	vehicles db.VehicleCollection
}

// NewIssueService constructs an IssueService over the given collections.
func NewIssueService(c *db.Collections) *IssueService {
	return &IssueService{issues: c.Issues, vehicles: c.Vehicles}
}

// List returns every issue.
func (s *IssueService) List(ctx context.Context) ([]models.Issue, error) {
	return s.issues.FindIssues(ctx, bson.M{})
}

// Get returns an issue by id.
func (s *IssueService) Get(ctx context.Context, id string) (*models.Issue, error) {
	issue, err := s.issues.FindIssueByID(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrNotFound
	}
	return issue, err
}

// ListByVehicle returns the issues for one vehicle.
func (s *IssueService) ListByVehicle(ctx context.Context, vehicleID string) ([]models.Issue, error) {
	return s.issues.FindIssues(ctx, bson.M{"vehicle_id": vehicleID})
}

// ListByStatus returns the issues in one status.
func (s *IssueService) ListByStatus(ctx context.Context, status models.IssueStatus) ([]models.Issue, error) {
	return s.issues.FindIssues(ctx, bson.M{"status": status})
}

// Create reports an issue. reportedByID comes exclusively from the
// authenticated caller's identity; the vehicle must resolve; priority
// defaults to Medium; status always starts Reported.
func (s *IssueService) Create(ctx context.Context, reportedByID string, req models.CreateIssueRequest) (*models.Issue, error) {
	if req.Description == "" {
		return nil, validationError("description is required")
	}
	if _, err := s.vehicles.FindVehicleByID(ctx, req.VehicleID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	now := time.Now()
	issue := models.Issue{
		ID:           primitive.NewObjectID(),
		VehicleID:    req.VehicleID,
		ReportedByID: reportedByID,
		ReportDate:   now,
		Description:  req.Description,
		Status:       models.IssueReported,
		Priority:     priority,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.issues.InsertIssue(ctx, issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// Update applies a partial update: only non-nil fields overwrite existing
// values. No side effects.
func (s *IssueService) Update(ctx context.Context, id string, req models.UpdateIssueRequest) (*models.Issue, error) {
	issue, err := s.issues.FindIssueByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Description != nil {
		issue.Description = *req.Description
	}
	if req.Status != nil {
		issue.Status = *req.Status
	}
	if req.Priority != nil {
		issue.Priority = *req.Priority
	}
	if req.ResolvedDate != nil {
		issue.ResolvedDate = req.ResolvedDate
	}
	if req.Resolution != nil {
		issue.Resolution = *req.Resolution
	}
	issue.UpdatedAt = time.Now()

	if err := s.issues.ReplaceIssue(ctx, id, *issue); err != nil {
		return nil, err
	}
	return issue, nil
}

// Delete removes an issue.
func (s *IssueService) Delete(ctx context.Context, id string) error {
	err := s.issues.DeleteIssue(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
