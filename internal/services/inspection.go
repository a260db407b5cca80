package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fleetops/fleet-management/internal/db"
	"github.com/fleetops/fleet-management/internal/models"
)

// InspectionAlertWindow is how far ahead the alert query looks.
const InspectionAlertWindow = 30

// InspectionService owns compliance inspections and their due-date alerts.
type InspectionService struct {
	inspections db.InspectionCollection
	vehicles    db.VehicleCollection
}

// NewInspectionService constructs an InspectionService over the given collections.
func NewInspectionService(c *db.Collections) *InspectionService {
	return &InspectionService{inspections: c.Inspections, vehicles: c.Vehicles}
}

// List returns every inspection.
func (s *InspectionService) List(ctx context.Context) ([]models.Inspection, error) {
	return s.inspections.FindInspections(ctx, bson.M{})
}

// Get returns an inspection by id.
func (s *InspectionService) Get(ctx context.Context, id string) (*models.Inspection, error) {
	inspection, err := s.inspections.FindInspectionByID(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrNotFound
	}
	return inspection, err
}

// ListByVehicle returns the inspections for one vehicle.
func (s *InspectionService) ListByVehicle(ctx context.Context, vehicleID string) ([]models.Inspection, error) {
	return s.inspections.FindInspections(ctx, bson.M{"vehicle_id": vehicleID})
}

// ListByType returns the inspections of one kind.
func (s *InspectionService) ListByType(ctx context.Context, t models.InspectionType) ([]models.Inspection, error) {
	if !models.IsValidInspectionType(t) {
		return nil, validationError("invalid inspection type %q", t)
	}
	return s.inspections.FindInspections(ctx, bson.M{"type": t})
}

// Upcoming returns not-yet-completed inspections due within daysAhead days.
func (s *InspectionService) Upcoming(ctx context.Context, daysAhead int) ([]models.Inspection, error) {
	if daysAhead <= 0 {
		daysAhead = InspectionAlertWindow
	}
	cutoff := time.Now().AddDate(0, 0, daysAhead)
	return s.inspections.FindInspections(ctx, bson.M{
		"due_date":        bson.M{"$lte": cutoff},
		"completion_date": nil,
	})
}

// Create records an upcoming inspection. The vehicle must resolve;
// compliance always starts false.
func (s *InspectionService) Create(ctx context.Context, req models.CreateInspectionRequest) (*models.Inspection, error) {
	if !models.IsValidInspectionType(req.Type) {
		return nil, validationError("invalid inspection type %q", req.Type)
	}
	if req.DueDate.IsZero() {
		return nil, validationError("dueDate is required")
	}
	if _, err := s.vehicles.FindVehicleByID(ctx, req.VehicleID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	now := time.Now()
	inspection := models.Inspection{
		ID:           primitive.NewObjectID(),
		VehicleID:    req.VehicleID,
		Type:         req.Type,
		DueDate:      req.DueDate,
		IsCompliant:  false,
		DocumentLink: req.DocumentLink,
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.inspections.InsertInspection(ctx, inspection); err != nil {
		return nil, err
	}
	return &inspection, nil
}

// Update applies a partial update: only non-nil fields overwrite existing
// values.
func (s *InspectionService) Update(ctx context.Context, id string, req models.UpdateInspectionRequest) (*models.Inspection, error) {
	inspection, err := s.inspections.FindInspectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Type != nil {
		if !models.IsValidInspectionType(*req.Type) {
			return nil, validationError("invalid inspection type %q", *req.Type)
		}
		inspection.Type = *req.Type
	}
	if req.DueDate != nil {
		inspection.DueDate = *req.DueDate
	}
	if req.CompletionDate != nil {
		inspection.CompletionDate = req.CompletionDate
	}
	if req.IsCompliant != nil {
		inspection.IsCompliant = *req.IsCompliant
	}
	if req.DocumentLink != nil {
		inspection.DocumentLink = *req.DocumentLink
	}
	if req.Notes != nil {
		inspection.Notes = *req.Notes
	}
	inspection.UpdatedAt = time.Now()

	if err := s.inspections.ReplaceInspection(ctx, id, *inspection); err != nil {
		return nil, err
	}
	return inspection, nil
}

// Delete removes an inspection.
func (s *InspectionService) Delete(ctx context.Context, id string) error {
	err := s.inspections.DeleteInspection(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// Alerts returns inspections due within 30 days or overdue that are not yet
// completed or not compliant, sorted by due date. daysUntilDue counts whole
// calendar days and goes negative once overdue.
func (s *InspectionService) Alerts(ctx context.Context) ([]models.InspectionAlert, error) {
	now := time.Now()
	cutoff := now.AddDate(0, 0, InspectionAlertWindow)

	inspections, err := s.inspections.FindInspections(ctx, bson.M{
		"due_date": bson.M{"$lte": cutoff},
		"$or": []bson.M{
			{"completion_date": nil},
			{"is_compliant": false},
		},
	})
	if err != nil {
		return nil, err
	}

	today := truncateToDay(now)
	alerts := make([]models.InspectionAlert, 0, len(inspections))
	for _, ins := range inspections {
		due := truncateToDay(ins.DueDate)
		alerts = append(alerts, models.InspectionAlert{
			Inspection:   ins,
			DaysUntilDue: int(due.Sub(today).Hours() / 24),
			IsOverdue:    due.Before(today),
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Inspection.DueDate.Before(alerts[j].Inspection.DueDate)
	})
	return alerts, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
