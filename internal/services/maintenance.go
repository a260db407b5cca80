package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fleetops/fleet-management/internal/db"
	"github.com/fleetops/fleet-management/internal/models"
)

// Service-due thresholds. Fixed fleet-wide; there is no per-vehicle override.
const (
	MileageAlertThreshold = 1000.0
	TimeAlertThreshold    = 180 * 24 * time.Hour
)

// MaintenanceService owns maintenance records and the predictive alerts
// derived from them.
type MaintenanceService struct {
	maintenance db.MaintenanceCollection
	vehicles    db.VehicleCollection
	parts       db.PartCollection
}

// NewMaintenanceService constructs a MaintenanceService over the given collections.
func NewMaintenanceService(c *db.Collections) *MaintenanceService {
	return &MaintenanceService{maintenance: c.Maintenance, vehicles: c.Vehicles, parts: c.Parts}
}

// List returns every maintenance record.
func (s *MaintenanceService) List(ctx context.Context) ([]models.MaintenanceRecord, error) {
	return s.maintenance.FindMaintenance(ctx, bson.M{})
}

// Get returns a maintenance record by id.
func (s *MaintenanceService) Get(ctx context.Context, id string) (*models.MaintenanceRecord, error) {
	record, err := s.maintenance.FindMaintenanceByID(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrNotFound
	}
	return record, err
}

// ListByVehicle returns the records for one vehicle.
func (s *MaintenanceService) ListByVehicle(ctx context.Context, vehicleID string) ([]models.MaintenanceRecord, error) {
	return s.maintenance.FindMaintenance(ctx, bson.M{"vehicle_id": vehicleID})
}

// Create schedules a service. The vehicle must resolve; status always starts
// Scheduled.
func (s *MaintenanceService) Create(ctx context.Context, req models.CreateMaintenanceRequest) (*models.MaintenanceRecord, error) {
	if req.Type == "" {
		return nil, validationError("type is required")
	}
	if _, err := s.vehicles.FindVehicleByID(ctx, req.VehicleID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	now := time.Now()
	record := models.MaintenanceRecord{
		ID:               primitive.NewObjectID(),
		VehicleID:        req.VehicleID,
		Type:             req.Type,
		ScheduledDate:    req.ScheduledDate,
		Cost:             req.Cost,
		MechanicNotes:    req.MechanicNotes,
		PartUsedID:       req.PartUsedID,
		Status:           models.MaintenanceScheduled,
		MileageAtService: req.MileageAtService,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.maintenance.InsertMaintenance(ctx, record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Update applies a partial update. Moving a record to Completed while its
// vehicle sits UnderMaintenance returns the vehicle to Available, and
// consumes one unit of the referenced part's stock.
func (s *MaintenanceService) Update(ctx context.Context, id string, req models.UpdateMaintenanceRequest) (*models.MaintenanceRecord, error) {
	record, err := s.maintenance.FindMaintenanceByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	wasCompleted := record.Status == models.MaintenanceCompleted

	if req.Type != nil {
		record.Type = *req.Type
	}
	if req.ScheduledDate != nil {
		record.ScheduledDate = *req.ScheduledDate
	}
	if req.CompletionDate != nil {
		record.CompletionDate = req.CompletionDate
	}
	if req.Cost != nil {
		record.Cost = *req.Cost
	}
	if req.MechanicNotes != nil {
		record.MechanicNotes = *req.MechanicNotes
	}
	if req.PartUsedID != nil {
		record.PartUsedID = *req.PartUsedID
	}
	if req.Status != nil {
		record.Status = *req.Status
	}
	if req.MileageAtService != nil {
		record.MileageAtService = *req.MileageAtService
	}

	completing := !wasCompleted && record.Status == models.MaintenanceCompleted
	if completing && record.CompletionDate == nil {
		now := time.Now()
		record.CompletionDate = &now
	}
	record.UpdatedAt = time.Now()

	if err := s.maintenance.ReplaceMaintenance(ctx, id, *record); err != nil {
		return nil, err
	}

	if completing {
		// Only flips when the vehicle is actually UnderMaintenance.
		if _, err := s.vehicles.TransitionVehicleStatus(ctx, record.VehicleID, models.VehicleUnderMaintenance, models.VehicleAvailable); err != nil {
			return nil, err
		}
		if record.PartUsedID != "" {
			if _, _, err := s.consumePart(ctx, record.PartUsedID, 1); err != nil {
				return nil, err
			}
		}
	}
	return record, nil
}

func (s *MaintenanceService) consumePart(ctx context.Context, partID string, qty int) (*models.Part, bool, error) {
	part, err := s.parts.FindPartByID(ctx, partID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	remaining := part.QuantityInStock - qty
	if remaining < 0 {
		remaining = 0
	}
	if err := s.parts.SetPartQuantity(ctx, partID, remaining); err != nil {
		return nil, false, err
	}
	part.QuantityInStock = remaining
	return part, true, nil
}

// Delete removes a maintenance record.
func (s *MaintenanceService) Delete(ctx context.Context, id string) error {
	err := s.maintenance.DeleteMaintenance(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// Alerts computes the predictive service alerts. For every vehicle the most
// recent Completed record (by completion date) anchors two checks: mileage
// since service >= 1000 and time since service >= 180 days. A vehicle with
// no completed history at all gets a single NoHistory alert.
func (s *MaintenanceService) Alerts(ctx context.Context) ([]models.MaintenanceAlert, error) {
	vehicles, err := s.vehicles.FindVehicles(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	completed, err := s.maintenance.FindMaintenance(ctx, bson.M{
		"status":          models.MaintenanceCompleted,
		"completion_date": bson.M{"$ne": nil},
	})
	if err != nil {
		return nil, err
	}

	lastService := make(map[string]models.MaintenanceRecord)
	for _, rec := range completed {
		if rec.CompletionDate == nil {
			continue
		}
		prev, ok := lastService[rec.VehicleID]
		if !ok || rec.CompletionDate.After(*prev.CompletionDate) {
			lastService[rec.VehicleID] = rec
		}
	}

	now := time.Now()
	alerts := make([]models.MaintenanceAlert, 0)
	for _, v := range vehicles {
		name := fmt.Sprintf("%s %s (%s)", v.Make, v.Model, v.LicensePlate)
		last, ok := lastService[v.ID.Hex()]
		if !ok {
			alerts = append(alerts, models.MaintenanceAlert{
				VehicleID:   v.ID.Hex(),
				VehicleName: name,
				AlertType:   models.AlertNoHistory,
				Message:     "No completed maintenance on record; initial service recommended",
			})
			continue
		}

		delta := v.CurrentMileage - last.MileageAtService
		if delta >= MileageAlertThreshold {
			alerts = append(alerts, models.MaintenanceAlert{
				VehicleID:        v.ID.Hex(),
				VehicleName:      name,
				AlertType:        models.AlertMileage,
				Message:          fmt.Sprintf("%.0f since last service; service due", delta),
				LastServiceDate:  last.CompletionDate,
				MileageSinceLast: delta,
			})
		}
		if now.Sub(*last.CompletionDate) >= TimeAlertThreshold {
			alerts = append(alerts, models.MaintenanceAlert{
				VehicleID:        v.ID.Hex(),
				VehicleName:      name,
				AlertType:        models.AlertTime,
				Message:          fmt.Sprintf("Last service was %d days ago; service due", int(now.Sub(*last.CompletionDate).Hours()/24)),
				LastServiceDate:  last.CompletionDate,
				MileageSinceLast: delta,
			})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].VehicleID < alerts[j].VehicleID
	})
	return alerts, nil
}
