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

// VehicleService owns the vehicle lifecycle: CRUD, status queries, driver
// assignment and the cascade that removes a vehicle's dependent records.
type VehicleService struct {
	vehicles    db.VehicleCollection
	users       db.UserCollection
	trips       db.TripCollection
	maintenance db.MaintenanceCollection
	inspections db.InspectionCollection
	issues      db.IssueCollection
}

// NewVehicleService constructs a VehicleService over the given collections.
func NewVehicleService(c *db.Collections) *VehicleService {
	return &VehicleService{
		vehicles:    c.Vehicles,
		users:       c.Users,
		trips:       c.Trips,
		maintenance: c.Maintenance,
		inspections: c.Inspections,
		issues:      c.Issues,
	}
}

// List returns every vehicle.
func (s *VehicleService) List(ctx context.Context) ([]models.Vehicle, error) {
	return s.vehicles.FindVehicles(ctx, bson.M{})
}

// Get returns a vehicle by id.
func (s *VehicleService) Get(ctx context.Context, id string) (*models.Vehicle, error) {
	vehicle, err := s.vehicles.FindVehicleByID(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrVehicleNotFound
	}
	return vehicle, err
}

// ListByStatus returns vehicles in the given status.
func (s *VehicleService) ListByStatus(ctx context.Context, status models.VehicleStatus) ([]models.Vehicle, error) {
	if !models.IsValidVehicleStatus(status) {
		return nil, validationError("invalid vehicle status %q", status)
	}
	return s.vehicles.FindVehicles(ctx, bson.M{"status": status})
}

// Create registers a vehicle. Status always starts Available regardless of
// input; VIN and license plate must be unique.
func (s *VehicleService) Create(ctx context.Context, req models.CreateVehicleRequest) (*models.Vehicle, error) {
	if req.Make == "" || req.Model == "" || req.VIN == "" || req.LicensePlate == "" {
		return nil, validationError("make, model, vin and licensePlate are required")
	}

	if existing, err := s.vehicles.FindVehicles(ctx, bson.M{"vin": req.VIN}); err != nil {
		return nil, err
	} else if len(existing) > 0 {
		return nil, ErrDuplicateVIN
	}
	if existing, err := s.vehicles.FindVehicles(ctx, bson.M{"license_plate": req.LicensePlate}); err != nil {
		return nil, err
	} else if len(existing) > 0 {
		return nil, ErrDuplicatePlate
	}

	now := time.Now()
	vehicle := models.Vehicle{
		ID:             primitive.NewObjectID(),
		Make:           req.Make,
		Model:          req.Model,
		Year:           req.Year,
		VIN:            req.VIN,
		LicensePlate:   req.LicensePlate,
		Color:          req.Color,
		Status:         models.VehicleAvailable,
		CurrentMileage: req.CurrentMileage,
		PurchaseDate:   req.PurchaseDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.vehicles.InsertVehicle(ctx, vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// Update applies a partial update: only non-nil fields overwrite existing
// values.
func (s *VehicleService) Update(ctx context.Context, id string, req models.UpdateVehicleRequest) (*models.Vehicle, error) {
	vehicle, err := s.vehicles.FindVehicleByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	if req.Make != nil {
		vehicle.Make = *req.Make
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	if req.Color != nil {
		vehicle.Color = *req.Color
	}
	if req.Status != nil {
		if !models.IsValidVehicleStatus(*req.Status) {
			return nil, validationError("invalid vehicle status %q", *req.Status)
		}
		vehicle.Status = *req.Status
	}
	if req.CurrentMileage != nil {
		vehicle.CurrentMileage = *req.CurrentMileage
	}
	if req.PurchaseDate != nil {
		vehicle.PurchaseDate = req.PurchaseDate
	}
	vehicle.UpdatedAt = time.Now()

	if err := s.vehicles.ReplaceVehicle(ctx, id, *vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Delete removes a vehicle and cascades to its trips, inspections, issues
// and maintenance records.
func (s *VehicleService) Delete(ctx context.Context, id string) error {
	if err := s.vehicles.DeleteVehicle(ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrVehicleNotFound
		}
		return err
	}

	if err := s.trips.DeleteTripsByVehicle(ctx, id); err != nil {
		return err
	}
	if err := s.inspections.DeleteInspectionsByVehicle(ctx, id); err != nil {
		return err
	}
	if err := s.issues.DeleteIssuesByVehicle(ctx, id); err != nil {
		return err
	}
	return s.maintenance.DeleteMaintenanceByVehicle(ctx, id)
}

// AssignDriver sets the vehicle's assigned driver. It reports false, not an
// error, when either id does not resolve or the user is not a Driver.
func (s *VehicleService) AssignDriver(ctx context.Context, vehicleID, driverID string) (bool, error) {
	if _, err := s.vehicles.FindVehicleByID(ctx, vehicleID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	user, err := s.users.FindUserByID(ctx, driverID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if user.Role != models.RoleDriver {
		return false, nil
	}

	if err := s.vehicles.SetVehicleFields(ctx, vehicleID, bson.M{"assigned_driver_id": driverID}); err != nil {
		return false, err
	}
	return true, nil
}
