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

// TripService owns the trip state machine. Starting a trip claims the
// vehicle with a conditional status flip, so two concurrent starts on the
// same vehicle cannot both succeed.
type TripService struct {
	trips    db.TripCollection
	vehicles db.VehicleCollection
}

// NewTripService constructs a TripService over the given collections.
func NewTripService(c *db.Collections) *TripService {
	return &TripService{trips: c.Trips, vehicles: c.Vehicles}
}

// List returns every trip.
func (s *TripService) List(ctx context.Context) ([]models.Trip, error) {
	return s.trips.FindTrips(ctx, bson.M{})
}

// Get returns a trip by id.
func (s *TripService) Get(ctx context.Context, id string) (*models.Trip, error) {
	trip, err := s.trips.FindTripByID(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrTripNotFound
	}
	return trip, err
}

// ListByDriver returns trips taken by a driver.
func (s *TripService) ListByDriver(ctx context.Context, driverID string) ([]models.Trip, error) {
	return s.trips.FindTrips(ctx, bson.M{"driver_id": driverID})
}

// ListByVehicle returns trips taken on a vehicle.
func (s *TripService) ListByVehicle(ctx context.Context, vehicleID string) ([]models.Trip, error) {
	return s.trips.FindTrips(ctx, bson.M{"vehicle_id": vehicleID})
}

// StartTrip opens a trip for the driver on an Available vehicle and moves
// the vehicle to InUse.
func (s *TripService) StartTrip(ctx context.Context, driverID string, req models.StartTripRequest) (*models.Trip, error) {
	if req.VehicleID == "" {
		return nil, validationError("vehicleId is required")
	}

	if _, err := s.vehicles.FindVehicleByID(ctx, req.VehicleID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	claimed, err := s.vehicles.TransitionVehicleStatus(ctx, req.VehicleID, models.VehicleAvailable, models.VehicleInUse)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrVehicleUnavailable
	}

	now := time.Now()
	trip := models.Trip{
		ID:           primitive.NewObjectID(),
		VehicleID:    req.VehicleID,
		DriverID:     driverID,
		StartTime:    now,
		StartMileage: req.StartMileage,
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.trips.InsertTrip(ctx, trip); err != nil {
		// Release the claim so the vehicle is not stuck InUse.
		_, _ = s.vehicles.TransitionVehicleStatus(ctx, req.VehicleID, models.VehicleInUse, models.VehicleAvailable)
		return nil, err
	}
	return &trip, nil
}

// EndTrip closes a trip: records end time, mileage and fuel, derives fuel
// efficiency when fuel was reported, rolls the vehicle's odometer forward
// and returns the vehicle to Available.
func (s *TripService) EndTrip(ctx context.Context, id string, req models.EndTripRequest) (*models.Trip, error) {
	trip, err := s.trips.FindTripByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	if trip.Ended() {
		return nil, ErrTripAlreadyEnded
	}

	now := time.Now()
	trip.EndTime = &now
	trip.EndMileage = &req.EndMileage
	trip.FuelUsed = req.FuelUsed
	trip.FuelEfficiency = models.ComputeFuelEfficiency(trip.StartMileage, req.EndMileage, req.FuelUsed)
	if req.Notes != "" {
		trip.Notes = req.Notes
	}
	trip.UpdatedAt = now

	if err := s.trips.ReplaceTrip(ctx, id, *trip); err != nil {
		return nil, err
	}

	err = s.vehicles.SetVehicleFields(ctx, trip.VehicleID, bson.M{
		"current_mileage": req.EndMileage,
		"status":          models.VehicleAvailable,
	})
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return nil, err
	}
	return trip, nil
}
