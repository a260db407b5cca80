package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fleetops/fleet-management/internal/db"
	"github.com/fleetops/fleet-management/internal/models"
)

func TestMaintenanceService_Create(t *testing.T) {
	tc, collections := newTestCollections()
	service := NewMaintenanceService(collections)
	ctx := context.Background()

	vehicleID := primitive.NewObjectID().Hex()
	tc.vehicles.On("FindVehicleByID", ctx, vehicleID).Return(&models.Vehicle{}, nil)
	tc.maintenance.On("InsertMaintenance", ctx, mock.AnythingOfType("models.MaintenanceRecord")).Return(nil)

	record, err := service.Create(ctx, models.CreateMaintenanceRequest{
		VehicleID:     vehicleID,
		Type:          "Oil Change",
		ScheduledDate: time.Now().Add(48 * time.Hour),
		Cost:          120,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.MaintenanceScheduled, record.Status)
	assert.Nil(t, record.CompletionDate)
	tc.maintenance.AssertExpectations(t)
}

func TestMaintenanceService_Create_VehicleMissing(t *testing.T) {
	tc, collections := newTestCollections()
	service := NewMaintenanceService(collections)
	ctx := context.Background()

	tc.vehicles.On("FindVehicleByID", ctx, "missing").Return(nil, db.ErrNotFound)

	_, err := service.Create(ctx, models.CreateMaintenanceRequest{
		VehicleID: "missing",
		Type:      "Oil Change",
	})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestMaintenanceService_Update_Completion(t *testing.T) {
	tc, collections := newTestCollections()
	service := NewMaintenanceService(collections)
	ctx := context.Background()

	recordID := primitive.NewObjectID()
	vehicleID := primitive.NewObjectID().Hex()
	partID := primitive.NewObjectID().Hex()
	scheduled := &models.MaintenanceRecord{
		ID:         recordID,
		VehicleID:  vehicleID,
		Type:       "Brake Service",
		Status:     models.MaintenanceScheduled,
		PartUsedID: partID,
	}

	tc.maintenance.On("FindMaintenanceByID", ctx, recordID.Hex()).Return(scheduled, nil)
	tc.maintenance.On("ReplaceMaintenance", ctx, recordID.Hex(), mock.AnythingOfType("models.MaintenanceRecord")).Return(nil)
	tc.vehicles.On("TransitionVehicleStatus", ctx, vehicleID, models.VehicleUnderMaintenance, models.VehicleAvailable).Return(true, nil)
	tc.parts.On("FindPartByID", ctx, partID).Return(&models.Part{QuantityInStock: 4}, nil)
	tc.parts.On("SetPartQuantity", ctx, partID, 3).Return(nil)

	completed := models.MaintenanceCompleted
	record, err := service.Update(ctx, recordID.Hex(), models.UpdateMaintenanceRequest{Status: &completed})

	assert.NoError(t, err)
	assert.Equal(t, models.MaintenanceCompleted, record.Status)
	// Completion date defaults to now when not supplied
	assert.NotNil(t, record.CompletionDate)
	tc.vehicles.AssertExpectations(t)
	tc.parts.AssertExpectations(t)
}

func TestMaintenanceService_Update_AlreadyCompletedDoesNotReconsume(t *testing.T) {
	tc, collections := newTestCollections()
	service := NewMaintenanceService(collections)
	ctx := context.Background()

	recordID := primitive.NewObjectID()
	done := time.Now().Add(-24 * time.Hour)
	record := &models.MaintenanceRecord{
		ID:             recordID,
		VehicleID:      "v1",
		Status:         models.MaintenanceCompleted,
		CompletionDate: &done,
		PartUsedID:     "p1",
	}

	tc.maintenance.On("FindMaintenanceByID", ctx, recordID.Hex()).Return(record, nil)
	tc.maintenance.On("ReplaceMaintenance", ctx, recordID.Hex(), mock.AnythingOfType("models.MaintenanceRecord")).Return(nil)

	notes := "final inspection done"
	_, err := service.Update(ctx, recordID.Hex(), models.UpdateMaintenanceRequest{MechanicNotes: &notes})

	assert.NoError(t, err)
	tc.parts.AssertNotCalled(t, "SetPartQuantity", mock.Anything, mock.Anything, mock.Anything)
	tc.vehicles.AssertNotCalled(t, "TransitionVehicleStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMaintenanceService_Alerts(t *testing.T) {
	tc, collections := newTestCollections()
	service := NewMaintenanceService(collections)
	ctx := context.Background()

	// Sorted ids so the stable output order is predictable.
	mileageVehicle := models.Vehicle{
		ID:             primitive.NewObjectID(),
		Make:           "Ford",
		Model:          "Transit",
		LicensePlate:   "FL-1",
		CurrentMileage: 13200,
	}
	timeVehicle := models.Vehicle{
		ID:             primitive.NewObjectID(),
		Make:           "VW",
		Model:          "Crafter",
		LicensePlate:   "FL-2",
		CurrentMileage: 8200,
	}
	freshVehicle := models.Vehicle{
		ID:             primitive.NewObjectID(),
		Make:           "MB",
		Model:          "Sprinter",
		LicensePlate:   "FL-3",
		CurrentMileage: 5100,
	}
	newVehicle := models.Vehicle{
		ID:           primitive.NewObjectID(),
		Make:         "Iveco",
		Model:        "Daily",
		LicensePlate: "FL-4",
	}

	recentDate := time.Now().Add(-30 * 24 * time.Hour)
	oldDate := time.Now().Add(-200 * 24 * time.Hour)

	completed := []models.MaintenanceRecord{
		// 13200 - 12000 = 1200 since service: mileage alert.
		{VehicleID: mileageVehicle.ID.Hex(), Status: models.MaintenanceCompleted, CompletionDate: &recentDate, MileageAtService: 12000},
		// 200 days ago: time alert, mileage delta only 200.
		{VehicleID: timeVehicle.ID.Hex(), Status: models.MaintenanceCompleted, CompletionDate: &oldDate, MileageAtService: 8000},
		// Recent and only 100 since service: no alert.
		{VehicleID: freshVehicle.ID.Hex(), Status: models.MaintenanceCompleted, CompletionDate: &recentDate, MileageAtService: 5000},
	}

	tc.vehicles.On("FindVehicles", ctx, bson.M{}).Return([]models.Vehicle{mileageVehicle, timeVehicle, freshVehicle, newVehicle}, nil)
	tc.maintenance.On("FindMaintenance", ctx, mock.Anything).Return(completed, nil)

	alerts, err := service.Alerts(ctx)
	assert.NoError(t, err)
	assert.Len(t, alerts, 3)

	byVehicle := make(map[string]models.MaintenanceAlert)
	for _, a := range alerts {
		byVehicle[a.VehicleID] = a
	}

	assert.Equal(t, models.AlertMileage, byVehicle[mileageVehicle.ID.Hex()].AlertType)
	assert.Equal(t, 1200.0, byVehicle[mileageVehicle.ID.Hex()].MileageSinceLast)
	assert.Equal(t, models.AlertTime, byVehicle[timeVehicle.ID.Hex()].AlertType)
	assert.Equal(t, models.AlertNoHistory, byVehicle[newVehicle.ID.Hex()].AlertType)
	_, hasFresh := byVehicle[freshVehicle.ID.Hex()]
	assert.False(t, hasFresh)
}

func TestMaintenanceService_Alerts_LatestCompletionWins(t *testing.T) {
	tc, collections := newTestCollections()
	service := NewMaintenanceService(collections)
	ctx := context.Background()

	vehicle := models.Vehicle{
		ID:             primitive.NewObjectID(),
		Make:           "Ford",
		Model:          "Transit",
		LicensePlate:   "FL-1",
		CurrentMileage: 10500,
	}

	older := time.Now().Add(-300 * 24 * time.Hour)
	newer := time.Now().Add(-10 * 24 * time.Hour)
	completed := []models.MaintenanceRecord{
		{VehicleID: vehicle.ID.Hex(), Status: models.MaintenanceCompleted, CompletionDate: &older, MileageAtService: 5000},
		{VehicleID: vehicle.ID.Hex(), Status: models.MaintenanceCompleted, CompletionDate: &newer, MileageAtService: 10400},
	}

	tc.vehicles.On("FindVehicles", ctx, bson.M{}).Return([]models.Vehicle{vehicle}, nil)
	tc.maintenance.On("FindMaintenance", ctx, mock.Anything).Return(completed, nil)

	alerts, err := service.Alerts(ctx)
	assert.NoError(t, err)
	// Anchored on the newer record: 100 miles, 10 days. Nothing fires.
	assert.Empty(t, alerts)
}
