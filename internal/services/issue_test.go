package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fleetops/fleet-management/internal/db"
	"github.com/fleetops/fleet-management/internal/models"
)

func TestIssueService_Create(t *testing.T) {
	tc, collections := newTestCollections()
	service := NewIssueService(collections)
	ctx := context.Background()

	vehicleID := primitive.NewObjectID().Hex()
	reporterID := primitive.NewObjectID().Hex()

	tc.vehicles.On("FindVehicleByID", ctx, vehicleID).Return(&models.Vehicle{}, nil)
	tc.issues.On("InsertIssue", ctx, mock.AnythingOfType("models.Issue")).Return(nil)

	issue, err := service.Create(ctx, reporterID, models.CreateIssueRequest{
		VehicleID:   vehicleID,
		Description: "Brakes squealing",
	})

	assert.NoError(t, err)
	// Reporter always comes from the caller's identity
	assert.Equal(t, reporterID, issue.ReportedByID)
	assert.Equal(t, models.IssueReported, issue.Status)
	assert.Equal(t, models.PriorityMedium, issue.Priority)
	assert.False(t, issue.ReportDate.IsZero())
	tc.issues.AssertExpectations(t)
}

func TestIssueService_Create_ExplicitPriority(t *testing.T) {
	tc, collections := newTestCollections()
	service := NewIssueService(collections)
	ctx := context.Background()

	vehicleID := primitive.NewObjectID().Hex()
	tc.vehicles.On("FindVehicleByID", ctx, vehicleID).Return(&models.Vehicle{}, nil)
	tc.issues.On("InsertIssue", ctx, mock.AnythingOfType("models.Issue")).Return(nil)

	issue, err := service.Create(ctx, "reporter", models.CreateIssueRequest{
		VehicleID:   vehicleID,
		Description: "Engine warning light",
		Priority:    models.PriorityCritical,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.PriorityCritical, issue.Priority)
}

func TestIssueService_Create_VehicleMissing(t *testing.T) {
	tc, collections := newTestCollections()
	service := NewIssueService(collections)
	ctx := context.Background()

	tc.vehicles.On("FindVehicleByID", ctx, "missing").Return(nil, db.ErrNotFound)

	_, err := service.Create(ctx, "reporter", models.CreateIssueRequest{
		VehicleID:   "missing",
		Description: "Flat tire",
	})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestIssueService_Create_MissingDescription(t *testing.T) {
	_, collections := newTestCollections()
	service := NewIssueService(collections)

	_, err := service.Create(context.Background(), "reporter", models.CreateIssueRequest{VehicleID: "v1"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestIssueService_Update_Partial(t *testing.T) {
	tc, collections := newTestCollections()
	service := NewIssueService(collections)
	ctx := context.Background()

	id := primitive.NewObjectID()
	existing := &models.Issue{
		ID:           id,
		Description:  "Brakes squealing",
		Status:       models.IssueReported,
		Priority:     models.PriorityMedium,
		ReportedByID: "reporter",
	}

	tc.issues.On("FindIssueByID", ctx, id.Hex()).Return(existing, nil)
	tc.issues.On("ReplaceIssue", ctx, id.Hex(), mock.AnythingOfType("models.Issue")).Return(nil)

	status := models.IssueInProgress
	issue, err := service.Update(ctx, id.Hex(), models.UpdateIssueRequest{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, models.IssueInProgress, issue.Status)
	assert.Equal(t, "Brakes squealing", issue.Description)
	assert.Equal(t, "reporter", issue.ReportedByID)
}

func TestUserService_Delete_Referenced(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	t.Run("assigned to a vehicle", func(t *testing.T) {
		tc, collections := newTestCollections()
		service := NewUserService(collections)

		tc.vehicles.On("FindVehicles", ctx, bson.M{"assigned_driver_id": id}).Return([]models.Vehicle{{}}, nil)

		err := service.Delete(ctx, id)
		assert.ErrorIs(t, err, ErrUserReferenced)
		tc.users.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
	})

	t.Run("reported issues", func(t *testing.T) {
		tc, collections := newTestCollections()
		service := NewUserService(collections)

		tc.vehicles.On("FindVehicles", ctx, bson.M{"assigned_driver_id": id}).Return([]models.Vehicle{}, nil)
		tc.issues.On("CountIssuesByReporter", ctx, id).Return(int64(3), nil)

		err := service.Delete(ctx, id)
		assert.ErrorIs(t, err, ErrUserReferenced)
		tc.users.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
	})

	t.Run("unreferenced", func(t *testing.T) {
		tc, collections := newTestCollections()
		service := NewUserService(collections)

		tc.vehicles.On("FindVehicles", ctx, bson.M{"assigned_driver_id": id}).Return([]models.Vehicle{}, nil)
		tc.issues.On("CountIssuesByReporter", ctx, id).Return(int64(0), nil)
		tc.users.On("DeleteUser", ctx, id).Return(nil)

		err := service.Delete(ctx, id)
		assert.NoError(t, err)
		tc.users.AssertExpectations(t)
	})
}

func TestUserService_ListDrivers(t *testing.T) {
	tc, collections := newTestCollections()
	service := NewUserService(collections)
	ctx := context.Background()

	drivers := []models.User{{Username: "driver1", Role: models.RoleDriver}}
	tc.users.On("FindUsers", ctx, bson.M{"role": models.RoleDriver}).Return(drivers, nil)

	users, err := service.ListDrivers(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, "driver1", users[0].Username)
}
