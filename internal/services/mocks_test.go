package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/fleetops/fleet-management/internal/db"
	"github.com/fleetops/fleet-management/internal/models"
)

// MockUserCollection is a testify mock of db.UserCollection.
type MockUserCollection struct {
	mock.Mock
}

func (m *MockUserCollection) InsertUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserCollection) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUsers(ctx context.Context, filter bson.M) ([]models.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserCollection) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVehicleCollection is a testify mock of db.VehicleCollection.
type MockVehicleCollection struct {
	mock.Mock
}

func (m *MockVehicleCollection) InsertVehicle(ctx context.Context, vehicle models.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleCollection) FindVehicles(ctx context.Context, filter bson.M) ([]models.Vehicle, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vehicle), args.Error(1)
}

func (m *MockVehicleCollection) FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleCollection) ReplaceVehicle(ctx context.Context, id string, vehicle models.Vehicle) error {
	args := m.Called(ctx, id, vehicle)
	return args.Error(0)
}

func (m *MockVehicleCollection) SetVehicleFields(ctx context.Context, id string, fields bson.M) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockVehicleCollection) TransitionVehicleStatus(ctx context.Context, id string, from, to models.VehicleStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockVehicleCollection) RaiseVehicleMileage(ctx context.Context, id string, mileage float64) (bool, error) {
	args := m.Called(ctx, id, mileage)
	return args.Bool(0), args.Error(1)
}

func (m *MockVehicleCollection) DeleteVehicle(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTripCollection is a testify mock of db.TripCollection.
type MockTripCollection struct {
	mock.Mock
}

func (m *MockTripCollection) InsertTrip(ctx context.Context, trip models.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripCollection) FindTrips(ctx context.Context, filter bson.M) ([]models.Trip, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Trip), args.Error(1)
}

func (m *MockTripCollection) FindTripByID(ctx context.Context, id string) (*models.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Trip), args.Error(1)
}

func (m *MockTripCollection) ReplaceTrip(ctx context.Context, id string, trip models.Trip) error {
	args := m.Called(ctx, id, trip)
	return args.Error(0)
}

func (m *MockTripCollection) DeleteTrip(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTripCollection) DeleteTripsByVehicle(ctx context.Context, vehicleID string) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}

// MockMaintenanceCollection is a testify mock of db.MaintenanceCollection.
type MockMaintenanceCollection struct {
	mock.Mock
}

func (m *MockMaintenanceCollection) InsertMaintenance(ctx context.Context, record models.MaintenanceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockMaintenanceCollection) FindMaintenance(ctx context.Context, filter bson.M) ([]models.MaintenanceRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MaintenanceRecord), args.Error(1)
}

func (m *MockMaintenanceCollection) FindMaintenanceByID(ctx context.Context, id string) (*models.MaintenanceRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceRecord), args.Error(1)
}

func (m *MockMaintenanceCollection) ReplaceMaintenance(ctx context.Context, id string, record models.MaintenanceRecord) error {
	args := m.Called(ctx, id, record)
	return args.Error(0)
}

func (m *MockMaintenanceCollection) DeleteMaintenance(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMaintenanceCollection) DeleteMaintenanceByVehicle(ctx context.Context, vehicleID string) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}

func (m *MockMaintenanceCollection) ClearPartReference(ctx context.Context, partID string) error {
	args := m.Called(ctx, partID)
	return args.Error(0)
}

// MockInspectionCollection is a testify mock of db.InspectionCollection.
type MockInspectionCollection struct {
	mock.Mock
}

func (m *MockInspectionCollection) InsertInspection(ctx context.Context, inspection models.Inspection) error {
	args := m.Called(ctx, inspection)
	return args.Error(0)
}

func (m *MockInspectionCollection) FindInspections(ctx context.Context, filter bson.M) ([]models.Inspection, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Inspection), args.Error(1)
}

func (m *MockInspectionCollection) FindInspectionByID(ctx context.Context, id string) (*models.Inspection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inspection), args.Error(1)
}

func (m *MockInspectionCollection) ReplaceInspection(ctx context.Context, id string, inspection models.Inspection) error {
	args := m.Called(ctx, id, inspection)
	return args.Error(0)
}

func (m *MockInspectionCollection) DeleteInspection(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInspectionCollection) DeleteInspectionsByVehicle(ctx context.Context, vehicleID string) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}

// MockIssueCollection is a testify mock of db.IssueCollection.
type MockIssueCollection struct {
	mock.Mock
}

func (m *MockIssueCollection) InsertIssue(ctx context.Context, issue models.Issue) error {
	args := m.Called(ctx, issue)
	return args.Error(0)
}

func (m *MockIssueCollection) FindIssues(ctx context.Context, filter bson.M) ([]models.Issue, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Issue), args.Error(1)
}

func (m *MockIssueCollection) FindIssueByID(ctx context.Context, id string) (*models.Issue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Issue), args.Error(1)
}

func (m *MockIssueCollection) ReplaceIssue(ctx context.Context, id string, issue models.Issue) error {
	args := m.Called(ctx, id, issue)
	return args.Error(0)
}

func (m *MockIssueCollection) DeleteIssue(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIssueCollection) DeleteIssuesByVehicle(ctx context.Context, vehicleID string) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}

func (m *MockIssueCollection) CountIssuesByReporter(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockPartCollection is a testify mock of db.PartCollection.
type MockPartCollection struct {
	mock.Mock
}

func (m *MockPartCollection) InsertPart(ctx context.Context, part models.Part) error {
	args := m.Called(ctx, part)
	return args.Error(0)
}

func (m *MockPartCollection) FindParts(ctx context.Context, filter bson.M) ([]models.Part, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Part), args.Error(1)
}

func (m *MockPartCollection) FindPartByID(ctx context.Context, id string) (*models.Part, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Part), args.Error(1)
}

func (m *MockPartCollection) FindPartBySKU(ctx context.Context, sku string) (*models.Part, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Part), args.Error(1)
}

func (m *MockPartCollection) ReplacePart(ctx context.Context, id string, part models.Part) error {
	args := m.Called(ctx, id, part)
	return args.Error(0)
}

func (m *MockPartCollection) SetPartQuantity(ctx context.Context, id string, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockPartCollection) DeletePart(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// testCollections wires a full set of mocks into the injection bundle.
type testCollections struct {
	users       *MockUserCollection
	vehicles    *MockVehicleCollection
	trips       *MockTripCollection
	maintenance *MockMaintenanceCollection
	inspections *MockInspectionCollection
	issues      *MockIssueCollection
	parts       *MockPartCollection
}

func newTestCollections() (*testCollections, *db.Collections) {
	tc := &testCollections{
		users:       new(MockUserCollection),
		vehicles:    new(MockVehicleCollection),
		trips:       new(MockTripCollection),
		maintenance: new(MockMaintenanceCollection),
		inspections: new(MockInspectionCollection),
		issues:      new(MockIssueCollection),
		parts:       new(MockPartCollection),
	}
	return tc, &db.Collections{
		Users:       tc.users,
		Vehicles:    tc.vehicles,
		Trips:       tc.trips,
		Maintenance: tc.maintenance,
		Inspections: tc.inspections,
		Issues:      tc.issues,
		Parts:       tc.parts,
	}
}
