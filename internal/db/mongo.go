package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fleetops/fleet-management/internal/config"
)

// ErrNotFound is returned when a lookup resolves no document. An id that is
// not valid hex is treated the same way: it cannot resolve.
var ErrNotFound = errors.New("not found")

// ConnectMongo connects to MongoDB using the configured URI.
func ConnectMongo(cfg *config.Config) (*mongo.Client, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// Collections bundles the per-entity collections for injection.
type Collections struct {
	Users       UserCollection
	Vehicles    VehicleCollection
	Trips       TripCollection
	Maintenance MaintenanceCollection
	Inspections InspectionCollection
	Issues      IssueCollection
	Parts       PartCollection
}

// NewCollections wires the Mongo implementations over a database handle.
func NewCollections(database *mongo.Database) *Collections {
	return &Collections{
		Users:       &MongoUserCollection{Collection: database.Collection("users")},
		Vehicles:    &MongoVehicleCollection{Collection: database.Collection("vehicles")},
		Trips:       &MongoTripCollection{Collection: database.Collection("trips")},
		Maintenance: &MongoMaintenanceCollection{Collection: database.Collection("maintenance_records")},
		Inspections: &MongoInspectionCollection{Collection: database.Collection("inspections")},
		Issues:      &MongoIssueCollection{Collection: database.Collection("issues")},
		Parts:       &MongoPartCollection{Collection: database.Collection("parts")},
	}
}

// EnsureIndexes creates the unique indexes backing the uniqueness rules:
// username, email, VIN, license plate, SKU.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	unique := options.Index().SetUnique(true)
	uniqueSparse := options.Index().SetUnique(true).SetSparse(true)

	specs := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{"users", mongo.IndexModel{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique}},
		{"users", mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: uniqueSparse}},
		{"vehicles", mongo.IndexModel{Keys: bson.D{{Key: "vin", Value: 1}}, Options: unique}},
		{"vehicles", mongo.IndexModel{Keys: bson.D{{Key: "license_plate", Value: 1}}, Options: unique}},
		{"parts", mongo.IndexModel{Keys: bson.D{{Key: "sku", Value: 1}}, Options: unique}},
	}

	for _, s := range specs {
		if _, err := database.Collection(s.collection).Indexes().CreateOne(ctx, s.model); err != nil {
			return fmt.Errorf("create index on %s: %w", s.collection, err)
		}
	}
	return nil
}
