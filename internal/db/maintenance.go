package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fleetops/fleet-management/internal/models"
)

// MaintenanceCollection defines the interface for maintenance record operations.
type MaintenanceCollection interface {
	InsertMaintenance(ctx context.Context, record models.MaintenanceRecord) error
	FindMaintenance(ctx context.Context, filter bson.M) ([]models.MaintenanceRecord, error)
	FindMaintenanceByID(ctx context.Context, id string) (*models.MaintenanceRecord, error)
	ReplaceMaintenance(ctx context.Context, id string, record models.MaintenanceRecord) error
	DeleteMaintenance(ctx context.Context, id string) error
	DeleteMaintenanceByVehicle(ctx context.Context, vehicleID string) error
	// ClearPartReference nulls out the part reference on every record that
	// points at the given part. Used when an inventory item is deleted.
	ClearPartReference(ctx context.Context, partID string) error
}

// MongoMaintenanceCollection implements MaintenanceCollection for MongoDB.
type MongoMaintenanceCollection struct {
	Collection *mongo.Collection
}

// InsertMaintenance inserts a maintenance record into the collection.
func (c *MongoMaintenanceCollection) InsertMaintenance(ctx context.Context, record models.MaintenanceRecord) error {
	_, err := c.Collection.InsertOne(ctx, record)
	return err
}

// FindMaintenance queries maintenance records matching the filter.
func (c *MongoMaintenanceCollection) FindMaintenance(ctx context.Context, filter bson.M) ([]models.MaintenanceRecord, error) {
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var records []models.MaintenanceRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FindMaintenanceByID finds a maintenance record by its ID.
func (c *MongoMaintenanceCollection) FindMaintenanceByID(ctx context.Context, id string) (*models.MaintenanceRecord, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var record models.MaintenanceRecord
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// ReplaceMaintenance overwrites a record's fields by its ID.
func (c *MongoMaintenanceCollection) ReplaceMaintenance(ctx context.Context, id string, record models.MaintenanceRecord) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": record})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMaintenance deletes a maintenance record by its ID.
func (c *MongoMaintenanceCollection) DeleteMaintenance(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := c.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMaintenanceByVehicle removes all records belonging to a vehicle.
func (c *MongoMaintenanceCollection) DeleteMaintenanceByVehicle(ctx context.Context, vehicleID string) error {
	_, err := c.Collection.DeleteMany(ctx, bson.M{"vehicle_id": vehicleID})
	return err
}

// ClearPartReference unsets part_used_id on records referencing the part.
func (c *MongoMaintenanceCollection) ClearPartReference(ctx context.Context, partID string) error {
	_, err := c.Collection.UpdateMany(
		ctx,
		bson.M{"part_used_id": partID},
		bson.M{"$unset": bson.M{"part_used_id": ""}},
	)
	return err
}
