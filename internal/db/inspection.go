package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fleetops/fleet-management/internal/models"
)

// InspectionCollection defines the interface for inspection data operations.
type InspectionCollection interface {
	InsertInspection(ctx context.Context, inspection models.Inspection) error
	FindInspections(ctx context.Context, filter bson.M) ([]models.Inspection, error)
	FindInspectionByID(ctx context.Context, id string) (*models.Inspection, error)
	ReplaceInspection(ctx context.Context, id string, inspection models.Inspection) error
	DeleteInspection(ctx context.Context, id string) error
	DeleteInspectionsByVehicle(ctx context.Context, vehicleID string) error
}

// MongoInspectionCollection implements InspectionCollection for MongoDB.
type MongoInspectionCollection struct {
	Collection *mongo.Collection
}

// InsertInspection inserts an inspection record into the collection.
func (c *MongoInspectionCollection) InsertInspection(ctx context.Context, inspection models.Inspection) error {
	_, err := c.Collection.InsertOne(ctx, inspection)
	return err
}

// FindInspections queries inspection records matching the filter.
func (c *MongoInspectionCollection) FindInspections(ctx context.Context, filter bson.M) ([]models.Inspection, error) {
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var inspections []models.Inspection
	if err := cursor.All(ctx, &inspections); err != nil {
		return nil, err
	}
	return inspections, nil
}

// FindInspectionByID finds an inspection by its ID.
func (c *MongoInspectionCollection) FindInspectionByID(ctx context.Context, id string) (*models.Inspection, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var inspection models.Inspection
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&inspection)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &inspection, nil
}

// ReplaceInspection overwrites an inspection's fields by its ID.
func (c *MongoInspectionCollection) ReplaceInspection(ctx context.Context, id string, inspection models.Inspection) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": inspection})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteInspection deletes an inspection by its ID.
func (c *MongoInspectionCollection) DeleteInspection(ctx context.Context, id string) error {
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

// DeleteInspectionsByVehicle removes all inspections belonging to a vehicle.
func (c *MongoInspectionCollection) DeleteInspectionsByVehicle(ctx context.Context, vehicleID string) error {
	_, err := c.Collection.DeleteMany(ctx, bson.M{"vehicle_id": vehicleID})
	return err
}
