package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fleetops/fleet-management/internal/models"
)

// VehicleCollection defines the interface for vehicle data operations.
type VehicleCollection interface {
	InsertVehicle(ctx context.Context, vehicle models.Vehicle) error
	FindVehicles(ctx context.Context, filter bson.M) ([]models.Vehicle, error)
	FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error)
	ReplaceVehicle(ctx context.Context, id string, vehicle models.Vehicle) error
	SetVehicleFields(ctx context.Context, id string, fields bson.M) error
	// TransitionVehicleStatus flips status from one state to another in a
	// single conditional update. It reports false when the vehicle was not
	// in the expected state (or does not exist).
	TransitionVehicleStatus(ctx context.Context, id string, from, to models.VehicleStatus) (bool, error)
	// RaiseVehicleMileage sets the mileage only when the reading is higher
	// than the stored value. It reports whether an update happened.
	RaiseVehicleMileage(ctx context.Context, id string, mileage float64) (bool, error)
	DeleteVehicle(ctx context.Context, id string) error
}

// MongoVehicleCollection implements VehicleCollection for MongoDB.
type MongoVehicleCollection struct {
	Collection *mongo.Collection
}

// InsertVehicle inserts a vehicle record into the collection.
func (c *MongoVehicleCollection) InsertVehicle(ctx context.Context, vehicle models.Vehicle) error {
	_, err := c.Collection.InsertOne(ctx, vehicle)
	return err
}

// FindVehicles queries vehicle records matching the filter.
func (c *MongoVehicleCollection) FindVehicles(ctx context.Context, filter bson.M) ([]models.Vehicle, error) {
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var vehicles []models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// FindVehicleByID finds a vehicle by its ID.
func (c *MongoVehicleCollection) FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var vehicle models.Vehicle
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&vehicle)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// ReplaceVehicle overwrites a vehicle's fields by its ID.
func (c *MongoVehicleCollection) ReplaceVehicle(ctx context.Context, id string, vehicle models.Vehicle) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": vehicle})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetVehicleFields applies a targeted $set to a vehicle.
func (c *MongoVehicleCollection) SetVehicleFields(ctx context.Context, id string, fields bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": touch(fields)})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// TransitionVehicleStatus performs the conditional status flip.
func (c *MongoVehicleCollection) TransitionVehicleStatus(ctx context.Context, id string, from, to models.VehicleStatus) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrNotFound
	}

	result, err := c.Collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID, "status": from},
		bson.M{"$set": touch(bson.M{"status": to})},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// RaiseVehicleMileage bumps the odometer monotonically.
func (c *MongoVehicleCollection) RaiseVehicleMileage(ctx context.Context, id string, mileage float64) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrNotFound
	}

	result, err := c.Collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID, "current_mileage": bson.M{"$lt": mileage}},
		bson.M{"$set": touch(bson.M{"current_mileage": mileage})},
	)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

// DeleteVehicle deletes a vehicle by its ID.
func (c *MongoVehicleCollection) DeleteVehicle(ctx context.Context, id string) error {
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
