package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fleetops/fleet-management/internal/models"
)

// TripCollection defines the interface for trip data operations.
type TripCollection interface {
	InsertTrip(ctx context.Context, trip models.Trip) error
	FindTrips(ctx context.Context, filter bson.M) ([]models.Trip, error)
	FindTripByID(ctx context.Context, id string) (*models.Trip, error)
	ReplaceTrip(ctx context.Context, id string, trip models.Trip) error
	DeleteTrip(ctx context.Context, id string) error
	DeleteTripsByVehicle(ctx context.Context, vehicleID string) error
}

// MongoTripCollection implements TripCollection for MongoDB.
type MongoTripCollection struct {
	Collection *mongo.Collection
}

// InsertTrip inserts a trip record into the collection.
func (c *MongoTripCollection) InsertTrip(ctx context.Context, trip models.Trip) error {
	_, err := c.Collection.InsertOne(ctx, trip)
	return err
}

// FindTrips queries trip records matching the filter.
func (c *MongoTripCollection) FindTrips(ctx context.Context, filter bson.M) ([]models.Trip, error) {
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var trips []models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// FindTripByID finds a trip by its ID.
func (c *MongoTripCollection) FindTripByID(ctx context.Context, id string) (*models.Trip, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var trip models.Trip
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&trip)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &trip, nil
}

// ReplaceTrip overwrites a trip's fields by its ID.
func (c *MongoTripCollection) ReplaceTrip(ctx context.Context, id string, trip models.Trip) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": trip})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTrip deletes a trip by its ID.
func (c *MongoTripCollection) DeleteTrip(ctx context.Context, id string) error {
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

// DeleteTripsByVehicle removes all trips belonging to a vehicle.
func (c *MongoTripCollection) DeleteTripsByVehicle(ctx context.Context, vehicleID string) error {
	_, err := c.Collection.DeleteMany(ctx, bson.M{"vehicle_id": vehicleID})
	return err
}
