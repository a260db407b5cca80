package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fleetops/fleet-management/internal/models"
)

// IssueCollection defines the interface for issue data operations.
type IssueCollection interface {
	InsertIssue(ctx context.Context, issue models.Issue) error
	FindIssues(ctx context.Context, filter bson.M) ([]models.Issue, error)
	FindIssueByID(ctx context.Context, id string) (*models.Issue, error)
	ReplaceIssue(ctx context.Context, id string, issue models.Issue) error
	DeleteIssue(ctx context.Context, id string) error
	DeleteIssuesByVehicle(ctx context.Context, vehicleID string) error
	CountIssuesByReporter(ctx context.Context, userID string) (int64, error)
}

// MongoIssueCollection implements IssueCollection for MongoDB.
type MongoIssueCollection struct {
	Collection *mongo.Collection
}

// InsertIssue inserts an issue record into the collection.
func (c *MongoIssueCollection) InsertIssue(ctx context.Context, issue models.Issue) error {
	_, err := c.Collection.InsertOne(ctx, issue)
	return err
}

// FindIssues queries issue records matching the filter.
func (c *MongoIssueCollection) FindIssues(ctx context.Context, filter bson.M) ([]models.Issue, error) {
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var issues []models.Issue
	if err := cursor.All(ctx, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// FindIssueByID finds an issue by its ID.
func (c *MongoIssueCollection) FindIssueByID(ctx context.Context, id string) (*models.Issue, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var issue models.Issue
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&issue)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &issue, nil
}

// ReplaceIssue overwrites an issue's fields by its ID.
func (c *MongoIssueCollection) ReplaceIssue(ctx context.Context, id string, issue models.Issue) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": issue})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteIssue deletes an issue by its ID.
func (c *MongoIssueCollection) DeleteIssue(ctx context.Context, id string) error {
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

// DeleteIssuesByVehicle removes all issues belonging to a vehicle.
func (c *MongoIssueCollection) DeleteIssuesByVehicle(ctx context.Context, vehicleID string) error {
	_, err := c.Collection.DeleteMany(ctx, bson.M{"vehicle_id": vehicleID})
	return err
}

// CountIssuesByReporter counts issues reported by the given user.
func (c *MongoIssueCollection) CountIssuesByReporter(ctx context.Context, userID string) (int64, error) {
	return c.Collection.CountDocuments(ctx, bson.M{"reported_by_id": userID})
}
