package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fleetops/fleet-management/internal/models"
)

// PartCollection defines the interface for parts-inventory data operations.
type PartCollection interface {
	InsertPart(ctx context.Context, part models.Part) error
	FindParts(ctx context.Context, filter bson.M) ([]models.Part, error)
	FindPartByID(ctx context.Context, id string) (*models.Part, error)
	FindPartBySKU(ctx context.Context, sku string) (*models.Part, error)
	ReplacePart(ctx context.Context, id string, part models.Part) error
	SetPartQuantity(ctx context.Context, id string, quantity int) error
	DeletePart(ctx context.Context, id string) error
}

// MongoPartCollection implements PartCollection for MongoDB.
type MongoPartCollection struct {
	Collection *mongo.Collection
}

// InsertPart inserts an inventory item into the collection.
func (c *MongoPartCollection) InsertPart(ctx context.Context, part models.Part) error {
	_, err := c.Collection.InsertOne(ctx, part)
	return err
}

// FindParts queries inventory items matching the filter.
func (c *MongoPartCollection) FindParts(ctx context.Context, filter bson.M) ([]models.Part, error) {
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var parts []models.Part
	if err := cursor.All(ctx, &parts); err != nil {
		return nil, err
	}
	return parts, nil
}

// FindPartByID finds an inventory item by its ID.
func (c *MongoPartCollection) FindPartByID(ctx context.Context, id string) (*models.Part, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var part models.Part
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&part)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &part, nil
}

// FindPartBySKU finds an inventory item by its SKU.
func (c *MongoPartCollection) FindPartBySKU(ctx context.Context, sku string) (*models.Part, error) {
	var part models.Part
	err := c.Collection.FindOne(ctx, bson.M{"sku": sku}).Decode(&part)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &part, nil
}

// ReplacePart overwrites an item's fields by its ID.
func (c *MongoPartCollection) ReplacePart(ctx context.Context, id string, part models.Part) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": part})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetPartQuantity sets the stock quantity on an item.
func (c *MongoPartCollection) SetPartQuantity(ctx context.Context, id string, quantity int) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := c.Collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": touch(bson.M{"quantity_in_stock": quantity})},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePart deletes an inventory item by its ID.
func (c *MongoPartCollection) DeletePart(ctx context.Context, id string) error {
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
