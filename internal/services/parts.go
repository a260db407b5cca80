package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fleetops/fleet-management/internal/db"
	"github.com/fleetops/fleet-management/internal/models"
)

// PartService owns the parts inventory.
type PartService struct {
	parts       db.PartCollection
	maintenance db.MaintenanceCollection
}

// NewPartService constructs a PartService over the given collections.
func NewPartService(c *db.Collections) *PartService {
	return &PartService{parts: c.Parts, maintenance: c.Maintenance}
}

// List returns every inventory item.
func (s *PartService) List(ctx context.Context) ([]models.Part, error) {
	return s.parts.FindParts(ctx, bson.M{})
}

// Get returns an inventory item by id.
func (s *PartService) Get(ctx context.Context, id string) (*models.Part, error) {
	part, err := s.parts.FindPartByID(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrNotFound
	}
	return part, err
}

// ListLowStock returns items whose stock is at or below their configured
// minimum. Items without a minimum never qualify.
func (s *PartService) ListLowStock(ctx context.Context) ([]models.Part, error) {
	parts, err := s.parts.FindParts(ctx, bson.M{"minimum_stock_level": bson.M{"$ne": nil}})
	if err != nil {
		return nil, err
	}
	low := make([]models.Part, 0)
	for _, p := range parts {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	return low, nil
}

// Create registers a new inventory item with a unique SKU.
func (s *PartService) Create(ctx context.Context, req models.CreatePartRequest) (*models.Part, error) {
	if req.Name == "" || req.SKU == "" {
		return nil, validationError("name and sku are required")
	}
	if req.QuantityInStock < 0 {
		return nil, validationError("quantityInStock cannot be negative")
	}
	if _, err := s.parts.FindPartBySKU(ctx, req.SKU); err == nil {
		return nil, ErrDuplicateSKU
	} else if !errors.Is(err, db.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	part := models.Part{
		ID:                primitive.NewObjectID(),
		Name:              req.Name,
		SKU:               req.SKU,
		QuantityInStock:   req.QuantityInStock,
		UnitPrice:         req.UnitPrice,
		MinimumStockLevel: req.MinimumStockLevel,
		Supplier:          req.Supplier,
		Description:       req.Description,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.parts.InsertPart(ctx, part); err != nil {
		return nil, err
	}
	return &part, nil
}

// Update applies a partial update: only non-nil fields overwrite existing
// values. SKU is immutable.
func (s *PartService) Update(ctx context.Context, id string, req models.UpdatePartRequest) (*models.Part, error) {
	part, err := s.parts.FindPartByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		part.Name = *req.Name
	}
	if req.QuantityInStock != nil {
		part.QuantityInStock = *req.QuantityInStock
	}
	if req.UnitPrice != nil {
		part.UnitPrice = *req.UnitPrice
	}
	if req.MinimumStockLevel != nil {
		part.MinimumStockLevel = req.MinimumStockLevel
	}
	if req.Supplier != nil {
		part.Supplier = *req.Supplier
	}
	if req.Description != nil {
		part.Description = *req.Description
	}
	part.UpdatedAt = time.Now()

	if err := s.parts.ReplacePart(ctx, id, *part); err != nil {
		return nil, err
	}
	return part, nil
}

// UseStock subtracts quantity from an item's stock, flooring at zero. It
// reports false, not an error, when the part id does not resolve.
func (s *PartService) UseStock(ctx context.Context, id string, quantity int) (*models.Part, bool, error) {
	if quantity <= 0 {
		return nil, false, validationError("quantity must be positive")
	}

	part, err := s.parts.FindPartByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	remaining := part.QuantityInStock - quantity
	if remaining < 0 {
		remaining = 0
	}
	if err := s.parts.SetPartQuantity(ctx, id, remaining); err != nil {
		return nil, false, err
	}
	part.QuantityInStock = remaining
	return part, true, nil
}

// Delete removes an inventory item and nulls its reference on any
// maintenance records that used it.
func (s *PartService) Delete(ctx context.Context, id string) error {
	if err := s.parts.DeletePart(ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.maintenance.ClearPartReference(ctx, id)
}
