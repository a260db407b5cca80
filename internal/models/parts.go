package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Part represents a parts-inventory item consumed by maintenance work.
type Part struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	SKU               string             `bson:"sku" json:"sku"`
	QuantityInStock   int                `bson:"quantity_in_stock" json:"quantityInStock"`
	UnitPrice         float64            `bson:"unit_price" json:"unitPrice"`
	MinimumStockLevel *int               `bson:"minimum_stock_level,omitempty" json:"minimumStockLevel,omitempty"`
	Supplier          string             `bson:"supplier" json:"supplier"`
	Description       string             `bson:"description" json:"description"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updatedAt"`
}

// IsLowStock reports whether stock is at or below the minimum level.
// A part with no minimum level configured is never low.
func (p *Part) IsLowStock() bool {
	return p.MinimumStockLevel != nil && p.QuantityInStock <= *p.MinimumStockLevel
}

// CreatePartRequest registers a new inventory item.
type CreatePartRequest struct {
	Name              string  `json:"name"`
	SKU               string  `json:"sku"`
	QuantityInStock   int     `json:"quantityInStock"`
	UnitPrice         float64 `json:"unitPrice"`
	MinimumStockLevel *int    `json:"minimumStockLevel"`
	Supplier          string  `json:"supplier"`
	Description       string  `json:"description"`
}

// UpdatePartRequest is a partial update: nil means leave the field alone.
type UpdatePartRequest struct {
	Name              *string  `json:"name"`
	QuantityInStock   *int     `json:"quantityInStock"`
	UnitPrice         *float64 `json:"unitPrice"`
	MinimumStockLevel *int     `json:"minimumStockLevel"`
	Supplier          *string  `json:"supplier"`
	Description       *string  `json:"description"`
}

// UseStockRequest consumes stock for a part.
type UseStockRequest struct {
	Quantity int `json:"quantity"`
}
