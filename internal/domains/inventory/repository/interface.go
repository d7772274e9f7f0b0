package repository

import (
	"context"

	"cafepos-backend/internal/domains/inventory/model"
)

// InventoryRepository là data access cho inventory collection
type InventoryRepository interface {
	GetAll(ctx context.Context) ([]model.InventoryItem, error)
	Update(ctx context.Context, transform func(items []model.InventoryItem) ([]model.InventoryItem, error)) error
}
