package service

import (
	"context"

	"cafepos-backend/internal/domains/inventory/model"
)

// ServiceInterface định nghĩa business operations của inventory domain
type ServiceInterface interface {
	CreateItem(ctx context.Context, req model.CreateInventoryItemRequest) (*model.InventoryItem, error)
	UpdateItem(ctx context.Context, itemID string, req model.UpdateInventoryItemRequest) (*model.InventoryItem, error)
	AdjustQuantity(ctx context.Context, itemID string, delta int) (*model.InventoryItem, error)
	ListItems(ctx context.Context) ([]model.InventoryItem, error)
	ListLowStock(ctx context.Context) ([]model.InventoryItem, error)
	GetItem(ctx context.Context, itemID string) (*model.InventoryItem, error)
	DeleteItem(ctx context.Context, itemID string) error

	// ConsumeForMenu trừ kho mọi nguyên liệu gắn với món menuID, mỗi nguyên
	// liệu trừ count đơn vị. Best-effort: quantity không xuống dưới 0.
	ConsumeForMenu(ctx context.Context, menuID string, count int) error
}
