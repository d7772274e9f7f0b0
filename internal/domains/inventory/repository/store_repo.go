package repository

import (
	"context"

	"cafepos-backend/internal/domains/inventory/model"
	"cafepos-backend/internal/infrastructure/store"
)

type storeRepository struct {
	store *store.Store
}

// NewStoreRepository tạo repository trên local JSON store
func NewStoreRepository(s *store.Store) InventoryRepository {
	return &storeRepository{store: s}
}

func (r *storeRepository) GetAll(ctx context.Context) ([]model.InventoryItem, error) {
	items := []model.InventoryItem{}
	if err := r.store.Read(store.CollectionInventory, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *storeRepository) Update(ctx context.Context, transform func([]model.InventoryItem) ([]model.InventoryItem, error)) error {
	return r.store.Update(store.CollectionInventory, func() error {
		items := []model.InventoryItem{}
		if err := r.store.Read(store.CollectionInventory, &items); err != nil {
			return err
		}

		updated, err := transform(items)
		if err != nil {
			return err
		}

		return r.store.Write(store.CollectionInventory, updated)
	})
}
