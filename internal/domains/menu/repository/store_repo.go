package repository

import (
	"context"

	"cafepos-backend/internal/domains/menu/model"
	"cafepos-backend/internal/infrastructure/store"
)

type storeRepository struct {
	store *store.Store
}

// NewStoreRepository tạo repository trên local JSON store
func NewStoreRepository(s *store.Store) MenuRepository {
	return &storeRepository{store: s}
}

func (r *storeRepository) GetAll(ctx context.Context) ([]model.MenuItem, error) {
	items := []model.MenuItem{}
	if err := r.store.Read(store.CollectionMenu, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *storeRepository) Update(ctx context.Context, transform func([]model.MenuItem) ([]model.MenuItem, error)) error {
	return r.store.Update(store.CollectionMenu, func() error {
		items := []model.MenuItem{}
		if err := r.store.Read(store.CollectionMenu, &items); err != nil {
			return err
		}

		updated, err := transform(items)
		if err != nil {
			return err
		}

		return r.store.Write(store.CollectionMenu, updated)
	})
}
