package repository

import (
	"context"

	"cafepos-backend/internal/domains/order/model"
	"cafepos-backend/internal/infrastructure/store"
)

type storeRepository struct {
	store *store.Store
}

// NewStoreRepository tạo repository trên local JSON store
func NewStoreRepository(s *store.Store) OrderRepository {
	return &storeRepository{store: s}
}

func (r *storeRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	if err := r.store.Read(store.CollectionOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *storeRepository) Update(ctx context.Context, transform func([]model.Order) ([]model.Order, error)) error {
	return r.store.Update(store.CollectionOrders, func() error {
		orders := []model.Order{}
		if err := r.store.Read(store.CollectionOrders, &orders); err != nil {
			return err
		}

		updated, err := transform(orders)
		if err != nil {
			return err
		}

		return r.store.Write(store.CollectionOrders, updated)
	})
}
