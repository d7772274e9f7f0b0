package repository

import (
	"context"

	"cafepos-backend/internal/domains/user/model"
	"cafepos-backend/internal/infrastructure/store"
)

type storeRepository struct {
	store *store.Store
}

// NewStoreRepository tạo repository trên local JSON store
func NewStoreRepository(s *store.Store) UserRepository {
	return &storeRepository{store: s}
}

func (r *storeRepository) GetAll(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	if err := r.store.Read(store.CollectionUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *storeRepository) Update(ctx context.Context, transform func([]model.User) ([]model.User, error)) error {
	return r.store.Update(store.CollectionUsers, func() error {
		users := []model.User{}
		if err := r.store.Read(store.CollectionUsers, &users); err != nil {
			return err
		}

		updated, err := transform(users)
		if err != nil {
			return err
		}

		return r.store.Write(store.CollectionUsers, updated)
	})
}
