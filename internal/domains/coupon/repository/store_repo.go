package repository

import (
	"context"

	"cafepos-backend/internal/domains/coupon/model"
	"cafepos-backend/internal/infrastructure/store"
)

type storeRepository struct {
	store *store.Store
}

// NewStoreRepository tạo repository trên local JSON store
func NewStoreRepository(s *store.Store) CouponRepository {
	return &storeRepository{store: s}
}

// GetAll implements CouponRepository.GetAll
// Balance defaulting + isUsed recompute xảy ra trong Coupon.UnmarshalJSON
func (r *storeRepository) GetAll(ctx context.Context) ([]model.Coupon, error) {
	coupons := []model.Coupon{}
	if err := r.store.Read(store.CollectionCoupons, &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}

// Update implements CouponRepository.Update
func (r *storeRepository) Update(ctx context.Context, transform func([]model.Coupon) ([]model.Coupon, error)) error {
	return r.store.Update(store.CollectionCoupons, func() error {
		coupons := []model.Coupon{}
		if err := r.store.Read(store.CollectionCoupons, &coupons); err != nil {
			return err
		}

		updated, err := transform(coupons)
		if err != nil {
			return err
		}

		return r.store.Write(store.CollectionCoupons, updated)
	})
}
