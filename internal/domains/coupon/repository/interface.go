package repository

import (
	"context"

	"cafepos-backend/internal/domains/coupon/model"
)

// CouponRepository là data access cho coupon collection.
//
// Mọi mutation đi qua Update: load snapshot → transform → full overwrite,
// chạy trong critical section per-collection. Không serialize thì hai
// caller cùng load một snapshot sẽ last-writer-wins.
type CouponRepository interface {
	// GetAll load toàn bộ coupon collection (fresh mỗi lần gọi, không cache)
	GetAll(ctx context.Context) ([]model.Coupon, error)

	// Update chạy transform trên snapshot hiện tại rồi persist kết quả.
	// transform trả về collection mới; lỗi từ transform hủy persist.
	Update(ctx context.Context, transform func(coupons []model.Coupon) ([]model.Coupon, error)) error
}
