package service

import (
	"context"

	"github.com/shopspring/decimal"

	"cafepos-backend/internal/domains/coupon/model"
)

// ServiceInterface là business logic của coupon ledger
type ServiceInterface interface {
	// CreateCoupon tạo coupon mới với balance = amount
	CreateCoupon(ctx context.Context, req model.CreateCouponRequest, actor model.Actor) (*model.Coupon, error)

	// UseCoupon trừ amount khỏi một coupon (single-coupon debit)
	UseCoupon(ctx context.Context, couponID string, amount decimal.Decimal, actor model.Actor) (*model.Coupon, error)

	// UseMultipleCoupons redemption trên nhiều coupon theo thứ tự couponIDs.
	// Trả về danh sách coupon đã bị trừ tiền.
	UseMultipleCoupons(ctx context.Context, couponIDs []string, totalAmount decimal.Decimal, actor model.Actor) ([]model.Coupon, error)

	// RefundCouponAmount hoàn amount vào coupon, cap tại mệnh giá gốc
	RefundCouponAmount(ctx context.Context, couponID string, amount decimal.Decimal) (*model.Coupon, error)

	// ListCoupons trả về toàn bộ coupon, mới nhất trước
	ListCoupons(ctx context.Context) ([]model.Coupon, error)

	// GetCoupon lấy coupon theo id
	GetCoupon(ctx context.Context, couponID string) (*model.Coupon, error)

	// DeleteCoupon xóa hẳn coupon khỏi collection (admin only)
	DeleteCoupon(ctx context.Context, couponID string) error
}
