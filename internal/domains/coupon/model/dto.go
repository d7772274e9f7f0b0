package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// CreateCouponRequest - Request tạo coupon mới (nạp tiền trước)
type CreateCouponRequest struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Validate validates CreateCouponRequest
func (r CreateCouponRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("Tên coupon không được để trống"),
			validation.By(notBlank),
			validation.Length(1, 100).Error("Tên coupon tối đa 100 ký tự"),
		),
		validation.Field(&r.Amount,
			validation.By(positiveAmount),
		),
	)
}

// UseCouponRequest - Request trừ tiền một coupon
type UseCouponRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (r UseCouponRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Amount, validation.By(positiveAmount)),
	)
}

// UseMultipleCouponsRequest - Request redemption trên nhiều coupon
// Thứ tự CouponIDs là thứ tự debit (caller-supplied priority)
type UseMultipleCouponsRequest struct {
	CouponIDs   []string        `json:"couponIds"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

func (r UseMultipleCouponsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CouponIDs,
			validation.Required.Error("Danh sách coupon không được để trống"),
			validation.Length(1, 50).Error("Tối đa 50 coupon mỗi lần redemption"),
		),
		validation.Field(&r.TotalAmount, validation.By(positiveAmount)),
	)
}

// RefundCouponRequest - Request hoàn tiền vào coupon
type RefundCouponRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (r RefundCouponRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Amount, validation.By(positiveAmount)),
	)
}

// notBlank reject chuỗi toàn whitespace (Required không bắt được case này)
func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "không được để trống")
	}
	return nil
}

// positiveAmount validate số tiền > 0
// (ozzo Min không so sánh được decimal.Decimal zero-value đúng cách)
func positiveAmount(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || !d.IsPositive() {
		return validation.NewError("validation_amount", "số tiền phải lớn hơn 0")
	}
	return nil
}
