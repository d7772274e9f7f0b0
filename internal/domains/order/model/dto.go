package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateOrderLine là một món trong request tạo order
type CreateOrderLine struct {
	MenuID   string `json:"menuId"`
	Quantity int    `json:"quantity"`
}

// CreateOrderRequest - Request tạo order mới.
// Thanh toán coupon thì CouponIDs là thứ tự ưu tiên trừ tiền.
type CreateOrderRequest struct {
	Items         []CreateOrderLine `json:"items"`
	PaymentMethod PaymentMethod     `json:"paymentMethod"`
	CouponIDs     []string          `json:"couponIds"`
}

func (r CreateOrderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Items,
			validation.Required.Error("Order phải có ít nhất một món"),
			validation.Length(1, 100).Error("Tối đa 100 dòng mỗi order"),
			validation.By(validLines),
		),
		validation.Field(&r.PaymentMethod,
			validation.Required.Error("Thiếu phương thức thanh toán"),
			validation.In(PaymentCash, PaymentCoupon).Error("Phương thức thanh toán không hợp lệ"),
		),
		validation.Field(&r.CouponIDs, validation.By(func(interface{}) error {
			if r.PaymentMethod == PaymentCoupon && len(r.CouponIDs) == 0 {
				return validation.NewError("validation_coupons", "thanh toán coupon phải kèm danh sách coupon")
			}
			return nil
		})),
	)
}

func validLines(value interface{}) error {
	lines, _ := value.([]CreateOrderLine)
	for _, l := range lines {
		if l.MenuID == "" {
			return validation.NewError("validation_line", "dòng order thiếu menuId")
		}
		if l.Quantity <= 0 {
			return validation.NewError("validation_line", "số lượng mỗi dòng phải lớn hơn 0")
		}
	}
	return nil
}
