package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod - cách khách thanh toán order
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCoupon PaymentMethod = "coupon"
)

// OrderStatus - vòng đời order
type OrderStatus string

const (
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// Actor là identity nhân viên tạo order
type Actor struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

// OrderLine là một món trong order; price snapshot tại thời điểm bán,
// menu đổi giá sau đó không ảnh hưởng order cũ
type OrderLine struct {
	MenuID   string          `json:"menuId"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// LineTotal = price * quantity
func (l OrderLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order là một giao dịch bán hàng đã hoàn tất
type Order struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"orderNumber"` // YYYYMMDD-NNN, reset theo ngày
	Items       []OrderLine     `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`

	PaymentMethod PaymentMethod `json:"paymentMethod"`
	// CouponIDs chỉ set khi PaymentMethod == coupon, theo thứ tự debit
	CouponIDs []string `json:"couponIds,omitempty"`

	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	ServedBy  Actor       `json:"servedBy"`
}
