package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem là một món trên menu quán
type MenuItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"` // coffee / tea / dessert / ...

	// SoldOut ẩn món khỏi màn hình order, không xóa record
	SoldOut bool `json:"soldOut"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
