package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// CreateMenuItemRequest - Request thêm món mới
type CreateMenuItemRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

func (r CreateMenuItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("Tên món không được để trống"),
			validation.By(notBlank),
			validation.Length(1, 100).Error("Tên món tối đa 100 ký tự"),
		),
		validation.Field(&r.Price, validation.By(nonNegativeAmount)),
		validation.Field(&r.Category,
			validation.Length(0, 50).Error("Category tối đa 50 ký tự"),
		),
	)
}

// UpdateMenuItemRequest - Request sửa món, field nil giữ nguyên giá trị cũ
type UpdateMenuItemRequest struct {
	Name     *string          `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Category *string          `json:"category"`
	SoldOut  *bool            `json:"soldOut"`
}

func (r UpdateMenuItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.By(func(v interface{}) error {
			s, _ := v.(*string)
			if s == nil {
				return nil
			}
			return notBlank(*s)
		})),
		validation.Field(&r.Price, validation.By(func(v interface{}) error {
			d, _ := v.(*decimal.Decimal)
			if d == nil {
				return nil
			}
			return nonNegativeAmount(*d)
		})),
	)
}

// ImportResult tổng hợp kết quả bulk import từ file Excel
type ImportResult struct {
	TotalRows int           `json:"totalRows"`
	Imported  int           `json:"imported"`
	Errors    []ImportError `json:"errors,omitempty"`
}

// ImportError là một row bị reject khi import
type ImportError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// notBlank reject chuỗi toàn whitespace
func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "không được để trống")
	}
	return nil
}

// nonNegativeAmount - giá món cho phép 0 (món tặng kèm), cấm âm
func nonNegativeAmount(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || d.IsNegative() {
		return validation.NewError("validation_amount", "giá không được âm")
	}
	return nil
}
