package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateInventoryItemRequest - Request thêm nguyên liệu mới
type CreateInventoryItemRequest struct {
	Name              string   `json:"name"`
	Quantity          int      `json:"quantity"`
	Unit              string   `json:"unit"`
	LowStockThreshold int      `json:"lowStockThreshold"`
	RelatedMenuIDs    []string `json:"relatedMenuIds"`
}

func (r CreateInventoryItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("Tên nguyên liệu không được để trống"),
			validation.By(notBlank),
			validation.Length(1, 100).Error("Tên nguyên liệu tối đa 100 ký tự"),
		),
		validation.Field(&r.Quantity,
			validation.Min(0).Error("Số lượng không được âm"),
		),
		validation.Field(&r.LowStockThreshold,
			validation.Min(0).Error("Ngưỡng cảnh báo không được âm"),
		),
	)
}

// UpdateInventoryItemRequest - Request sửa nguyên liệu, field nil giữ nguyên
type UpdateInventoryItemRequest struct {
	Name              *string   `json:"name"`
	Unit              *string   `json:"unit"`
	LowStockThreshold *int      `json:"lowStockThreshold"`
	RelatedMenuIDs    *[]string `json:"relatedMenuIds"`
}

// AdjustQuantityRequest - Request cộng/trừ tồn kho (delta âm = xuất kho)
type AdjustQuantityRequest struct {
	Delta int `json:"delta"`
}

func (r AdjustQuantityRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Delta,
			validation.Required.Error("Delta không được bằng 0"),
		),
	)
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "không được để trống")
	}
	return nil
}
