package model

import "time"

// InventoryItem là một nguyên liệu trong kho
type InventoryItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"` // đơn vị đếm theo Unit, cho phép về 0
	Unit     string `json:"unit"`     // kg / hộp / chai / ...

	// LowStockThreshold: quantity <= ngưỡng này thì món nằm trong low-stock list
	LowStockThreshold int `json:"lowStockThreshold"`

	// RelatedMenuIDs liên kết nguyên liệu với các món dùng nó;
	// bán một món thì trừ kho mọi nguyên liệu liên quan
	RelatedMenuIDs []string `json:"relatedMenuIds,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LowStock kiểm tra nguyên liệu có dưới ngưỡng cảnh báo không
func (i *InventoryItem) LowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}

// UsedByMenu kiểm tra nguyên liệu có gắn với món menuID không
func (i *InventoryItem) UsedByMenu(menuID string) bool {
	for _, id := range i.RelatedMenuIDs {
		if id == menuID {
			return true
		}
	}
	return false
}
