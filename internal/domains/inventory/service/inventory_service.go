package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"cafepos-backend/internal/domains/inventory/model"
	"cafepos-backend/internal/domains/inventory/repository"
	"cafepos-backend/pkg/logger"
)

// inventoryService xử lý business logic cho kho nguyên liệu
type inventoryService struct {
	repo repository.InventoryRepository
}

// NewInventoryService tạo service instance mới
func NewInventoryService(repo repository.InventoryRepository) ServiceInterface {
	return &inventoryService{repo: repo}
}

// CreateItem thêm nguyên liệu mới
func (s *inventoryService) CreateItem(ctx context.Context, req model.CreateInventoryItemRequest) (*model.InventoryItem, error) {
	if err := req.Validate(); err != nil {
		return nil, &model.AppError{
			Code:       model.ErrCodeValidationFailed,
			Message:    err.Error(),
			HTTPStatus: 400,
		}
	}

	now := time.Now()
	item := model.InventoryItem{
		ID:                uuid.New().String(),
		Name:              strings.TrimSpace(req.Name),
		Quantity:          req.Quantity,
		Unit:              strings.TrimSpace(req.Unit),
		LowStockThreshold: req.LowStockThreshold,
		RelatedMenuIDs:    req.RelatedMenuIDs,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err := s.repo.Update(ctx, func(items []model.InventoryItem) ([]model.InventoryItem, error) {
		return append(items, item), nil
	})
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// UpdateItem sửa metadata nguyên liệu (số lượng đổi qua AdjustQuantity)
func (s *inventoryService) UpdateItem(ctx context.Context, itemID string, req model.UpdateInventoryItemRequest) (*model.InventoryItem, error) {
	var result *model.InventoryItem

	err := s.repo.Update(ctx, func(items []model.InventoryItem) ([]model.InventoryItem, error) {
		idx := indexOf(items, itemID)
		if idx < 0 {
			return nil, model.ErrItemNotFound
		}

		if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
			items[idx].Name = strings.TrimSpace(*req.Name)
		}
		if req.Unit != nil {
			items[idx].Unit = strings.TrimSpace(*req.Unit)
		}
		if req.LowStockThreshold != nil && *req.LowStockThreshold >= 0 {
			items[idx].LowStockThreshold = *req.LowStockThreshold
		}
		if req.RelatedMenuIDs != nil {
			items[idx].RelatedMenuIDs = *req.RelatedMenuIDs
		}
		items[idx].UpdatedAt = time.Now()

		item := items[idx]
		result = &item
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// AdjustQuantity cộng/trừ tồn kho. Kết quả âm bị clamp về 0
// (kho vật lý không có số âm, bán quá tay chỉ ghi nhận về 0).
func (s *inventoryService) AdjustQuantity(ctx context.Context, itemID string, delta int) (*model.InventoryItem, error) {
	var result *model.InventoryItem

	err := s.repo.Update(ctx, func(items []model.InventoryItem) ([]model.InventoryItem, error) {
		idx := indexOf(items, itemID)
		if idx < 0 {
			return nil, model.ErrItemNotFound
		}

		items[idx].Quantity += delta
		if items[idx].Quantity < 0 {
			items[idx].Quantity = 0
		}
		items[idx].UpdatedAt = time.Now()

		if items[idx].LowStock() {
			logger.Warn("inventory item low on stock", map[string]interface{}{
				"item_id":  items[idx].ID,
				"name":     items[idx].Name,
				"quantity": items[idx].Quantity,
			})
		}

		item := items[idx]
		result = &item
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ConsumeForMenu trừ kho khi bán món: mọi nguyên liệu gắn với menuID
// trừ count đơn vị, clamp về 0
func (s *inventoryService) ConsumeForMenu(ctx context.Context, menuID string, count int) error {
	if count <= 0 {
		return nil
	}

	return s.repo.Update(ctx, func(items []model.InventoryItem) ([]model.InventoryItem, error) {
		now := time.Now()
		for i := range items {
			if !items[i].UsedByMenu(menuID) {
				continue
			}

			items[i].Quantity -= count
			if items[i].Quantity < 0 {
				items[i].Quantity = 0
			}
			items[i].UpdatedAt = now

			if items[i].LowStock() {
				logger.Warn("inventory item low on stock", map[string]interface{}{
					"item_id":  items[i].ID,
					"name":     items[i].Name,
					"quantity": items[i].Quantity,
				})
			}
		}
		return items, nil
	})
}

// ListItems trả về toàn bộ kho, sort theo tên
func (s *inventoryService) ListItems(ctx context.Context) ([]model.InventoryItem, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items, nil
}

// ListLowStock trả về các nguyên liệu dưới ngưỡng cảnh báo
func (s *inventoryService) ListLowStock(ctx context.Context) ([]model.InventoryItem, error) {
	items, err := s.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	low := make([]model.InventoryItem, 0)
	for _, item := range items {
		if item.LowStock() {
			low = append(low, item)
		}
	}
	return low, nil
}

// GetItem lấy nguyên liệu theo id
func (s *inventoryService) GetItem(ctx context.Context, itemID string) (*model.InventoryItem, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if idx := indexOf(items, itemID); idx >= 0 {
		return &items[idx], nil
	}
	return nil, model.ErrItemNotFound
}

// DeleteItem xóa nguyên liệu khỏi kho
func (s *inventoryService) DeleteItem(ctx context.Context, itemID string) error {
	return s.repo.Update(ctx, func(items []model.InventoryItem) ([]model.InventoryItem, error) {
		idx := indexOf(items, itemID)
		if idx < 0 {
			return nil, model.ErrItemNotFound
		}
		return append(items[:idx], items[idx+1:]...), nil
	})
}

func indexOf(items []model.InventoryItem, itemID string) int {
	for i := range items {
		if items[i].ID == itemID {
			return i
		}
	}
	return -1
}
