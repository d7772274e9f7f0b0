package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cafepos-backend/internal/domains/menu/model"
	"cafepos-backend/internal/domains/menu/repository"
	"cafepos-backend/pkg/logger"
)

// menuService xử lý business logic cho menu domain
type menuService struct {
	repo repository.MenuRepository
}

// NewMenuService tạo service instance mới
func NewMenuService(repo repository.MenuRepository) ServiceInterface {
	return &menuService{repo: repo}
}

// CreateMenuItem thêm món mới vào menu
func (s *menuService) CreateMenuItem(ctx context.Context, req model.CreateMenuItemRequest) (*model.MenuItem, error) {
	if err := req.Validate(); err != nil {
		return nil, &model.AppError{
			Code:       model.ErrCodeValidationFailed,
			Message:    err.Error(),
			HTTPStatus: 400,
		}
	}

	now := time.Now()
	item := model.MenuItem{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.Name),
		Price:     req.Price,
		Category:  strings.TrimSpace(req.Category),
		SoldOut:   false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.repo.Update(ctx, func(items []model.MenuItem) ([]model.MenuItem, error) {
		return append(items, item), nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("menu item created", map[string]interface{}{
		"item_id": item.ID,
		"name":    item.Name,
	})

	return &item, nil
}

// UpdateMenuItem sửa món, chỉ các field có mặt trong request
func (s *menuService) UpdateMenuItem(ctx context.Context, itemID string, req model.UpdateMenuItemRequest) (*model.MenuItem, error) {
	if err := req.Validate(); err != nil {
		return nil, &model.AppError{
			Code:       model.ErrCodeValidationFailed,
			Message:    err.Error(),
			HTTPStatus: 400,
		}
	}

	var result *model.MenuItem

	err := s.repo.Update(ctx, func(items []model.MenuItem) ([]model.MenuItem, error) {
		idx := indexOf(items, itemID)
		if idx < 0 {
			return nil, model.ErrMenuItemNotFound
		}

		if req.Name != nil {
			items[idx].Name = strings.TrimSpace(*req.Name)
		}
		if req.Price != nil {
			items[idx].Price = *req.Price
		}
		if req.Category != nil {
			items[idx].Category = strings.TrimSpace(*req.Category)
		}
		if req.SoldOut != nil {
			items[idx].SoldOut = *req.SoldOut
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

// SetSoldOut bật/tắt trạng thái hết hàng
func (s *menuService) SetSoldOut(ctx context.Context, itemID string, soldOut bool) (*model.MenuItem, error) {
	return s.UpdateMenuItem(ctx, itemID, model.UpdateMenuItemRequest{SoldOut: &soldOut})
}

// ListMenuItems trả về menu, optional filter theo category, sort theo tên
func (s *menuService) ListMenuItems(ctx context.Context, category string) ([]model.MenuItem, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if category != "" {
		filtered := items[:0]
		for _, item := range items {
			if strings.EqualFold(item.Category, category) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})

	return items, nil
}

// GetMenuItem lấy món theo id
func (s *menuService) GetMenuItem(ctx context.Context, itemID string) (*model.MenuItem, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if idx := indexOf(items, itemID); idx >= 0 {
		return &items[idx], nil
	}
	return nil, model.ErrMenuItemNotFound
}

// DeleteMenuItem xóa hẳn món khỏi menu
func (s *menuService) DeleteMenuItem(ctx context.Context, itemID string) error {
	return s.repo.Update(ctx, func(items []model.MenuItem) ([]model.MenuItem, error) {
		idx := indexOf(items, itemID)
		if idx < 0 {
			return nil, model.ErrMenuItemNotFound
		}
		return append(items[:idx], items[idx+1:]...), nil
	})
}

// PriceOf tra giá và tên hiện tại của món (dùng khi build order line)
func (s *menuService) PriceOf(ctx context.Context, itemID string) (decimal.Decimal, string, error) {
	item, err := s.GetMenuItem(ctx, itemID)
	if err != nil {
		return decimal.Zero, "", err
	}
	return item.Price, item.Name, nil
}

func indexOf(items []model.MenuItem, itemID string) int {
	for i := range items {
		if items[i].ID == itemID {
			return i
		}
	}
	return -1
}
