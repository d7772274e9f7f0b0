package service

import (
	"context"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"cafepos-backend/internal/domains/menu/model"
)

// ServiceInterface định nghĩa business operations của menu domain
type ServiceInterface interface {
	CreateMenuItem(ctx context.Context, req model.CreateMenuItemRequest) (*model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, itemID string, req model.UpdateMenuItemRequest) (*model.MenuItem, error)
	SetSoldOut(ctx context.Context, itemID string, soldOut bool) (*model.MenuItem, error)
	ListMenuItems(ctx context.Context, category string) ([]model.MenuItem, error)
	GetMenuItem(ctx context.Context, itemID string) (*model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, itemID string) error

	// PriceOf tra giá hiện tại của một món (order service dùng khi tính tiền)
	PriceOf(ctx context.Context, itemID string) (decimal.Decimal, string, error)

	// ImportFromExcel đọc file xlsx (header + mỗi row một món) và thêm hàng loạt
	ImportFromExcel(ctx context.Context, file io.Reader) (*model.ImportResult, error)

	// ExportToExcel build file xlsx chứa toàn bộ menu
	ExportToExcel(ctx context.Context) (*excelize.File, error)
}
