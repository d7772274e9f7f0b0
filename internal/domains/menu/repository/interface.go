package repository

import (
	"context"

	"cafepos-backend/internal/domains/menu/model"
)

// MenuRepository là data access cho menu collection
type MenuRepository interface {
	GetAll(ctx context.Context) ([]model.MenuItem, error)
	Update(ctx context.Context, transform func(items []model.MenuItem) ([]model.MenuItem, error)) error
}
