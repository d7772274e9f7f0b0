package repository

import (
	"context"

	"cafepos-backend/internal/domains/order/model"
)

// OrderRepository là data access cho orders collection
type OrderRepository interface {
	GetAll(ctx context.Context) ([]model.Order, error)
	Update(ctx context.Context, transform func(orders []model.Order) ([]model.Order, error)) error
}
