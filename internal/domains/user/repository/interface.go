package repository

import (
	"context"

	"cafepos-backend/internal/domains/user/model"
)

// UserRepository là data access cho users collection (local only)
type UserRepository interface {
	GetAll(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, transform func(users []model.User) ([]model.User, error)) error
}
