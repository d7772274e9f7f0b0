package service

import (
	"context"

	"cafepos-backend/internal/domains/user/model"
)

// ServiceInterface định nghĩa business operations của user domain
type ServiceInterface interface {
	CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.PublicUser, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*model.LoginResponse, error)
	ListUsers(ctx context.Context) ([]model.PublicUser, error)
	DeleteUser(ctx context.Context, userID string) error

	// EnsureDefaultAdmin tạo tài khoản admin đầu tiên khi store trống
	// (máy POS mới setup phải login được ngay)
	EnsureDefaultAdmin(ctx context.Context, username, pin string) error
}
