package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"cafepos-backend/internal/domains/user/model"
	"cafepos-backend/internal/domains/user/repository"
	"cafepos-backend/pkg/jwt"
	"cafepos-backend/pkg/logger"
)

// bcryptCost 12 đủ chậm cho PIN ngắn mà login trên POS vẫn dưới 1s
const bcryptCost = 12

// userService xử lý tài khoản nhân viên và đăng nhập
type userService struct {
	repo       repository.UserRepository
	jwtManager *jwt.Manager
}

// NewUserService tạo service instance mới
func NewUserService(repo repository.UserRepository, jwtManager *jwt.Manager) ServiceInterface {
	return &userService{repo: repo, jwtManager: jwtManager}
}

// CreateUser tạo tài khoản nhân viên (admin only)
func (s *userService) CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.PublicUser, error) {
	if err := req.Validate(); err != nil {
		return nil, &model.AppError{
			Code:       model.ErrCodeValidationFailed,
			Message:    err.Error(),
			HTTPStatus: 400,
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		ID:        uuid.New().String(),
		Username:  strings.ToLower(strings.TrimSpace(req.Username)),
		Name:      strings.TrimSpace(req.Name),
		Role:      req.Role,
		PINHash:   string(hash),
		CreatedAt: time.Now(),
	}

	err = s.repo.Update(ctx, func(users []model.User) ([]model.User, error) {
		for _, u := range users {
			if u.Username == user.Username {
				return nil, model.ErrUsernameTaken
			}
		}
		return append(users, user), nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("staff account created", map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     string(user.Role),
	})

	pub := user.Public()
	return &pub, nil
}

// Login xác thực username + PIN, trả cặp JWT token
func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, &model.AppError{
			Code:       model.ErrCodeValidationFailed,
			Message:    err.Error(),
			HTTPStatus: 400,
		}
	}

	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	var user *model.User
	for i := range users {
		if users[i].Username == username {
			user = &users[i]
			break
		}
	}
	if user == nil {
		return nil, model.ErrInvalidCredential
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PINHash), []byte(req.PIN)); err != nil {
		logger.Warn("failed login attempt", map[string]interface{}{
			"username": username,
		})
		return nil, model.ErrInvalidCredential
	}

	return s.buildLoginResponse(*user)
}

// Refresh đổi refresh token lấy cặp token mới
func (s *userService) Refresh(ctx context.Context, refreshToken string) (*model.LoginResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, model.ErrInvalidCredential
	}

	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.ID == claims.UserID {
			return s.buildLoginResponse(u)
		}
	}
	// user bị xóa sau khi refresh token được cấp
	return nil, model.ErrInvalidCredential
}

func (s *userService) buildLoginResponse(user model.User) (*model.LoginResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Name, string(user.Role))
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.Public(),
	}, nil
}

// ListUsers danh sách nhân viên (không kèm PIN hash)
func (s *userService) ListUsers(ctx context.Context) ([]model.PublicUser, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})

	out := make([]model.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

// DeleteUser xóa tài khoản nhân viên (admin only)
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	return s.repo.Update(ctx, func(users []model.User) ([]model.User, error) {
		for i := range users {
			if users[i].ID == userID {
				return append(users[:i], users[i+1:]...), nil
			}
		}
		return nil, model.ErrUserNotFound
	})
}

// EnsureDefaultAdmin bootstrap tài khoản admin khi users collection trống
func (s *userService) EnsureDefaultAdmin(ctx context.Context, username, pin string) error {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	_, err = s.CreateUser(ctx, model.CreateUserRequest{
		Username: username,
		Name:     "Admin",
		PIN:      pin,
		Role:     model.RoleAdmin,
	})
	if err != nil {
		return err
	}

	logger.Warn("default admin account created, change the PIN after first login", map[string]interface{}{
		"username": username,
	})
	return nil
}
