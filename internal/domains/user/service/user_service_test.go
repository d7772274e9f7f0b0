package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafepos-backend/internal/domains/user/model"
	"cafepos-backend/internal/domains/user/repository"
	"cafepos-backend/internal/infrastructure/store"
	"cafepos-backend/pkg/jwt"
)

func newTestService(t *testing.T) ServiceInterface {
	t.Helper()

	s, err := store.New(t.TempDir())
	require.NoError(t, err)

	manager := jwt.NewManager("test-secret", 15, 72)
	return NewUserService(repository.NewStoreRepository(s), manager)
}

func TestCreateUserAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, model.CreateUserRequest{
		Username: "Minh",
		Name:     "Minh",
		PIN:      "4321",
		Role:     model.RoleStaff,
	})
	require.NoError(t, err)
	assert.Equal(t, "minh", created.Username) // lowercase hóa

	t.Run("login with correct PIN", func(t *testing.T) {
		resp, err := svc.Login(ctx, model.LoginRequest{Username: "minh", PIN: "4321"})
		require.NoError(t, err)

		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, created.ID, resp.User.ID)
	})

	t.Run("wrong PIN rejected", func(t *testing.T) {
		_, err := svc.Login(ctx, model.LoginRequest{Username: "minh", PIN: "0000"})
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, model.ErrCodeInvalidCredential, appErr.Code)
	})

	t.Run("unknown username gets same error as wrong PIN", func(t *testing.T) {
		_, err := svc.Login(ctx, model.LoginRequest{Username: "ghost", PIN: "4321"})
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, model.ErrCodeInvalidCredential, appErr.Code)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, model.CreateUserRequest{
			Username: "MINH",
			Name:     "Minh 2",
			PIN:      "1111",
			Role:     model.RoleStaff,
		})
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, model.ErrCodeUsernameTaken, appErr.Code)
	})
}

func TestCreateUserValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cases := []model.CreateUserRequest{
		{Username: "ok", Name: "x", PIN: "12", Role: model.RoleStaff},       // PIN quá ngắn
		{Username: "ok", Name: "x", PIN: "abcd", Role: model.RoleStaff},     // PIN không phải số
		{Username: "ok", Name: "x", PIN: "1234", Role: model.Role("boss")},  // role lạ
		{Username: "a", Name: "x", PIN: "1234", Role: model.RoleStaff},      // username quá ngắn
		{Username: "ok", Name: "   ", PIN: "1234", Role: model.RoleStaff},   // tên blank
	}

	for i, req := range cases {
		_, err := svc.CreateUser(ctx, req)
		assert.Error(t, err, "case %d", i)
	}
}

func TestRefresh(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, model.CreateUserRequest{
		Username: "minh",
		Name:     "Minh",
		PIN:      "4321",
		Role:     model.RoleStaff,
	})
	require.NoError(t, err)

	login, err := svc.Login(ctx, model.LoginRequest{Username: "minh", PIN: "4321"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, login.User.ID, refreshed.User.ID)

	// access token không dùng làm refresh token được
	_, err = svc.Refresh(ctx, login.AccessToken)
	assert.Error(t, err)
}

func TestEnsureDefaultAdmin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureDefaultAdmin(ctx, "admin", "123456"))

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, model.RoleAdmin, users[0].Role)

	// idempotent: đã có user thì không tạo thêm
	require.NoError(t, svc.EnsureDefaultAdmin(ctx, "admin", "123456"))
	users, err = svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
