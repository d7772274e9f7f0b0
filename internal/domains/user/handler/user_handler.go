package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cafepos-backend/internal/domains/user/model"
	"cafepos-backend/internal/domains/user/service"
	"cafepos-backend/internal/infrastructure/store"
	"cafepos-backend/internal/shared/response"
)

// UserHandler xử lý đăng nhập và quản lý tài khoản nhân viên
type UserHandler struct {
	service service.ServiceInterface
}

// NewUserHandler tạo handler instance
func NewUserHandler(service service.ServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// Login đăng nhập bằng username + PIN
// @Router /v1/auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu request không hợp lệ")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Refresh cấp lại access token từ refresh token
// @Router /v1/auth/refresh [post]
func (h *UserHandler) Refresh(c *gin.Context) {
	var req model.RefreshRequest

	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		response.BadRequest(c, "Thiếu refresh token")
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Me trả identity của nhân viên đang đăng nhập
// @Router /v1/auth/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"userId":   c.GetString("user_id"),
		"userName": c.GetString("user_name"),
		"role":     c.GetString("role"),
	})
}

// CreateUser tạo tài khoản nhân viên (admin only)
// @Router /v1/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req model.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu request không hợp lệ")
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, user)
}

// ListUsers danh sách nhân viên (admin only)
// @Router /v1/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, users)
}

// DeleteUser xóa tài khoản (admin only)
// @Router /v1/users/:id [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.service.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// handleError map service error sang HTTP response
func (h *UserHandler) handleError(c *gin.Context, err error) {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		response.ErrorWithDetails(c, appErr.HTTPStatus, string(appErr.Code), appErr.Message, appErr.Details)
		return
	}

	if errors.Is(err, store.ErrPersistence) {
		response.ErrorResponse(c, http.StatusInternalServerError, "STORE_IO_FAILED", err.Error())
		return
	}

	response.InternalServerError(c, err.Error())
}
