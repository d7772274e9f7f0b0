package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cafepos-backend/internal/domains/menu/model"
	"cafepos-backend/internal/domains/menu/service"
	"cafepos-backend/internal/infrastructure/store"
	"cafepos-backend/internal/shared/response"
)

// MenuHandler xử lý các API của menu domain
type MenuHandler struct {
	service service.ServiceInterface
}

// NewMenuHandler tạo handler instance
func NewMenuHandler(service service.ServiceInterface) *MenuHandler {
	return &MenuHandler{service: service}
}

// CreateMenuItem thêm món mới
// @Router /v1/menu [post]
func (h *MenuHandler) CreateMenuItem(c *gin.Context) {
	var req model.CreateMenuItemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu request không hợp lệ")
		return
	}

	item, err := h.service.CreateMenuItem(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, item)
}

// UpdateMenuItem sửa món
// @Router /v1/menu/:id [patch]
func (h *MenuHandler) UpdateMenuItem(c *gin.Context) {
	var req model.UpdateMenuItemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu request không hợp lệ")
		return
	}

	item, err := h.service.UpdateMenuItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

// SetSoldOut bật/tắt hết hàng
// @Router /v1/menu/:id/sold-out [post]
func (h *MenuHandler) SetSoldOut(c *gin.Context) {
	var req struct {
		SoldOut bool `json:"soldOut"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu request không hợp lệ")
		return
	}

	item, err := h.service.SetSoldOut(c.Request.Context(), c.Param("id"), req.SoldOut)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

// ListMenuItems danh sách món, optional ?category=
// @Router /v1/menu [get]
func (h *MenuHandler) ListMenuItems(c *gin.Context) {
	items, err := h.service.ListMenuItems(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, items)
}

// GetMenuItem chi tiết món
// @Router /v1/menu/:id [get]
func (h *MenuHandler) GetMenuItem(c *gin.Context) {
	item, err := h.service.GetMenuItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

// DeleteMenuItem xóa món (admin only)
// @Router /v1/menu/:id [delete]
func (h *MenuHandler) DeleteMenuItem(c *gin.Context) {
	if err := h.service.DeleteMenuItem(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// ImportMenu bulk import món từ file xlsx (multipart field "file")
// @Router /v1/menu/import [post]
func (h *MenuHandler) ImportMenu(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Thiếu file upload")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Không mở được file upload")
		return
	}
	defer file.Close()

	result, err := h.service.ImportFromExcel(c.Request.Context(), file)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ExportMenu stream file xlsx chứa toàn bộ menu
// @Router /v1/menu/export [get]
func (h *MenuHandler) ExportMenu(c *gin.Context) {
	f, err := h.service.ExportToExcel(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	filename := fmt.Sprintf("menu_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := f.Write(c.Writer); err != nil {
		response.InternalServerError(c, "Không ghi được file export")
	}
}

// handleError map service error sang HTTP response
func (h *MenuHandler) handleError(c *gin.Context, err error) {
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
