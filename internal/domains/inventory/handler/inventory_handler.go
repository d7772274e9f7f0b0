package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cafepos-backend/internal/domains/inventory/model"
	"cafepos-backend/internal/domains/inventory/service"
	"cafepos-backend/internal/infrastructure/store"
	"cafepos-backend/internal/shared/response"
)

// InventoryHandler xử lý các API của inventory domain
type InventoryHandler struct {
	service service.ServiceInterface
}

// NewInventoryHandler tạo handler instance
func NewInventoryHandler(service service.ServiceInterface) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// CreateItem thêm nguyên liệu
// @Router /v1/inventory [post]
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req model.CreateInventoryItemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu request không hợp lệ")
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, item)
}

// UpdateItem sửa nguyên liệu
// @Router /v1/inventory/:id [patch]
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	var req model.UpdateInventoryItemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu request không hợp lệ")
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

// AdjustQuantity nhập/xuất kho thủ công
// @Router /v1/inventory/:id/adjust [post]
func (h *InventoryHandler) AdjustQuantity(c *gin.Context) {
	var req model.AdjustQuantityRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu request không hợp lệ")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.service.AdjustQuantity(c.Request.Context(), c.Param("id"), req.Delta)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

// ListItems toàn bộ kho
// @Router /v1/inventory [get]
func (h *InventoryHandler) ListItems(c *gin.Context) {
	items, err := h.service.ListItems(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, items)
}

// ListLowStock các nguyên liệu dưới ngưỡng cảnh báo
// @Router /v1/inventory/low-stock [get]
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	items, err := h.service.ListLowStock(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, items)
}

// GetItem chi tiết nguyên liệu
// @Router /v1/inventory/:id [get]
func (h *InventoryHandler) GetItem(c *gin.Context) {
	item, err := h.service.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

// DeleteItem xóa nguyên liệu (admin only)
// @Router /v1/inventory/:id [delete]
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	if err := h.service.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// handleError map service error sang HTTP response
func (h *InventoryHandler) handleError(c *gin.Context, err error) {
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
