package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	couponmodel "cafepos-backend/internal/domains/coupon/model"
	"cafepos-backend/internal/domains/order/model"
	"cafepos-backend/internal/domains/order/service"
	"cafepos-backend/internal/infrastructure/store"
	"cafepos-backend/internal/shared/response"
)

// OrderHandler xử lý các API của order domain
type OrderHandler struct {
	service service.ServiceInterface
}

// NewOrderHandler tạo handler instance
func NewOrderHandler(service service.ServiceInterface) *OrderHandler {
	return &OrderHandler{service: service}
}

// CreateOrder tạo order mới (thanh toán tại quầy)
// @Router /v1/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req model.CreateOrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu request không hợp lệ")
		return
	}

	actor := model.Actor{
		UserID:   c.GetString("user_id"),
		UserName: c.GetString("user_name"),
	}

	order, err := h.service.CreateOrder(c.Request.Context(), req, actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, order)
}

// ListOrders danh sách order, optional ?day=YYYY-MM-DD
// @Router /v1/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.service.ListOrders(c.Request.Context(), c.Query("day"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, orders)
}

// GetOrder chi tiết order
// @Router /v1/orders/:id [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.service.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, order)
}

// CancelOrder hủy order
// @Router /v1/orders/:id/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	order, err := h.service.CancelOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, order)
}

// ExportOrders stream file xlsx order trong ngày, optional ?day=YYYY-MM-DD
// @Router /v1/orders/export [get]
func (h *OrderHandler) ExportOrders(c *gin.Context) {
	day := c.Query("day")

	f, err := h.service.ExportToExcel(c.Request.Context(), day)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if day == "" {
		day = time.Now().Format("2006-01-02")
	}
	filename := fmt.Sprintf("orders_%s.xlsx", day)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := f.Write(c.Writer); err != nil {
		response.InternalServerError(c, "Không ghi được file export")
	}
}

// handleError map service error sang HTTP response.
// Order flow gọi sang coupon ledger nên error có thể là coupon AppError.
func (h *OrderHandler) handleError(c *gin.Context, err error) {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		response.ErrorWithDetails(c, appErr.HTTPStatus, string(appErr.Code), appErr.Message, appErr.Details)
		return
	}

	var couponErr *couponmodel.AppError
	if errors.As(err, &couponErr) {
		response.ErrorWithDetails(c, couponErr.HTTPStatus, string(couponErr.Code), couponErr.Message, couponErr.Details)
		return
	}

	if errors.Is(err, store.ErrPersistence) {
		response.ErrorResponse(c, http.StatusInternalServerError, "STORE_IO_FAILED", err.Error())
		return
	}

	response.InternalServerError(c, err.Error())
}
