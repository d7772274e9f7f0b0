package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cafepos-backend/internal/domains/coupon/model"
	"cafepos-backend/internal/domains/coupon/service"
	"cafepos-backend/internal/infrastructure/store"
	"cafepos-backend/internal/shared/response"
)

// CouponHandler xử lý các API của coupon ledger
type CouponHandler struct {
	service service.ServiceInterface
}

// NewCouponHandler tạo handler instance
func NewCouponHandler(service service.ServiceInterface) *CouponHandler {
	return &CouponHandler{service: service}
}

// CreateCoupon tạo coupon mới
// @Router /v1/coupons [post]
func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	var req model.CreateCouponRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu request không hợp lệ")
		return
	}

	coupon, err := h.service.CreateCoupon(c.Request.Context(), req, actorFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, coupon)
}

// UseCoupon trừ tiền một coupon
// @Router /v1/coupons/:id/use [post]
func (h *CouponHandler) UseCoupon(c *gin.Context) {
	var req model.UseCouponRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu request không hợp lệ")
		return
	}

	coupon, err := h.service.UseCoupon(c.Request.Context(), c.Param("id"), req.Amount, actorFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, coupon)
}

// UseMultipleCoupons redemption trên nhiều coupon
// @Router /v1/coupons/redeem [post]
func (h *CouponHandler) UseMultipleCoupons(c *gin.Context) {
	var req model.UseMultipleCouponsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu request không hợp lệ")
		return
	}

	touched, err := h.service.UseMultipleCoupons(c.Request.Context(), req.CouponIDs, req.TotalAmount, actorFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, touched)
}

// RefundCoupon hoàn tiền vào coupon
// @Router /v1/coupons/:id/refund [post]
func (h *CouponHandler) RefundCoupon(c *gin.Context) {
	var req model.RefundCouponRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu request không hợp lệ")
		return
	}

	coupon, err := h.service.RefundCouponAmount(c.Request.Context(), c.Param("id"), req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, coupon)
}

// ListCoupons danh sách coupon, mới nhất trước
// @Router /v1/coupons [get]
func (h *CouponHandler) ListCoupons(c *gin.Context) {
	coupons, err := h.service.ListCoupons(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, coupons)
}

// GetCoupon chi tiết một coupon
// @Router /v1/coupons/:id [get]
func (h *CouponHandler) GetCoupon(c *gin.Context) {
	coupon, err := h.service.GetCoupon(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, coupon)
}

// DeleteCoupon xóa coupon (admin only)
// @Router /v1/coupons/:id [delete]
func (h *CouponHandler) DeleteCoupon(c *gin.Context) {
	if err := h.service.DeleteCoupon(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// -------------------------------------------------------------------
// HELPERS
// -------------------------------------------------------------------

// actorFrom build Actor từ identity do AuthMiddleware inject
func actorFrom(c *gin.Context) model.Actor {
	return model.Actor{
		UserID:   c.GetString("user_id"),
		UserName: c.GetString("user_name"),
	}
}

// handleError map service error sang HTTP response
func (h *CouponHandler) handleError(c *gin.Context, err error) {
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
