package service

import (
	"context"

	"github.com/xuri/excelize/v2"

	"cafepos-backend/internal/domains/order/model"
)

// ServiceInterface định nghĩa business operations của order domain
type ServiceInterface interface {
	// CreateOrder tính tiền, settle thanh toán (coupon debit nếu cần),
	// trừ kho và ghi order
	CreateOrder(ctx context.Context, req model.CreateOrderRequest, actor model.Actor) (*model.Order, error)

	// ListOrders trả orders, day dạng "2006-01-02" (rỗng = tất cả)
	ListOrders(ctx context.Context, day string) ([]model.Order, error)
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)

	// CancelOrder đánh dấu order cancelled. Tiền coupon đã trừ không tự
	// hoàn, hoàn thủ công qua coupon refund API.
	CancelOrder(ctx context.Context, orderID string) (*model.Order, error)

	// ExportToExcel build file xlsx các order trong ngày
	ExportToExcel(ctx context.Context, day string) (*excelize.File, error)
}
