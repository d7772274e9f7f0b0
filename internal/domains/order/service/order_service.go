package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	couponmodel "cafepos-backend/internal/domains/coupon/model"
	couponservice "cafepos-backend/internal/domains/coupon/service"
	inventoryservice "cafepos-backend/internal/domains/inventory/service"
	menuservice "cafepos-backend/internal/domains/menu/service"
	"cafepos-backend/internal/domains/order/model"
	"cafepos-backend/internal/domains/order/repository"
	"cafepos-backend/pkg/logger"
)

const dayLayout = "2006-01-02"

// orderService xử lý business logic cho order domain
type orderService struct {
	repo      repository.OrderRepository
	menu      menuservice.ServiceInterface
	inventory inventoryservice.ServiceInterface
	coupons   couponservice.ServiceInterface
}

// NewOrderService tạo service instance mới
func NewOrderService(
	repo repository.OrderRepository,
	menu menuservice.ServiceInterface,
	inventory inventoryservice.ServiceInterface,
	coupons couponservice.ServiceInterface,
) ServiceInterface {
	return &orderService{
		repo:      repo,
		menu:      menu,
		inventory: inventory,
		coupons:   coupons,
	}
}

// CreateOrder là main flow khi cashier bấm thanh toán
//
// Business Flow:
// 1. Validate request
// 2. Build order lines: snapshot giá + tên món từ menu hiện tại
// 3. Tính tổng tiền
// 4. Thanh toán coupon → debit qua coupon ledger TRƯỚC khi ghi order;
//    ledger reject (không đủ số dư...) thì order không được tạo
// 5. Ghi order với order number theo ngày
// 6. Trừ kho nguyên liệu best-effort (lỗi kho không rollback order)
func (s *orderService) CreateOrder(ctx context.Context, req model.CreateOrderRequest, actor model.Actor) (*model.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, &model.AppError{
			Code:       model.ErrCodeValidationFailed,
			Message:    err.Error(),
			HTTPStatus: 400,
		}
	}

	// Step 2: snapshot giá từng món
	lines := make([]model.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		price, name, err := s.menu.PriceOf(ctx, item.MenuID)
		if err != nil {
			return nil, &model.AppError{
				Code:       model.ErrCodeValidationFailed,
				Message:    fmt.Sprintf("Món %s không tồn tại trên menu", item.MenuID),
				HTTPStatus: 400,
			}
		}
		lines = append(lines, model.OrderLine{
			MenuID:   item.MenuID,
			Name:     name,
			Price:    price,
			Quantity: item.Quantity,
		})
	}

	// Step 3
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.LineTotal())
	}

	// Step 4: settle coupon trước khi order tồn tại
	var usedCouponIDs []string
	if req.PaymentMethod == model.PaymentCoupon {
		touched, err := s.coupons.UseMultipleCoupons(ctx, req.CouponIDs, total,
			couponmodel.Actor{UserID: actor.UserID, UserName: actor.UserName})
		if err != nil {
			return nil, err
		}
		for _, c := range touched {
			usedCouponIDs = append(usedCouponIDs, c.ID)
		}
	}

	now := time.Now()
	order := model.Order{
		ID:            uuid.New().String(),
		Items:         lines,
		TotalAmount:   total,
		PaymentMethod: req.PaymentMethod,
		CouponIDs:     usedCouponIDs,
		Status:        model.StatusCompleted,
		CreatedAt:     now,
		ServedBy:      actor,
	}

	// Step 5: order number sinh trong critical section để không trùng
	err := s.repo.Update(ctx, func(orders []model.Order) ([]model.Order, error) {
		order.OrderNumber = nextOrderNumber(orders, now)
		return append(orders, order), nil
	})
	if err != nil {
		return nil, err
	}

	// Step 6: trừ kho, lỗi chỉ log
	for _, l := range lines {
		if err := s.inventory.ConsumeForMenu(ctx, l.MenuID, l.Quantity); err != nil {
			logger.Error("inventory consume failed", err, map[string]interface{}{
				"order_id": order.ID,
				"menu_id":  l.MenuID,
			})
		}
	}

	logger.Info("order created", map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"total":        order.TotalAmount,
		"payment":      string(order.PaymentMethod),
		"by":           actor.UserID,
	})

	return &order, nil
}

// nextOrderNumber sinh số thứ tự YYYYMMDD-NNN, đếm lại từ 001 mỗi ngày
func nextOrderNumber(orders []model.Order, now time.Time) string {
	prefix := now.Format("20060102")

	seq := 0
	for _, o := range orders {
		if strings.HasPrefix(o.OrderNumber, prefix+"-") {
			seq++
		}
	}

	return fmt.Sprintf("%s-%03d", prefix, seq+1)
}

// ListOrders trả orders mới nhất trước, optional filter theo ngày
func (s *orderService) ListOrders(ctx context.Context, day string) ([]model.Order, error) {
	orders, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if day != "" {
		parsed, err := time.ParseInLocation(dayLayout, day, time.Local)
		if err != nil {
			return nil, &model.AppError{
				Code:       model.ErrCodeValidationFailed,
				Message:    "Ngày phải theo dạng YYYY-MM-DD",
				HTTPStatus: 400,
			}
		}

		filtered := orders[:0]
		for _, o := range orders {
			if sameDay(o.CreatedAt, parsed) {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return orders, nil
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Local().Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// GetOrder lấy order theo id
func (s *orderService) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	orders, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID == orderID {
			return &orders[i], nil
		}
	}
	return nil, model.ErrOrderNotFound
}

// CancelOrder đánh dấu order cancelled (record giữ nguyên cho đối soát)
func (s *orderService) CancelOrder(ctx context.Context, orderID string) (*model.Order, error) {
	var result *model.Order

	err := s.repo.Update(ctx, func(orders []model.Order) ([]model.Order, error) {
		for i := range orders {
			if orders[i].ID != orderID {
				continue
			}
			if orders[i].Status == model.StatusCancelled {
				return nil, model.ErrOrderAlreadyCancelled
			}

			orders[i].Status = model.StatusCancelled
			o := orders[i]
			result = &o
			return orders, nil
		}
		return nil, model.ErrOrderNotFound
	})
	if err != nil {
		return nil, err
	}

	logger.Info("order cancelled", map[string]interface{}{
		"order_id": orderID,
	})

	return result, nil
}
