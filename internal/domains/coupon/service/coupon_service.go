package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cafepos-backend/internal/domains/coupon/model"
	"cafepos-backend/internal/domains/coupon/repository"
	"cafepos-backend/pkg/logger"
)

// couponService xử lý business logic cho coupon ledger
type couponService struct {
	repo repository.CouponRepository
}

// NewCouponService tạo service instance mới
func NewCouponService(repo repository.CouponRepository) ServiceInterface {
	return &couponService{repo: repo}
}

// -------------------------------------------------------------------
// CREATE
// -------------------------------------------------------------------

// CreateCoupon tạo coupon mới
//
// Validation: name không blank, amount > 0 - reject TRƯỚC mọi mutation.
// Coupon mới có balance = amount, isUsed = false, createdBy = actor.
func (s *couponService) CreateCoupon(ctx context.Context, req model.CreateCouponRequest, actor model.Actor) (*model.Coupon, error) {
	if err := req.Validate(); err != nil {
		return nil, &model.AppError{
			Code:       model.ErrCodeValidationFailed,
			Message:    err.Error(),
			HTTPStatus: 400,
		}
	}

	coupon := model.Coupon{
		ID:        uuid.New().String(),
		Code:      strings.TrimSpace(req.Name),
		Amount:    req.Amount,
		Balance:   req.Amount,
		IsUsed:    false,
		CreatedAt: time.Now(),
		CreatedBy: actor,
	}

	err := s.repo.Update(ctx, func(coupons []model.Coupon) ([]model.Coupon, error) {
		return append(coupons, coupon), nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("coupon created", map[string]interface{}{
		"coupon_id": coupon.ID,
		"code":      coupon.Code,
		"amount":    coupon.Amount,
		"by":        actor.UserID,
	})

	return &coupon, nil
}

// -------------------------------------------------------------------
// DEBIT
// -------------------------------------------------------------------

// UseCoupon trừ amount khỏi một coupon
//
// Coupon phải usable (!isUsed && balance > 0); amount > balance → reject.
// Balance chạm đúng 0 → isUsed = true + usedAt/usedBy.
func (s *couponService) UseCoupon(ctx context.Context, couponID string, amount decimal.Decimal, actor model.Actor) (*model.Coupon, error) {
	if !amount.IsPositive() {
		return nil, &model.AppError{
			Code:       model.ErrCodeValidationFailed,
			Message:    "Số tiền trừ phải lớn hơn 0",
			HTTPStatus: 400,
		}
	}

	var result *model.Coupon

	err := s.repo.Update(ctx, func(coupons []model.Coupon) ([]model.Coupon, error) {
		idx := -1
		for i := range coupons {
			if coupons[i].ID == couponID && coupons[i].Usable() {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, model.ErrCouponNotFound
		}

		if amount.GreaterThan(coupons[idx].Balance) {
			return nil, model.ErrInsufficientBalance.WithDetails(map[string]interface{}{
				"balance":   coupons[idx].Balance,
				"requested": amount,
			})
		}

		debit(&coupons[idx], amount, actor, time.Now())

		c := coupons[idx]
		result = &c
		return coupons, nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// UseMultipleCoupons redemption trên nhiều coupon - thuật toán ở ledger.go
func (s *couponService) UseMultipleCoupons(ctx context.Context, couponIDs []string, totalAmount decimal.Decimal, actor model.Actor) ([]model.Coupon, error) {
	req := model.UseMultipleCouponsRequest{CouponIDs: couponIDs, TotalAmount: totalAmount}
	if err := req.Validate(); err != nil {
		return nil, &model.AppError{
			Code:       model.ErrCodeValidationFailed,
			Message:    err.Error(),
			HTTPStatus: 400,
		}
	}

	var touched []model.Coupon

	err := s.repo.Update(ctx, func(coupons []model.Coupon) ([]model.Coupon, error) {
		touchedIDs, err := redeemAcross(coupons, couponIDs, totalAmount, actor, time.Now())
		if err != nil {
			// Inconsistency là logic bug - log to rồi vẫn propagate
			if appErr, ok := err.(*model.AppError); ok && appErr.Code == model.ErrCodeInternalError {
				logger.Error("redemption walk left uncovered remainder", err)
			}
			return nil, err
		}

		byID := make(map[string]model.Coupon, len(coupons))
		for _, c := range coupons {
			byID[c.ID] = c
		}
		for _, id := range touchedIDs {
			touched = append(touched, byID[id])
		}

		return coupons, nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("coupons redeemed", map[string]interface{}{
		"total":   totalAmount,
		"touched": len(touched),
		"by":      actor.UserID,
	})

	return touched, nil
}

// -------------------------------------------------------------------
// REFUND
// -------------------------------------------------------------------

// RefundCouponAmount hoàn amount vào coupon
//
// newBalance > amount gốc → ErrOverRefund (refund bị cap).
// Thành công thì isUsed luôn về false; coupon từng cạn số dư thì clear usedAt/usedBy.
func (s *couponService) RefundCouponAmount(ctx context.Context, couponID string, amount decimal.Decimal) (*model.Coupon, error) {
	if !amount.IsPositive() {
		return nil, &model.AppError{
			Code:       model.ErrCodeValidationFailed,
			Message:    "Số tiền hoàn phải lớn hơn 0",
			HTTPStatus: 400,
		}
	}

	var result *model.Coupon

	err := s.repo.Update(ctx, func(coupons []model.Coupon) ([]model.Coupon, error) {
		idx := -1
		for i := range coupons {
			if coupons[i].ID == couponID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, model.ErrCouponNotFound
		}

		newBalance := coupons[idx].Balance.Add(amount)
		if newBalance.GreaterThan(coupons[idx].Amount) {
			return nil, model.ErrOverRefund.WithDetails(map[string]interface{}{
				"balance":    coupons[idx].Balance,
				"amount":     coupons[idx].Amount,
				"refundable": coupons[idx].Amount.Sub(coupons[idx].Balance),
			})
		}

		credit(&coupons[idx], amount)

		c := coupons[idx]
		result = &c
		return coupons, nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// -------------------------------------------------------------------
// READ & ADMIN
// -------------------------------------------------------------------

// ListCoupons trả về toàn bộ coupon, mới nhất trước
func (s *couponService) ListCoupons(ctx context.Context) ([]model.Coupon, error) {
	coupons, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(coupons, func(i, j int) bool {
		return coupons[i].CreatedAt.After(coupons[j].CreatedAt)
	})

	return coupons, nil
}

// GetCoupon lấy coupon theo id
func (s *couponService) GetCoupon(ctx context.Context, couponID string) (*model.Coupon, error) {
	coupons, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range coupons {
		if coupons[i].ID == couponID {
			return &coupons[i], nil
		}
	}

	return nil, model.ErrCouponNotFound
}

// DeleteCoupon xóa hẳn coupon (admin removal - không có audit trail riêng,
// coupon record chính là ledger entry duy nhất)
func (s *couponService) DeleteCoupon(ctx context.Context, couponID string) error {
	return s.repo.Update(ctx, func(coupons []model.Coupon) ([]model.Coupon, error) {
		for i := range coupons {
			if coupons[i].ID == couponID {
				return append(coupons[:i], coupons[i+1:]...), nil
			}
		}
		return nil, model.ErrCouponNotFound
	})
}
