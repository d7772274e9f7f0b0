package service

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"cafepos-backend/internal/domains/coupon/model"
)

// ledger.go chứa pure transforms trên một snapshot của coupon collection.
// Service wrap chúng trong repository.Update (load→transform→save).

// debit trừ amount khỏi coupon. Caller đã đảm bảo amount <= balance.
// Balance chạm đúng 0 → set isUsed + usedAt/usedBy; còn dư thì để nguyên
// (coupon "partially used" không có usedAt).
func debit(c *model.Coupon, amount decimal.Decimal, actor model.Actor, now time.Time) {
	c.Balance = c.Balance.Sub(amount)

	if c.Balance.IsZero() {
		c.IsUsed = true
		c.UsedAt = &now
		c.UsedBy = &actor
	}
}

// credit cộng amount vào coupon (refund path).
// IsUsed luôn về false; nếu coupon trước đó đã fully used thì clear usedAt/usedBy.
func credit(c *model.Coupon, amount decimal.Decimal) {
	wasExhausted := c.Balance.IsZero()

	c.Balance = c.Balance.Add(amount)
	c.IsUsed = false

	if wasExhausted {
		c.UsedAt = nil
		c.UsedBy = nil
	}
}

// redeemAcross là thuật toán redemption trên nhiều coupon.
//
// Business Flow:
// 1. Lọc couponIDs còn lại những coupon usable (!isUsed && balance > 0).
//    couponIDs là set: id lặp lại chỉ tính một lần, nếu không feasibility
//    check ở bước 3 sẽ đếm trùng balance
// 2. Không còn coupon nào → ErrNoUsableCoupons
// 3. Sort bản copy theo balance tăng dần rồi cộng tổng để check feasibility
// 4. Tổng balance < totalAmount → ErrInsufficientBalance
// 5. Walk theo THỨ TỰ couponIDs caller đưa vào (không phải thứ tự đã sort):
//    mỗi coupon trừ min(remaining, balance), dừng sớm khi remaining = 0
// 6. remaining vẫn > 0 sau walk → ErrLedgerInconsistent (defensive; bước 4
//    đã loại trường hợp này, lỗi ở đây nghĩa là bug trong walk)
//
// Lưu ý: sort ở bước 3 không ảnh hưởng thứ tự debit ở bước 5 - tổng balance
// không phụ thuộc thứ tự. Nếu muốn "trừ coupon số dư nhỏ trước" thì phải
// đổi bước 5 sang iterate bản sorted.
//
// Mutate trực tiếp các phần tử trong coupons, trả về ID các coupon bị trừ.
func redeemAcross(
	coupons []model.Coupon,
	couponIDs []string,
	totalAmount decimal.Decimal,
	actor model.Actor,
	now time.Time,
) ([]string, error) {
	byID := make(map[string]*model.Coupon, len(coupons))
	for i := range coupons {
		byID[coupons[i].ID] = &coupons[i]
	}

	// Step 1: filter usable, bỏ id trùng, giữ thứ tự caller
	usable := make([]*model.Coupon, 0, len(couponIDs))
	seen := make(map[string]bool, len(couponIDs))
	for _, id := range couponIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		c, ok := byID[id]
		if !ok || !c.Usable() {
			continue
		}
		usable = append(usable, c)
	}

	// Step 2
	if len(usable) == 0 {
		return nil, model.ErrNoUsableCoupons
	}

	// Step 3: feasibility check trên bản sort theo balance tăng dần
	sorted := make([]*model.Coupon, len(usable))
	copy(sorted, usable)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Balance.LessThan(sorted[j].Balance)
	})

	available := decimal.Zero
	for _, c := range sorted {
		available = available.Add(c.Balance)
	}

	// Step 4
	if available.LessThan(totalAmount) {
		return nil, model.ErrInsufficientBalance.WithDetails(map[string]interface{}{
			"available": available,
			"requested": totalAmount,
		})
	}

	// Step 5: debit theo thứ tự caller-supplied
	remaining := totalAmount
	touched := make([]string, 0, len(usable))

	for _, c := range usable {
		if !remaining.IsPositive() {
			break
		}

		pay := decimal.Min(remaining, c.Balance)
		debit(c, pay, actor, now)
		remaining = remaining.Sub(pay)
		touched = append(touched, c.ID)
	}

	// Step 6: defensive check
	if remaining.IsPositive() {
		return nil, model.ErrLedgerInconsistent
	}

	return touched, nil
}
