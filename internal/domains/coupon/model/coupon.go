package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Actor là identity của nhân viên thao tác (từ JWT claims)
type Actor struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

// Coupon là stored-value voucher: khách nạp tiền trước, trừ dần theo order
type Coupon struct {
	ID      string          `json:"id"`
	Code    string          `json:"code"`    // nhãn human-readable, unique theo convention (không enforce)
	Amount  decimal.Decimal `json:"amount"`  // mệnh giá gốc, immutable sau khi tạo
	Balance decimal.Decimal `json:"balance"` // số dư còn lại, 0 <= balance <= amount

	// Invariant: IsUsed == Balance.IsZero() sau mọi mutation
	IsUsed bool `json:"isUsed"`

	CreatedAt time.Time  `json:"createdAt"`
	UsedAt    *time.Time `json:"usedAt,omitempty"` // set đúng lúc balance chạm 0, clear khi refund
	UsedBy    *Actor     `json:"usedBy,omitempty"`
	CreatedBy Actor      `json:"createdBy"`
}

// Usable kiểm tra coupon còn trừ tiền được không
func (c *Coupon) Usable() bool {
	return !c.IsUsed && c.Balance.IsPositive()
}

// UnmarshalJSON là read boundary của coupon record - nơi DUY NHẤT áp dụng
// rule "balance thiếu → default = amount". IsUsed cũng được tính lại từ
// balance để invariant luôn đúng với cả file bị sửa tay.
func (c *Coupon) UnmarshalJSON(data []byte) error {
	type alias Coupon
	aux := struct {
		*alias
		Balance *decimal.Decimal `json:"balance"`
	}{alias: (*alias)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.Balance == nil {
		c.Balance = c.Amount
	} else {
		c.Balance = *aux.Balance
	}
	c.IsUsed = c.Balance.IsZero()

	return nil
}

// NormalizeRecords áp dụng cùng rule trên raw records (dạng map) - dùng cho
// sync path, nơi coupon đi qua dưới dạng generic record chứ không phải struct
func NormalizeRecords(records []map[string]interface{}) []map[string]interface{} {
	for _, rec := range records {
		bal, ok := rec["balance"]
		if !ok || bal == nil {
			rec["balance"] = rec["amount"]
		}
		rec["isUsed"] = recordBalanceIsZero(rec["balance"])
	}
	return records
}

// recordBalanceIsZero coerce balance value (float64 từ JSON number, string từ
// decimal marshal hoặc sheet cell) về decimal rồi so với 0
func recordBalanceIsZero(v interface{}) bool {
	switch b := v.(type) {
	case float64:
		return b == 0
	case int:
		return b == 0
	case string:
		d, err := decimal.NewFromString(b)
		if err != nil {
			return false
		}
		return d.IsZero()
	case json.Number:
		d, err := decimal.NewFromString(b.String())
		if err != nil {
			return false
		}
		return d.IsZero()
	default:
		return false
	}
}
