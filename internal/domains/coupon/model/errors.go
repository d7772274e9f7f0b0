package model

type ErrorCode string

const (
	// Ledger operation errors
	ErrCodeCouponNotFound            ErrorCode = "COUPON_NOT_FOUND"             // 404
	ErrCodeCouponInsufficientBalance ErrorCode = "COUPON_INSUFFICIENT_BALANCE"  // 400
	ErrCodeCouponNoUsable            ErrorCode = "COUPON_NO_USABLE"             // 400
	ErrCodeCouponOverRefund          ErrorCode = "COUPON_OVER_REFUND"           // 400

	// Validation errors (400)
	ErrCodeValidationFailed ErrorCode = "VAL_INVALID_INPUT" // 400

	// System errors (500)
	// Defensive check của redemption walk - không bao giờ được nuốt lỗi này
	ErrCodeInternalError ErrorCode = "SYS_INTERNAL_ERROR" // 500
)

type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	HTTPStatus int                    `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

// WithDetails trả về bản copy của error kèm details - sentinel gốc là
// shared pointer nên không được mutate trực tiếp
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// Predefined errors
var (
	ErrCouponNotFound = &AppError{
		Code:       ErrCodeCouponNotFound,
		Message:    "Coupon không tồn tại hoặc đã hết số dư",
		HTTPStatus: 404,
	}

	ErrInsufficientBalance = &AppError{
		Code:       ErrCodeCouponInsufficientBalance,
		Message:    "Số dư coupon không đủ",
		HTTPStatus: 400,
	}

	ErrNoUsableCoupons = &AppError{
		Code:       ErrCodeCouponNoUsable,
		Message:    "Không có coupon nào dùng được trong danh sách",
		HTTPStatus: 400,
	}

	ErrOverRefund = &AppError{
		Code:       ErrCodeCouponOverRefund,
		Message:    "Refund vượt quá mệnh giá gốc của coupon",
		HTTPStatus: 400,
	}

	// Chỉ xảy ra khi redemption walk không cover đủ total dù feasibility
	// check đã pass - logic bug, phải surface chứ không silently ignore
	ErrLedgerInconsistent = &AppError{
		Code:       ErrCodeInternalError,
		Message:    "Ledger inconsistency detected during redemption",
		HTTPStatus: 500,
	}
)
