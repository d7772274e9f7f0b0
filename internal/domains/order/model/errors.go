package model

import "fmt"

// ErrorCode cho order domain
type ErrorCode string

const (
	ErrCodeOrderNotFound    ErrorCode = "ORDER_NOT_FOUND"
	ErrCodeOrderCancelled   ErrorCode = "ORDER_ALREADY_CANCELLED"
	ErrCodeValidationFailed ErrorCode = "VAL_INVALID_INPUT"
)

// AppError là business error có HTTP status và machine-readable code
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	HTTPStatus int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

var ErrOrderNotFound = &AppError{
	Code:       ErrCodeOrderNotFound,
	Message:    "Không tìm thấy order",
	HTTPStatus: 404,
}

var ErrOrderAlreadyCancelled = &AppError{
	Code:       ErrCodeOrderCancelled,
	Message:    "Order đã bị hủy trước đó",
	HTTPStatus: 400,
}
