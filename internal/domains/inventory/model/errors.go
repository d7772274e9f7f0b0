package model

import "fmt"

// ErrorCode cho inventory domain
type ErrorCode string

const (
	ErrCodeItemNotFound     ErrorCode = "INVENTORY_ITEM_NOT_FOUND"
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

var ErrItemNotFound = &AppError{
	Code:       ErrCodeItemNotFound,
	Message:    "Không tìm thấy nguyên liệu",
	HTTPStatus: 404,
}
