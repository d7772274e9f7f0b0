package model

import "fmt"

// ErrorCode cho menu domain
type ErrorCode string

const (
	ErrCodeMenuItemNotFound ErrorCode = "MENU_ITEM_NOT_FOUND"
	ErrCodeMenuImportFailed ErrorCode = "MENU_IMPORT_FAILED"
	ErrCodeValidationFailed ErrorCode = "VAL_INVALID_INPUT"
	ErrCodeInternalError    ErrorCode = "SYS_INTERNAL_ERROR"
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

var ErrMenuItemNotFound = &AppError{
	Code:       ErrCodeMenuItemNotFound,
	Message:    "Không tìm thấy món",
	HTTPStatus: 404,
}
