package model

import "fmt"

// ErrorCode cho user domain
type ErrorCode string

const (
	ErrCodeUserNotFound      ErrorCode = "USER_NOT_FOUND"
	ErrCodeUsernameTaken     ErrorCode = "USER_USERNAME_TAKEN"
	ErrCodeInvalidCredential ErrorCode = "USER_INVALID_CREDENTIAL"
	ErrCodeValidationFailed  ErrorCode = "VAL_INVALID_INPUT"
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

var ErrUserNotFound = &AppError{
	Code:       ErrCodeUserNotFound,
	Message:    "Không tìm thấy nhân viên",
	HTTPStatus: 404,
}

var ErrUsernameTaken = &AppError{
	Code:       ErrCodeUsernameTaken,
	Message:    "Username đã tồn tại",
	HTTPStatus: 409,
}

// ErrInvalidCredential dùng chung cho sai username lẫn sai PIN,
// không tiết lộ account nào tồn tại
var ErrInvalidCredential = &AppError{
	Code:       ErrCodeInvalidCredential,
	Message:    "Username hoặc PIN không đúng",
	HTTPStatus: 401,
}
