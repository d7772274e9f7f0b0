package model

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var pinPattern = regexp.MustCompile(`^[0-9]{4,6}$`)

// CreateUserRequest - Request tạo tài khoản nhân viên (admin only)
type CreateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	PIN      string `json:"pin"`
	Role     Role   `json:"role"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("Username không được để trống"),
			validation.Length(3, 30).Error("Username từ 3 đến 30 ký tự"),
		),
		validation.Field(&r.Name,
			validation.Required.Error("Tên không được để trống"),
			validation.By(notBlank),
		),
		validation.Field(&r.PIN,
			validation.Required.Error("PIN không được để trống"),
			validation.Match(pinPattern).Error("PIN gồm 4 đến 6 chữ số"),
		),
		validation.Field(&r.Role,
			validation.Required.Error("Thiếu role"),
			validation.In(RoleAdmin, RoleStaff).Error("Role không hợp lệ"),
		),
	)
}

// LoginRequest - Request đăng nhập bằng username + PIN
type LoginRequest struct {
	Username string `json:"username"`
	PIN      string `json:"pin"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("Username không được để trống")),
		validation.Field(&r.PIN, validation.Required.Error("PIN không được để trống")),
	)
}

// LoginResponse - cặp token trả về sau khi đăng nhập thành công
type LoginResponse struct {
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
	User         PublicUser `json:"user"`
}

// RefreshRequest - Request đổi refresh token lấy access token mới
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "không được để trống")
	}
	return nil
}
