package model

import "time"

// Role của nhân viên
type Role string

const (
	RoleAdmin Role = "admin" // chủ quán: quản lý user, xóa dữ liệu
	RoleStaff Role = "staff" // nhân viên đứng quầy
)

// User là tài khoản nhân viên, chỉ tồn tại local (không sync lên sheet)
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`

	// PINHash là bcrypt hash của mã PIN đăng nhập, không bao giờ trả ra API
	PINHash string `json:"pinHash"`

	CreatedAt time.Time `json:"createdAt"`
}

// Public trả bản sao an toàn để đưa ra response
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// PublicUser là user không kèm credential
type PublicUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
