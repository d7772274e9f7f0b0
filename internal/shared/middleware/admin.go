package middleware

import (
	"github.com/gin-gonic/gin"

	"cafepos-backend/internal/shared/response"
)

// AdminMiddleware chặn các thao tác destructive (xoá coupon/món/đơn) -
// chỉ tài khoản role admin đi qua. Phải đứng sau AuthMiddleware vì
// đọc role từ context.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get("role")
		if !ok || role != "admin" {
			response.Forbidden(c, "Thao tác này cần quyền admin")
			c.Abort()
			return
		}

		c.Next()
	}
}
