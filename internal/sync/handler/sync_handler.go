package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cafepos-backend/internal/infrastructure/auth"
	"cafepos-backend/internal/sync/service"
	"cafepos-backend/internal/shared/response"
)

// SyncHandler expose sync trigger và trạng thái cho POS client
type SyncHandler struct {
	service *service.SyncService
	gate    *auth.Gate
}

// NewSyncHandler tạo handler instance
func NewSyncHandler(service *service.SyncService, gate *auth.Gate) *SyncHandler {
	return &SyncHandler{service: service, gate: gate}
}

// TriggerSync chạy một lượt sync ngay (ngoài lịch cron)
// @Router /v1/sync [post]
func (h *SyncHandler) TriggerSync(c *gin.Context) {
	if h.gate.Offline() {
		response.ErrorResponse(c, http.StatusConflict, "SYNC_OFFLINE", "Đang chạy offline mode, không sync được")
		return
	}

	results, err := h.service.SyncAll(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSyncInProgress):
			response.ErrorResponse(c, http.StatusConflict, "SYNC_IN_PROGRESS", "Một lượt sync đang chạy")
		case errors.Is(err, service.ErrAuthExpired):
			response.ErrorResponse(c, http.StatusUnauthorized, "SYNC_AUTH_EXPIRED", "Google credential đã hết hạn, cần đăng nhập lại")
		default:
			response.ErrorWithDetails(c, http.StatusInternalServerError, "SYNC_FAILED", err.Error(),
				map[string]interface{}{"results": results})
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"results": results})
}

// SyncStatus trả trạng thái sync hiện tại
// @Router /v1/sync/status [get]
func (h *SyncHandler) SyncStatus(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"running":         h.service.Running(),
		"offline":         h.gate.Offline(),
		"credentialValid": h.gate.Valid(),
	})
}

// SetCredential nhận Google credential từ POS client sau khi user login
// @Router /v1/sync/credential [put]
func (h *SyncHandler) SetCredential(c *gin.Context) {
	var req struct {
		AccessToken string `json:"accessToken"`
		ExpiresAt   int64  `json:"expiresAt"` // unix seconds
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.AccessToken == "" || req.ExpiresAt == 0 {
		response.BadRequest(c, "Dữ liệu credential không hợp lệ")
		return
	}

	h.gate.SetCredential(req.AccessToken, time.Unix(req.ExpiresAt, 0))
	response.Success(c, http.StatusOK, gin.H{"credentialValid": h.gate.Valid()})
}
