package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"cafepos-backend/internal/config"
	"cafepos-backend/pkg/logger"
)

// ErrCredentialExpired báo credential Google không còn dùng được,
// POS phải chuyển sang màn hình re-login
var ErrCredentialExpired = errors.New("session credential expired")

// offlineTokenLifetime đủ dài để một ca làm việc offline không bao giờ
// chạm expiry
const offlineTokenLifetime = 10 * 365 * 24 * time.Hour

// Credential là bearer credential dùng cho Sheets API
type Credential struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Gate giữ credential hiện hành và quyết định nó còn dùng được không.
//
// Expiry được tính sớm hơn thực tế một khoảng skew: token sắp hết hạn
// giữa chừng một lượt sync coi như đã hết hạn từ trước khi sync bắt đầu.
type Gate struct {
	mu      sync.RWMutex
	cred    *Credential
	skew    time.Duration
	offline bool
}

// NewGate tạo session gate từ config.
// Offline mode tự cấp một credential sống rất dài, không cần Google login.
func NewGate(cfg config.AuthConfig) *Gate {
	g := &Gate{
		skew:    cfg.ExpirySkew,
		offline: cfg.OfflineMode,
	}

	if cfg.OfflineMode {
		g.cred = &Credential{
			AccessToken: "offline-session",
			ExpiresAt:   time.Now().Add(offlineTokenLifetime),
		}
		logger.Warn("auth gate running in offline mode, sheets sync will be skipped", nil)
	}

	return g
}

// SetCredential cập nhật credential sau khi user login / refresh token
func (g *Gate) SetCredential(accessToken string, expiresAt time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.cred = &Credential{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}
}

// ClearCredential xóa credential (logout)
func (g *Gate) ClearCredential() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.offline {
		return
	}
	g.cred = nil
}

// Valid cho biết credential hiện tại còn dùng được không (đã trừ skew)
func (g *Gate) Valid() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.validLocked(time.Now())
}

// Offline cho biết gate đang chạy offline mode
func (g *Gate) Offline() bool {
	return g.offline
}

// AccessToken trả token cho một API call, lỗi nếu credential vắng/hết hạn
func (g *Gate) AccessToken() (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validLocked(time.Now()) {
		return "", ErrCredentialExpired
	}
	return g.cred.AccessToken, nil
}

// validLocked - caller phải giữ lock
func (g *Gate) validLocked(now time.Time) bool {
	if g.cred == nil {
		return false
	}
	// token hết hạn trong vòng skew tới coi như đã hết hạn
	return now.Add(g.skew).Before(g.cred.ExpiresAt)
}

// StartExpiryWatch poll expiry theo chu kỳ cố định, gọi onExpired đúng
// một lần mỗi khi credential chuyển từ valid sang expired.
// Offline mode không watch vì credential không bao giờ hết hạn.
func (g *Gate) StartExpiryWatch(ctx context.Context, interval time.Duration, onExpired func()) {
	if g.offline {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		wasValid := g.Valid()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				valid := g.Valid()
				if wasValid && !valid {
					logger.Warn("session credential expired", nil)
					if onExpired != nil {
						onExpired()
					}
				}
				wasValid = valid
			}
		}
	}()
}
