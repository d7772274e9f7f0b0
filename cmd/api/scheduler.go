package main

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"cafepos-backend/pkg/container"
	"cafepos-backend/pkg/logger"
)

// StartScheduler đăng ký các background job định kỳ.
// Trả về nil khi sync tắt hẳn (offline mode hoặc SYNC_ENABLED=false).
func StartScheduler(ctx context.Context, c *container.Container) *cron.Cron {
	cfg := c.Config

	// Expiry watch chạy độc lập với cron: credential hết hạn thì
	// log warning để POS client biết phải re-login
	c.AuthGate.StartExpiryWatch(ctx, cfg.Auth.PollInterval, func() {
		logger.Warn("google credential expired, sheet sync paused until re-login", nil)
	})

	if !cfg.Sync.Enabled || cfg.Auth.OfflineMode {
		log.Println("Sheet sync scheduler disabled")
		return nil
	}

	runner := cron.New()

	// Sync tick: "@every 5m" theo SYNC_INTERVAL
	spec := fmt.Sprintf("@every %s", cfg.Sync.Interval)
	_, err := runner.AddFunc(spec, func() {
		// Credential chưa có / hết hạn → bỏ tick này, không spam lỗi 401
		if !c.AuthGate.Valid() {
			logger.Debug("sync tick skipped, no valid credential")
			return
		}

		if _, err := c.SyncService.SyncAll(ctx); err != nil {
			logger.Error("scheduled sync failed", err)
		}
	})
	if err != nil {
		log.Printf("Failed to register sync job: %v", err)
		return nil
	}

	runner.Start()
	log.Printf("Sheet sync scheduled every %s", cfg.Sync.Interval)

	return runner
}
