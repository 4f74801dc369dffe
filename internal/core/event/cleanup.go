package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/web"
	"gorm.io/gorm"
)

// StartCleanupWorker 启动定时清理协程，每天执行一次
// days 参数指定保留的天数，超过该天数的事件将被删除
func (c Core) StartCleanupWorker(days int) {
	if days <= 0 {
		slog.Info("event cleanup disabled", "days", days)
		return
	}

	slog.Info("event cleanup worker started", "retain_days", days)

	// 启动时先执行一次清理
	c.cleanupExpiredEvents(days)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanupExpiredEvents(days)
	}
}

// cleanupExpiredEvents 分批查出过期事件再按 ID 批量删除，
// 避免一次性加载过多数据
func (c Core) cleanupExpiredEvents(days int) {
	ctx := context.Background()
	cutoff := time.Now().AddDate(0, 0, -days)

	slog.Info("starting event cleanup", "cutoff_time", cutoff.Format(time.DateTime), "retain_days", days)

	batchSize := 100
	totalDeleted := 0

	for {
		var events []*Event
		pager := web.PagerFilter{Page: 1, Size: batchSize}
		_, err := c.store.Event().Find(ctx, &events, &pager,
			orm.Where("created_at < ?", orm.Time{Time: cutoff}),
		)
		if err != nil {
			slog.Error("failed to query expired events", "err", err)
			break
		}

		if len(events) == 0 {
			break
		}

		eventIDs := make([]string, 0, len(events))
		for _, e := range events {
			eventIDs = append(eventIDs, e.ID)
		}

		err = c.store.Event().Session(ctx, func(tx *gorm.DB) error {
			return tx.Where("id IN ?", eventIDs).Delete(&Event{}).Error
		})
		if err != nil {
			slog.Warn("failed to batch delete events", "count", len(eventIDs), "err", err)
			break
		}
		totalDeleted += len(eventIDs)
	}

	slog.Info("event cleanup completed", "events_deleted", totalDeleted)
}
