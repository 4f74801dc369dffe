package event

import (
	"context"
	"log/slog"

	"github.com/ThisIsNSH/CueCard/internal/core/bz"
	"github.com/ixugo/goddd/domain/uniqueid"
	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/reason"
	"github.com/ixugo/goddd/pkg/web"
	"gorm.io/gorm"
)

// Storer data persistence
type Storer interface {
	Event() EventStorer
}

// EventStorer Instantiation interface
type EventStorer interface {
	Find(context.Context, *[]*Event, orm.Pager, ...orm.QueryOption) (int64, error)
	Add(context.Context, *Event) error
	Session(context.Context, ...func(*gorm.DB) error) error
}

// Event 播放器生命周期事件，带当时的播放进度
type Event struct {
	ID           string   `gorm:"primaryKey;size:32" json:"id"`
	SessionID    string   `gorm:"size:32;index" json:"session_id"` // 一次进程生命周期为一个会话
	Kind         string   `gorm:"size:16;index" json:"kind"`       // play/pause/restart/handoff/closed
	Driver       string   `gorm:"size:32" json:"driver"`           // 事件发生时的驱动方
	Status       string   `gorm:"size:16" json:"status"`
	Elapsed      int      `json:"elapsed"`
	SegmentIndex int      `json:"segment_index"`
	CreatedAt    orm.Time `json:"created_at"`
}

// Core business domain
type Core struct {
	store Storer
	uni   uniqueid.Core
}

// NewCore create business domain
func NewCore(store Storer, uni uniqueid.Core) Core {
	return Core{store: store, uni: uni}
}

// AddEventInput 事件落库参数
type AddEventInput struct {
	SessionID    string `json:"session_id"`
	Kind         string `json:"kind"`
	Driver       string `json:"driver"`
	Status       string `json:"status"`
	Elapsed      int    `json:"elapsed"`
	SegmentIndex int    `json:"segment_index"`
}

// FindEventsInput 事件列表查询参数
type FindEventsInput struct {
	web.PagerFilter
	web.DateFilter
	Kind      string `form:"kind"`       // 事件类型筛选
	SessionID string `form:"session_id"` // 会话筛选
}

// AddEvent 记录一条生命周期事件
func (c Core) AddEvent(ctx context.Context, in *AddEventInput) (*Event, error) {
	out := Event{
		ID:           c.uni.UniqueID(bz.IDPrefixEvent),
		SessionID:    in.SessionID,
		Kind:         in.Kind,
		Driver:       in.Driver,
		Status:       in.Status,
		Elapsed:      in.Elapsed,
		SegmentIndex: in.SegmentIndex,
	}
	if err := c.store.Event().Add(ctx, &out); err != nil {
		return nil, reason.ErrDB.Withf(`Add err[%s]`, err.Error())
	}
	return &out, nil
}

// Record 旁路记录，失败只打日志不影响播放控制
func (c Core) Record(sessionID, kind, driver, status string, elapsed, segmentIndex int) {
	ctx := context.Background()
	if _, err := c.AddEvent(ctx, &AddEventInput{
		SessionID:    sessionID,
		Kind:         kind,
		Driver:       driver,
		Status:       status,
		Elapsed:      elapsed,
		SegmentIndex: segmentIndex,
	}); err != nil {
		slog.ErrorContext(ctx, "记录生命周期事件失败", "kind", kind, "err", err)
	}
}

// FindEvents 分页查询事件列表
func (c Core) FindEvents(ctx context.Context, in *FindEventsInput) ([]*Event, int64, error) {
	query := orm.NewQuery(3).OrderBy("created_at DESC")
	if in.Kind != "" {
		query.Where("kind = ?", in.Kind)
	}
	if in.SessionID != "" {
		query.Where("session_id = ?", in.SessionID)
	}
	if in.StartMs > 0 && in.EndMs > 0 {
		query.Where("created_at >= ? AND created_at <= ?", in.StartAt(), in.EndAt())
	}

	items := make([]*Event, 0, in.Limit())
	total, err := c.store.Event().Find(ctx, &items, in, query.Encode()...)
	if err != nil {
		return nil, 0, reason.ErrDB.Withf(`Find in[%+v] err[%s]`, in, err.Error())
	}
	return items, total, nil
}
