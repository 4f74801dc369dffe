package eventdb

import (
	"context"

	"github.com/ThisIsNSH/CueCard/internal/core/event"
	"github.com/ixugo/goddd/pkg/orm"
	"gorm.io/gorm"
)

var _ event.EventStorer = &Event{}

type Event struct {
	db *gorm.DB
}

func NewEvent(db *gorm.DB) *Event {
	return &Event{db: db}
}

// Find implements event.EventStorer.
func (e *Event) Find(ctx context.Context, items *[]*event.Event, pager orm.Pager, opts ...orm.QueryOption) (int64, error) {
	db := e.db.WithContext(ctx).Model(&event.Event{})
	for _, fn := range opts {
		db = fn(db)
	}
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return 0, err
	}
	if err := db.Offset(pager.Offset()).Limit(pager.Limit()).Find(items).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Add implements event.EventStorer.
func (e *Event) Add(ctx context.Context, in *event.Event) error {
	return e.db.WithContext(ctx).Create(in).Error
}

// Session implements event.EventStorer.
func (e *Event) Session(ctx context.Context, changeFns ...func(*gorm.DB) error) error {
	return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, fn := range changeFns {
			if err := fn(tx); err != nil {
				return err
			}
		}
		return nil
	})
}
