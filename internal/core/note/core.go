package note

import (
	"context"

	"github.com/ThisIsNSH/CueCard/pkg/slides"
	"github.com/ixugo/goddd/domain/uniqueid"
	"github.com/ixugo/goddd/pkg/orm"
)

// Storer data persistence
type Storer interface {
	Note() NoteStorer
}

// NoteStorer Instantiation interface
type NoteStorer interface {
	Find(context.Context, *[]*Note, orm.Pager, ...orm.QueryOption) (int64, error)
	Get(context.Context, *Note, ...orm.QueryOption) error
	GetBySlide(ctx context.Context, presentationID, slideID string) (*Note, error)
	Add(context.Context, *Note) error
	Edit(context.Context, *Note, func(*Note), ...orm.QueryOption) error
	Del(context.Context, *Note, ...orm.QueryOption) error
}

// Core business domain
type Core struct {
	store  Storer
	uni    uniqueid.Core
	slides slides.Engine
}

type Option func(*Core)

// WithSlidesEngine 注入 Google Slides 客户端，用于整篇预取备注
func WithSlidesEngine(engine slides.Engine) Option {
	return func(c *Core) {
		c.slides = engine
	}
}

// NewCore create business domain
func NewCore(store Storer, uni uniqueid.Core, opts ...Option) Core {
	c := Core{store: store, uni: uni, slides: slides.NewEngine()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
