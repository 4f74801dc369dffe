package notecache

import (
	"context"

	"github.com/ThisIsNSH/CueCard/internal/core/note"
	"github.com/ixugo/goddd/pkg/orm"
)

var _ note.NoteStorer = &Note{}

type Note Cache

// Find implements note.NoteStorer.
func (c *Note) Find(ctx context.Context, items *[]*note.Note, pager orm.Pager, opts ...orm.QueryOption) (int64, error) {
	return c.Storer.Note().Find(ctx, items, pager, opts...)
}

// Get implements note.NoteStorer.
func (c *Note) Get(ctx context.Context, out *note.Note, opts ...orm.QueryOption) error {
	return c.Storer.Note().Get(ctx, out, opts...)
}

// GetBySlide implements note.NoteStorer.
// 翻页高频查询，先查内存再落库，命中后回填
func (c *Note) GetBySlide(ctx context.Context, presentationID, slideID string) (*note.Note, error) {
	if cached, ok := c.notes.Load(slideKey(presentationID, slideID)); ok {
		return cached, nil
	}
	out, err := c.Storer.Note().GetBySlide(ctx, presentationID, slideID)
	if err != nil {
		return nil, err
	}
	c.notes.Store(slideKey(presentationID, slideID), out)
	return out, nil
}

// Add implements note.NoteStorer.
func (c *Note) Add(ctx context.Context, in *note.Note) error {
	if err := c.Storer.Note().Add(ctx, in); err != nil {
		return err
	}
	c.notes.Store(slideKey(in.PresentationID, in.SlideID), in)
	return nil
}

// Edit implements note.NoteStorer.
func (c *Note) Edit(ctx context.Context, out *note.Note, changeFn func(*note.Note), opts ...orm.QueryOption) error {
	if err := c.Storer.Note().Edit(ctx, out, changeFn, opts...); err != nil {
		return err
	}
	c.notes.Store(slideKey(out.PresentationID, out.SlideID), out)
	return nil
}

// Del implements note.NoteStorer.
func (c *Note) Del(ctx context.Context, out *note.Note, opts ...orm.QueryOption) error {
	if err := c.Storer.Note().Del(ctx, out, opts...); err != nil {
		return err
	}
	c.notes.Delete(slideKey(out.PresentationID, out.SlideID))
	return nil
}
