package notedb

import (
	"context"

	"github.com/ThisIsNSH/CueCard/internal/core/note"
	"github.com/ixugo/goddd/pkg/orm"
	"gorm.io/gorm"
)

var _ note.NoteStorer = &Note{}

type Note struct {
	db *gorm.DB
}

func NewNote(db *gorm.DB) *Note {
	return &Note{db: db}
}

// Find implements note.NoteStorer.
func (n *Note) Find(ctx context.Context, items *[]*note.Note, pager orm.Pager, opts ...orm.QueryOption) (int64, error) {
	db := n.db.WithContext(ctx).Model(&note.Note{})
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

// Get implements note.NoteStorer.
func (n *Note) Get(ctx context.Context, out *note.Note, opts ...orm.QueryOption) error {
	db := n.db.WithContext(ctx)
	for _, fn := range opts {
		db = fn(db)
	}
	return db.First(out).Error
}

// GetBySlide implements note.NoteStorer.
func (n *Note) GetBySlide(ctx context.Context, presentationID, slideID string) (*note.Note, error) {
	var out note.Note
	err := n.db.WithContext(ctx).
		Where("presentation_id=? AND slide_id=?", presentationID, slideID).
		First(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Add implements note.NoteStorer.
func (n *Note) Add(ctx context.Context, in *note.Note) error {
	return n.db.WithContext(ctx).Create(in).Error
}

// Edit implements note.NoteStorer.
func (n *Note) Edit(ctx context.Context, out *note.Note, changeFn func(*note.Note), opts ...orm.QueryOption) error {
	return n.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		db := tx
		for _, fn := range opts {
			db = fn(db)
		}
		if err := db.First(out).Error; err != nil {
			return err
		}
		changeFn(out)
		return tx.Save(out).Error
	})
}

// Del implements note.NoteStorer.
func (n *Note) Del(ctx context.Context, out *note.Note, opts ...orm.QueryOption) error {
	return n.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		db := tx
		for _, fn := range opts {
			db = fn(db)
		}
		if err := db.First(out).Error; err != nil {
			return err
		}
		return tx.Delete(out).Error
	})
}
