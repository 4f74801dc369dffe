package notedb

import (
	"github.com/ThisIsNSH/CueCard/internal/core/note"
	"gorm.io/gorm"
)

var _ note.Storer = DB{}

type DB struct {
	db *gorm.DB
}

func NewDB(db *gorm.DB) DB {
	return DB{db: db}
}

// AutoMigrate 按开关决定是否建表
func (d DB) AutoMigrate(enabled bool) DB {
	if !enabled {
		return d
	}
	if err := d.db.AutoMigrate(new(note.Note)); err != nil {
		panic(err)
	}
	return d
}

func (d DB) Note() note.NoteStorer {
	return NewNote(d.db)
}
