package notedb

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ThisIsNSH/CueCard/internal/core/note"
	"github.com/ixugo/goddd/pkg/orm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func generateMockDB() (*gorm.DB, sqlmock.Sqlmock, error) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		return nil, nil, err
	}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	if err != nil {
		return nil, nil, err
	}
	return db, mock, nil
}

func TestNoteGet(t *testing.T) {
	db, mock, err := generateMockDB()
	if err != nil {
		t.Fatal(err)
	}
	noteDB := NewNote(db)

	rows := sqlmock.NewRows([]string{"id", "presentation_id", "slide_id", "content"}).
		AddRow("note1", "p1", "s1", "备注内容")
	mock.ExpectQuery(`SELECT \* FROM "notes" WHERE id=\$1 (.+) LIMIT \$2`).
		WithArgs("note1", 1).
		WillReturnRows(rows)

	var out note.Note
	if err := noteDB.Get(context.Background(), &out, orm.Where("id=?", "note1")); err != nil {
		t.Fatal(err)
	}
	if out.Content != "备注内容" {
		t.Fatalf("unexpected content %q", out.Content)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal("ExpectationsWereMet err:", err)
	}
}

func TestNoteGetBySlide(t *testing.T) {
	db, mock, err := generateMockDB()
	if err != nil {
		t.Fatal(err)
	}
	noteDB := NewNote(db)

	rows := sqlmock.NewRows([]string{"id", "presentation_id", "slide_id", "slide_number"}).
		AddRow("note2", "p1", "s2", 2)
	mock.ExpectQuery(`SELECT \* FROM "notes" WHERE presentation_id=\$1 AND slide_id=\$2 (.+) LIMIT \$3`).
		WithArgs("p1", "s2", 1).
		WillReturnRows(rows)

	out, err := noteDB.GetBySlide(context.Background(), "p1", "s2")
	if err != nil {
		t.Fatal(err)
	}
	if out.SlideNumber != 2 {
		t.Fatalf("unexpected slide number %d", out.SlideNumber)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal("ExpectationsWereMet err:", err)
	}
}
