package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

func newTestTagRepo(t *testing.T) (*tagRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &tagRepository{
		db:     &DB{DB: db, errorClassifier: NewSQLiteErrorClassifier(), logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestTagCreate_Success(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"tag_id", "name"}).
		AddRow(1, "work")

	mock.ExpectQuery("INSERT INTO tags").
		WithArgs("work").
		WillReturnRows(rows)

	tag, err := repo.Create(context.Background(), "work")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag.TagID != 1 || tag.Name != "work" {
		t.Errorf("unexpected tag: %+v", tag)
	}
}

func TestTagCreate_DuplicateNamePermitted(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	// two tags may carry the same label; only ids are unique
	rows := sqlmock.
		NewRows([]string{"tag_id", "name"}).
		AddRow(2, "work")

	mock.ExpectQuery("INSERT INTO tags").
		WithArgs("work").
		WillReturnRows(rows)

	tag, err := repo.Create(context.Background(), "work")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag.TagID != 2 {
		t.Errorf("expected a fresh TagID, got %d", tag.TagID)
	}
}

func TestTagGetByID_NotFound(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT tag_id").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTagUpdate_Rename(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	newName := "personal"
	rows := sqlmock.
		NewRows([]string{"tag_id", "name"}).
		AddRow(1, newName)

	mock.ExpectQuery("UPDATE tags SET name").
		WithArgs(newName, int64(1)).
		WillReturnRows(rows)

	tag, err := repo.Update(context.Background(), models.TagUpdate{TagID: 1, Name: &newName})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag.Name != newName {
		t.Errorf("expected name %q, got %q", newName, tag.Name)
	}
}

func TestTagUpdate_NoName(t *testing.T) {
	repo, _, db := newTestTagRepo(t)
	defer db.Close()

	_, err := repo.Update(context.Background(), models.TagUpdate{TagID: 1})
	if !errors.Is(err, ErrBuildingSQLQuery) {
		t.Fatalf("expected ErrBuildingSQLQuery, got %v", err)
	}
}

func TestTagDelete_ReturnsSnapshot(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"tag_id", "name"}).
		AddRow(3, "stale")

	mock.ExpectQuery("DELETE FROM tags").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	removed, err := repo.Delete(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed.Name != "stale" {
		t.Errorf("expected removed snapshot for stale, got %q", removed.Name)
	}
}

func TestTagDelete_NotFound(t *testing.T) {
	repo, mock, db := newTestTagRepo(t)
	defer db.Close()

	mock.ExpectQuery("DELETE FROM tags").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Delete(context.Background(), 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
