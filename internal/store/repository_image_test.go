package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/models"
)

// pgxArgConverter mirrors the pgx stdlib driver, which accepts slice
// arguments (e.g. []string for `= ANY($1)`) that the default
// database/sql converter rejects.
type pgxArgConverter struct{}

func (pgxArgConverter) ConvertValue(v any) (driver.Value, error) {
	if converted, err := driver.DefaultParameterConverter.ConvertValue(v); err == nil {
		return converted, nil
	}
	return v, nil
}

func newTestImageRepo(t *testing.T) (*imageRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New(sqlmock.ValueConverterOption(pgxArgConverter{}))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &imageRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateImage_Success(t *testing.T) {
	repo, mock, db := newTestImageRepo(t)
	defer db.Close()

	ctx := context.Background()
	image := models.Image{Key: "img/1/abc.png", PageID: 10, OwnerID: 1}

	mock.ExpectExec("INSERT INTO images").
		WithArgs(image.Key, image.PageID, image.OwnerID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.CreateImage(ctx, image); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateImage_UnknownPage(t *testing.T) {
	repo, mock, db := newTestImageRepo(t)
	defer db.Close()

	ctx := context.Background()
	image := models.Image{Key: "img/1/abc.png", PageID: 99, OwnerID: 1}

	mock.ExpectExec("INSERT INTO images").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	err := repo.CreateImage(ctx, image)
	if !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
}

func TestMarkImage_NotFound(t *testing.T) {
	repo, mock, db := newTestImageRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE images").
		WithArgs("img/1/missing.png", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkImage(ctx, "img/1/missing.png", 1)
	if !errors.Is(err, ErrImageNotFound) {
		t.Fatalf("expected ErrImageNotFound, got %v", err)
	}
}

func TestListMarked_Success(t *testing.T) {
	repo, mock, db := newTestImageRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"key"}).AddRow("a.png").AddRow("b.png")

	mock.ExpectQuery("SELECT key").
		WithArgs(50).
		WillReturnRows(rows)

	keys, err := repo.ListMarked(ctx, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(keys))
	}
}

func TestListOrphaned_Success(t *testing.T) {
	repo, mock, db := newTestImageRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"key"}).AddRow("lost.png")

	mock.ExpectQuery("SELECT i.key").
		WithArgs(10).
		WillReturnRows(rows)

	keys, err := repo.ListOrphaned(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 1 || keys[0] != "lost.png" {
		t.Errorf("expected [lost.png], got %v", keys)
	}
}

func TestDeleteImages_CountsDeleted(t *testing.T) {
	repo, mock, db := newTestImageRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM images").
		WillReturnResult(sqlmock.NewResult(0, 2))

	deleted, err := repo.DeleteImages(ctx, []string{"a.png", "b.png", "gone.png"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 2 {
		t.Errorf("expected 2 deleted, got %d", deleted)
	}
}

func TestDeleteImages_EmptyBatch(t *testing.T) {
	repo, _, db := newTestImageRepo(t)
	defer db.Close()

	deleted, err := repo.DeleteImages(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 0 {
		t.Errorf("expected 0 deleted, got %d", deleted)
	}
}
