package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/expnse/expnse-server/internal/logger"
	"github.com/expnse/expnse-server/models"
)

func newTestCategoryRepo(t *testing.T) (*categoryRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &categoryRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func categoryRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "name", "color", "icon"})
}

func TestListCategories_Success(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := categoryRows().
		AddRow("1", 1, "Food & Dining", "#ef4444", "🍔").
		AddRow("2", 1, "Transportation", "#3b82f6", "🚗")

	mock.ExpectQuery("SELECT id, user_id, name").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	categories, err := repo.ListCategories(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[0].ID != "1" {
		t.Errorf("expected id order, got %s first", categories[0].ID)
	}
}

func TestListCategories_Empty(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, user_id, name").
		WithArgs(int64(1)).
		WillReturnRows(categoryRows())

	categories, err := repo.ListCategories(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if categories == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(categories) != 0 {
		t.Fatalf("expected 0 categories, got %d", len(categories))
	}
}

func TestListCategories_QueryError(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, user_id, name").
		WithArgs(int64(1)).
		WillReturnError(errors.New("db failure"))

	_, err := repo.ListCategories(ctx, 1)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestListCategories_ScanError(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id"}).AddRow("1") // wrong shape

	mock.ExpectQuery("SELECT id, user_id, name").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	_, err := repo.ListCategories(ctx, 1)
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestCreateCategory_Success(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()
	category := models.Category{
		ID:     "c1",
		UserID: 1,
		Name:   "Pets",
		Color:  "#22c55e",
		Icon:   "🐾",
	}

	mock.ExpectExec("INSERT INTO categories").
		WithArgs(category.ID, category.UserID, category.Name, category.Color, category.Icon).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.CreateCategory(ctx, category); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateCategory_ExecError(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO categories").
		WillReturnError(errors.New("db failure"))

	err := repo.CreateCategory(ctx, models.Category{ID: "c1", UserID: 1, Name: "Pets"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestDeleteCategory_Success(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM categories").
		WithArgs("c1", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteCategory(ctx, 1, "c1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteCategory_MissingRowIsNoOp(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM categories").
		WithArgs("ghost", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteCategory(ctx, 1, "ghost"); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
}

func TestCreateDefaultCategories_Success(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()
	defaults := []models.Category{
		{ID: "1", Name: "Food & Dining", Color: "#ef4444", Icon: "🍔"},
		{ID: "2", Name: "Transportation", Color: "#3b82f6", Icon: "🚗"},
	}

	mock.ExpectExec("INSERT INTO categories").
		WithArgs(
			int64(1),
			"1", "Food & Dining", "#ef4444", "🍔",
			"2", "Transportation", "#3b82f6", "🚗",
		).
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := repo.CreateDefaultCategories(ctx, 1, defaults); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateDefaultCategories_EmptyDefaults(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	// no SQL expectation: the call must not touch the database
	if err := repo.CreateDefaultCategories(ctx, 1, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected DB interaction: %v", err)
	}
}

func TestCreateDefaultCategories_ExecError(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	ctx := context.Background()
	defaults := []models.Category{{ID: "1", Name: "Food & Dining", Color: "#ef4444", Icon: "🍔"}}

	mock.ExpectExec("INSERT INTO categories").
		WillReturnError(errors.New("db failure"))

	err := repo.CreateDefaultCategories(ctx, 1, defaults)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
