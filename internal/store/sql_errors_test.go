package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

func TestIsUniqueViolation_Postgres(t *testing.T) {
	err := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	if !isUniqueViolation(err) {
		t.Fatal("expected pg unique violation to be classified")
	}
}

func TestIsUniqueViolation_PostgresOtherCode(t *testing.T) {
	err := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}
	if isUniqueViolation(err) {
		t.Fatal("foreign key violation must not be classified as unique")
	}
}

func TestIsUniqueViolation_SQLiteUnique(t *testing.T) {
	err := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	if !isUniqueViolation(err) {
		t.Fatal("expected sqlite unique constraint to be classified")
	}
}

func TestIsUniqueViolation_SQLitePrimaryKey(t *testing.T) {
	err := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}
	if !isUniqueViolation(err) {
		t.Fatal("expected sqlite primary key constraint to be classified")
	}
}

func TestIsUniqueViolation_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("saving user: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})
	if !isUniqueViolation(wrapped) {
		t.Fatal("expected wrapped pg error to be classified")
	}
}

func TestIsUniqueViolation_PlainError(t *testing.T) {
	if isUniqueViolation(errors.New("some db failure")) {
		t.Fatal("plain errors must not be classified as unique violations")
	}
}
