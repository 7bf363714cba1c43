package store

import (
	"context"

	"github.com/expnse/expnse-server/models"
)

// UserRepository is the credential store. Passwords reach it only as
// bcrypt hashes; plaintext never crosses this boundary.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// ExpenseRepository manages expense records. Every operation is scoped by
// the owning user's id; there is no unscoped access path.
type ExpenseRepository interface {
	ListExpenses(ctx context.Context, userID int64, filter models.ExpenseFilter) ([]models.Expense, error)
	CreateExpense(ctx context.Context, expense models.Expense) error
	DeleteExpense(ctx context.Context, userID int64, expenseID string) error
}

// CategoryRepository manages user-defined categories. CreateDefaultCategories
// is a single conditional insert: it writes the given set only when the user
// owns no categories at all, in one statement.
type CategoryRepository interface {
	ListCategories(ctx context.Context, userID int64) ([]models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) error
	DeleteCategory(ctx context.Context, userID int64, categoryID string) error
	CreateDefaultCategories(ctx context.Context, userID int64, defaults []models.Category) error
}

// SettingsRepository manages the single per-user currency settings row.
type SettingsRepository interface {
	GetSettings(ctx context.Context, userID int64) (models.UserSettings, error)
	UpsertSettings(ctx context.Context, settings models.UserSettings) error
	UpsertDefaultSettings(ctx context.Context, settings models.UserSettings) error
}
