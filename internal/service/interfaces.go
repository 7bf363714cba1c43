package service

import (
	"context"

	"github.com/expnse/expnse-server/models"
)

// AuthService implements the identity transitions of the application:
// register, login, and password change. There is no server-side session
// state; a successful call returns the user identity, which the client
// holds and presents on every scoped operation.
type AuthService interface {
	Register(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
}

// ExpenseService validates and executes expense operations for one user.
type ExpenseService interface {
	ListExpenses(ctx context.Context, userID int64, filter models.ExpenseFilter) ([]models.Expense, error)
	CreateExpense(ctx context.Context, userID int64, expense models.Expense) error
	DeleteExpense(ctx context.Context, userID int64, expenseID string) error
}

// CategoryService validates and executes category operations for one user,
// provisioning the fixed default set on a first empty read.
type CategoryService interface {
	ListCategories(ctx context.Context, userID int64) ([]models.Category, error)
	CreateCategory(ctx context.Context, userID int64, category models.Category) error
	DeleteCategory(ctx context.Context, userID int64, categoryID string) error
}

// SettingsService manages the per-user display currency, provisioning the
// default (US Dollar) on a first read with no row.
type SettingsService interface {
	GetSettings(ctx context.Context, userID int64) (models.UserSettings, error)
	SetCurrency(ctx context.Context, userID int64, currency models.Currency) error
}

// AppInfoService reports static build information about the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
