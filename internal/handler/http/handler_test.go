package http

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/expnse/expnse-server/internal/logger"
	"github.com/expnse/expnse-server/internal/service"
	"github.com/expnse/expnse-server/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// Each mock implements its service interface with overridable per-test
// function fields. A nil field means "succeed with zero values".

type mockAuthService struct {
	registerFn       func(ctx context.Context, username, password string) (models.User, error)
	loginFn          func(ctx context.Context, username, password string) (models.User, error)
	changePasswordFn func(ctx context.Context, userID int64, currentPassword, newPassword string) error
}

func (m *mockAuthService) Register(ctx context.Context, username, password string) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, username, password)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, username, password)
	}
	return models.User{}, nil
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	if m.changePasswordFn != nil {
		return m.changePasswordFn(ctx, userID, currentPassword, newPassword)
	}
	return nil
}

type mockExpenseService struct {
	listExpensesFn  func(ctx context.Context, userID int64, filter models.ExpenseFilter) ([]models.Expense, error)
	createExpenseFn func(ctx context.Context, userID int64, expense models.Expense) error
	deleteExpenseFn func(ctx context.Context, userID int64, expenseID string) error
}

func (m *mockExpenseService) ListExpenses(ctx context.Context, userID int64, filter models.ExpenseFilter) ([]models.Expense, error) {
	if m.listExpensesFn != nil {
		return m.listExpensesFn(ctx, userID, filter)
	}
	return []models.Expense{}, nil
}

func (m *mockExpenseService) CreateExpense(ctx context.Context, userID int64, expense models.Expense) error {
	if m.createExpenseFn != nil {
		return m.createExpenseFn(ctx, userID, expense)
	}
	return nil
}

func (m *mockExpenseService) DeleteExpense(ctx context.Context, userID int64, expenseID string) error {
	if m.deleteExpenseFn != nil {
		return m.deleteExpenseFn(ctx, userID, expenseID)
	}
	return nil
}

type mockCategoryService struct {
	listCategoriesFn func(ctx context.Context, userID int64) ([]models.Category, error)
	createCategoryFn func(ctx context.Context, userID int64, category models.Category) error
	deleteCategoryFn func(ctx context.Context, userID int64, categoryID string) error
}

func (m *mockCategoryService) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	if m.listCategoriesFn != nil {
		return m.listCategoriesFn(ctx, userID)
	}
	return []models.Category{}, nil
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, userID int64, category models.Category) error {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(ctx, userID, category)
	}
	return nil
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, userID int64, categoryID string) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(ctx, userID, categoryID)
	}
	return nil
}

type mockSettingsService struct {
	getSettingsFn func(ctx context.Context, userID int64) (models.UserSettings, error)
	setCurrencyFn func(ctx context.Context, userID int64, currency models.Currency) error
}

func (m *mockSettingsService) GetSettings(ctx context.Context, userID int64) (models.UserSettings, error) {
	if m.getSettingsFn != nil {
		return m.getSettingsFn(ctx, userID)
	}
	return models.UserSettings{}, nil
}

func (m *mockSettingsService) SetCurrency(ctx context.Context, userID int64, currency models.Currency) error {
	if m.setCurrencyFn != nil {
		return m.setCurrencyFn(ctx, userID, currency)
	}
	return nil
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

type mockPinger struct {
	pingFn func(ctx context.Context) error
}

func (m *mockPinger) PingContext(ctx context.Context) error {
	if m.pingFn != nil {
		return m.pingFn(ctx)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler whose services default to succeed-with-
// zero-values mocks; individual tests override the fields they exercise.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()

	if svcs == nil {
		svcs = &service.Services{}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.ExpenseService == nil {
		svcs.ExpenseService = &mockExpenseService{}
	}
	if svcs.CategoryService == nil {
		svcs.CategoryService = &mockCategoryService{}
	}
	if svcs.SettingsService == nil {
		svcs.SettingsService = &mockSettingsService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}

	return NewHandler(svcs, &mockPinger{}, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

var errBoom = errors.New("boom")
