package models

// Request bodies accepted by the JSON API. Query-string parameters
// (userId, expenseId, categoryId) are parsed directly in the handlers.

// CredentialsRequest is the body of POST /api/auth/register and
// POST /api/auth/login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordRequest is the body of POST /api/auth/reset-password.
type ChangePasswordRequest struct {
	UserID          int64  `json:"userId"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// CreateExpenseRequest is the body of POST /api/expenses.
type CreateExpenseRequest struct {
	UserID  int64   `json:"userId"`
	Expense Expense `json:"expense"`
}

// CreateCategoryRequest is the body of POST /api/categories.
type CreateCategoryRequest struct {
	UserID   int64    `json:"userId"`
	Category Category `json:"category"`
}

// SetCurrencyRequest is the body of POST /api/settings.
type SetCurrencyRequest struct {
	UserID   int64    `json:"userId"`
	Currency Currency `json:"currency"`
}
