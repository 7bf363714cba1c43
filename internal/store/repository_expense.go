package store

import (
	"context"
	"fmt"

	"github.com/expnse/expnse-server/internal/logger"
	"github.com/expnse/expnse-server/models"
)

// expenseRepository is the SQL-backed implementation of [ExpenseRepository].
// It executes all expense CRUD operations against the "expenses" table
// using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, expense_id, filter values).
type expenseRepository struct {
	*DB
	logger *logger.Logger
}

// NewExpenseRepository constructs an [ExpenseRepository] backed by the
// provided database connection and logger.
func NewExpenseRepository(db *DB, logger *logger.Logger) ExpenseRepository {
	return &expenseRepository{
		DB:     db,
		logger: logger,
	}
}

// ListExpenses retrieves the expenses owned by userID, newest date first.
//
// Filtering is always applied by user id; filter adds optional category
// and inclusive date-bound predicates on top. Results are ordered by
// date descending with created_at and id as tie-breaks, so repeated calls
// over the same data always return the same sequence.
//
// Returns an empty slice when the user has no matching expenses.
func (r *expenseRepository) ListExpenses(ctx context.Context, userID int64, filter models.ExpenseFilter) ([]models.Expense, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListExpensesQuery(userID, filter)
	if err != nil {
		log.Err(err).
			Str("func", "expenseRepository.ListExpenses").
			Int64("user_id", userID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "expenseRepository.ListExpenses").
			Int64("user_id", userID).
			Str("category", filter.Category).
			Msg("failed to execute query for listing expenses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0, 50)

	for rows.Next() {
		var expense models.Expense

		scanErr := rows.Scan(
			&expense.ID,
			&expense.UserID,
			&expense.Amount,
			&expense.Description,
			&expense.Category,
			&expense.Date,
			&expense.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "expenseRepository.ListExpenses").
				Int64("user_id", userID).
				Msg("failed to scan expense row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		expenses = append(expenses, expense)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "expenseRepository.ListExpenses").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return expenses, nil
}

// CreateExpense inserts a single expense record. The record id is
// caller-supplied; the store only enforces its uniqueness by primary key.
func (r *expenseRepository) CreateExpense(ctx context.Context, expense models.Expense) error {
	log := logger.FromContext(ctx)

	log.Debug().
		Str("expense_id", expense.ID).
		Int64("user_id", expense.UserID).
		Msg("saving expense record")

	_, err := r.DB.ExecContext(ctx, createExpense,
		expense.ID,
		expense.UserID,
		expense.Amount,
		expense.Description,
		expense.Category,
		expense.Date,
		expense.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "expenseRepository.CreateExpense").
			Str("expense_id", expense.ID).
			Int64("user_id", expense.UserID).
			Msg("failed to save expense")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// DeleteExpense removes the expense only when both the record id and the
// owning user id match. Deleting a nonexistent or foreign-owned record is
// a silent no-op: the affected-rows count is deliberately not inspected.
func (r *expenseRepository) DeleteExpense(ctx context.Context, userID int64, expenseID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteExpense, expenseID, userID); err != nil {
		log.Err(err).
			Str("func", "expenseRepository.DeleteExpense").
			Str("expense_id", expenseID).
			Int64("user_id", userID).
			Msg("failed to delete expense")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
