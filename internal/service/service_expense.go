package service

import (
	"context"
	"fmt"
	"time"

	"github.com/expnse/expnse-server/internal/logger"
	"github.com/expnse/expnse-server/internal/store"
	"github.com/expnse/expnse-server/internal/utils"
	"github.com/expnse/expnse-server/models"
)

// expenseService is the concrete implementation of [ExpenseService].
// It validates incoming records and fills server-side defaults before
// delegating to the repository.
type expenseService struct {
	expenseRepository store.ExpenseRepository
	idGenerator       *utils.UUIDGenerator
	logger            *logger.Logger
}

// NewExpenseService constructs an [ExpenseService] wired to the given
// repository.
func NewExpenseService(expenseRepository store.ExpenseRepository, logger *logger.Logger) ExpenseService {
	return &expenseService{
		expenseRepository: expenseRepository,
		idGenerator:       utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// ListExpenses returns the user's expenses, newest date first, optionally
// narrowed by filter.
func (s *expenseService) ListExpenses(ctx context.Context, userID int64, filter models.ExpenseFilter) ([]models.Expense, error) {
	if userID <= 0 {
		return nil, ErrInvalidDataProvided
	}

	expenses, err := s.expenseRepository.ListExpenses(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("listing expenses failed: %w", err)
	}

	return expenses, nil
}

// CreateExpense validates and persists a single expense under userID.
//
// Amount must be non-negative and description non-empty. The record id is
// normally caller-supplied (a time-based token from the web client); when
// absent, a UUID is generated so the store never sees an empty key. Date
// and creation timestamp default to "now" the same way.
func (s *expenseService) CreateExpense(ctx context.Context, userID int64, expense models.Expense) error {
	log := logger.FromContext(ctx)

	if userID <= 0 || expense.Amount < 0 || expense.Description == "" {
		log.Error().
			Int64("user_id", userID).
			Float64("amount", expense.Amount).
			Msg("invalid expense data provided")
		return ErrInvalidDataProvided
	}

	expense.UserID = userID

	if expense.ID == "" {
		expense.ID = s.idGenerator.Generate()
	}

	now := time.Now().UTC()
	if expense.Date == "" {
		expense.Date = now.Format("2006-01-02")
	}
	if expense.CreatedAt == "" {
		expense.CreatedAt = now.Format(time.RFC3339)
	}

	if err := s.expenseRepository.CreateExpense(ctx, expense); err != nil {
		return fmt.Errorf("creating expense failed: %w", err)
	}

	return nil
}

// DeleteExpense removes the expense owned by userID. A missing or
// foreign-owned id is a silent success; the client's deletion flow is
// fire-and-forget and relies on that.
func (s *expenseService) DeleteExpense(ctx context.Context, userID int64, expenseID string) error {
	if userID <= 0 || expenseID == "" {
		return ErrInvalidDataProvided
	}

	if err := s.expenseRepository.DeleteExpense(ctx, userID, expenseID); err != nil {
		return fmt.Errorf("deleting expense failed: %w", err)
	}

	return nil
}
