package store

import "github.com/expnse/expnse-server/internal/logger"

// Repositories aggregates all data-access interfaces behind one value so
// the service layer takes a single dependency.
type Repositories struct {
	UserRepository     UserRepository
	ExpenseRepository  ExpenseRepository
	CategoryRepository CategoryRepository
	SettingsRepository SettingsRepository
}

// NewRepositories wires every repository to the shared database handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db, logger),
		ExpenseRepository:  NewExpenseRepository(db, logger),
		CategoryRepository: NewCategoryRepository(db, logger),
		SettingsRepository: NewSettingsRepository(db, logger),
	}
}
