package service

import (
	"github.com/expnse/expnse-server/internal/config"
	"github.com/expnse/expnse-server/internal/logger"
	"github.com/expnse/expnse-server/internal/store"
)

// Services aggregates every business-logic service behind one value so the
// transport layer takes a single dependency.
type Services struct {
	AuthService     AuthService
	ExpenseService  ExpenseService
	CategoryService CategoryService
	SettingsService SettingsService
	AppInfoService  AppInfoService
}

// NewServices wires all services to their repositories.
func NewServices(repos *store.Repositories, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(repos.UserRepository, cfg, logger),
		ExpenseService:  NewExpenseService(repos.ExpenseRepository, logger),
		CategoryService: NewCategoryService(repos.CategoryRepository, logger),
		SettingsService: NewSettingsService(repos.SettingsRepository, logger),
		AppInfoService:  appInfoService,
	}, nil
}
