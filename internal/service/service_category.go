package service

import (
	"context"
	"fmt"

	"github.com/expnse/expnse-server/internal/logger"
	"github.com/expnse/expnse-server/internal/store"
	"github.com/expnse/expnse-server/internal/utils"
	"github.com/expnse/expnse-server/models"
)

// categoryService is the concrete implementation of [CategoryService].
// Besides plain CRUD it owns the default-provisioning policy: a user whose
// category list is empty gets the fixed default set created on the spot.
type categoryService struct {
	categoryRepository store.CategoryRepository
	idGenerator        *utils.UUIDGenerator
	logger             *logger.Logger
}

// NewCategoryService constructs a [CategoryService] wired to the given
// repository.
func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		idGenerator:        utils.NewUUIDGenerator(),
		logger:             logger,
	}
}

// ListCategories returns the user's categories, seeding the fixed default
// set first when none exist yet.
//
// The seed itself is a single conditional insert in the repository, so a
// second sequential call always sees the eight defaults instead of
// inserting them again.
func (s *categoryService) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return nil, ErrInvalidDataProvided
	}

	categories, err := s.categoryRepository.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing categories failed: %w", err)
	}

	if len(categories) > 0 {
		return categories, nil
	}

	log.Info().Int64("user_id", userID).Msg("no categories found, provisioning defaults")

	if err := s.categoryRepository.CreateDefaultCategories(ctx, userID, DefaultCategories()); err != nil {
		return nil, fmt.Errorf("provisioning default categories failed: %w", err)
	}

	categories, err = s.categoryRepository.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing categories failed: %w", err)
	}

	return categories, nil
}

// CreateCategory validates and persists a single user-defined category.
func (s *categoryService) CreateCategory(ctx context.Context, userID int64, category models.Category) error {
	log := logger.FromContext(ctx)

	if userID <= 0 || category.Name == "" {
		log.Error().Int64("user_id", userID).Msg("invalid category data provided")
		return ErrInvalidDataProvided
	}

	category.UserID = userID

	if category.ID == "" {
		category.ID = s.idGenerator.Generate()
	}

	if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
		return fmt.Errorf("creating category failed: %w", err)
	}

	return nil
}

// DeleteCategory removes the category owned by userID; missing or
// foreign-owned ids are a silent success. Expenses referencing the
// deleted category keep their reference.
func (s *categoryService) DeleteCategory(ctx context.Context, userID int64, categoryID string) error {
	if userID <= 0 || categoryID == "" {
		return ErrInvalidDataProvided
	}

	if err := s.categoryRepository.DeleteCategory(ctx, userID, categoryID); err != nil {
		return fmt.Errorf("deleting category failed: %w", err)
	}

	return nil
}
