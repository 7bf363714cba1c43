package store

import (
	"context"
	"fmt"

	"github.com/expnse/expnse-server/internal/logger"
	"github.com/expnse/expnse-server/models"
)

// categoryRepository is the SQL-backed implementation of
// [CategoryRepository], executing against the "categories" table.
type categoryRepository struct {
	*DB
	logger *logger.Logger
}

// NewCategoryRepository constructs a [CategoryRepository] backed by the
// provided database connection and logger.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	return &categoryRepository{
		DB:     db,
		logger: logger,
	}
}

// ListCategories retrieves every category owned by userID, ordered by id
// so repeated calls return the same sequence. A brand-new user's default
// set ("1" through "8") therefore comes back in its canonical order.
//
// Returns an empty slice when the user has no categories; provisioning of
// defaults is the service layer's decision, not the repository's.
func (r *categoryRepository) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.DB.QueryContext(ctx, listCategories, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "categoryRepository.ListCategories").
			Int64("user_id", userID).
			Msg("failed to execute query for listing categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, 16)

	for rows.Next() {
		var category models.Category

		scanErr := rows.Scan(
			&category.ID,
			&category.UserID,
			&category.Name,
			&category.Color,
			&category.Icon,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "categoryRepository.ListCategories").
				Int64("user_id", userID).
				Msg("failed to scan category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "categoryRepository.ListCategories").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

// CreateCategory inserts a single user-defined category.
func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) error {
	log := logger.FromContext(ctx)

	log.Debug().
		Str("category_id", category.ID).
		Int64("user_id", category.UserID).
		Msg("saving category record")

	_, err := r.DB.ExecContext(ctx, createCategory,
		category.ID,
		category.UserID,
		category.Name,
		category.Color,
		category.Icon,
	)
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.CreateCategory").
			Str("category_id", category.ID).
			Int64("user_id", category.UserID).
			Msg("failed to save category")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// DeleteCategory removes the category only when both the record id and the
// owning user id match; otherwise it is a silent no-op. Expenses keep
// their category reference even after the category row is gone.
func (r *categoryRepository) DeleteCategory(ctx context.Context, userID int64, categoryID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteCategory, categoryID, userID); err != nil {
		log.Err(err).
			Str("func", "categoryRepository.DeleteCategory").
			Str("category_id", categoryID).
			Int64("user_id", userID).
			Msg("failed to delete category")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// CreateDefaultCategories seeds the user's category set with defaults in a
// single conditional INSERT guarded by NOT EXISTS on the user's rows. The
// one-statement form keeps sequential provisioning exactly-once; see
// [buildInsertDefaultCategoriesQuery].
func (r *categoryRepository) CreateDefaultCategories(ctx context.Context, userID int64, defaults []models.Category) error {
	log := logger.FromContext(ctx)

	if len(defaults) == 0 {
		log.Warn().
			Str("func", "categoryRepository.CreateDefaultCategories").
			Int64("user_id", userID).
			Msg("no default categories provided")
		return nil
	}

	query, args := buildInsertDefaultCategoriesQuery(userID, defaults)

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "categoryRepository.CreateDefaultCategories").
			Int64("user_id", userID).
			Int("defaults_count", len(defaults)).
			Msg("failed to insert default categories")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
