package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/expnse/expnse-server/models"
)

// All statements use $N placeholders, which both supported engines accept
// (SQLite understands the $NNN parameter form natively).
const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING id, username, password_hash, created_at;`

	findUserByUsername = `SELECT id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT id, username, password_hash, created_at
    FROM users
    WHERE id = $1;`

	updateUserPassword = `UPDATE users
    SET password_hash = $1
    WHERE id = $2;`

	createExpense = `INSERT INTO expenses (id, user_id, amount, description, category, date, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7);`

	deleteExpense = `DELETE FROM expenses
    WHERE id = $1 AND user_id = $2;`

	listCategories = `SELECT id, user_id, name, color, icon
    FROM categories
    WHERE user_id = $1
    ORDER BY id;`

	createCategory = `INSERT INTO categories (id, user_id, name, color, icon)
    VALUES ($1, $2, $3, $4, $5);`

	deleteCategory = `DELETE FROM categories
    WHERE id = $1 AND user_id = $2;`

	getSettings = `SELECT user_id, currency_code, currency_symbol, currency_name
    FROM user_settings
    WHERE user_id = $1;`

	upsertSettings = `INSERT INTO user_settings (user_id, currency_code, currency_symbol, currency_name)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (user_id) DO UPDATE SET
        currency_code = excluded.currency_code,
        currency_symbol = excluded.currency_symbol,
        currency_name = excluded.currency_name;`

	upsertDefaultSettings = `INSERT INTO user_settings (user_id, currency_code, currency_symbol, currency_name)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (user_id) DO NOTHING;`
)

// buildListExpensesQuery compiles the scoped expense listing with its
// optional filters. The user_id predicate is always present; date ordering
// is descending with created_at and id as deterministic tie-breaks.
func buildListExpensesQuery(userID int64, filter models.ExpenseFilter) (string, []any, error) {
	builder := sq.
		Select("id", "user_id", "amount", "description", "category", "date", "created_at").
		From("expenses").
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar)

	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}

	if filter.From != "" {
		builder = builder.Where(sq.GtOrEq{"date": filter.From})
	}

	if filter.To != "" {
		builder = builder.Where(sq.LtOrEq{"date": filter.To})
	}

	builder = builder.OrderBy("date DESC", "created_at DESC", "id DESC")

	return builder.ToSql()
}

// buildInsertDefaultCategoriesQuery produces the single conditional INSERT
// that seeds a new user's categories. The NOT EXISTS guard makes the whole
// provisioning one statement, so sequential re-reads can never duplicate
// the defaults.
//
// The default rows are inlined via UNION ALL rather than a VALUES table
// because SQLite does not support column aliases on VALUES in FROM.
func buildInsertDefaultCategoriesQuery(userID int64, defaults []models.Category) (string, []any) {
	queryBuilder := new(strings.Builder)
	queryBuilder.WriteString(`INSERT INTO categories (id, user_id, name, color, icon)
    SELECT d.id, $1, d.name, d.color, d.icon FROM (`)

	args := make([]any, 0, 1+len(defaults)*4)
	args = append(args, userID)
	argIndex := 2

	for i, category := range defaults {
		if i == 0 {
			fmt.Fprintf(queryBuilder, "SELECT $%d AS id, $%d AS name, $%d AS color, $%d AS icon",
				argIndex, argIndex+1, argIndex+2, argIndex+3)
		} else {
			fmt.Fprintf(queryBuilder, " UNION ALL SELECT $%d, $%d, $%d, $%d",
				argIndex, argIndex+1, argIndex+2, argIndex+3)
		}

		args = append(args, category.ID, category.Name, category.Color, category.Icon)
		argIndex += 4
	}

	queryBuilder.WriteString(`) AS d
    WHERE NOT EXISTS (SELECT 1 FROM categories c WHERE c.user_id = $1);`)

	return queryBuilder.String(), args
}
