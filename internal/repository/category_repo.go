package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"aaronblog/internal/models"

	"github.com/jmoiron/sqlx"
)

type CategoryRepository struct {
	db sqlx.ExtContext
}

func NewCategoryRepository(db sqlx.ExtContext) *CategoryRepository {
	return &CategoryRepository{db: db}
}

var _ Categories = (*CategoryRepository)(nil)

const (
	selectCategoryByNameSQL = `SELECT category_id, category_name FROM categories WHERE category_name = ?`
	insertCategorySQL       = `INSERT INTO categories (category_name) VALUES (?)`
	listCategoriesSQL       = `SELECT category_id, category_name FROM categories ORDER BY category_name`
)

// GetByName looks a category up by exact (case-sensitive) name.
// Returns (nil, nil) if not found.
func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	var c models.Category
	err := sqlx.GetContext(ctx, r.db, &c, selectCategoryByNameSQL, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select category %q: %w", name, err)
	}
	return &c, nil
}

// Create inserts a new category and returns its ID.
func (r *CategoryRepository) Create(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertCategorySQL, name)
	if err != nil {
		return 0, fmt.Errorf("insert category %q: %w", name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for category %q: %w", name, err)
	}
	return lastID, nil
}

// List returns all categories ordered by name.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, 16)
	if err := sqlx.SelectContext(ctx, r.db, &out, listCategoriesSQL); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}
