package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"aaronblog/internal/models"

	"github.com/jmoiron/sqlx"
)

type BlogRepository struct {
	db sqlx.ExtContext
}

func NewBlogRepository(db sqlx.ExtContext) *BlogRepository {
	return &BlogRepository{db: db}
}

var _ Blogs = (*BlogRepository)(nil)

const (
	listBlogsSQL = `
		SELECT b.blog_id, b.creator_user_id, b.creator_name, b.title, b.content,
		       b.category_id, c.category_name, b.date_created, b.date_modified
		FROM blogs b
		JOIN categories c ON b.category_id = c.category_id
		ORDER BY b.date_created DESC, b.blog_id DESC`

	selectBlogByIDSQL = `
		SELECT b.blog_id, b.creator_user_id, b.creator_name, b.title, b.content,
		       b.category_id, c.category_name, b.date_created, b.date_modified
		FROM blogs b
		JOIN categories c ON b.category_id = c.category_id
		WHERE b.blog_id = ?`

	insertBlogSQL = `
		INSERT INTO blogs (creator_user_id, creator_name, title, content, category_id, date_created)
		VALUES (?, ?, ?, ?, ?, ?)`

	updateBlogSQL = `
		UPDATE blogs SET title = ?, content = ?, category_id = ?, date_modified = ?
		WHERE blog_id = ?`

	deleteBlogSQL = `DELETE FROM blogs WHERE blog_id = ?`
)

// List returns all posts, newest first.
func (r *BlogRepository) List(ctx context.Context) ([]models.Blog, error) {
	out := make([]models.Blog, 0, 32)
	if err := sqlx.SelectContext(ctx, r.db, &out, listBlogsSQL); err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	return out, nil
}

// GetByID fetches a single post with its category name joined in.
// Returns (nil, nil) if not found.
func (r *BlogRepository) GetByID(ctx context.Context, id int64) (*models.Blog, error) {
	var b models.Blog
	err := sqlx.GetContext(ctx, r.db, &b, selectBlogByIDSQL, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select blog %d: %w", id, err)
	}
	return &b, nil
}

// Insert writes a new post row and returns the generated blog_id.
func (r *BlogRepository) Insert(ctx context.Context, b models.Blog) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertBlogSQL,
		b.CreatorID, b.CreatorName, b.Title, b.Content, b.CategoryID, b.DateCreated)
	if err != nil {
		return 0, fmt.Errorf("insert blog %q: %w", b.Title, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for blog %q: %w", b.Title, err)
	}
	return lastID, nil
}

// Update overwrites title, content and category and stamps the modified time.
func (r *BlogRepository) Update(ctx context.Context, id int64, title, content string, categoryID int64, modified time.Time) error {
	if _, err := r.db.ExecContext(ctx, updateBlogSQL, title, content, categoryID, modified, id); err != nil {
		return fmt.Errorf("update blog %d: %w", id, err)
	}
	return nil
}

// Delete removes a post row permanently.
func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, deleteBlogSQL, id); err != nil {
		return fmt.Errorf("delete blog %d: %w", id, err)
	}
	return nil
}
