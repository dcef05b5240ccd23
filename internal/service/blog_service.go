package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"aaronblog/internal/models"
	"aaronblog/internal/repository"
)

// Domain errors for post flows.
var (
	ErrPostNotFound     = errors.New("post not found")
	ErrNotOwner         = errors.New("requester is not the post creator")
	ErrCategoryRequired = errors.New("category name is empty")
)

// CreateBlogInput is the create-post form payload; creator fields come from
// the session, never from the form.
type CreateBlogInput struct {
	Title        string
	Content      string
	CategoryName string
	CreatorID    string
	CreatorName  string
}

// EditBlogInput overwrites title, content and category of an existing post.
type EditBlogInput struct {
	ID           int64
	Title        string
	Content      string
	CategoryName string
	RequesterID  string
}

// BlogService implements post operations. Writes that span the category
// resolve-or-create and the blog statement run inside one unit of work.
type BlogService struct {
	blogs      repository.Blogs
	categories repository.Categories
	uow        repository.UnitOfWork
}

func NewBlogService(blogs repository.Blogs, categories repository.Categories, uow repository.UnitOfWork) *BlogService {
	return &BlogService{blogs: blogs, categories: categories, uow: uow}
}

var _ Blogs = (*BlogService)(nil)

// List returns all posts, newest first.
func (s *BlogService) List(ctx context.Context) ([]models.Blog, error) {
	return s.blogs.List(ctx)
}

// Get fetches a single post. Returns ErrPostNotFound on a miss.
func (s *BlogService) Get(ctx context.Context, id int64) (*models.Blog, error) {
	b, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrPostNotFound
	}
	return b, nil
}

// CategoryNames returns all category names sorted, for form population.
func (s *BlogService) CategoryNames(ctx context.Context) ([]string, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
	}
	return names, nil
}

// Create resolves the category and writes the new post in one transaction.
func (s *BlogService) Create(ctx context.Context, in CreateBlogInput) (*models.Blog, error) {
	name := strings.TrimSpace(in.CategoryName)
	if name == "" {
		return nil, ErrCategoryRequired
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	categoryID, err := resolveOrCreateCategory(ctx, tx.Categories(), name)
	if err != nil {
		return nil, err
	}

	b := models.Blog{
		CreatorID:    in.CreatorID,
		CreatorName:  in.CreatorName,
		Title:        in.Title,
		Content:      in.Content,
		CategoryID:   categoryID,
		CategoryName: name,
		DateCreated:  time.Now(),
	}
	id, err := tx.Blogs().Insert(ctx, b)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit create of %q: %w", in.Title, err)
	}

	b.ID = id
	return &b, nil
}

// Edit overwrites title, content and category after the ownership check, and
// stamps the modified time.
func (s *BlogService) Edit(ctx context.Context, in EditBlogInput) error {
	if err := s.requireOwner(ctx, in.ID, in.RequesterID); err != nil {
		return err
	}

	name := strings.TrimSpace(in.CategoryName)
	if name == "" {
		return ErrCategoryRequired
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	categoryID, err := resolveOrCreateCategory(ctx, tx.Categories(), name)
	if err != nil {
		return err
	}
	if err := tx.Blogs().Update(ctx, in.ID, in.Title, in.Content, categoryID, time.Now()); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit edit of blog %d: %w", in.ID, err)
	}
	return nil
}

// Delete removes the post permanently after the ownership check. Unused
// categories are never cleaned up.
func (s *BlogService) Delete(ctx context.Context, id int64, requesterID string) error {
	if err := s.requireOwner(ctx, id, requesterID); err != nil {
		return err
	}
	return s.blogs.Delete(ctx, id)
}

// requireOwner fails with ErrPostNotFound before ErrNotOwner, so a missing
// post never reads as a permission problem.
func (s *BlogService) requireOwner(ctx context.Context, id int64, requesterID string) error {
	b, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrPostNotFound
	}
	if b.CreatorID != requesterID {
		return ErrNotOwner
	}
	return nil
}

// resolveOrCreateCategory looks a category up by exact name, creating it on a
// miss. The miss is the creation trigger, not an error.
func resolveOrCreateCategory(ctx context.Context, categories repository.Categories, name string) (int64, error) {
	c, err := categories.GetByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if c != nil {
		return c.ID, nil
	}
	return categories.Create(ctx, name)
}
