// Package memory provides in-process implementations of the storage
// interfaces, used when the configured storage driver is "memory" and by
// tests. Maps are mutex-guarded; returned records are copies.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"aaronblog/internal/models"
	"aaronblog/internal/repository"
)

// NewRepository wires a fully in-process storage backend.
func NewRepository() *repository.Repository {
	store := newStore()
	return &repository.Repository{
		Users:      &UserStore{store: store},
		Categories: &CategoryStore{store: store},
		Blogs:      &BlogStore{store: store},
		Sessions:   repository.NewSessionStore(),
		UoW:        &memoryUOW{store: store},
	}
}

// store holds all mutable state behind a single lock, since the category
// resolve-or-create and blog write must observe each other.
type store struct {
	mu             sync.RWMutex
	users          map[string]models.User
	categories     map[string]models.Category // keyed by name, case-sensitive
	blogs          map[int64]models.Blog
	nextCategoryID int64
	nextBlogID     int64
}

func newStore() *store {
	return &store{
		users:          make(map[string]models.User),
		categories:     make(map[string]models.Category),
		blogs:          make(map[int64]models.Blog),
		nextCategoryID: 1,
		nextBlogID:     1,
	}
}

// ---- Users ----

type UserStore struct {
	store *store
}

var _ repository.Users = (*UserStore)(nil)

func (s *UserStore) Create(ctx context.Context, u models.User) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, exists := s.store.users[u.UserID]; exists {
		return fmt.Errorf("insert user %q: user id already exists", u.UserID)
	}
	s.store.users[u.UserID] = u
	return nil
}

func (s *UserStore) GetByID(ctx context.Context, userID string) (*models.User, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	u, exists := s.store.users[userID]
	if !exists {
		return nil, nil
	}
	out := u
	return &out, nil
}

// ---- Categories ----

type CategoryStore struct {
	store *store
}

var _ repository.Categories = (*CategoryStore)(nil)

func (s *CategoryStore) GetByName(ctx context.Context, name string) (*models.Category, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	c, exists := s.store.categories[name]
	if !exists {
		return nil, nil
	}
	out := c
	return &out, nil
}

func (s *CategoryStore) Create(ctx context.Context, name string) (int64, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if c, exists := s.store.categories[name]; exists {
		return c.ID, nil
	}
	c := models.Category{ID: s.store.nextCategoryID, Name: name}
	s.store.nextCategoryID++
	s.store.categories[name] = c
	return c.ID, nil
}

func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	out := make([]models.Category, 0, len(s.store.categories))
	for _, c := range s.store.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ---- Blogs ----

type BlogStore struct {
	store *store
}

var _ repository.Blogs = (*BlogStore)(nil)

func (s *BlogStore) List(ctx context.Context) ([]models.Blog, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	out := make([]models.Blog, 0, len(s.store.blogs))
	for _, b := range s.store.blogs {
		b.CategoryName = s.categoryName(b.CategoryID)
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DateCreated.Equal(out[j].DateCreated) {
			return out[i].DateCreated.After(out[j].DateCreated)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *BlogStore) GetByID(ctx context.Context, id int64) (*models.Blog, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	b, exists := s.store.blogs[id]
	if !exists {
		return nil, nil
	}
	b.CategoryName = s.categoryName(b.CategoryID)
	return &b, nil
}

func (s *BlogStore) Insert(ctx context.Context, b models.Blog) (int64, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	b.ID = s.store.nextBlogID
	s.store.nextBlogID++
	s.store.blogs[b.ID] = b
	return b.ID, nil
}

func (s *BlogStore) Update(ctx context.Context, id int64, title, content string, categoryID int64, modified time.Time) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	b, exists := s.store.blogs[id]
	if !exists {
		return fmt.Errorf("update blog %d: no such blog", id)
	}
	b.Title = title
	b.Content = content
	b.CategoryID = categoryID
	m := modified
	b.DateModified = &m
	s.store.blogs[id] = b
	return nil
}

func (s *BlogStore) Delete(ctx context.Context, id int64) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	delete(s.store.blogs, id)
	return nil
}

// categoryName resolves a category id to its name for list views.
// Callers must hold at least a read lock.
func (s *BlogStore) categoryName(id int64) string {
	for _, c := range s.store.categories {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

// ---- Unit of work ----

// memoryUOW satisfies the transactional interface without transactional
// semantics: the single store lock already serializes each statement, and a
// partial failure between statements is tolerated for this backend.
type memoryUOW struct {
	store *store
}

var _ repository.UnitOfWork = (*memoryUOW)(nil)

func (u *memoryUOW) Begin(ctx context.Context) (repository.Transaction, error) {
	return &memoryTx{store: u.store}, nil
}

type memoryTx struct {
	store *store
}

func (t *memoryTx) Blogs() repository.Blogs           { return &BlogStore{store: t.store} }
func (t *memoryTx) Categories() repository.Categories { return &CategoryStore{store: t.store} }

func (t *memoryTx) Commit(ctx context.Context) error   { return nil }
func (t *memoryTx) Rollback(ctx context.Context) error { return nil }
