package repository

import (
	"context"
	"time"

	"aaronblog/internal/models"

	"github.com/jmoiron/sqlx"
)

type Users interface {
	Create(ctx context.Context, u models.User) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
}

type Categories interface {
	GetByName(ctx context.Context, name string) (*models.Category, error)
	Create(ctx context.Context, name string) (int64, error)
	List(ctx context.Context) ([]models.Category, error)
}

type Blogs interface {
	List(ctx context.Context) ([]models.Blog, error)
	GetByID(ctx context.Context, id int64) (*models.Blog, error)
	Insert(ctx context.Context, b models.Blog) (int64, error)
	Update(ctx context.Context, id int64, title, content string, categoryID int64, modified time.Time) error
	Delete(ctx context.Context, id int64) error
}

// Sessions is the ephemeral server-side session store. Get returns (nil, nil)
// for unknown or expired IDs; Delete of an unknown ID is a no-op.
type Sessions interface {
	Create(ctx context.Context, s models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

// UnitOfWork groups the category resolve-or-create and the blog write into a
// single all-or-nothing scope.
type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

type Transaction interface {
	Blogs() Blogs
	Categories() Categories
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Repository struct {
	Users      Users
	Categories Categories
	Blogs      Blogs
	Sessions   Sessions
	UoW        UnitOfWork
}

// NewRepository wires the SQLite-backed implementations. Sessions are held in
// process regardless of the storage driver.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Users:      NewUserRepository(db),
		Categories: NewCategoryRepository(db),
		Blogs:      NewBlogRepository(db),
		Sessions:   NewSessionStore(),
		UoW:        NewSQLiteUOW(db),
	}
}
