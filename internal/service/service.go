package service

import (
	"context"

	"aaronblog/internal/models"
	"aaronblog/internal/repository"
)

// Authorization is the auth gate: account creation, credential checks and the
// session lifecycle.
type Authorization interface {
	SignUp(ctx context.Context, in SignUpInput) error
	SignIn(ctx context.Context, userID, password string) (string, error)
	SignOut(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*models.Session, error)
}

// Blogs exposes post listing and creator-gated mutation.
type Blogs interface {
	List(ctx context.Context) ([]models.Blog, error)
	Get(ctx context.Context, id int64) (*models.Blog, error)
	CategoryNames(ctx context.Context) ([]string, error)
	Create(ctx context.Context, in CreateBlogInput) (*models.Blog, error)
	Edit(ctx context.Context, in EditBlogInput) error
	Delete(ctx context.Context, id int64, requesterID string) error
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Blogs
}

// AuthOptions carries the session knobs read from configuration.
type AuthOptions struct {
	SigningKey string
	SessionTTL string // e.g. "24h"; falls back to a day when unparsable
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, opts AuthOptions) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, repos.Sessions, opts),
		Blogs:         NewBlogService(repos.Blogs, repos.Categories, repos.UoW),
	}
}
