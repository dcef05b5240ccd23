package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"aaronblog/internal/models"
	"aaronblog/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const defaultSessionTTL = 24 * time.Hour

// Domain errors for auth flows.
var (
	ErrDuplicateUser   = errors.New("user id already taken")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid token")
)

// SignUpInput is the sign-up form payload.
type SignUpInput struct {
	UserID   string `validate:"required,min=3,max=32"`
	Name     string `validate:"required,max=64"`
	Password string `validate:"required,min=4"`
}

// AuthService handles accounts and sessions. The browser cookie holds a
// signed token whose subject is the server-side session ID, so sign-out
// invalidates outstanding tokens by deleting the record.
type AuthService struct {
	users      repository.Users
	sessions   repository.Sessions
	signingKey []byte
	sessionTTL time.Duration
	validate   *validator.Validate
}

func NewAuthService(users repository.Users, sessions repository.Sessions, opts AuthOptions) *AuthService {
	ttl, err := time.ParseDuration(opts.SessionTTL)
	if err != nil || ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		signingKey: []byte(opts.SigningKey),
		sessionTTL: ttl,
		validate:   validator.New(),
	}
}

var _ Authorization = (*AuthService)(nil)

// SignUp validates the form input, hashes the password and creates the user.
// No session is established; the user signs in separately.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("invalid sign-up input: %w", err)
	}

	existing, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateUser
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}
	return s.users.Create(ctx, models.User{
		UserID:       in.UserID,
		Name:         in.Name,
		PasswordHash: hash,
	})
}

// SignIn checks credentials, creates a session and returns the signed cookie
// token.
func (s *AuthService) SignIn(ctx context.Context, userID, password string) (string, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidPassword
	}

	now := time.Now()
	sess := models.Session{
		ID:        uuid.NewString(),
		UserID:    u.UserID,
		UserName:  u.Name,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return "", fmt.Errorf("create session for %q: %w", userID, err)
	}

	return s.issueToken(sess)
}

// SignOut destroys the session behind the token. Unknown or malformed tokens
// are not an error; the operation is idempotent.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	sessionID, err := s.parseToken(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

// CurrentUser resolves a cookie token to its live session.
// Returns (nil, nil) when the token is absent, invalid, or the session is gone.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, nil
	}
	sessionID, err := s.parseToken(token)
	if err != nil {
		return nil, nil
	}
	return s.sessions.Get(ctx, sessionID)
}

// issueToken signs a JWT whose subject is the session ID.
func (s *AuthService) issueToken(sess models.Session) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sess.ID,
		ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		IssuedAt:  jwt.NewNumericDate(sess.CreatedAt),
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// parseToken verifies the signature and returns the session ID.
func (s *AuthService) parseToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return "", fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
