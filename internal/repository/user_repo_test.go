package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"

	"aaronblog/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	xdb := sqlx.NewDb(db, "sqlmock")
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = xdb.Close()
	}
	return xdb, mock, cleanup
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name       string
		user       models.User
		mockExpect func(sqlmock.Sqlmock)
		wantErr    string
	}{
		{
			name: "success",
			user: models.User{UserID: "alice", Name: "Alice", PasswordHash: "h123"},
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("alice", "Alice", "h123").
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name: "exec error",
			user: models.User{UserID: "bob", Name: "Bob", PasswordHash: "h456"},
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("bob", "Bob", "h456").
					WillReturnError(errors.New("db exec failed"))
			},
			wantErr: "insert user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := newMockDB(t)
			defer cleanup()
			repo := NewUserRepository(db)

			tt.mockExpect(mock)

			err := repo.Create(context.Background(), tt.user)

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error to contain %q, got %q", tt.wantErr, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		mockExpect func(sqlmock.Sqlmock)
		wantUser   *models.User
		wantErr    string
	}{
		{
			name:   "found",
			userID: "alice",
			mockExpect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"user_id", "name", "password_hash"}).
					AddRow("alice", "Alice", "h123")
				m.ExpectQuery(regexp.QuoteMeta(selectUserByIDSQL)).
					WithArgs("alice").
					WillReturnRows(rows)
			},
			wantUser: &models.User{UserID: "alice", Name: "Alice", PasswordHash: "h123"},
		},
		{
			name:   "not found (ErrNoRows)",
			userID: "missing",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByIDSQL)).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantUser: nil,
		},
		{
			name:   "query error",
			userID: "bob",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByIDSQL)).
					WithArgs("bob").
					WillReturnError(errors.New("db query failed"))
			},
			wantErr: "select user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := newMockDB(t)
			defer cleanup()
			repo := NewUserRepository(db)

			tt.mockExpect(mock)

			u, err := repo.GetByID(context.Background(), tt.userID)

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error to contain %q, got %q", tt.wantErr, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantUser == nil {
				if u != nil {
					t.Fatalf("expected nil user, got %+v", u)
				}
				return
			}
			if u == nil {
				t.Fatalf("expected user, got nil")
			}
			if *u != *tt.wantUser {
				t.Fatalf("unexpected user: want %+v, got %+v", tt.wantUser, u)
			}
		})
	}
}
