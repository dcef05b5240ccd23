package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SQLiteUOW begins database transactions whose repositories share one sqlx.Tx,
// so a category resolve-or-create and the subsequent blog write commit or roll
// back together.
type SQLiteUOW struct {
	db *sqlx.DB
}

func NewSQLiteUOW(db *sqlx.DB) *SQLiteUOW {
	return &SQLiteUOW{db: db}
}

var _ UnitOfWork = (*SQLiteUOW)(nil)

func (u *SQLiteUOW) Begin(ctx context.Context) (Transaction, error) {
	tx, err := u.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &sqliteTx{tx: tx}, nil
}

type sqliteTx struct {
	tx *sqlx.Tx
}

func (t *sqliteTx) Blogs() Blogs           { return NewBlogRepository(t.tx) }
func (t *sqliteTx) Categories() Categories { return NewCategoryRepository(t.tx) }

func (t *sqliteTx) Commit(ctx context.Context) error   { return t.tx.Commit() }
func (t *sqliteTx) Rollback(ctx context.Context) error { return t.tx.Rollback() }
