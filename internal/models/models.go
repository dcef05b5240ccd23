package models

import "time"

// User is an account created at sign-up. The UserID is chosen by the user and
// never changes; accounts are never deleted.
type User struct {
	UserID       string `db:"user_id" json:"user_id"`
	Name         string `db:"name" json:"name"`
	PasswordHash string `db:"password_hash" json:"-"` // don't expose hash
}

// Category is a named grouping for posts, created lazily the first time a post
// references an unseen name. Names are case-sensitive unique.
type Category struct {
	ID   int64  `db:"category_id" json:"category_id"`
	Name string `db:"category_name" json:"category_name"`
}

// Blog is a single post. CreatorName and CategoryName are denormalized for
// listing views; CategoryID always references an existing category row.
type Blog struct {
	ID           int64      `db:"blog_id" json:"blog_id"`
	CreatorID    string     `db:"creator_user_id" json:"creator_user_id"`
	CreatorName  string     `db:"creator_name" json:"creator_name"`
	Title        string     `db:"title" json:"title"`
	Content      string     `db:"content" json:"content"`
	CategoryID   int64      `db:"category_id" json:"category_id"`
	CategoryName string     `db:"category_name" json:"category_name"`
	DateCreated  time.Time  `db:"date_created" json:"date_created"`
	DateModified *time.Time `db:"date_modified" json:"date_modified,omitempty"`
}

// Session is the server-held record behind a browser cookie: created on
// sign-in, destroyed on sign-out or expiry.
type Session struct {
	ID        string    `json:"-"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"name"`
	CreatedAt time.Time `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// Expired reports whether the session is past its expiry at time now.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
