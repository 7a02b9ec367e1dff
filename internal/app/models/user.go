package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	Password  string    `db:"password_hash"` // bcrypt hash, never serialized
	CreatedAt time.Time `db:"created_at"`
}
