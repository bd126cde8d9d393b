package models

import (
	"database/sql"
	"time"
)

// User represents a row in the users table. Provider accounts have an
// empty password hash and a non-null provider_user_id.
type User struct {
	UserID         string         `db:"user_id"`
	Username       string         `db:"username"`
	Name           string         `db:"name"`
	PasswordHash   string         `db:"password_hash"`
	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"` // Used for soft delete
}
