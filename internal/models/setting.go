package models

// Setting represents a row in the settings table. The primary key is
// the composite (user_id, key).
type Setting struct {
	UserID string `db:"user_id"`
	Key    string `db:"key"`
	Value  string `db:"value"`
	AuditFields
}
