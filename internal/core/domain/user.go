package domain

import "time"

// User is an operator of the system; authentication is username plus bcrypt
// password hash, authorization is a coarse role.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Role         string `json:"role"` // "admin" or "clerk"
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
