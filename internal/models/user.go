package models

import (
	"time"
)

// User is an admin credential record. The password is stored only as a bcrypt
// hash; a single record backs the shared admin login.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// LoginRequest is the admin login body. The admin account has a fixed
// username, so only the password travels on the wire.
type LoginRequest struct {
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Password == "" {
		errors["password"] = "Password is required"
	}

	return errors
}
