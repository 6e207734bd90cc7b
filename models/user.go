package models

import "time"

// User is a registered account. PasswordHash holds the bcrypt digest and is
// never serialized.
type User struct {
	// UserID is the server-generated identifier.
	UserID string `json:"_id"`

	// Username is unique across all accounts.
	Username string `json:"username"`

	// Email is optional; when set it is unique.
	Email string `json:"email,omitempty"`

	// PasswordHash is the bcrypt digest of the password.
	PasswordHash string `json:"-"`

	// ProfilePicture is an optional image reference.
	ProfilePicture string `json:"profilePicture,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

// Credentials is the body of POST /api/auth/login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	Message  string `json:"message"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}
