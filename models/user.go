package models

import "time"

// Roles assignable to a user account. The role is fixed at registration and
// embedded into every issued token.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived hash, never plaintext, and is never
	// serialized to JSON.
	PasswordHash string `json:"-"`

	// Role is either RoleUser or RoleAdmin.
	Role string `json:"role"`

	// Interests is the set of job-category tags the user wants to be
	// notified about. Only meaningful for RoleUser accounts.
	Interests []string `json:"interests"`

	// LinkedIn is an optional external profile link.
	LinkedIn string `json:"linkedin,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the externally visible view of the user: everything except
// credential material.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Interests: u.Interests,
		LinkedIn:  u.LinkedIn,
	}
}

// PublicUser is the JSON shape of a user returned by the API.
type PublicUser struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Role      string   `json:"role"`
	Interests []string `json:"interests,omitempty"`
	LinkedIn  string   `json:"linkedin,omitempty"`
}
