package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	UserRoleAdmin = "admin"
	UserRoleUser  = "user"
)

// User is an account record. A non-admin user becomes a client or an
// employee through the optional links below.
type User struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	Email          string     `json:"email" db:"email"`
	FullName       string     `json:"full_name" db:"full_name"`
	PasswordHash   string     `json:"-" db:"password_hash"`
	PhoneNumber    string     `json:"phone_number" db:"phone_number"`
	Role           string     `json:"role" db:"role"`
	ProfilePicture *string    `json:"profile_picture,omitempty" db:"profile_picture"`
	ClientID       *uuid.UUID `json:"client_id,omitempty" db:"client_id"`
	EmployeeID     *uuid.UUID `json:"employee_id,omitempty" db:"employee_id"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// TokenResponse is returned by login and refresh
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int       `json:"expires_in"`
	RefreshToken string    `json:"refresh_token"`
	UserID       string    `json:"user_id"`
	Role         string    `json:"role"`
	IssuedAt     time.Time `json:"issued_at"`
}
