package domain

import (
	"time"
)

type User struct {
	ID           int64      `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	DisplayName  string     `json:"display_name" db:"display_name"`
	URL          string     `json:"url" db:"url"`
	Role         string     `json:"role" db:"role"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	DeletedAt    *time.Time `json:"-" db:"deleted_at"`
}

type RegisterInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"display_name" validate:"required,min=2"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenPair struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

const (
	RoleAdministrator = "administrator"
	RoleEditor        = "editor"
	RoleSubscriber    = "subscriber"
)

// HasRole reports whether the user's role satisfies the required one;
// administrator implies editor implies subscriber.
func (u *User) HasRole(requiredRole string) bool {
	switch requiredRole {
	case RoleAdministrator:
		return u.Role == RoleAdministrator
	case RoleEditor:
		return u.Role == RoleEditor || u.Role == RoleAdministrator
	case RoleSubscriber:
		return u.Role == RoleSubscriber || u.Role == RoleEditor || u.Role == RoleAdministrator
	default:
		return false
	}
}

// Caller is the identity this account acts as.
func (u *User) Caller() Caller {
	return Caller{UserID: u.ID, Role: u.Role}
}
