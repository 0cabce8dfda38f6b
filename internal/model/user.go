// Package model defines domain entities for the application.
package model

import "time"

// User represents a registered account.
// PasswordHash is never serialized into API responses.
type User struct {
	ID           int64     `json:"id"`
	Name         *string   `json:"name,omitempty"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PublicUser is the profile shape returned alongside issued tokens.
type PublicUser struct {
	ID    int64   `json:"id"`
	Name  *string `json:"name"`
	Login string  `json:"login"`
}

// Public strips the user down to the fields exposed by the API.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Login: u.Login,
	}
}
