// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an account row. PasswordHash is a bcrypt hash and never leaves
// the server; use View for anything sent over the wire.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Avatar       string
	JoinedDate   time.Time
}

// UserView is the public JSON shape of a user.
type UserView struct {
	ID         string    `json:"_id"`
	Email      string    `json:"email"`
	Avatar     string    `json:"avatar,omitempty"`
	JoinedDate time.Time `json:"joinedDate"`
}

// View returns the public projection of u, without the password hash.
func (u *User) View() *UserView {
	return &UserView{
		ID:         u.ID,
		Email:      u.Email,
		Avatar:     u.Avatar,
		JoinedDate: u.JoinedDate.UTC(),
	}
}
