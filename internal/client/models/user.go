// Package models defines client-side data models of the MindMate client:
// the signed-in user, mood entries, habits, chat exchanges and the
// per-user snapshot they are persisted in.
package models

import (
	"encoding/json"
	"time"
)

// User is the signed-in account as returned by the auth endpoint.
type User struct {
	ID         string    `json:"_id"`
	Email      string    `json:"email"`
	Avatar     string    `json:"avatar,omitempty"`
	JoinedDate time.Time `json:"joinedDate"`
}

// UnmarshalJSON accepts the id under either "_id" or "id".
func (u *User) UnmarshalJSON(b []byte) error {
	var raw struct {
		UnderscoreID string    `json:"_id"`
		ID           string    `json:"id"`
		Email        string    `json:"email"`
		Avatar       string    `json:"avatar"`
		JoinedDate   time.Time `json:"joinedDate"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*u = User{
		ID:         raw.UnderscoreID,
		Email:      raw.Email,
		Avatar:     raw.Avatar,
		JoinedDate: raw.JoinedDate,
	}
	if u.ID == "" {
		u.ID = raw.ID
	}
	return nil
}
