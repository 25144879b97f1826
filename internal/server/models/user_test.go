package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_ViewOmitsHash(t *testing.T) {
	u := &User{
		ID:           "6f1c",
		Email:        "a@b.com",
		PasswordHash: "$2a$10$secret",
		JoinedDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	b, err := json.Marshal(u.View())
	require.NoError(t, err)

	assert.JSONEq(t, `{"_id":"6f1c","email":"a@b.com","joinedDate":"2024-01-01T00:00:00Z"}`, string(b))
	assert.NotContains(t, string(b), "secret")
}

func TestUser_ViewKeepsAvatar(t *testing.T) {
	u := &User{ID: "1", Email: "x@y.z", Avatar: "https://img/1.png"}
	assert.Equal(t, "https://img/1.png", u.View().Avatar)
}
