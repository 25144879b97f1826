package client

import (
	"context"

	"github.com/dmitrijs2005/mindmate/internal/client/models"
)

type Client interface {
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	Ping(ctx context.Context) error
}

// AuthResponse is the decoded body of the auth endpoint.
type AuthResponse struct {
	Message string       `json:"message,omitempty"`
	Error   string       `json:"error,omitempty"`
	User    *models.User `json:"user,omitempty"`
	// StatusCode is the HTTP status the body arrived with.
	StatusCode int `json:"-"`
}
