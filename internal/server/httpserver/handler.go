package httpserver

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/mindmate/internal/common"
	"github.com/dmitrijs2005/mindmate/internal/server/models"
	"github.com/gin-gonic/gin"
)

const (
	msgCredentialsRequired = "Email and password are required"
	msgPasswordTooLong     = "Password must be at most 72 bytes"
	msgInvalidPassword     = "Invalid password"
	msgUserCreated         = "New user created"
	msgLoginSuccessful     = "Login successful"
)

type authRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Message string           `json:"message"`
	User    *models.UserView `json:"user"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *HTTPServer) authenticate(c *gin.Context) {
	ctx := c.Request.Context()

	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: msgCredentialsRequired})
		return
	}

	user, created, err := s.users.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorPasswordTooLong):
			c.JSON(http.StatusBadRequest, errorResponse{Error: msgPasswordTooLong})
		case errors.Is(err, common.ErrorValidation):
			c.JSON(http.StatusBadRequest, errorResponse{Error: msgCredentialsRequired})
		case errors.Is(err, common.ErrorUnauthorized):
			c.JSON(http.StatusUnauthorized, errorResponse{Error: msgInvalidPassword})
		default:
			s.logger.Error(ctx, "authentication failed", "request_id", c.GetString(requestIDKey), "error", err)
			c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		return
	}

	if created {
		s.logger.Info(ctx, "user registered", "user_id", user.ID)
		c.JSON(http.StatusCreated, authResponse{Message: msgUserCreated, User: user.View()})
		return
	}

	c.JSON(http.StatusOK, authResponse{Message: msgLoginSuccessful, User: user.View()})
}

func (s *HTTPServer) health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (s *HTTPServer) root(c *gin.Context) {
	c.String(http.StatusOK, "MindMate API is running")
}
