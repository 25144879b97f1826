// Package services contains server-side business logic. UserService
// implements the combined login-or-register flow behind the auth endpoint.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mindmate/internal/common"
	"github.com/dmitrijs2005/mindmate/internal/dbx"
	"github.com/dmitrijs2005/mindmate/internal/server/config"
	"github.com/dmitrijs2005/mindmate/internal/server/models"
	"github.com/dmitrijs2005/mindmate/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// UserService authenticates users, creating the account on first contact.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	bcryptCost  int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &UserService{db: db, repomanager: m, bcryptCost: cost}
}

// Authenticate logs in an existing user or registers a new one.
//
// The returned flag is true when the account was created by this call.
// Errors: common.ErrorValidation for an empty email or password,
// common.ErrorPasswordTooLong (also a validation error) past
// common.MaxPasswordBytes, common.ErrorUnauthorized for a wrong password;
// anything else is internal.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, bool, error) {
	if email == "" || password == "" {
		return nil, false, common.ErrorValidation
	}
	if len(password) > common.MaxPasswordBytes {
		return nil, false, common.ErrorPasswordTooLong
	}

	var (
		user    *models.User
		created bool
	)

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		u, err := repo.GetUserByEmail(ctx, email)
		if err == nil {
			user = u
			return nil
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		user, err = repo.Create(ctx, &models.User{Email: email, PasswordHash: string(hash)})
		if err != nil {
			return err
		}
		created = true
		return nil
	})

	// Lost a race with a concurrent first login for the same email.
	if errors.Is(err, common.ErrorAlreadyExists) {
		user, err = s.repomanager.Users(s.db).GetUserByEmail(ctx, email)
		created = false
	}
	if err != nil {
		return nil, false, err
	}

	if created {
		return user, true, nil
	}

	if !s.checkPassword(user.PasswordHash, password) {
		return nil, false, common.ErrorUnauthorized
	}
	return user, false, nil
}

func (s *UserService) checkPassword(hash, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}
