// Package common defines sentinel errors shared by the MindMate server
// layers. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// ErrorPasswordTooLong is a validation error: bcrypt only hashes the
	// first 72 bytes of a password.
	ErrorPasswordTooLong = fmt.Errorf("%w: password exceeds %d bytes", ErrorValidation, MaxPasswordBytes)
)
