// internal/util/errors.go
package util

import (
	"errors"

	"usuarios-api/pkg/db"
)

// Common application-specific errors.
var (
	ErrConfiguration  = errors.New("invalid configuration")
	ErrConnection     = db.ErrConnection
	ErrInvalidInput   = errors.New("invalid input provided")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrQuery          = errors.New("database query failed")
)

// IsError reports whether err matches target anywhere in its chain.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
