package repositories

import (
	"context"

	"github.com/efileconnect/efc_backend/internal/core/domain"
)

// UserReader defines read operations for user data. The lifecycle engine only
// hydrates actors; user management proper lives outside this core.
type UserReader interface {
	// FindUserByID retrieves a user by their unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, for credential checks.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
}
