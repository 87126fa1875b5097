package services

import (
	"context"

	"github.com/efileconnect/efc_backend/internal/core/domain"
)

// UserSvcFacade hydrates actors and checks credentials. User management
// proper is a collaborator outside this core.
type UserSvcFacade interface {
	// GetUserByID retrieves a user by their unique identifier.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// Authenticate verifies credentials and returns the matching user.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}
