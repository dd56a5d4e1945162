package repository

import (
	"context"

	"github.com/nurikhwanidris/urusmasjid/internal/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *domain.User) error
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update updates a user
	Update(ctx context.Context, user *domain.User) error
	// SoftDelete soft deletes a user
	SoftDelete(ctx context.Context, id string) error
	// ExistsByEmail checks if a user exists with the given email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
