package repository

import (
	"context"

	"github.com/nurikhwanidris/urusmasjid/internal/domain"
	"github.com/nurikhwanidris/urusmasjid/internal/dto"
)

// MosqueRepository defines the interface for mosque data access
type MosqueRepository interface {
	// Create creates a new mosque
	Create(ctx context.Context, mosque *domain.Mosque) error
	// GetByID retrieves a mosque by ID
	GetByID(ctx context.Context, id string) (*domain.Mosque, error)
	// List retrieves mosques with pagination and filters
	List(ctx context.Context, filter *dto.MosqueListFilter) ([]*domain.Mosque, int, error)
	// Update updates a mosque
	Update(ctx context.Context, mosque *domain.Mosque) error
	// SoftDelete soft deletes a mosque
	SoftDelete(ctx context.Context, id string) error

	// AddAdmin links a user to a mosque as staff
	AddAdmin(ctx context.Context, admin *domain.MosqueAdmin) error
	// RemoveAdmin unlinks a user from a mosque
	RemoveAdmin(ctx context.Context, mosqueID, userID string) error
	// IsAdmin checks whether the user administers the mosque
	IsAdmin(ctx context.Context, mosqueID, userID string) (bool, error)
	// ListAdmins retrieves the staff of a mosque
	ListAdmins(ctx context.Context, mosqueID string) ([]*domain.MosqueAdmin, error)
	// ListByAdmin retrieves the mosques a user administers
	ListByAdmin(ctx context.Context, userID string) ([]*domain.Mosque, error)
}

// CommitteeRepository defines the interface for committee (AJK) data access
type CommitteeRepository interface {
	// Create creates a new committee member
	Create(ctx context.Context, committee *domain.Committee) error
	// GetByID retrieves a committee member by ID
	GetByID(ctx context.Context, id string) (*domain.Committee, error)
	// ListByMosque retrieves the committee of a mosque
	ListByMosque(ctx context.Context, mosqueID string) ([]*domain.Committee, error)
	// Update updates a committee member
	Update(ctx context.Context, committee *domain.Committee) error
	// Delete removes a committee member
	Delete(ctx context.Context, id string) error
}
