package repository

import (
	"context"

	"github.com/nurikhwanidris/urusmasjid/internal/domain"
	"github.com/nurikhwanidris/urusmasjid/internal/dto"
)

// MemberRepository defines the interface for kariah membership data access
type MemberRepository interface {
	// Create creates a new membership
	Create(ctx context.Context, member *domain.Member) error
	// GetByID retrieves a membership by ID
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	// FindMatch looks for an existing member of the mosque with the same
	// phone, email or IC number. Empty values are not matched.
	FindMatch(ctx context.Context, mosqueID, phone, email, icNumber string) (*domain.Member, error)
	// List retrieves members of a mosque with pagination and filters
	List(ctx context.Context, filter *dto.MemberListFilter) ([]*domain.Member, int, error)
	// Update updates a membership
	Update(ctx context.Context, member *domain.Member) error
	// Delete removes a membership
	Delete(ctx context.Context, id string) error
	// CountByMosque counts members of a mosque by status
	CountByMosque(ctx context.Context, mosqueID, status string) (int, error)
}
