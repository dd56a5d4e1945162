package repository

import (
	"context"

	"github.com/nurikhwanidris/urusmasjid/internal/domain"
	"github.com/nurikhwanidris/urusmasjid/internal/dto"
)

// RegistrationRepository defines the interface for event registration data
// access. RegisterTx is the write path for public intake: it must persist the
// registration and the optional kariah membership in one transaction so a
// failure leaves no partial state behind.
type RegistrationRepository interface {
	// RegisterTx inserts the registration and, when member is non-nil and no
	// matching membership exists at the mosque, the membership, atomically.
	// It reports whether a new membership row was actually inserted.
	RegisterTx(ctx context.Context, reg *domain.Registration, member *domain.Member) (bool, error)
	// GetByID retrieves a registration by ID
	GetByID(ctx context.Context, id string) (*domain.Registration, error)
	// GetByNumber retrieves a registration by its registration number
	GetByNumber(ctx context.Context, number string) (*domain.Registration, error)
	// ListByEvent retrieves the registrations of an event
	ListByEvent(ctx context.Context, filter *dto.RegistrationListFilter) ([]*domain.Registration, int, error)
	// CountActiveByEvent counts the non-cancelled registrations of an event
	CountActiveByEvent(ctx context.Context, eventID string) (int, error)
	// Update updates a registration
	Update(ctx context.Context, reg *domain.Registration) error
	// Delete removes a registration
	Delete(ctx context.Context, id string) error
	// ExistsByNumber checks if a registration number is already taken
	ExistsByNumber(ctx context.Context, number string) (bool, error)
}
