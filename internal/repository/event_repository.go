package repository

import (
	"context"

	"github.com/nurikhwanidris/urusmasjid/internal/domain"
	"github.com/nurikhwanidris/urusmasjid/internal/dto"
)

// EventRepository defines the interface for event data access
type EventRepository interface {
	// Create creates a new event
	Create(ctx context.Context, event *domain.Event) error
	// GetByID retrieves an event by ID
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// List retrieves events of a mosque with pagination and filters
	List(ctx context.Context, filter *dto.EventListFilter) ([]*domain.Event, int, error)
	// Update updates an event
	Update(ctx context.Context, event *domain.Event) error
	// Delete removes an event together with its registrations
	Delete(ctx context.Context, id string) error
}
