package repository

import (
	"context"

	"github.com/nurikhwanidris/urusmasjid/internal/domain"
	"github.com/nurikhwanidris/urusmasjid/internal/dto"
)

// AnnouncementRepository defines the interface for announcement data access
type AnnouncementRepository interface {
	// Create creates a new announcement
	Create(ctx context.Context, announcement *domain.Announcement) error
	// GetByID retrieves an announcement by ID
	GetByID(ctx context.Context, id string) (*domain.Announcement, error)
	// List retrieves announcements of a mosque with pagination and filters
	List(ctx context.Context, filter *dto.AnnouncementListFilter) ([]*domain.Announcement, int, error)
	// ListVisible retrieves the currently visible announcements of a mosque
	ListVisible(ctx context.Context, mosqueID string, limit int) ([]*domain.Announcement, error)
	// Update updates an announcement
	Update(ctx context.Context, announcement *domain.Announcement) error
	// Delete removes an announcement
	Delete(ctx context.Context, id string) error
}
