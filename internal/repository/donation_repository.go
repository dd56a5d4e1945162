package repository

import (
	"context"

	"github.com/nurikhwanidris/urusmasjid/internal/domain"
	"github.com/nurikhwanidris/urusmasjid/internal/dto"
)

// DonationRepository defines the interface for donation data access
type DonationRepository interface {
	// Create creates a new donation record
	Create(ctx context.Context, donation *domain.Donation) error
	// GetByID retrieves a donation by ID
	GetByID(ctx context.Context, id string) (*domain.Donation, error)
	// List retrieves donations of a mosque with pagination and filters
	List(ctx context.Context, filter *dto.DonationListFilter) ([]*domain.Donation, int, error)
	// UpdateStatus updates the payment status of a donation
	UpdateStatus(ctx context.Context, id, status string) error
	// ExistsByReceiptNumber checks if a receipt number is already taken
	ExistsByReceiptNumber(ctx context.Context, number string) (bool, error)
	// TotalByMosque sums completed donation amounts for a mosque
	TotalByMosque(ctx context.Context, mosqueID string) (float64, error)
}
