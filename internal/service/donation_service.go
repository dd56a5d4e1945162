package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/nurikhwanidris/urusmasjid/internal/domain"
	"github.com/nurikhwanidris/urusmasjid/internal/dto"
	"github.com/nurikhwanidris/urusmasjid/internal/repository"
	"github.com/nurikhwanidris/urusmasjid/pkg/token"
)

var (
	ErrDonationNotFound = errors.New("donation not found")
)

// DonationService defines the interface for donation operations
type DonationService interface {
	// Record records a donation and assigns a unique receipt number
	Record(ctx context.Context, mosqueID string, req *dto.CreateDonationRequest) (*domain.Donation, error)
	// GetByID retrieves a donation
	GetByID(ctx context.Context, id string) (*domain.Donation, error)
	// List retrieves donations of a mosque
	List(ctx context.Context, filter *dto.DonationListFilter) ([]*domain.Donation, int, error)
	// Complete marks a pending donation as paid
	Complete(ctx context.Context, id string) (*domain.Donation, error)
	// Total sums completed donations for a mosque
	Total(ctx context.Context, mosqueID string) (float64, error)
}

// donationService implements DonationService
type donationService struct {
	donationRepo repository.DonationRepository
	mosqueRepo   repository.MosqueRepository
}

// NewDonationService creates a new DonationService
func NewDonationService(donationRepo repository.DonationRepository, mosqueRepo repository.MosqueRepository) DonationService {
	return &donationService{
		donationRepo: donationRepo,
		mosqueRepo:   mosqueRepo,
	}
}

// Record records a donation and assigns a unique receipt number
func (s *donationService) Record(ctx context.Context, mosqueID string, req *dto.CreateDonationRequest) (*domain.Donation, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}
	if !domain.ValidPaymentMethod(req.PaymentMethod) {
		return nil, errors.New("unknown payment method")
	}

	mosque, err := s.mosqueRepo.GetByID(ctx, mosqueID)
	if err != nil {
		return nil, err
	}
	if mosque == nil {
		return nil, ErrMosqueNotFound
	}

	receipt, err := token.GenerateUnique(ctx, "RCP", token.StrategyDateRandom, s.donationRepo.ExistsByReceiptNumber)
	if err != nil {
		return nil, err
	}

	// Cash in hand is settled immediately; online methods await confirmation.
	status := domain.DonationStatusPending
	if req.PaymentMethod == domain.PaymentMethodCash {
		status = domain.DonationStatusCompleted
	}

	now := time.Now()
	donation := &domain.Donation{
		ID:              uuid.New().String(),
		MosqueID:        mosqueID,
		Amount:          req.Amount,
		DonorName:       req.DonorName,
		DonorPhone:      req.DonorPhone,
		DonorEmail:      req.DonorEmail,
		Purpose:         req.Purpose,
		Notes:           req.Notes,
		PaymentMethod:   req.PaymentMethod,
		ReferenceNumber: req.ReferenceNo,
		Status:          status,
		ReceiptNumber:   receipt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, err
	}
	return donation, nil
}

// GetByID retrieves a donation
func (s *donationService) GetByID(ctx context.Context, id string) (*domain.Donation, error) {
	donation, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, ErrDonationNotFound
	}
	return donation, nil
}

// List retrieves donations of a mosque
func (s *donationService) List(ctx context.Context, filter *dto.DonationListFilter) ([]*domain.Donation, int, error) {
	filter.SetDefaults()
	return s.donationRepo.List(ctx, filter)
}

// Complete marks a pending donation as paid
func (s *donationService) Complete(ctx context.Context, id string) (*domain.Donation, error) {
	donation, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, ErrDonationNotFound
	}
	if donation.IsCompleted() {
		return donation, nil
	}

	if err := s.donationRepo.UpdateStatus(ctx, id, domain.DonationStatusCompleted); err != nil {
		return nil, err
	}
	donation.Status = domain.DonationStatusCompleted
	return donation, nil
}

// Total sums completed donations for a mosque
func (s *donationService) Total(ctx context.Context, mosqueID string) (float64, error) {
	return s.donationRepo.TotalByMosque(ctx, mosqueID)
}
