package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/nurikhwanidris/urusmasjid/internal/domain"
	"github.com/nurikhwanidris/urusmasjid/internal/dto"
	"github.com/nurikhwanidris/urusmasjid/internal/repository"
)

var (
	ErrMosqueNotFound     = errors.New("mosque not found")
	ErrMosqueNotVerified  = errors.New("mosque is not verified")
	ErrAlreadyVerified    = errors.New("mosque verification already decided")
	ErrNotMosqueAdmin     = errors.New("user does not administer this mosque")
	ErrCommitteeNotFound  = errors.New("committee member not found")
)

// MosqueService defines the interface for mosque management operations
type MosqueService interface {
	// Register registers a new mosque, pending verification. The creator
	// becomes its primary admin.
	Register(ctx context.Context, req *dto.CreateMosqueRequest) (*domain.Mosque, error)
	// GetByID retrieves a mosque by ID
	GetByID(ctx context.Context, id string) (*domain.Mosque, error)
	// List retrieves mosques with pagination and filters
	List(ctx context.Context, filter *dto.MosqueListFilter) ([]*domain.Mosque, int, error)
	// Update updates a mosque
	Update(ctx context.Context, id string, req *dto.UpdateMosqueRequest) (*domain.Mosque, error)
	// Delete soft deletes a mosque
	Delete(ctx context.Context, id string) error
	// Verify records the system admin's verification decision
	Verify(ctx context.Context, id, adminID string, req *dto.VerifyMosqueRequest) (*domain.Mosque, error)

	// IsStaff checks whether the user administers the mosque
	IsStaff(ctx context.Context, mosqueID, userID string) (bool, error)
	// AddAdmin links a user to the mosque as staff
	AddAdmin(ctx context.Context, mosqueID string, req *dto.AddMosqueAdminRequest) (*domain.MosqueAdmin, error)
	// RemoveAdmin unlinks a user from the mosque
	RemoveAdmin(ctx context.Context, mosqueID, userID string) error
	// ListAdmins retrieves the staff of a mosque
	ListAdmins(ctx context.Context, mosqueID string) ([]*domain.MosqueAdmin, error)
	// ListByAdmin retrieves the mosques a user administers
	ListByAdmin(ctx context.Context, userID string) ([]*domain.Mosque, error)

	// AddCommittee appoints a committee (AJK) member
	AddCommittee(ctx context.Context, mosqueID string, req *dto.CreateCommitteeRequest) (*domain.Committee, error)
	// ListCommittee retrieves the committee of a mosque
	ListCommittee(ctx context.Context, mosqueID string) ([]*domain.Committee, error)
	// RemoveCommittee removes a committee member
	RemoveCommittee(ctx context.Context, mosqueID, committeeID string) error
}

// mosqueService implements MosqueService
type mosqueService struct {
	mosqueRepo    repository.MosqueRepository
	committeeRepo repository.CommitteeRepository
	userRepo      repository.UserRepository
}

// NewMosqueService creates a new MosqueService
func NewMosqueService(mosqueRepo repository.MosqueRepository, committeeRepo repository.CommitteeRepository, userRepo repository.UserRepository) MosqueService {
	return &mosqueService{
		mosqueRepo:    mosqueRepo,
		committeeRepo: committeeRepo,
		userRepo:      userRepo,
	}
}

// Register registers a new mosque, pending verification
func (s *mosqueService) Register(ctx context.Context, req *dto.CreateMosqueRequest) (*domain.Mosque, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	now := time.Now()
	mosque := &domain.Mosque{
		ID:                 uuid.New().String(),
		Name:               req.Name,
		Type:               req.Type,
		StreetAddress:      req.StreetAddress,
		City:               req.City,
		District:           req.District,
		State:              req.State,
		PostalCode:         req.PostalCode,
		JakimZone:          req.JakimZone,
		ContactNumber:      req.ContactNumber,
		Email:              req.Email,
		Website:            req.Website,
		RegistrationNumber: req.RegistrationNumber,
		VerificationStatus: domain.MosqueStatusPending,
		CreatedBy:          req.CreatedBy,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.mosqueRepo.Create(ctx, mosque); err != nil {
		return nil, err
	}

	// The registrant administers the mosque they registered.
	admin := &domain.MosqueAdmin{
		ID:        uuid.New().String(),
		MosqueID:  mosque.ID,
		UserID:    req.CreatedBy,
		Role:      "admin",
		IsPrimary: true,
		CreatedAt: now,
	}
	if err := s.mosqueRepo.AddAdmin(ctx, admin); err != nil {
		return nil, err
	}

	// Promote the registrant so they can reach staff surfaces.
	user, err := s.userRepo.GetByID(ctx, req.CreatedBy)
	if err != nil {
		return nil, err
	}
	if user != nil && user.Role == domain.RoleCommunityMember {
		user.Role = domain.RoleMosqueAdmin
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	return mosque, nil
}

// GetByID retrieves a mosque by ID
func (s *mosqueService) GetByID(ctx context.Context, id string) (*domain.Mosque, error) {
	mosque, err := s.mosqueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mosque == nil {
		return nil, ErrMosqueNotFound
	}
	return mosque, nil
}

// List retrieves mosques with pagination and filters
func (s *mosqueService) List(ctx context.Context, filter *dto.MosqueListFilter) ([]*domain.Mosque, int, error) {
	filter.SetDefaults()
	return s.mosqueRepo.List(ctx, filter)
}

// Update updates a mosque
func (s *mosqueService) Update(ctx context.Context, id string, req *dto.UpdateMosqueRequest) (*domain.Mosque, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	mosque, err := s.mosqueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mosque == nil {
		return nil, ErrMosqueNotFound
	}

	if req.Name != nil {
		mosque.Name = *req.Name
	}
	if req.StreetAddress != nil {
		mosque.StreetAddress = *req.StreetAddress
	}
	if req.City != nil {
		mosque.City = *req.City
	}
	if req.District != nil {
		mosque.District = *req.District
	}
	if req.State != nil {
		mosque.State = *req.State
	}
	if req.PostalCode != nil {
		mosque.PostalCode = *req.PostalCode
	}
	if req.JakimZone != nil {
		mosque.JakimZone = *req.JakimZone
	}
	if req.ContactNumber != nil {
		mosque.ContactNumber = *req.ContactNumber
	}
	if req.Email != nil {
		mosque.Email = *req.Email
	}
	if req.Website != nil {
		mosque.Website = *req.Website
	}

	if err := s.mosqueRepo.Update(ctx, mosque); err != nil {
		return nil, err
	}
	return mosque, nil
}

// Delete soft deletes a mosque
func (s *mosqueService) Delete(ctx context.Context, id string) error {
	mosque, err := s.mosqueRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if mosque == nil {
		return ErrMosqueNotFound
	}
	return s.mosqueRepo.SoftDelete(ctx, id)
}

// Verify records the system admin's verification decision
func (s *mosqueService) Verify(ctx context.Context, id, adminID string, req *dto.VerifyMosqueRequest) (*domain.Mosque, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	mosque, err := s.mosqueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mosque == nil {
		return nil, ErrMosqueNotFound
	}
	if !mosque.IsPending() {
		return nil, ErrAlreadyVerified
	}

	now := time.Now()
	mosque.VerificationStatus = req.Status
	mosque.VerificationNotes = req.Notes
	mosque.VerifiedAt = &now
	mosque.VerifiedBy = &adminID

	if err := s.mosqueRepo.Update(ctx, mosque); err != nil {
		return nil, err
	}
	return mosque, nil
}

// IsStaff checks whether the user administers the mosque
func (s *mosqueService) IsStaff(ctx context.Context, mosqueID, userID string) (bool, error) {
	return s.mosqueRepo.IsAdmin(ctx, mosqueID, userID)
}

// AddAdmin links a user to the mosque as staff
func (s *mosqueService) AddAdmin(ctx context.Context, mosqueID string, req *dto.AddMosqueAdminRequest) (*domain.MosqueAdmin, error) {
	mosque, err := s.mosqueRepo.GetByID(ctx, mosqueID)
	if err != nil {
		return nil, err
	}
	if mosque == nil {
		return nil, ErrMosqueNotFound
	}

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	admin := &domain.MosqueAdmin{
		ID:        uuid.New().String(),
		MosqueID:  mosqueID,
		UserID:    req.UserID,
		Role:      req.Role,
		IsPrimary: req.IsPrimary,
		CreatedAt: time.Now(),
	}
	if err := s.mosqueRepo.AddAdmin(ctx, admin); err != nil {
		return nil, err
	}

	if user.Role == domain.RoleCommunityMember {
		user.Role = domain.RoleMosqueAdmin
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}
	return admin, nil
}

// RemoveAdmin unlinks a user from the mosque
func (s *mosqueService) RemoveAdmin(ctx context.Context, mosqueID, userID string) error {
	isAdmin, err := s.mosqueRepo.IsAdmin(ctx, mosqueID, userID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return ErrNotMosqueAdmin
	}
	return s.mosqueRepo.RemoveAdmin(ctx, mosqueID, userID)
}

// ListAdmins retrieves the staff of a mosque
func (s *mosqueService) ListAdmins(ctx context.Context, mosqueID string) ([]*domain.MosqueAdmin, error) {
	return s.mosqueRepo.ListAdmins(ctx, mosqueID)
}

// ListByAdmin retrieves the mosques a user administers
func (s *mosqueService) ListByAdmin(ctx context.Context, userID string) ([]*domain.Mosque, error) {
	return s.mosqueRepo.ListByAdmin(ctx, userID)
}

// AddCommittee appoints a committee (AJK) member
func (s *mosqueService) AddCommittee(ctx context.Context, mosqueID string, req *dto.CreateCommitteeRequest) (*domain.Committee, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	mosque, err := s.mosqueRepo.GetByID(ctx, mosqueID)
	if err != nil {
		return nil, err
	}
	if mosque == nil {
		return nil, ErrMosqueNotFound
	}

	now := time.Now()
	committee := &domain.Committee{
		ID:        uuid.New().String(),
		MosqueID:  mosqueID,
		UserID:    req.UserID,
		Name:      req.Name,
		Position:  req.Position,
		ICNumber:  req.ICNumber,
		Phone:     req.Phone,
		Email:     req.Email,
		Status:    domain.CommitteeStatusActive,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.StartDate != "" {
		t, err := time.Parse("2006-01-02", req.StartDate)
		if err == nil {
			committee.StartDate = &t
		}
	}
	if req.EndDate != "" {
		t, err := time.Parse("2006-01-02", req.EndDate)
		if err == nil {
			committee.EndDate = &t
		}
	}

	if err := s.committeeRepo.Create(ctx, committee); err != nil {
		return nil, err
	}
	return committee, nil
}

// ListCommittee retrieves the committee of a mosque
func (s *mosqueService) ListCommittee(ctx context.Context, mosqueID string) ([]*domain.Committee, error) {
	return s.committeeRepo.ListByMosque(ctx, mosqueID)
}

// RemoveCommittee removes a committee member
func (s *mosqueService) RemoveCommittee(ctx context.Context, mosqueID, committeeID string) error {
	committee, err := s.committeeRepo.GetByID(ctx, committeeID)
	if err != nil {
		return err
	}
	if committee == nil || committee.MosqueID != mosqueID {
		return ErrCommitteeNotFound
	}
	return s.committeeRepo.Delete(ctx, committeeID)
}
