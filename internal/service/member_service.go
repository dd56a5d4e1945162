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
	ErrMemberNotFound      = errors.New("member not found")
	ErrMemberAlreadyExists = errors.New("a member with the same contact details already exists")
)

// MemberService defines the interface for kariah membership operations
type MemberService interface {
	// Apply submits a membership application. Duplicates by phone, email or
	// IC number within the mosque are rejected.
	Apply(ctx context.Context, mosqueID string, req *dto.CreateMemberRequest) (*domain.Member, error)
	// GetByID retrieves a membership
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	// List retrieves members of a mosque
	List(ctx context.Context, filter *dto.MemberListFilter) ([]*domain.Member, int, error)
	// UpdateStatus records a staff decision on a membership
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateMemberStatusRequest) (*domain.Member, error)
	// Remove deletes a membership
	Remove(ctx context.Context, id string) error
}

// memberService implements MemberService
type memberService struct {
	memberRepo repository.MemberRepository
	mosqueRepo repository.MosqueRepository
}

// NewMemberService creates a new MemberService
func NewMemberService(memberRepo repository.MemberRepository, mosqueRepo repository.MosqueRepository) MemberService {
	return &memberService{
		memberRepo: memberRepo,
		mosqueRepo: mosqueRepo,
	}
}

// Apply submits a membership application
func (s *memberService) Apply(ctx context.Context, mosqueID string, req *dto.CreateMemberRequest) (*domain.Member, error) {
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

	match, err := s.memberRepo.FindMatch(ctx, mosqueID, req.PhoneNumber, req.Email, req.ICNumber)
	if err != nil {
		return nil, err
	}
	if match != nil {
		return nil, ErrMemberAlreadyExists
	}

	now := time.Now()
	member := &domain.Member{
		ID:          uuid.New().String(),
		MosqueID:    mosqueID,
		UserID:      req.UserID,
		FullName:    req.FullName,
		ICNumber:    req.ICNumber,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
		Status:      domain.MemberStatusPending,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// GetByID retrieves a membership
func (s *memberService) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

// List retrieves members of a mosque
func (s *memberService) List(ctx context.Context, filter *dto.MemberListFilter) ([]*domain.Member, int, error) {
	filter.SetDefaults()
	return s.memberRepo.List(ctx, filter)
}

// UpdateStatus records a staff decision on a membership. Approval into
// active stamps the join date once.
func (s *memberService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateMemberStatusRequest) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	member.Status = req.Status
	if req.Notes != "" {
		member.Notes = req.Notes
	}
	if req.Status == domain.MemberStatusActive && member.JoinedAt == nil {
		now := time.Now()
		member.JoinedAt = &now
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Remove deletes a membership
func (s *memberService) Remove(ctx context.Context, id string) error {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrMemberNotFound
	}
	return s.memberRepo.Delete(ctx, id)
}
