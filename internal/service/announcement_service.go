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
	ErrAnnouncementNotFound = errors.New("announcement not found")
)

// AnnouncementService defines the interface for announcement operations
type AnnouncementService interface {
	// Create creates an announcement, optionally publishing it immediately
	Create(ctx context.Context, mosqueID string, req *dto.CreateAnnouncementRequest) (*domain.Announcement, error)
	// GetByID retrieves an announcement
	GetByID(ctx context.Context, id string) (*domain.Announcement, error)
	// List retrieves announcements of a mosque
	List(ctx context.Context, filter *dto.AnnouncementListFilter) ([]*domain.Announcement, int, error)
	// ListVisible retrieves the currently visible announcements of a mosque
	ListVisible(ctx context.Context, mosqueID string) ([]*domain.Announcement, error)
	// Update updates an announcement
	Update(ctx context.Context, id string, req *dto.UpdateAnnouncementRequest) (*domain.Announcement, error)
	// Delete removes an announcement
	Delete(ctx context.Context, id string) error
}

// announcementService implements AnnouncementService
type announcementService struct {
	announcementRepo repository.AnnouncementRepository
	mosqueRepo       repository.MosqueRepository
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(announcementRepo repository.AnnouncementRepository, mosqueRepo repository.MosqueRepository) AnnouncementService {
	return &announcementService{
		announcementRepo: announcementRepo,
		mosqueRepo:       mosqueRepo,
	}
}

// Create creates an announcement
func (s *announcementService) Create(ctx context.Context, mosqueID string, req *dto.CreateAnnouncementRequest) (*domain.Announcement, error) {
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
	announcement := &domain.Announcement{
		ID:        uuid.New().String(),
		MosqueID:  mosqueID,
		Title:     req.Title,
		Content:   req.Content,
		Type:      req.Type,
		Status:    domain.AnnouncementStatusDraft,
		ExpiresAt: req.ExpiresAt,
		CreatedBy: req.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if announcement.Type == "" {
		announcement.Type = domain.AnnouncementTypeGeneral
	}
	if req.Publish {
		announcement.Status = domain.AnnouncementStatusPublished
		announcement.PublishedAt = &now
	}

	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

// GetByID retrieves an announcement
func (s *announcementService) GetByID(ctx context.Context, id string) (*domain.Announcement, error) {
	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if announcement == nil {
		return nil, ErrAnnouncementNotFound
	}
	return announcement, nil
}

// List retrieves announcements of a mosque
func (s *announcementService) List(ctx context.Context, filter *dto.AnnouncementListFilter) ([]*domain.Announcement, int, error) {
	filter.SetDefaults()
	return s.announcementRepo.List(ctx, filter)
}

// ListVisible retrieves the currently visible announcements of a mosque
func (s *announcementService) ListVisible(ctx context.Context, mosqueID string) ([]*domain.Announcement, error) {
	return s.announcementRepo.ListVisible(ctx, mosqueID, 20)
}

// Update updates an announcement
func (s *announcementService) Update(ctx context.Context, id string, req *dto.UpdateAnnouncementRequest) (*domain.Announcement, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if announcement == nil {
		return nil, ErrAnnouncementNotFound
	}

	if req.Title != nil {
		announcement.Title = *req.Title
	}
	if req.Content != nil {
		announcement.Content = *req.Content
	}
	if req.Type != nil {
		announcement.Type = *req.Type
	}
	if req.ExpiresAt != nil {
		announcement.ExpiresAt = req.ExpiresAt
	}
	if req.Status != nil && *req.Status != announcement.Status {
		announcement.Status = *req.Status
		if *req.Status == domain.AnnouncementStatusPublished && announcement.PublishedAt == nil {
			now := time.Now()
			announcement.PublishedAt = &now
		}
	}

	if err := s.announcementRepo.Update(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

// Delete removes an announcement
func (s *announcementService) Delete(ctx context.Context, id string) error {
	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if announcement == nil {
		return ErrAnnouncementNotFound
	}
	return s.announcementRepo.Delete(ctx, id)
}
