package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nurikhwanidris/urusmasjid/internal/domain"
	"github.com/nurikhwanidris/urusmasjid/internal/dto"
	"github.com/nurikhwanidris/urusmasjid/internal/repository"
	"github.com/nurikhwanidris/urusmasjid/pkg/token"
)

var (
	ErrRegistrationClosed   = errors.New("registration is closed for this event")
	ErrEventFull            = errors.New("event has reached its participant limit")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrOperationFailed      = errors.New("registration could not be completed")
)

// ValidationError carries the full set of field problems from a public
// registration submission, keyed by field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// RegistrationService coordinates the public registration flow: window and
// capacity checks, input validation, registration number assignment and the
// atomic write of the registration plus the optional kariah membership.
type RegistrationService interface {
	// PublicPage assembles the state the public registration page renders:
	// event summary, whether the window is open and whether slots remain.
	PublicPage(ctx context.Context, eventID string) (*dto.PublicEventPage, error)
	// RegisterPublic processes a public registration submission. The result
	// reports whether a new kariah membership was created alongside.
	RegisterPublic(ctx context.Context, eventID string, req *dto.PublicRegistrationRequest) (*dto.PublicRegistrationResult, error)
	// Create records a staff-entered registration, e.g. a walk-in. The
	// capacity limit still applies; the registration window does not.
	Create(ctx context.Context, eventID string, req *dto.CreateRegistrationRequest) (*domain.Registration, error)
	// GetByID retrieves a registration
	GetByID(ctx context.Context, id string) (*domain.Registration, error)
	// List retrieves registrations of an event
	List(ctx context.Context, filter *dto.RegistrationListFilter) ([]*domain.Registration, int, error)
	// UpdateStatus updates the registration status. Cancelled is terminal.
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateRegistrationRequest) (*domain.Registration, error)
	// MarkAttendance records an attendance decision. The attended timestamp
	// is set once, on the transition into attended.
	MarkAttendance(ctx context.Context, id string, req *dto.MarkAttendanceRequest) (*domain.Registration, error)
	// Delete removes a registration entirely
	Delete(ctx context.Context, id string) error
}

// registrationService implements RegistrationService
type registrationService struct {
	regRepo    repository.RegistrationRepository
	eventRepo  repository.EventRepository
	mosqueRepo repository.MosqueRepository
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(regRepo repository.RegistrationRepository, eventRepo repository.EventRepository, mosqueRepo repository.MosqueRepository) RegistrationService {
	return &registrationService{
		regRepo:    regRepo,
		eventRepo:  eventRepo,
		mosqueRepo: mosqueRepo,
	}
}

// PublicPage assembles the state the public registration page renders
func (s *registrationService) PublicPage(ctx context.Context, eventID string) (*dto.PublicEventPage, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil || event.Status != domain.EventStatusActive {
		return nil, ErrEventNotFound
	}

	count, err := s.regRepo.CountActiveByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	mosqueName := ""
	if mosque, err := s.mosqueRepo.GetByID(ctx, event.MosqueID); err == nil && mosque != nil {
		mosqueName = mosque.Name
	}

	now := time.Now()
	page := &dto.PublicEventPage{
		EventID:          event.ID,
		Title:            event.Title,
		MosqueName:       mosqueName,
		StartDate:        event.StartDate.Format(time.RFC3339),
		EndDate:          event.EndDate.Format(time.RFC3339),
		StartTime:        event.StartTime,
		Location:         event.Location,
		RegistrationOpen: event.IsRegistrationOpen(now),
		Full:             event.IsFull(count),
		RemainingSlots:   event.RemainingSlots(count),
	}
	switch {
	case !event.RegistrationRequired:
		page.ClosedReason = "This event does not take registrations"
	case !page.RegistrationOpen:
		page.ClosedReason = "Registration for this event has closed"
	case page.Full:
		page.RegistrationOpen = false
		page.ClosedReason = "This event is fully booked"
	}
	return page, nil
}

// RegisterPublic processes a public registration submission. Checks run in a
// fixed order so the caller always gets the most relevant refusal: event
// state, window, capacity, then field validation. The final write is atomic;
// if either the registration or the membership insert fails, neither
// persists.
func (s *registrationService) RegisterPublic(ctx context.Context, eventID string, req *dto.PublicRegistrationRequest) (*dto.PublicRegistrationResult, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil || event.Status != domain.EventStatusActive {
		return nil, ErrEventNotFound
	}

	now := time.Now()
	if !event.IsRegistrationOpen(now) {
		return nil, ErrRegistrationClosed
	}

	count, err := s.regRepo.CountActiveByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.IsFull(count) {
		return nil, ErrEventFull
	}

	if fieldErrs := req.ValidateFields(); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	number, err := token.GenerateUnique(ctx, "REG", token.StrategyRandom, s.regRepo.ExistsByNumber)
	if err != nil {
		return nil, err
	}

	reg := &domain.Registration{
		ID:                 uuid.New().String(),
		EventID:            eventID,
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		Status:             domain.RegistrationStatusConfirmed,
		AttendanceStatus:   domain.AttendanceRegistered,
		Notes:              req.Notes,
		RegistrationNumber: number,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	var member *domain.Member
	if req.JoinKariah {
		member = &domain.Member{
			ID:          uuid.New().String(),
			MosqueID:    event.MosqueID,
			FullName:    req.Name,
			ICNumber:    req.IC,
			PhoneNumber: req.Phone,
			Email:       req.Email,
			Address:     req.Address,
			Status:      domain.MemberStatusPending,
			Notes:       fmt.Sprintf("Registered via event: %s", event.Title),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	membershipCreated, err := s.regRepo.RegisterTx(ctx, reg, member)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOperationFailed, err)
	}

	mosqueName := ""
	if mosque, err := s.mosqueRepo.GetByID(ctx, event.MosqueID); err == nil && mosque != nil {
		mosqueName = mosque.Name
	}

	return &dto.PublicRegistrationResult{
		RegistrationNumber: reg.RegistrationNumber,
		Name:               reg.Name,
		Status:             reg.Status,
		EventID:            event.ID,
		EventTitle:         event.Title,
		MosqueName:         mosqueName,
		MembershipCreated:  membershipCreated,
	}, nil
}

// Create records a staff-entered registration. Staff can add people after
// the public window closes (walk-ins), but the capacity limit still holds.
func (s *registrationService) Create(ctx context.Context, eventID string, req *dto.CreateRegistrationRequest) (*domain.Registration, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil || event.Status != domain.EventStatusActive {
		return nil, ErrEventNotFound
	}

	count, err := s.regRepo.CountActiveByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.IsFull(count) {
		return nil, ErrEventFull
	}

	if fieldErrs := req.ValidateFields(); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	number, err := token.GenerateUnique(ctx, "REG", token.StrategyRandom, s.regRepo.ExistsByNumber)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	reg := &domain.Registration{
		ID:                 uuid.New().String(),
		EventID:            eventID,
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		Status:             domain.RegistrationStatusConfirmed,
		AttendanceStatus:   domain.AttendanceRegistered,
		Notes:              req.Notes,
		RegistrationNumber: number,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if _, err := s.regRepo.RegisterTx(ctx, reg, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOperationFailed, err)
	}
	return reg, nil
}

// GetByID retrieves a registration
func (s *registrationService) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	reg, err := s.regRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, ErrRegistrationNotFound
	}
	return reg, nil
}

// List retrieves registrations of an event
func (s *registrationService) List(ctx context.Context, filter *dto.RegistrationListFilter) ([]*domain.Registration, int, error) {
	filter.SetDefaults()
	return s.regRepo.ListByEvent(ctx, filter)
}

// UpdateStatus updates the registration status
func (s *registrationService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateRegistrationRequest) (*domain.Registration, error) {
	reg, err := s.regRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, ErrRegistrationNotFound
	}

	if !reg.CanTransitionStatus(req.Status) {
		return nil, ErrInvalidTransition
	}

	reg.Status = req.Status
	if req.Notes != "" {
		reg.Notes = req.Notes
	}
	if err := s.regRepo.Update(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// MarkAttendance records an attendance decision
func (s *registrationService) MarkAttendance(ctx context.Context, id string, req *dto.MarkAttendanceRequest) (*domain.Registration, error) {
	reg, err := s.regRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, ErrRegistrationNotFound
	}

	if !reg.CanMarkAttendance(req.AttendanceStatus) {
		return nil, ErrInvalidTransition
	}

	reg.AttendanceStatus = req.AttendanceStatus
	if req.AttendanceStatus == domain.AttendanceAttended && reg.AttendedAt == nil {
		now := time.Now()
		reg.AttendedAt = &now
	}
	if err := s.regRepo.Update(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// Delete removes a registration entirely. Unlike cancellation this leaves no
// trace; it is meant for staff cleaning up mistaken or duplicate entries.
func (s *registrationService) Delete(ctx context.Context, id string) error {
	reg, err := s.regRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if reg == nil {
		return ErrRegistrationNotFound
	}
	return s.regRepo.Delete(ctx, id)
}
