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
)

var (
	ErrEventNotFound = errors.New("event not found")
)

// EventService defines the interface for event management operations
type EventService interface {
	// Create creates a new event at a verified mosque
	Create(ctx context.Context, mosqueID string, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	// GetByID retrieves an event with its registration tallies
	GetByID(ctx context.Context, id string) (*dto.EventResponse, error)
	// List retrieves events of a mosque
	List(ctx context.Context, filter *dto.EventListFilter) ([]*dto.EventResponse, int, error)
	// Update updates an event
	Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	// Delete removes an event and its registrations
	Delete(ctx context.Context, id string) error
	// RegistrationURL builds the public registration link for an event
	RegistrationURL(eventID string) string
}

// eventService implements EventService
type eventService struct {
	eventRepo  repository.EventRepository
	regRepo    repository.RegistrationRepository
	mosqueRepo repository.MosqueRepository
	baseURL    string
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repository.EventRepository, regRepo repository.RegistrationRepository, mosqueRepo repository.MosqueRepository, baseURL string) EventService {
	return &eventService{
		eventRepo:  eventRepo,
		regRepo:    regRepo,
		mosqueRepo: mosqueRepo,
		baseURL:    baseURL,
	}
}

// Create creates a new event at a verified mosque
func (s *eventService) Create(ctx context.Context, mosqueID string, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
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
	if !mosque.IsVerified() {
		return nil, ErrMosqueNotVerified
	}

	now := time.Now()
	event := &domain.Event{
		ID:                   uuid.New().String(),
		MosqueID:             mosqueID,
		Title:                req.Title,
		Description:          req.Description,
		Category:             req.Category,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		Location:             req.Location,
		Address:              req.Address,
		IsOnline:             req.IsOnline,
		OnlineURL:            req.OnlineURL,
		RegistrationRequired: req.RegistrationRequired,
		RegistrationDeadline: req.RegistrationDeadline,
		MaxParticipants:      req.MaxParticipants,
		ContactPerson:        req.ContactPerson,
		ContactPhone:         req.ContactPhone,
		ContactEmail:         req.ContactEmail,
		Status:               domain.EventStatusActive,
		CreatedBy:            req.CreatedBy,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return s.toEventResponse(event, 0), nil
}

// GetByID retrieves an event with its registration tallies
func (s *eventService) GetByID(ctx context.Context, id string) (*dto.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	count, err := s.regRepo.CountActiveByEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toEventResponse(event, count), nil
}

// List retrieves events of a mosque
func (s *eventService) List(ctx context.Context, filter *dto.EventListFilter) ([]*dto.EventResponse, int, error) {
	filter.SetDefaults()

	events, total, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*dto.EventResponse, 0, len(events))
	for _, event := range events {
		count := 0
		if event.RegistrationRequired {
			count, err = s.regRepo.CountActiveByEvent(ctx, event.ID)
			if err != nil {
				return nil, 0, err
			}
		}
		responses = append(responses, s.toEventResponse(event, count))
	}
	return responses, total, nil
}

// Update updates an event
func (s *eventService) Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Category != nil {
		event.Category = *req.Category
	}
	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = *req.EndDate
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Address != nil {
		event.Address = *req.Address
	}
	if req.IsOnline != nil {
		event.IsOnline = *req.IsOnline
	}
	if req.OnlineURL != nil {
		event.OnlineURL = *req.OnlineURL
	}
	if req.RegistrationRequired != nil {
		event.RegistrationRequired = *req.RegistrationRequired
	}
	if req.RegistrationDeadline != nil {
		event.RegistrationDeadline = req.RegistrationDeadline
	}
	if req.MaxParticipants != nil {
		event.MaxParticipants = req.MaxParticipants
	}
	if req.ContactPerson != nil {
		event.ContactPerson = *req.ContactPerson
	}
	if req.ContactPhone != nil {
		event.ContactPhone = *req.ContactPhone
	}
	if req.ContactEmail != nil {
		event.ContactEmail = *req.ContactEmail
	}
	if req.Status != nil {
		event.Status = *req.Status
	}

	// Date invariants hold on the merged event, not just the patch: updating
	// start_date alone must not leave end < start or a deadline past start.
	if event.EndDate.Before(event.StartDate) {
		return nil, errors.New("End date must not be before start date")
	}
	if event.RegistrationDeadline != nil && event.RegistrationDeadline.After(event.StartDate) {
		return nil, errors.New("Registration deadline must not be after the event start")
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	count, err := s.regRepo.CountActiveByEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toEventResponse(event, count), nil
}

// Delete removes an event and its registrations
func (s *eventService) Delete(ctx context.Context, id string) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}
	return s.eventRepo.Delete(ctx, id)
}

// RegistrationURL builds the public registration link for an event. This is
// the URL embedded in the printable QR code.
func (s *eventService) RegistrationURL(eventID string) string {
	return fmt.Sprintf("%s/events/%s/register", s.baseURL, eventID)
}

// toEventResponse converts domain.Event to dto.EventResponse
func (s *eventService) toEventResponse(event *domain.Event, registeredCount int) *dto.EventResponse {
	resp := &dto.EventResponse{
		ID:                   event.ID,
		MosqueID:             event.MosqueID,
		Title:                event.Title,
		Description:          event.Description,
		Category:             event.Category,
		StartDate:            event.StartDate.Format(time.RFC3339),
		EndDate:              event.EndDate.Format(time.RFC3339),
		StartTime:            event.StartTime,
		EndTime:              event.EndTime,
		Location:             event.Location,
		Address:              event.Address,
		IsOnline:             event.IsOnline,
		OnlineURL:            event.OnlineURL,
		RegistrationRequired: event.RegistrationRequired,
		MaxParticipants:      event.MaxParticipants,
		RegisteredCount:      registeredCount,
		RemainingSlots:       event.RemainingSlots(registeredCount),
		RegistrationOpen:     event.IsRegistrationOpen(time.Now()) && !event.IsFull(registeredCount),
		ContactPerson:        event.ContactPerson,
		ContactPhone:         event.ContactPhone,
		ContactEmail:         event.ContactEmail,
		Status:               event.Status,
		CreatedBy:            event.CreatedBy,
		CreatedAt:            event.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            event.UpdatedAt.Format(time.RFC3339),
	}
	if event.RegistrationDeadline != nil {
		d := event.RegistrationDeadline.Format(time.RFC3339)
		resp.RegistrationDeadline = &d
	}
	return resp
}
