package dto

import "time"

// CreateEventRequest represents the request to create a new event
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Category    string `json:"category" binding:"omitempty,max=100"`

	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
	StartTime string    `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime   string    `json:"end_time" binding:"omitempty,datetime=15:04"`

	Location  string `json:"location" binding:"omitempty,max=255"`
	Address   string `json:"address" binding:"omitempty,max=500"`
	IsOnline  bool   `json:"is_online"`
	OnlineURL string `json:"online_url" binding:"omitempty,url,max=255"`

	RegistrationRequired bool       `json:"registration_required"`
	RegistrationDeadline *time.Time `json:"registration_deadline"`
	MaxParticipants      *int       `json:"max_participants" binding:"omitempty,min=1"`

	ContactPerson string `json:"contact_person" binding:"omitempty,max=255"`
	ContactPhone  string `json:"contact_phone" binding:"omitempty,max=20"`
	ContactEmail  string `json:"contact_email" binding:"omitempty,email,max=255"`

	CreatedBy string `json:"-"` // set from the authenticated user
}

// Validate validates the CreateEventRequest
func (r *CreateEventRequest) Validate() (bool, string) {
	if r.Title == "" {
		return false, "Event title is required"
	}
	if r.StartDate.IsZero() {
		return false, "Start date is required"
	}
	if r.EndDate.IsZero() {
		return false, "End date is required"
	}
	if r.EndDate.Before(r.StartDate) {
		return false, "End date must not be before start date"
	}
	if r.RegistrationDeadline != nil && r.RegistrationDeadline.After(r.StartDate) {
		return false, "Registration deadline must not be after the event start"
	}
	if r.MaxParticipants != nil && *r.MaxParticipants < 1 {
		return false, "Max participants must be at least 1"
	}
	if r.IsOnline && r.OnlineURL == "" {
		return false, "Online events require an online URL"
	}
	return true, ""
}

// UpdateEventRequest represents a partial event update
type UpdateEventRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Category    *string `json:"category" binding:"omitempty,max=100"`

	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	StartTime *string    `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime   *string    `json:"end_time" binding:"omitempty,datetime=15:04"`

	Location  *string `json:"location" binding:"omitempty,max=255"`
	Address   *string `json:"address" binding:"omitempty,max=500"`
	IsOnline  *bool   `json:"is_online"`
	OnlineURL *string `json:"online_url" binding:"omitempty,url,max=255"`

	RegistrationRequired *bool      `json:"registration_required"`
	RegistrationDeadline *time.Time `json:"registration_deadline"`
	MaxParticipants      *int       `json:"max_participants" binding:"omitempty,min=1"`

	ContactPerson *string `json:"contact_person" binding:"omitempty,max=255"`
	ContactPhone  *string `json:"contact_phone" binding:"omitempty,max=20"`
	ContactEmail  *string `json:"contact_email" binding:"omitempty,email,max=255"`

	Status *string `json:"status" binding:"omitempty,oneof=active cancelled completed"`
}

// Validate validates the UpdateEventRequest
func (r *UpdateEventRequest) Validate() (bool, string) {
	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return false, "End date must not be before start date"
	}
	if r.Title != nil && *r.Title == "" {
		return false, "Event title cannot be empty"
	}
	return true, ""
}

// EventResponse represents an event in API responses, including the live
// registration tallies staff dashboards need.
type EventResponse struct {
	ID          string `json:"id"`
	MosqueID    string `json:"mosque_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`

	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`

	Location  string `json:"location,omitempty"`
	Address   string `json:"address,omitempty"`
	IsOnline  bool   `json:"is_online"`
	OnlineURL string `json:"online_url,omitempty"`

	RegistrationRequired bool    `json:"registration_required"`
	RegistrationDeadline *string `json:"registration_deadline,omitempty"`
	MaxParticipants      *int    `json:"max_participants,omitempty"`
	RegisteredCount      int     `json:"registered_count"`
	RemainingSlots       *int    `json:"remaining_slots,omitempty"`
	RegistrationOpen     bool    `json:"registration_open"`

	ContactPerson string `json:"contact_person,omitempty"`
	ContactPhone  string `json:"contact_phone,omitempty"`
	ContactEmail  string `json:"contact_email,omitempty"`

	Status    string `json:"status"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// EventListFilter represents filters for listing events
type EventListFilter struct {
	MosqueID string `form:"-"`
	Status   string `form:"status"`
	Category string `form:"category"`
	Upcoming bool   `form:"upcoming"`
	Search   string `form:"search"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

// SetDefaults sets default values for pagination
func (f *EventListFilter) SetDefaults() {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
