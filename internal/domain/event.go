package domain

import "time"

// Event represents a mosque event (kuliah, gotong-royong, iftar, ...)
type Event struct {
	ID          string `json:"id"`
	MosqueID    string `json:"mosque_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	StartTime string    `json:"start_time,omitempty"` // HH:MM, optional
	EndTime   string    `json:"end_time,omitempty"`

	Location  string `json:"location,omitempty"`
	Address   string `json:"address,omitempty"`
	IsOnline  bool   `json:"is_online"`
	OnlineURL string `json:"online_url,omitempty"`

	RegistrationRequired bool       `json:"registration_required"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`
	MaxParticipants      *int       `json:"max_participants,omitempty"` // nil = unlimited

	ContactPerson string `json:"contact_person,omitempty"`
	ContactPhone  string `json:"contact_phone,omitempty"`
	ContactEmail  string `json:"contact_email,omitempty"`

	Status    string    `json:"status"` // active, cancelled, completed
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Event status constants
const (
	EventStatusActive    = "active"
	EventStatusCancelled = "cancelled"
	EventStatusCompleted = "completed"
)

// IsUpcoming checks if the event has not started yet
func (e *Event) IsUpcoming(now time.Time) bool {
	return e.StartDate.After(now)
}

// IsOngoing checks if the event is currently running
func (e *Event) IsOngoing(now time.Time) bool {
	return !e.StartDate.After(now) && !e.EndDate.Before(now)
}

// IsPast checks if the event has ended
func (e *Event) IsPast(now time.Time) bool {
	return e.EndDate.Before(now)
}

// IsRegistrationOpen reports whether public registration is accepting
// submissions at the given time. Events that do not require registration are
// never open. A deadline equal to now is still open (inclusive); without a
// deadline the window closes at the event start.
func (e *Event) IsRegistrationOpen(now time.Time) bool {
	if !e.RegistrationRequired {
		return false
	}
	if e.RegistrationDeadline != nil {
		return !now.After(*e.RegistrationDeadline)
	}
	return !now.After(e.StartDate)
}

// IsFull reports whether the registered count has reached the participant
// limit. Events without a limit are never full; a count equal to the limit
// closes registration with no off-by-one slack.
func (e *Event) IsFull(registeredCount int) bool {
	if e.MaxParticipants == nil {
		return false
	}
	return registeredCount >= *e.MaxParticipants
}

// RemainingSlots returns the number of open slots, or nil when the event has
// no participant limit.
func (e *Event) RemainingSlots(registeredCount int) *int {
	if e.MaxParticipants == nil {
		return nil
	}
	remaining := *e.MaxParticipants - registeredCount
	if remaining < 0 {
		remaining = 0
	}
	return &remaining
}
