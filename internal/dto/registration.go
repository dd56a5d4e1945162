package dto

import (
	"net/mail"
	"strings"
)

// PublicRegistrationRequest is the form a visitor submits on the public
// registration page, usually reached through the event QR code. No account
// is required; the person is identified by the contact details given here.
type PublicRegistrationRequest struct {
	Name    string `json:"name" form:"name" binding:"required,max=255"`
	Phone   string `json:"phone" form:"phone" binding:"required,max=20"`
	Email   string `json:"email" form:"email" binding:"omitempty,email,max=255"`
	IC      string `json:"ic_number" form:"ic_number" binding:"omitempty,max=20"`
	Address string `json:"address" form:"address" binding:"omitempty,max=500"`
	Notes   string `json:"notes" form:"notes" binding:"omitempty,max=500"`

	// JoinKariah opts the registrant into kariah membership at the hosting
	// mosque, created in the same transaction as the registration.
	JoinKariah bool `json:"join_kariah" form:"join_kariah"`
}

// ValidateFields checks every field and returns the full set of problems
// keyed by field name, so the form can show all errors at once instead of
// stopping at the first.
func (r *PublicRegistrationRequest) ValidateFields() map[string]string {
	errs := make(map[string]string)

	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)

	if r.Name == "" {
		errs["name"] = "Name is required"
	} else if len(r.Name) > 255 {
		errs["name"] = "Name must not exceed 255 characters"
	}

	if r.Phone == "" {
		errs["phone"] = "Phone number is required"
	} else if len(r.Phone) > 20 {
		errs["phone"] = "Phone number must not exceed 20 characters"
	}

	if r.Email != "" {
		if len(r.Email) > 255 {
			errs["email"] = "Email must not exceed 255 characters"
		} else if _, err := mail.ParseAddress(r.Email); err != nil {
			errs["email"] = "Email address is not valid"
		}
	}

	if len(r.IC) > 20 {
		errs["ic_number"] = "IC number must not exceed 20 characters"
	}
	if len(r.Address) > 500 {
		errs["address"] = "Address must not exceed 500 characters"
	}
	if len(r.Notes) > 500 {
		errs["notes"] = "Notes must not exceed 500 characters"
	}

	return errs
}

// CreateRegistrationRequest is a staff-entered registration, e.g. a walk-in
// taken at the door or a booking made over the phone.
type CreateRegistrationRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Phone string `json:"phone" binding:"required,max=20"`
	Email string `json:"email" binding:"omitempty,email,max=255"`
	Notes string `json:"notes" binding:"omitempty,max=500"`
}

// ValidateFields applies the same field checks as the public form
func (r *CreateRegistrationRequest) ValidateFields() map[string]string {
	pub := PublicRegistrationRequest{Name: r.Name, Phone: r.Phone, Email: r.Email, Notes: r.Notes}
	errs := pub.ValidateFields()
	r.Name, r.Phone, r.Email = pub.Name, pub.Phone, pub.Email
	return errs
}

// UpdateRegistrationRequest represents a staff update to a registration
type UpdateRegistrationRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
	Notes  string `json:"notes" binding:"omitempty,max=500"`
}

// MarkAttendanceRequest represents a staff attendance action
type MarkAttendanceRequest struct {
	AttendanceStatus string `json:"attendance_status" binding:"required,oneof=registered attended absent"`
}

// RegistrationResponse represents a registration in API responses
type RegistrationResponse struct {
	ID                 string  `json:"id"`
	EventID            string  `json:"event_id"`
	UserID             *string `json:"user_id,omitempty"`
	Name               string  `json:"name"`
	Email              string  `json:"email,omitempty"`
	Phone              string  `json:"phone,omitempty"`
	Status             string  `json:"status"`
	AttendanceStatus   string  `json:"attendance_status,omitempty"`
	AttendedAt         *string `json:"attended_at,omitempty"`
	Notes              string  `json:"notes,omitempty"`
	RegistrationNumber string  `json:"registration_number"`
	CreatedAt          string  `json:"created_at"`
}

// RegistrationListFilter represents filters for listing registrations
type RegistrationListFilter struct {
	EventID          string `form:"-"`
	Status           string `form:"status"`
	AttendanceStatus string `form:"attendance_status"`
	Search           string `form:"search"`
	Limit            int    `form:"limit"`
	Offset           int    `form:"offset"`
}

// SetDefaults sets default values for pagination
func (f *RegistrationListFilter) SetDefaults() {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 50
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// PublicRegistrationResult is the success payload of a public registration:
// the registration details, the event and mosque they belong to, and whether
// a new kariah membership application was created alongside. When the person
// already was a member the flag stays false even though they opted in.
type PublicRegistrationResult struct {
	RegistrationNumber string `json:"registration_number"`
	Name               string `json:"name"`
	Status             string `json:"status"`
	EventID            string `json:"event_id"`
	EventTitle         string `json:"event_title"`
	MosqueName         string `json:"mosque_name"`
	MembershipCreated  bool   `json:"membership_created"`
}

// PublicEventPage is everything the public registration page needs to render:
// the event summary plus the live window and capacity state.
type PublicEventPage struct {
	EventID          string  `json:"event_id"`
	Title            string  `json:"title"`
	MosqueName       string  `json:"mosque_name"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	StartTime        string  `json:"start_time,omitempty"`
	Location         string  `json:"location,omitempty"`
	RegistrationOpen bool    `json:"registration_open"`
	Full             bool    `json:"full"`
	RemainingSlots   *int    `json:"remaining_slots,omitempty"`
	ClosedReason     string  `json:"closed_reason,omitempty"`
}
