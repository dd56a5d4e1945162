package domain

import "time"

// Registration represents an event registration, either public (walk-in via
// QR link, identified by contact details) or linked to a user account.
type Registration struct {
	ID      string  `json:"id"`
	EventID string  `json:"event_id"`
	UserID  *string `json:"user_id,omitempty"` // nil for anonymous public registrations

	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	Status           string     `json:"status"`            // pending, confirmed, cancelled
	AttendanceStatus string     `json:"attendance_status"` // registered, attended, absent
	AttendedAt       *time.Time `json:"attended_at,omitempty"`
	Notes            string     `json:"notes,omitempty"`

	// RegistrationNumber is the human-shareable confirmation code. It is
	// assigned once at intake and never changes.
	RegistrationNumber string `json:"registration_number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Registration status constants
const (
	RegistrationStatusPending   = "pending"
	RegistrationStatusConfirmed = "confirmed"
	RegistrationStatusCancelled = "cancelled"
)

// Attendance status constants
const (
	AttendanceRegistered = "registered"
	AttendanceAttended   = "attended"
	AttendanceAbsent     = "absent"
)

// IsConfirmed checks if the registration is confirmed
func (r *Registration) IsConfirmed() bool {
	return r.Status == RegistrationStatusConfirmed
}

// IsCancelled checks if the registration is cancelled
func (r *Registration) IsCancelled() bool {
	return r.Status == RegistrationStatusCancelled
}

// HasAttended checks if the registrant has been marked attended
func (r *Registration) HasAttended() bool {
	return r.AttendanceStatus == AttendanceAttended
}

// CanTransitionStatus reports whether the registration status may move to
// next. Cancelled is terminal.
func (r *Registration) CanTransitionStatus(next string) bool {
	if !ValidRegistrationStatus(next) {
		return false
	}
	if r.Status == RegistrationStatusCancelled {
		return false
	}
	return true
}

// CanMarkAttendance reports whether attendance may be set to next. Attendance
// is only reachable from the initial registered state.
func (r *Registration) CanMarkAttendance(next string) bool {
	if !ValidAttendanceStatus(next) {
		return false
	}
	if next == AttendanceRegistered {
		return true
	}
	return r.AttendanceStatus == "" || r.AttendanceStatus == AttendanceRegistered
}

// ValidRegistrationStatus checks a status value against the known set
func ValidRegistrationStatus(s string) bool {
	switch s {
	case RegistrationStatusPending, RegistrationStatusConfirmed, RegistrationStatusCancelled:
		return true
	}
	return false
}

// ValidAttendanceStatus checks an attendance value against the known set
func ValidAttendanceStatus(s string) bool {
	switch s {
	case AttendanceRegistered, AttendanceAttended, AttendanceAbsent:
		return true
	}
	return false
}
