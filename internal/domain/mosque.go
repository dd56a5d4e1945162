package domain

import (
	"strings"
	"time"
)

// Mosque represents a mosque or surau tenant. It is the top-level ownership
// boundary for events, memberships, committees, announcements and donations.
type Mosque struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"` // masjid, surau

	StreetAddress string `json:"street_address,omitempty"`
	City          string `json:"city,omitempty"`
	District      string `json:"district,omitempty"`
	State         string `json:"state,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	JakimZone     string `json:"jakim_zone,omitempty"`

	ContactNumber string `json:"contact_number,omitempty"`
	Email         string `json:"email,omitempty"`
	Website       string `json:"website,omitempty"`

	RegistrationNumber string `json:"registration_number,omitempty"`

	VerificationStatus string     `json:"verification_status"` // pending, verified, rejected
	VerificationNotes  string     `json:"verification_notes,omitempty"`
	VerifiedAt         *time.Time `json:"verified_at,omitempty"`
	VerifiedBy         *string    `json:"verified_by,omitempty"`

	CreatedBy string     `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Mosque verification status constants
const (
	MosqueStatusPending  = "pending"
	MosqueStatusVerified = "verified"
	MosqueStatusRejected = "rejected"
)

// IsVerified checks if the mosque passed verification
func (m *Mosque) IsVerified() bool {
	return m.VerificationStatus == MosqueStatusVerified
}

// IsPending checks if the mosque is awaiting verification
func (m *Mosque) IsPending() bool {
	return m.VerificationStatus == MosqueStatusPending
}

// IsRejected checks if the mosque was rejected
func (m *Mosque) IsRejected() bool {
	return m.VerificationStatus == MosqueStatusRejected
}

// FullAddress joins the populated address parts into one display string
func (m *Mosque) FullAddress() string {
	parts := []string{m.StreetAddress, m.City, m.PostalCode, m.District, m.State}
	nonEmpty := parts[:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}

// MosqueAdmin links a user to a mosque they administer
type MosqueAdmin struct {
	ID        string    `json:"id"`
	MosqueID  string    `json:"mosque_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"` // admin, manager
	IsPrimary bool      `json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
}

// Committee represents a committee (AJK) position at a mosque
type Committee struct {
	ID        string     `json:"id"`
	MosqueID  string     `json:"mosque_id"`
	UserID    *string    `json:"user_id,omitempty"`
	Name      string     `json:"name"`
	Position  string     `json:"position"`
	ICNumber  string     `json:"ic_number,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Email     string     `json:"email,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Status    string     `json:"status"` // active, inactive
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Committee status constants
const (
	CommitteeStatusActive   = "active"
	CommitteeStatusInactive = "inactive"
)
