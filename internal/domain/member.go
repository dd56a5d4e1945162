package domain

import "time"

// Member represents a kariah (community) membership: a person linked to a
// mosque, independent of whether they hold a system login.
type Member struct {
	ID       string  `json:"id"`
	MosqueID string  `json:"mosque_id"`
	UserID   *string `json:"user_id,omitempty"` // weak reference, nil when no account

	FullName    string `json:"full_name"`
	ICNumber    string `json:"ic_number,omitempty"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`

	Status   string     `json:"status"` // pending, active, inactive, rejected
	Notes    string     `json:"notes,omitempty"`
	JoinedAt *time.Time `json:"joined_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Membership status constants
const (
	MemberStatusPending  = "pending"
	MemberStatusActive   = "active"
	MemberStatusInactive = "inactive"
	MemberStatusRejected = "rejected"
)

// IsPending checks if the membership awaits staff approval
func (m *Member) IsPending() bool {
	return m.Status == MemberStatusPending
}

// IsActive checks if the membership is approved and active
func (m *Member) IsActive() bool {
	return m.Status == MemberStatusActive
}
