package dto

// CreateMemberRequest represents a kariah membership application, either
// self-submitted by a community member or entered by mosque staff.
type CreateMemberRequest struct {
	UserID      *string `json:"user_id" binding:"omitempty,uuid"`
	FullName    string  `json:"full_name" binding:"required,min=1,max=255"`
	ICNumber    string  `json:"ic_number" binding:"omitempty,max=20"`
	PhoneNumber string  `json:"phone_number" binding:"required,max=20"`
	Email       string  `json:"email" binding:"omitempty,email,max=255"`
	Address     string  `json:"address" binding:"omitempty,max=500"`
	Notes       string  `json:"notes" binding:"omitempty,max=500"`
}

// Validate validates the CreateMemberRequest
func (r *CreateMemberRequest) Validate() (bool, string) {
	if r.FullName == "" {
		return false, "Full name is required"
	}
	if r.PhoneNumber == "" {
		return false, "Phone number is required"
	}
	return true, ""
}

// UpdateMemberStatusRequest represents a staff approval decision
type UpdateMemberStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending active inactive rejected"`
	Notes  string `json:"notes" binding:"omitempty,max=500"`
}

// MemberResponse represents a kariah member in API responses
type MemberResponse struct {
	ID          string  `json:"id"`
	MosqueID    string  `json:"mosque_id"`
	UserID      *string `json:"user_id,omitempty"`
	FullName    string  `json:"full_name"`
	ICNumber    string  `json:"ic_number,omitempty"`
	PhoneNumber string  `json:"phone_number"`
	Email       string  `json:"email,omitempty"`
	Address     string  `json:"address,omitempty"`
	Status      string  `json:"status"`
	JoinedAt    *string `json:"joined_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// MemberListFilter represents filters for listing kariah members
type MemberListFilter struct {
	MosqueID string `form:"-"`
	Status   string `form:"status"`
	Search   string `form:"search"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

// SetDefaults sets default values for pagination
func (f *MemberListFilter) SetDefaults() {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
