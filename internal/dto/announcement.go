package dto

import "time"

// CreateAnnouncementRequest represents the request to create an announcement
type CreateAnnouncementRequest struct {
	Title     string     `json:"title" binding:"required,min=1,max=255"`
	Content   string     `json:"content" binding:"required,max=5000"`
	Type      string     `json:"type" binding:"omitempty,oneof=general important emergency"`
	Publish   bool       `json:"publish"`
	ExpiresAt *time.Time `json:"expires_at"`

	CreatedBy string `json:"-"` // set from the authenticated user
}

// Validate validates the CreateAnnouncementRequest
func (r *CreateAnnouncementRequest) Validate() (bool, string) {
	if r.Title == "" {
		return false, "Title is required"
	}
	if r.Content == "" {
		return false, "Content is required"
	}
	return true, ""
}

// UpdateAnnouncementRequest represents a partial announcement update
type UpdateAnnouncementRequest struct {
	Title     *string    `json:"title" binding:"omitempty,min=1,max=255"`
	Content   *string    `json:"content" binding:"omitempty,max=5000"`
	Type      *string    `json:"type" binding:"omitempty,oneof=general important emergency"`
	Status    *string    `json:"status" binding:"omitempty,oneof=draft published archived"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// Validate validates the UpdateAnnouncementRequest
func (r *UpdateAnnouncementRequest) Validate() (bool, string) {
	if r.Title == nil && r.Content == nil && r.Type == nil && r.Status == nil && r.ExpiresAt == nil {
		return false, "At least one field must be provided for update"
	}
	if r.Title != nil && *r.Title == "" {
		return false, "Title cannot be empty"
	}
	return true, ""
}

// AnnouncementResponse represents an announcement in API responses
type AnnouncementResponse struct {
	ID          string  `json:"id"`
	MosqueID    string  `json:"mosque_id"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	PublishedAt *string `json:"published_at,omitempty"`
	ExpiresAt   *string `json:"expires_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// AnnouncementListFilter represents filters for listing announcements
type AnnouncementListFilter struct {
	MosqueID string `form:"-"`
	Status   string `form:"status"`
	Type     string `form:"type"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

// SetDefaults sets default values for pagination
func (f *AnnouncementListFilter) SetDefaults() {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
