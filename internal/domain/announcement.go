package domain

import "time"

// Announcement represents a mosque announcement
type Announcement struct {
	ID       string `json:"id"`
	MosqueID string `json:"mosque_id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Type     string `json:"type"`   // general, important, emergency
	Status   string `json:"status"` // draft, published, archived

	PublishedAt *time.Time `json:"published_at,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Announcement status constants
const (
	AnnouncementStatusDraft     = "draft"
	AnnouncementStatusPublished = "published"
	AnnouncementStatusArchived  = "archived"
)

// Announcement type constants
const (
	AnnouncementTypeGeneral   = "general"
	AnnouncementTypeImportant = "important"
	AnnouncementTypeEmergency = "emergency"
)

// IsVisible reports whether the announcement should be shown at the given
// time: published and not yet expired.
func (a *Announcement) IsVisible(now time.Time) bool {
	if a.Status != AnnouncementStatusPublished {
		return false
	}
	if a.PublishedAt != nil && a.PublishedAt.After(now) {
		return false
	}
	if a.ExpiresAt != nil && a.ExpiresAt.Before(now) {
		return false
	}
	return true
}
