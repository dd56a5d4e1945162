package dto

// CreateMosqueRequest represents the request to register a new mosque
type CreateMosqueRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
	Type string `json:"type" binding:"required,oneof=masjid surau"`

	StreetAddress string `json:"street_address" binding:"omitempty,max=255"`
	City          string `json:"city" binding:"omitempty,max=100"`
	District      string `json:"district" binding:"omitempty,max=100"`
	State         string `json:"state" binding:"omitempty,max=100"`
	PostalCode    string `json:"postal_code" binding:"omitempty,max=10"`
	JakimZone     string `json:"jakim_zone" binding:"omitempty,max=10"`

	ContactNumber string `json:"contact_number" binding:"omitempty,max=20"`
	Email         string `json:"email" binding:"omitempty,email,max=255"`
	Website       string `json:"website" binding:"omitempty,url,max=255"`

	RegistrationNumber string `json:"registration_number" binding:"omitempty,max=50"`

	CreatedBy string `json:"-"` // set from the authenticated user
}

// Validate validates the CreateMosqueRequest
func (r *CreateMosqueRequest) Validate() (bool, string) {
	if r.Name == "" {
		return false, "Mosque name is required"
	}
	if r.Type != "masjid" && r.Type != "surau" {
		return false, "Type must be masjid or surau"
	}
	return true, ""
}

// UpdateMosqueRequest represents a partial mosque update
type UpdateMosqueRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=255"`
	StreetAddress *string `json:"street_address" binding:"omitempty,max=255"`
	City          *string `json:"city" binding:"omitempty,max=100"`
	District      *string `json:"district" binding:"omitempty,max=100"`
	State         *string `json:"state" binding:"omitempty,max=100"`
	PostalCode    *string `json:"postal_code" binding:"omitempty,max=10"`
	JakimZone     *string `json:"jakim_zone" binding:"omitempty,max=10"`
	ContactNumber *string `json:"contact_number" binding:"omitempty,max=20"`
	Email         *string `json:"email" binding:"omitempty,email,max=255"`
	Website       *string `json:"website" binding:"omitempty,url,max=255"`
}

// Validate validates the UpdateMosqueRequest
func (r *UpdateMosqueRequest) Validate() (bool, string) {
	if r.Name == nil && r.StreetAddress == nil && r.City == nil && r.District == nil &&
		r.State == nil && r.PostalCode == nil && r.JakimZone == nil &&
		r.ContactNumber == nil && r.Email == nil && r.Website == nil {
		return false, "At least one field must be provided for update"
	}
	if r.Name != nil && *r.Name == "" {
		return false, "Mosque name cannot be empty"
	}
	return true, ""
}

// VerifyMosqueRequest represents the admin verification decision
type VerifyMosqueRequest struct {
	Status string `json:"status" binding:"required,oneof=verified rejected"`
	Notes  string `json:"notes" binding:"omitempty,max=1000"`
}

// Validate validates the VerifyMosqueRequest
func (r *VerifyMosqueRequest) Validate() (bool, string) {
	if r.Status != "verified" && r.Status != "rejected" {
		return false, "Status must be verified or rejected"
	}
	return true, ""
}

// MosqueListFilter represents filters for listing mosques
type MosqueListFilter struct {
	State  string `form:"state"`
	Status string `form:"status"`
	Search string `form:"search"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

// SetDefaults sets default values for pagination
func (f *MosqueListFilter) SetDefaults() {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// AddMosqueAdminRequest links a user to a mosque as staff
type AddMosqueAdminRequest struct {
	UserID    string `json:"user_id" binding:"required,uuid"`
	Role      string `json:"role" binding:"required,oneof=admin manager"`
	IsPrimary bool   `json:"is_primary"`
}

// CreateCommitteeRequest represents a committee (AJK) appointment
type CreateCommitteeRequest struct {
	UserID    *string `json:"user_id" binding:"omitempty,uuid"`
	Name      string  `json:"name" binding:"required,min=1,max=255"`
	Position  string  `json:"position" binding:"required,min=1,max=100"`
	ICNumber  string  `json:"ic_number" binding:"omitempty,max=20"`
	Phone     string  `json:"phone" binding:"omitempty,max=20"`
	Email     string  `json:"email" binding:"omitempty,email,max=255"`
	StartDate string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string  `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Notes     string  `json:"notes" binding:"omitempty,max=500"`
}

// Validate validates the CreateCommitteeRequest
func (r *CreateCommitteeRequest) Validate() (bool, string) {
	if r.Name == "" {
		return false, "Name is required"
	}
	if r.Position == "" {
		return false, "Position is required"
	}
	return true, ""
}
