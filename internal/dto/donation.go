package dto

// CreateDonationRequest represents the request to record a donation
type CreateDonationRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	DonorName     string  `json:"donor_name" binding:"omitempty,max=255"`
	DonorPhone    string  `json:"donor_phone" binding:"omitempty,max=20"`
	DonorEmail    string  `json:"donor_email" binding:"omitempty,email,max=255"`
	Purpose       string  `json:"purpose" binding:"omitempty,max=255"`
	Notes         string  `json:"notes" binding:"omitempty,max=500"`
	PaymentMethod string  `json:"payment_method" binding:"required,oneof=duitnow_qr cash bank_transfer"`
	ReferenceNo   string  `json:"reference_number" binding:"omitempty,max=100"`
}

// Validate validates the CreateDonationRequest
func (r *CreateDonationRequest) Validate() (bool, string) {
	if r.Amount <= 0 {
		return false, "Amount must be greater than zero"
	}
	if r.PaymentMethod == "" {
		return false, "Payment method is required"
	}
	return true, ""
}

// DonationResponse represents a donation in API responses
type DonationResponse struct {
	ID            string  `json:"id"`
	MosqueID      string  `json:"mosque_id"`
	Amount        float64 `json:"amount"`
	DonorName     string  `json:"donor_name,omitempty"`
	Purpose       string  `json:"purpose,omitempty"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`
	ReceiptNumber string  `json:"receipt_number"`
	CreatedAt     string  `json:"created_at"`
}

// DonationListFilter represents filters for listing donations
type DonationListFilter struct {
	MosqueID      string `form:"-"`
	Status        string `form:"status"`
	PaymentMethod string `form:"payment_method"`
	Limit         int    `form:"limit"`
	Offset        int    `form:"offset"`
}

// SetDefaults sets default values for pagination
func (f *DonationListFilter) SetDefaults() {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
