package domain

import "time"

// Donation represents a recorded donation to a mosque
type Donation struct {
	ID       string  `json:"id"`
	MosqueID string  `json:"mosque_id"`
	Amount   float64 `json:"amount"`

	DonorName  string `json:"donor_name,omitempty"`
	DonorPhone string `json:"donor_phone,omitempty"`
	DonorEmail string `json:"donor_email,omitempty"`

	Purpose string `json:"purpose,omitempty"`
	Notes   string `json:"notes,omitempty"`

	PaymentMethod   string `json:"payment_method"` // duitnow_qr, cash, bank_transfer
	ReferenceNumber string `json:"reference_number,omitempty"`
	Status          string `json:"status"` // pending, completed

	// ReceiptNumber is the RCP-prefixed date+random receipt code, unique
	// across all mosques.
	ReceiptNumber string `json:"receipt_number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Payment method constants
const (
	PaymentMethodDuitNowQR    = "duitnow_qr"
	PaymentMethodCash         = "cash"
	PaymentMethodBankTransfer = "bank_transfer"
)

// Donation status constants
const (
	DonationStatusPending   = "pending"
	DonationStatusCompleted = "completed"
)

// ValidPaymentMethod checks a payment method against the known set
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodDuitNowQR, PaymentMethodCash, PaymentMethodBankTransfer:
		return true
	}
	return false
}

// IsCompleted checks if the donation payment has been completed
func (d *Donation) IsCompleted() bool {
	return d.Status == DonationStatusCompleted
}
