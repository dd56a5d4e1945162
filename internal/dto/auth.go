package dto

// RegisterRequest represents the request to create a new user account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
}

// Validate validates the RegisterRequest
func (r *RegisterRequest) Validate() (bool, string) {
	if r.Name == "" {
		return false, "Name is required"
	}
	if r.Email == "" {
		return false, "Email is required"
	}
	if len(r.Password) < 8 {
		return false, "Password must be at least 8 characters"
	}
	return true, ""
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the account it belongs to
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt string        `json:"expires_at"`
	User      *UserResponse `json:"user"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}
