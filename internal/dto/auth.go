package dto

import "github.com/MuneelHaider/NeuroFusion-sub000/internal/domain"

// SignupRequest represents an account registration request. Validation is
// ordered and owned by the credential service, so no binding tags here.
type SignupRequest struct {
	Role            string `json:"role"`
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Specialty       string `json:"specialty,omitempty"`
	LicenseNumber   string `json:"licenseNumber,omitempty"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Message string                 `json:"message"`
	User    *domain.SessionProfile `json:"user"`
}

// ContactRequest represents a contact form submission
type ContactRequest struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Location      string `json:"location,omitempty"`
	Message       string `json:"message"`
	RequestAccess bool   `json:"requestAccess,omitempty"`
}
