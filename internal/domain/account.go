package domain

import (
	"strings"
	"time"
)

// Role is the closed set of account roles. Stored and transmitted in
// canonical casing; compared case-insensitively everywhere.
type Role string

const (
	RoleDoctor  Role = "Doctor"
	RolePatient Role = "Patient"
	RoleAdmin   Role = "Admin"
)

var validRoles = []Role{RoleDoctor, RolePatient, RoleAdmin}

// ParseRole normalizes a free-form role string against the closed role set.
// Matching is case-insensitive; the returned Role carries canonical casing.
func ParseRole(s string) (Role, bool) {
	for _, r := range validRoles {
		if strings.EqualFold(string(r), s) {
			return r, true
		}
	}
	return "", false
}

// Matches reports whether the given role string refers to this role,
// ignoring case.
func (r Role) Matches(s string) bool {
	return strings.EqualFold(string(r), s)
}

// Account represents a registered user account
type Account struct {
	ID           string    `json:"id"`
	Role         Role      `json:"role"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialized
	CreatedAt    time.Time `json:"createdAt"`

	// Present only for doctor accounts
	Specialty     string `json:"specialty,omitempty"`
	LicenseNumber string `json:"licenseNumber,omitempty"`
}

// Profile derives the client-facing Session Profile from the account.
// Password material never crosses this boundary.
func (a *Account) Profile() *SessionProfile {
	return &SessionProfile{
		ID:            a.ID,
		Name:          a.FullName,
		Email:         a.Email,
		Role:          a.Role,
		Specialty:     a.Specialty,
		LicenseNumber: a.LicenseNumber,
	}
}

// SessionProfile is the transient profile returned to clients at login
type SessionProfile struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          Role   `json:"role"`
	Specialty     string `json:"specialty,omitempty"`
	LicenseNumber string `json:"licenseNumber,omitempty"`
}

// Claims represents the verified session token payload
type Claims struct {
	UserID string `json:"id"`
	Role   Role   `json:"role"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}
