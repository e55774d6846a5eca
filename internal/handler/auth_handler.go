package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuneelHaider/NeuroFusion-sub000/internal/dto"
	"github.com/MuneelHaider/NeuroFusion-sub000/internal/middleware"
	"github.com/MuneelHaider/NeuroFusion-sub000/internal/service"
	"github.com/MuneelHaider/NeuroFusion-sub000/pkg/response"
)

// sessionCookieMaxAge matches the token TTL so cookie and token expire
// together.
const sessionCookieMaxAge = 24 * 60 * 60

// AuthHandler handles credential and session HTTP requests
type AuthHandler struct {
	credentials  service.CredentialService
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler. secureCookie marks the session
// cookie Secure, which production should always set.
func NewAuthHandler(credentials service.CredentialService, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		credentials:  credentials,
		secureCookie: secureCookie,
	}
}

// Signup handles POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	if err := h.credentials.Signup(c.Request.Context(), &req); err != nil {
		h.writeSignupError(c, err)
		return
	}

	response.Created(c, "Account created successfully")
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	profile, token, err := h.credentials.Login(c.Request.Context(), &req)
	if err != nil {
		h.writeLoginError(c, err)
		return
	}

	h.setSessionCookie(c, token, sessionCookieMaxAge)
	response.OKWithUser(c, "Logged in successfully", profile)
}

// Logout handles POST /api/v1/auth/logout. Logout is purely a cookie
// clear; the token itself stays valid until it expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	response.OK(c, "Logged out successfully")
}

// Me handles GET /api/v1/auth/me. Requires a verified session; returns the
// current profile re-read from storage, not the cached token claims.
func (h *AuthHandler) Me(c *gin.Context) {
	id := c.GetString(middleware.ContextUserID)
	if id == "" {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	profile, err := h.credentials.Profile(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c)
		return
	}
	if profile == nil {
		response.NotFound(c, "Account not found")
		return
	}

	response.OKWithUser(c, "OK", profile)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookieName, token, maxAge, "/", "", h.secureCookie, true)
}

func (h *AuthHandler) writeSignupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		response.BadRequest(c, "Missing required fields")
	case errors.Is(err, service.ErrInvalidRole):
		response.BadRequest(c, "Invalid role. Must be Doctor, Patient, or Admin")
	case errors.Is(err, service.ErrInvalidEmail):
		response.BadRequest(c, "Invalid email address")
	case errors.Is(err, service.ErrPasswordTooShort):
		response.BadRequest(c, "Password must be at least 6 characters")
	case errors.Is(err, service.ErrPasswordMismatch):
		response.BadRequest(c, "Passwords do not match")
	case errors.Is(err, service.ErrEmailInUse):
		response.Conflict(c, "Email already in use")
	default:
		response.InternalError(c)
	}
}

func (h *AuthHandler) writeLoginError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		response.BadRequest(c, "Missing required fields")
	case errors.Is(err, service.ErrInvalidRole):
		response.BadRequest(c, "Invalid role. Must be Doctor, Patient, or Admin")
	case errors.Is(err, service.ErrInvalidEmail):
		response.BadRequest(c, "Invalid email address")
	case errors.Is(err, service.ErrPasswordTooShort):
		response.BadRequest(c, "Password must be at least 6 characters")
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, "Invalid credentials")
	default:
		response.InternalError(c)
	}
}
