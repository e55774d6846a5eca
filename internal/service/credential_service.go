package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MuneelHaider/NeuroFusion-sub000/internal/domain"
	"github.com/MuneelHaider/NeuroFusion-sub000/internal/dto"
	"github.com/MuneelHaider/NeuroFusion-sub000/internal/hasher"
	"github.com/MuneelHaider/NeuroFusion-sub000/internal/repository"
)

var (
	// Validation failures (HTTP 400)
	ErrMissingFields    = errors.New("missing required fields")
	ErrInvalidRole      = errors.New("invalid role")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordTooShort = errors.New("password too short")
	ErrPasswordMismatch = errors.New("passwords do not match")

	// Conflict (HTTP 409)
	ErrEmailInUse = errors.New("email already in use")

	// Auth failures (HTTP 401). Deliberately a single error: a wrong
	// password, a wrong role and an unknown email are indistinguishable
	// to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 6

// CredentialServiceConfig holds configuration for CredentialService
type CredentialServiceConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// CredentialService defines the interface for credential operations
type CredentialService interface {
	// Signup registers a new account. No session is created; the caller
	// must log in separately.
	Signup(ctx context.Context, req *dto.SignupRequest) error
	// Login authenticates an account and returns its session profile plus
	// a signed session token.
	Login(ctx context.Context, req *dto.LoginRequest) (*domain.SessionProfile, string, error)
	// ValidateToken verifies a session token and returns its claims
	ValidateToken(ctx context.Context, token string) (*domain.Claims, error)
	// Profile returns the current session profile for an account ID,
	// nil when the account no longer exists.
	Profile(ctx context.Context, id string) (*domain.SessionProfile, error)
}

// credentialService implements CredentialService
type credentialService struct {
	accounts repository.AccountRepository
	hasher   hasher.PasswordHasher
	config   *CredentialServiceConfig
}

// NewCredentialService creates a new CredentialService
func NewCredentialService(
	accounts repository.AccountRepository,
	passwordHasher hasher.PasswordHasher,
	config *CredentialServiceConfig,
) CredentialService {
	if config.TokenTTL == 0 {
		config.TokenTTL = 24 * time.Hour
	}
	return &credentialService{
		accounts: accounts,
		hasher:   passwordHasher,
		config:   config,
	}
}

// Signup registers a new account
func (s *credentialService) Signup(ctx context.Context, req *dto.SignupRequest) error {
	if req.Role == "" || req.FullName == "" || req.Email == "" || req.Password == "" {
		return ErrMissingFields
	}

	role, ok := domain.ParseRole(req.Role)
	if !ok {
		return ErrInvalidRole
	}

	if !strings.Contains(req.Email, "@") {
		return ErrInvalidEmail
	}

	if len(req.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}

	// Advisory fast path; the unique constraint below is authoritative
	exists, err := s.accounts.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailInUse
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return err
	}

	account := &domain.Account{
		ID:           uuid.New().String(),
		Role:         role,
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	if role == domain.RoleDoctor {
		account.Specialty = req.Specialty
		account.LicenseNumber = req.LicenseNumber
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailInUse
		}
		return err
	}

	return nil
}

// Login authenticates an account
func (s *credentialService) Login(ctx context.Context, req *dto.LoginRequest) (*domain.SessionProfile, string, error) {
	if req.Role == "" || req.Email == "" || req.Password == "" {
		return nil, "", ErrMissingFields
	}

	role, ok := domain.ParseRole(req.Role)
	if !ok {
		return nil, "", ErrInvalidRole
	}

	if !strings.Contains(req.Email, "@") {
		return nil, "", ErrInvalidEmail
	}

	if len(req.Password) < MinPasswordLength {
		return nil, "", ErrPasswordTooShort
	}

	account, err := s.accounts.GetByEmailAndRole(ctx, req.Email, role)
	if err != nil {
		return nil, "", err
	}
	if account == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !s.hasher.Verify(req.Password, account.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.signToken(account)
	if err != nil {
		return nil, "", err
	}

	return account.Profile(), token, nil
}

// ValidateToken verifies a session token and returns its claims
func (s *credentialService) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	id, _ := mapClaims["id"].(string)
	roleStr, _ := mapClaims["role"].(string)
	email, _ := mapClaims["email"].(string)
	name, _ := mapClaims["name"].(string)

	role, ok := domain.ParseRole(roleStr)
	if id == "" || !ok {
		return nil, ErrInvalidToken
	}

	return &domain.Claims{
		UserID: id,
		Role:   role,
		Email:  email,
		Name:   name,
	}, nil
}

// Profile returns the session profile for an account ID
func (s *credentialService) Profile(ctx context.Context, id string) (*domain.SessionProfile, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	return account.Profile(), nil
}

// signToken issues the signed session token for the account
func (s *credentialService) signToken(account *domain.Account) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    account.ID,
		"role":  string(account.Role),
		"email": account.Email,
		"name":  account.FullName,
		"exp":   now.Add(s.config.TokenTTL).Unix(),
		"iat":   now.Unix(),
	})
	return token.SignedString([]byte(s.config.JWTSecret))
}
