package repository

import (
	"context"
	"errors"

	"github.com/MuneelHaider/NeuroFusion-sub000/internal/domain"
)

// ErrDuplicateEmail is returned when an insert violates the account email
// uniqueness constraint. The constraint is the authoritative check; any
// pre-insert existence lookup is advisory only.
var ErrDuplicateEmail = errors.New("account email already in use")

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	// Create persists a new account. Returns ErrDuplicateEmail when the
	// email is already registered.
	Create(ctx context.Context, account *domain.Account) error
	// GetByID retrieves an account by ID, nil when absent
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	// GetByEmail retrieves an account by exact email, nil when absent
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	// GetByEmailAndRole retrieves an account by exact email and canonical
	// role, nil when absent
	GetByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.Account, error)
	// ExistsByEmail checks if an account exists with the given email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
