package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MuneelHaider/NeuroFusion-sub000/internal/domain"
)

// PostgresAccountRepository implements AccountRepository using PostgreSQL
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAccountRepository creates a new PostgresAccountRepository
func NewPostgresAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

const accountColumns = `id, role, full_name, email, password_hash, specialty, license_number, created_at`

// Create persists a new account
func (r *PostgresAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (id, role, full_name, email, password_hash, specialty, license_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		account.ID,
		account.Role,
		account.FullName,
		account.Email,
		account.PasswordHash,
		account.Specialty,
		account.LicenseNumber,
		account.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *PostgresAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

// GetByEmail retrieves an account by exact email
func (r *PostgresAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

// GetByEmailAndRole retrieves an account by exact email and canonical role
func (r *PostgresAccountRepository) GetByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1 AND role = $2`
	return r.scanOne(r.pool.QueryRow(ctx, query, email, role))
}

// ExistsByEmail checks if an account exists with the given email
func (r *PostgresAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (r *PostgresAccountRepository) scanOne(row pgx.Row) (*domain.Account, error) {
	account := &domain.Account{}
	err := row.Scan(
		&account.ID,
		&account.Role,
		&account.FullName,
		&account.Email,
		&account.PasswordHash,
		&account.Specialty,
		&account.LicenseNumber,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return account, nil
}
