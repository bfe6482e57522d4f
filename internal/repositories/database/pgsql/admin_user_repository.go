package pgsql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/safarnama/travel_booking_app/internal/apperrors"
	"github.com/safarnama/travel_booking_app/internal/core/domain"
	"github.com/safarnama/travel_booking_app/internal/models"
	"github.com/safarnama/travel_booking_app/internal/utils/mapping"
)

// PgxAdminUserRepository implements ports.AdminUserRepositoryFacade using pgxpool.
type PgxAdminUserRepository struct {
	BaseRepository
}

// NewPgxAdminUserRepository creates a new PgxAdminUserRepository.
func NewPgxAdminUserRepository(db *pgxpool.Pool) *PgxAdminUserRepository {
	return &PgxAdminUserRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const adminUserColumns = `
	user_id, name, email, password_hash, auth_provider, provider_user_id,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveAdminUser inserts a new admin user.
func (r *PgxAdminUserRepository) SaveAdminUser(ctx context.Context, user domain.AdminUser) error {
	var passwordHash, providerUserID *string
	if user.PasswordHash != "" {
		passwordHash = &user.PasswordHash
	}
	if user.ProviderUserID != "" {
		providerUserID = &user.ProviderUserID
	}

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO admin_users (
			user_id, name, email, password_hash, auth_provider, provider_user_id,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		user.UserID, user.Name, strings.ToLower(user.Email), passwordHash,
		string(user.AuthProvider), providerUserID,
		user.CreatedAt, user.CreatedBy, user.LastUpdatedAt, user.LastUpdatedBy,
	)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return apperrors.NewAppError(409, "admin user with email "+user.Email+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save admin user", err)
	}
	return nil
}

// FindAdminUserByID retrieves an admin user by ID.
func (r *PgxAdminUserRepository) FindAdminUserByID(ctx context.Context, userID string) (*domain.AdminUser, error) {
	query := `SELECT ` + adminUserColumns + ` FROM admin_users WHERE user_id = $1;`
	return r.queryOne(ctx, query, userID)
}

// FindAdminUserByEmail retrieves an admin user by email.
func (r *PgxAdminUserRepository) FindAdminUserByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	query := `SELECT ` + adminUserColumns + ` FROM admin_users WHERE email = $1;`
	return r.queryOne(ctx, query, strings.ToLower(email))
}

func (r *PgxAdminUserRepository) queryOne(ctx context.Context, query string, arg interface{}) (*domain.AdminUser, error) {
	var m models.AdminUser
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.UserID, &m.Name, &m.Email, &m.PasswordHash, &m.AuthProvider, &m.ProviderUserID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("admin user not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find admin user", err)
	}

	domainUser := mapping.ToDomainAdminUser(m)
	return &domainUser, nil
}
