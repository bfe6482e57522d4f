package repositories

import (
	"context"

	"github.com/safarnama/travel_booking_app/internal/core/domain"
)

// AdminUserReader defines read operations for back-office user data
type AdminUserReader interface {
	// FindAdminUserByID retrieves an admin user by ID.
	FindAdminUserByID(ctx context.Context, userID string) (*domain.AdminUser, error)

	// FindAdminUserByEmail retrieves an admin user by email.
	FindAdminUserByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
}

// AdminUserWriter defines write operations for back-office user data
type AdminUserWriter interface {
	// SaveAdminUser persists a new admin user.
	SaveAdminUser(ctx context.Context, user domain.AdminUser) error
}

// AdminUserRepositoryFacade combines all admin-user repository interfaces
type AdminUserRepositoryFacade interface {
	AdminUserReader
	AdminUserWriter
}
