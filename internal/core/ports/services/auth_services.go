package services

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/safarnama/travel_booking_app/internal/core/domain"
)

// AdminUserSvcFacade manages back-office operator accounts.
type AdminUserSvcFacade interface {
	// GetAdminUserByID retrieves an admin user by ID.
	GetAdminUserByID(ctx context.Context, userID string) (*domain.AdminUser, error)

	// GetAdminUserByEmail retrieves an admin user by email.
	GetAdminUserByEmail(ctx context.Context, email string) (*domain.AdminUser, error)

	// CreateOAuthAdminUser creates an admin user from a validated OAuth
	// identity, or returns the existing user for that identity.
	CreateOAuthAdminUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string) (*domain.AdminUser, error)
}

// TokenSvcFacade issues application access tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.AdminUser) (string, time.Time, error)
}

// GoogleOAuthSvcFacade wraps the Google OAuth code-exchange flow used by the
// back-office sign-in.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateGoogleIDToken validates an ID token received from Google and
	// returns the payload if valid.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
