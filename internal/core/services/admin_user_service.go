package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/safarnama/travel_booking_app/internal/apperrors"
	"github.com/safarnama/travel_booking_app/internal/core/domain"
	portsrepo "github.com/safarnama/travel_booking_app/internal/core/ports/repositories"
	portssvc "github.com/safarnama/travel_booking_app/internal/core/ports/services"
)

type adminUserService struct {
	adminUserRepo portsrepo.AdminUserRepositoryFacade
}

// NewAdminUserService creates the admin user service.
func NewAdminUserService(adminUserRepo portsrepo.AdminUserRepositoryFacade) portssvc.AdminUserSvcFacade {
	return &adminUserService{adminUserRepo: adminUserRepo}
}

func (s *adminUserService) GetAdminUserByID(ctx context.Context, userID string) (*domain.AdminUser, error) {
	user, err := s.adminUserRepo.FindAdminUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin user by id in service: %w", err)
	}
	return user, nil
}

func (s *adminUserService) GetAdminUserByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	user, err := s.adminUserRepo.FindAdminUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin user by email in service: %w", err)
	}
	return user, nil
}

// CreateOAuthAdminUser returns the existing account for a validated OAuth
// identity, or creates one on first sign-in.
func (s *adminUserService) CreateOAuthAdminUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string) (*domain.AdminUser, error) {
	email = strings.ToLower(email)

	existing, err := s.adminUserRepo.FindAdminUserByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up admin user for oauth sign-in: %w", err)
	}

	now := time.Now()
	user := domain.AdminUser{
		UserID:         uuid.NewString(),
		Name:           name,
		Email:          email,
		AuthProvider:   provider,
		ProviderUserID: providerUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "oauth-signin",
			LastUpdatedAt: now,
			LastUpdatedBy: "oauth-signin",
		},
	}

	if err := s.adminUserRepo.SaveAdminUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create admin user from oauth sign-in: %w", err)
	}

	return &user, nil
}
