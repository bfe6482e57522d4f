package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/safarnama/travel_booking_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:  NewPgxCurrencyRepository(dbPool),
		RateRepo:      NewPgxCurrencyRateRepository(dbPool),
		BookingRepo:   NewPgxBookingRepository(dbPool),
		AdminUserRepo: NewPgxAdminUserRepository(dbPool),
	}
}
