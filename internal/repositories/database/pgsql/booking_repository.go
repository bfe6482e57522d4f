package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/safarnama/travel_booking_app/internal/apperrors"
	"github.com/safarnama/travel_booking_app/internal/core/domain"
	"github.com/safarnama/travel_booking_app/internal/models"
	"github.com/safarnama/travel_booking_app/internal/utils/mapping"
)

// PgxBookingRepository implements ports.BookingRepositoryFacade using pgxpool.
type PgxBookingRepository struct {
	BaseRepository
}

// NewPgxBookingRepository creates a new PgxBookingRepository.
func NewPgxBookingRepository(db *pgxpool.Pool) *PgxBookingRepository {
	return &PgxBookingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const bookingColumns = `
	booking_id, tour_ref, customer_name, customer_email, amount, currency_code,
	payment_status, booking_status, payment_method, payment_reference, confirmed_at,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveBooking inserts a new booking in pending/unpaid state.
func (r *PgxBookingRepository) SaveBooking(ctx context.Context, booking domain.Booking) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO bookings (
			booking_id, tour_ref, customer_name, customer_email, amount, currency_code,
			payment_status, booking_status,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		booking.BookingID, booking.TourRef, booking.CustomerName, booking.CustomerEmail,
		booking.Amount, booking.CurrencyCode,
		string(booking.PaymentStatus), string(booking.BookingStatus),
		booking.CreatedAt, booking.CreatedBy, booking.LastUpdatedAt, booking.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save booking", err)
	}
	return nil
}

// FindBookingByID retrieves a booking by its ID.
func (r *PgxBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1;`

	modelBooking, err := r.scanBooking(r.Pool.QueryRow(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("booking " + bookingID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find booking", err)
	}

	domainBooking := mapping.ToDomainBooking(*modelBooking)
	return &domainBooking, nil
}

// ListBookings retrieves bookings, optionally filtered by booking status.
func (r *PgxBookingRepository) ListBookings(ctx context.Context, status *domain.BookingStatus) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE booking_status = $1`
		args = append(args, string(*status))
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list bookings", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		modelBooking, err := r.scanBooking(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan booking", err)
		}
		bookings = append(bookings, mapping.ToDomainBooking(*modelBooking))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating bookings", err)
	}

	return bookings, nil
}

// ConfirmBookingPayment performs the single conditional write of the payment
// path. The payment_status guard makes concurrent confirmations race-safe:
// exactly one call updates the row, later calls see zero rows affected and
// get ErrAlreadyConfirmed.
func (r *PgxBookingRepository) ConfirmBookingPayment(ctx context.Context, bookingID string, method domain.PaymentMethod, paymentReference string, confirmedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE bookings
		SET payment_status = $1, booking_status = $2, payment_method = $3,
			payment_reference = $4, confirmed_at = $5, last_updated_at = $5, last_updated_by = $6
		WHERE booking_id = $7 AND payment_status = $8`,
		string(domain.PaymentStatusPaid), string(domain.BookingStatusConfirmed), string(method),
		paymentReference, confirmedAt, "payment-confirmation",
		bookingID, string(domain.PaymentStatusUnpaid),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to confirm booking payment", err)
	}

	if tag.RowsAffected() == 0 {
		// Guard matched nothing: either the booking is gone or it was
		// confirmed already. Distinguish for the caller.
		var exists bool
		if err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM bookings WHERE booking_id = $1)`, bookingID).Scan(&exists); err != nil {
			return apperrors.NewAppError(500, "failed to check booking existence", err)
		}
		if !exists {
			return apperrors.NewNotFoundError("booking " + bookingID + " not found")
		}
		return apperrors.ErrAlreadyConfirmed
	}

	return nil
}

// scanBooking reads one booking row from either a pgx.Row or pgx.Rows.
func (r *PgxBookingRepository) scanBooking(row pgx.Row) (*models.Booking, error) {
	var m models.Booking
	err := row.Scan(
		&m.BookingID, &m.TourRef, &m.CustomerName, &m.CustomerEmail, &m.Amount, &m.CurrencyCode,
		&m.PaymentStatus, &m.BookingStatus, &m.PaymentMethod, &m.PaymentReference, &m.ConfirmedAt,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
