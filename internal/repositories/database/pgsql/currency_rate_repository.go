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

// PgxCurrencyRateRepository implements ports.CurrencyRateRepositoryFacade using pgxpool.
type PgxCurrencyRateRepository struct {
	BaseRepository
}

// NewPgxCurrencyRateRepository creates a new PgxCurrencyRateRepository.
func NewPgxCurrencyRateRepository(db *pgxpool.Pool) *PgxCurrencyRateRepository {
	return &PgxCurrencyRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// UpsertCurrencyRate inserts a rate or refreshes the existing row for the
// same directed pair. The scheduled feed updater calls this on every cycle.
func (r *PgxCurrencyRateRepository) UpsertCurrencyRate(ctx context.Context, rate domain.CurrencyRate) error {
	fromCurrency := strings.ToUpper(rate.FromCurrencyCode)
	toCurrency := strings.ToUpper(rate.ToCurrencyCode)

	if fromCurrency == toCurrency {
		return apperrors.NewValidationError("from and to currencies cannot be the same")
	}

	modelRate := mapping.ToModelCurrencyRate(rate)
	modelRate.FromCurrencyCode = fromCurrency
	modelRate.ToCurrencyCode = toCurrency

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	// Check if a rate already exists for this directed pair
	var existingID string
	err = tx.QueryRow(ctx,
		`SELECT rate_id FROM currency_rates
		WHERE from_currency = $1 AND to_currency = $2`,
		fromCurrency, toCurrency,
	).Scan(&existingID)

	if err == nil && existingID != "" {
		_, err = tx.Exec(ctx, `
			UPDATE currency_rates
			SET rate = $1, updated_at = $2, last_updated_at = $3, last_updated_by = $4
			WHERE rate_id = $5`,
			modelRate.Rate, modelRate.UpdatedAt, modelRate.LastUpdatedAt, modelRate.LastUpdatedBy, existingID,
		)
	} else if errors.Is(err, pgx.ErrNoRows) {
		_, err = tx.Exec(ctx, `
			INSERT INTO currency_rates (
				rate_id, from_currency, to_currency, rate, updated_at,
				created_at, created_by, last_updated_at, last_updated_by
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			modelRate.RateID, modelRate.FromCurrencyCode, modelRate.ToCurrencyCode,
			modelRate.Rate, modelRate.UpdatedAt, modelRate.CreatedAt,
			modelRate.CreatedBy, modelRate.LastUpdatedAt, modelRate.LastUpdatedBy,
		)
	}

	if err != nil {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewAppError(500, "failed to upsert currency rate", err)
	}

	return r.Commit(ctx, tx)
}

// FindLatestRate retrieves the stored rate for the exact direction (from, to).
// Falling back to the inverse of the reverse pair is the service layer's job.
func (r *PgxCurrencyRateRepository) FindLatestRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.CurrencyRate, error) {
	query := `
		SELECT rate_id, from_currency, to_currency, rate, updated_at,
			created_at, created_by, last_updated_at, last_updated_by
		FROM currency_rates
		WHERE from_currency = $1 AND to_currency = $2
		ORDER BY updated_at DESC
		LIMIT 1;
	`

	var modelRate models.CurrencyRate
	err := r.Pool.QueryRow(ctx, query, strings.ToUpper(fromCurrencyCode), strings.ToUpper(toCurrencyCode)).Scan(
		&modelRate.RateID, &modelRate.FromCurrencyCode, &modelRate.ToCurrencyCode,
		&modelRate.Rate, &modelRate.UpdatedAt, &modelRate.CreatedAt,
		&modelRate.CreatedBy, &modelRate.LastUpdatedAt, &modelRate.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no rate stored for " + fromCurrencyCode + " to " + toCurrencyCode)
		}
		return nil, apperrors.NewAppError(500, "failed to find currency rate", err)
	}

	domainRate := mapping.ToDomainCurrencyRate(modelRate)
	return &domainRate, nil
}

// ListCurrencyRates retrieves every stored rate row.
func (r *PgxCurrencyRateRepository) ListCurrencyRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	query := `
		SELECT rate_id, from_currency, to_currency, rate, updated_at,
			created_at, created_by, last_updated_at, last_updated_by
		FROM currency_rates
		ORDER BY from_currency, to_currency;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list currency rates", err)
	}
	defer rows.Close()

	var rates []domain.CurrencyRate
	for rows.Next() {
		var modelRate models.CurrencyRate
		err := rows.Scan(
			&modelRate.RateID, &modelRate.FromCurrencyCode, &modelRate.ToCurrencyCode,
			&modelRate.Rate, &modelRate.UpdatedAt, &modelRate.CreatedAt,
			&modelRate.CreatedBy, &modelRate.LastUpdatedAt, &modelRate.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan currency rate", err)
		}
		rates = append(rates, mapping.ToDomainCurrencyRate(modelRate))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating currency rates", err)
	}

	return rates, nil
}
