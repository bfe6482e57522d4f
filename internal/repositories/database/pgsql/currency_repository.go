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

// PgxCurrencyRepository implements ports.CurrencyRepositoryFacade using pgxpool.
type PgxCurrencyRepository struct {
	BaseRepository
}

// NewPgxCurrencyRepository creates a new PgxCurrencyRepository.
func NewPgxCurrencyRepository(db *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SaveCurrency inserts a new currency.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	modelCurrency := mapping.ToModelCurrency(currency)
	modelCurrency.CurrencyCode = strings.ToUpper(modelCurrency.CurrencyCode)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO currencies (
			currency_code, symbol, name, precision,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		modelCurrency.CurrencyCode, modelCurrency.Symbol, modelCurrency.Name, modelCurrency.Precision,
		modelCurrency.CreatedAt, modelCurrency.CreatedBy, modelCurrency.LastUpdatedAt, modelCurrency.LastUpdatedBy,
	)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return apperrors.NewAppError(409, "currency "+modelCurrency.CurrencyCode+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save currency", err)
	}
	return nil
}

// FindCurrencyByCode retrieves a currency by its code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	query := `
		SELECT currency_code, symbol, name, precision,
			created_at, created_by, last_updated_at, last_updated_by
		FROM currencies
		WHERE currency_code = $1;
	`

	var modelCurrency models.Currency
	err := r.Pool.QueryRow(ctx, query, strings.ToUpper(currencyCode)).Scan(
		&modelCurrency.CurrencyCode, &modelCurrency.Symbol, &modelCurrency.Name, &modelCurrency.Precision,
		&modelCurrency.CreatedAt, &modelCurrency.CreatedBy, &modelCurrency.LastUpdatedAt, &modelCurrency.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("currency " + currencyCode + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find currency", err)
	}

	domainCurrency := mapping.ToDomainCurrency(modelCurrency)
	return &domainCurrency, nil
}

// ListCurrencies retrieves all supported currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT currency_code, symbol, name, precision,
			created_at, created_by, last_updated_at, last_updated_by
		FROM currencies
		ORDER BY currency_code;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list currencies", err)
	}
	defer rows.Close()

	var currencies []domain.Currency
	for rows.Next() {
		var modelCurrency models.Currency
		err := rows.Scan(
			&modelCurrency.CurrencyCode, &modelCurrency.Symbol, &modelCurrency.Name, &modelCurrency.Precision,
			&modelCurrency.CreatedAt, &modelCurrency.CreatedBy, &modelCurrency.LastUpdatedAt, &modelCurrency.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan currency", err)
		}
		currencies = append(currencies, mapping.ToDomainCurrency(modelCurrency))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating currencies", err)
	}

	return currencies, nil
}
