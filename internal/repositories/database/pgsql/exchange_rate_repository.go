package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mdjurovic/contract_rates_app/internal/apperrors"
	"github.com/mdjurovic/contract_rates_app/internal/core/domain"
	portsrepo "github.com/mdjurovic/contract_rates_app/internal/core/ports/repositories"
	"github.com/mdjurovic/contract_rates_app/internal/models"
	"github.com/mdjurovic/contract_rates_app/internal/utils/mapping"
)

// PgxExchangeRateRepository implements the exchange-rate store against
// the composite-key exchange_rates table.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// FindRate retrieves the rate stored under the (from, to, date) triple.
func (r *PgxExchangeRateRepository) FindRate(ctx context.Context, currencyFrom, currencyTo string, date time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT currency_from, currency_to, exchange_rate_date, exchange_rate, ts
		FROM exchange_rates
		WHERE currency_from = $1 AND currency_to = $2 AND exchange_rate_date = $3;
	`

	var modelRate models.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, strings.ToUpper(currencyFrom), strings.ToUpper(currencyTo), date).Scan(
		&modelRate.CurrencyFrom,
		&modelRate.CurrencyTo,
		&modelRate.ExchangeRateDate,
		&modelRate.ExchangeRate,
		&modelRate.Ts,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find exchange rate", err)
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// SaveRates upserts the given rows in a single transaction. A conflicting
// (from, to, date) triple overwrites the stored rate and timestamp.
func (r *PgxExchangeRateRepository) SaveRates(ctx context.Context, rates []domain.ExchangeRate) error {
	if len(rates) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO exchange_rates (currency_from, currency_to, exchange_rate_date, exchange_rate, ts)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (currency_from, currency_to, exchange_rate_date) DO UPDATE SET
			exchange_rate = EXCLUDED.exchange_rate,
			ts = EXCLUDED.ts;
	`

	for _, rate := range rates {
		modelRate := mapping.ToModelExchangeRate(rate)
		modelRate.CurrencyFrom = strings.ToUpper(modelRate.CurrencyFrom)
		modelRate.CurrencyTo = strings.ToUpper(modelRate.CurrencyTo)

		if _, err := tx.Exec(ctx, query,
			modelRate.CurrencyFrom,
			modelRate.CurrencyTo,
			modelRate.ExchangeRateDate,
			modelRate.ExchangeRate,
			modelRate.Ts,
		); err != nil {
			_ = r.Rollback(ctx, tx)
			return apperrors.NewAppError(500, "failed to save exchange rate "+modelRate.CurrencyFrom, err)
		}
	}

	return r.Commit(ctx, tx)
}

// HasRatesForDate reports whether any rate row exists for the given day.
func (r *PgxExchangeRateRepository) HasRatesForDate(ctx context.Context, date time.Time) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM exchange_rates WHERE exchange_rate_date = $1);`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, date).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to check rates for date", err)
	}
	return exists, nil
}

// ListRates retrieves stored rates with optional filtering by source
// currency and an inclusive date window.
func (r *PgxExchangeRateRepository) ListRates(ctx context.Context, currencyFrom *string, from, to *time.Time) ([]domain.ExchangeRate, error) {
	baseQuery := `
		SELECT currency_from, currency_to, exchange_rate_date, exchange_rate, ts
		FROM exchange_rates
		WHERE 1=1`
	args := []interface{}{}
	argNum := 1

	if currencyFrom != nil {
		baseQuery += fmt.Sprintf(" AND currency_from = $%d", argNum)
		args = append(args, strings.ToUpper(*currencyFrom))
		argNum++
	}

	if from != nil {
		baseQuery += fmt.Sprintf(" AND exchange_rate_date >= $%d", argNum)
		args = append(args, *from)
		argNum++
	}

	if to != nil {
		baseQuery += fmt.Sprintf(" AND exchange_rate_date <= $%d", argNum)
		args = append(args, *to)
		argNum++
	}

	baseQuery += " ORDER BY exchange_rate_date DESC, currency_from;"

	rows, err := r.Pool.Query(ctx, baseQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list exchange rates", err)
	}
	defer rows.Close()

	var rates []domain.ExchangeRate
	for rows.Next() {
		var modelRate models.ExchangeRate
		if err := rows.Scan(
			&modelRate.CurrencyFrom,
			&modelRate.CurrencyTo,
			&modelRate.ExchangeRateDate,
			&modelRate.ExchangeRate,
			&modelRate.Ts,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan exchange rate", err)
		}
		rates = append(rates, mapping.ToDomainExchangeRate(modelRate))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating exchange rates", err)
	}

	if rates == nil {
		rates = []domain.ExchangeRate{}
	}
	return rates, nil
}
