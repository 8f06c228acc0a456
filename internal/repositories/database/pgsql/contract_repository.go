package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mdjurovic/contract_rates_app/internal/apperrors"
	"github.com/mdjurovic/contract_rates_app/internal/core/domain"
	portsrepo "github.com/mdjurovic/contract_rates_app/internal/core/ports/repositories"
	"github.com/mdjurovic/contract_rates_app/internal/models"
	"github.com/mdjurovic/contract_rates_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxContractRepository struct {
	BaseRepository
}

func newPgxContractRepository(pool *pgxpool.Pool) portsrepo.ContractRepositoryFacade {
	return &PgxContractRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ContractRepositoryFacade = (*PgxContractRepository)(nil)

// ListContractsByCustomer retrieves every contract of the customer with its
// amortization plan entries in one query, so the plan lists and anything
// summed from them come from the same snapshot.
func (r *PgxContractRepository) ListContractsByCustomer(ctx context.Context, customerID int64) ([]domain.Contract, error) {
	query := `
		SELECT
			c.contract_id, c.contract_number, c.customer_id,
			a.document_id, a.claim_due_date, a.total_amount, a.paid_amount, a.due_amount, a.currency_code
		FROM contracts c
		LEFT JOIN amort_plan a ON a.contract_id = c.contract_id
		WHERE c.customer_id = $1
		ORDER BY c.contract_id, a.claim_due_date, a.document_id;
	`

	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query contracts", err)
	}
	defer rows.Close()

	var contracts []domain.Contract
	plansByContract := map[int64][]models.AmortPlan{}
	var order []int64
	contractModels := map[int64]models.Contract{}

	for rows.Next() {
		var contract models.Contract
		// plan columns are NULL for contracts without plans (LEFT JOIN)
		var documentID, currencyCode *string
		var claimDueDate *time.Time
		var totalAmount, paidAmount, dueAmount *decimal.Decimal

		if err := rows.Scan(
			&contract.ContractID,
			&contract.ContractNumber,
			&contract.CustomerID,
			&documentID,
			&claimDueDate,
			&totalAmount,
			&paidAmount,
			&dueAmount,
			&currencyCode,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan contract row", err)
		}

		if _, seen := contractModels[contract.ContractID]; !seen {
			contractModels[contract.ContractID] = contract
			order = append(order, contract.ContractID)
		}

		if documentID != nil {
			plan := models.AmortPlan{
				DocumentID:   *documentID,
				ContractID:   contract.ContractID,
				ClaimDueDate: *claimDueDate,
				TotalAmount:  *totalAmount,
				PaidAmount:   *paidAmount,
				DueAmount:    *dueAmount,
				CurrencyCode: *currencyCode,
			}
			plansByContract[contract.ContractID] = append(plansByContract[contract.ContractID], plan)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating contract rows", err)
	}

	for _, id := range order {
		contracts = append(contracts, mapping.ToDomainContract(contractModels[id], plansByContract[id]))
	}

	if contracts == nil {
		contracts = []domain.Contract{}
	}
	return contracts, nil
}
