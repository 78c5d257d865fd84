package payment

import (
	"context"
	"fmt"

	"backoffice/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderID int64, details entities.PaymentDetails) (*entities.Payment, error) {
	query := `INSERT INTO payments (order_id, amount, method, payer, paid_at, proof_reference)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, order_id, amount, method, payer, paid_at, proof_reference, created_at`

	var paymentModel PaymentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderID,
		details.Amount,
		details.Method,
		details.Payer,
		details.PaidAt,
		details.ProofReference,
	).Scan(
		&paymentModel.ID,
		&paymentModel.OrderID,
		&paymentModel.Amount,
		&paymentModel.Method,
		&paymentModel.Payer,
		&paymentModel.PaidAt,
		&paymentModel.ProofReference,
		&paymentModel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	return ToDomain(&paymentModel), nil
}
