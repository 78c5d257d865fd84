package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"backoffice/internal/entities"
	"backoffice/internal/repository"
	"backoffice/internal/service/dispatch"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, status, interface, customer_id, total_amount, currency, pay_status,
	tracking_number, courier_id, call_log, dispatch_notes, cancel_reason, created_by, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM order_header WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByIDForUpdate locks the order row for the rest of the transaction.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM order_header WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM order_header WHERE id = ANY($1) ORDER BY id`
	return r.getMany(ctx, query, ids)
}

func (r *Repository) GetByIDsForUpdate(ctx context.Context, ids []int64) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM order_header WHERE id = ANY($1) ORDER BY id FOR UPDATE`
	return r.getMany(ctx, query, ids)
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	builder := qb.
		Update("order_header")

	// опциональные поля
	if orderModifyModel.Status != nil {
		builder = builder.Set("status", orderModifyModel.Status)
	}
	if orderModifyModel.PayStatus != nil {
		builder = builder.Set("pay_status", orderModifyModel.PayStatus)
	}
	if orderModifyModel.TrackingNumber != nil {
		builder = builder.Set("tracking_number", orderModifyModel.TrackingNumber)
	}
	if orderModifyModel.CourierID != nil {
		builder = builder.Set("courier_id", orderModifyModel.CourierID)
	}
	if orderModifyModel.CallLog != nil {
		builder = builder.Set("call_log", orderModifyModel.CallLog)
	}
	if orderModifyModel.DispatchNotes != nil {
		builder = builder.Set("dispatch_notes", orderModifyModel.DispatchNotes)
	}
	if orderModifyModel.CancelReason != nil {
		builder = builder.Set("cancel_reason", orderModifyModel.CancelReason)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModifyModel.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderModel, err := scanOne(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrOrderNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("tracking number already assigned: %w", err)
		}

		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(orderModel), nil
}

// List serves the status pages. All filter values are bound parameters,
// the search string is never concatenated into the query.
func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select("id", "status", "interface", "customer_id", "total_amount", "currency", "pay_status",
			"tracking_number", "courier_id", "call_log", "dispatch_notes", "cancel_reason",
			"created_by", "created_at", "updated_at").
		From("order_header")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.PayStatus != nil {
		builder = builder.Where(sq.Eq{"pay_status": filter.PayStatus.String()})
	}
	if filter.CustomerID != nil {
		builder = builder.Where(sq.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.TrackingNumber != nil {
		builder = builder.Where(sq.Eq{"tracking_number": *filter.TrackingNumber})
	}
	if filter.CreatedBy != nil {
		builder = builder.Where(sq.Eq{"created_by": *filter.CreatedBy})
	}

	builder = builder.OrderBy("id DESC")
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	return collect(rows)
}

func (r *Repository) getOne(ctx context.Context, query string, id int64) (*entities.Order, error) {
	orderModel, err := scanOne(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) getMany(ctx context.Context, query string, ids []int64) ([]entities.Order, error) {
	rows, err := r.querier.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}
	defer rows.Close()

	return collect(rows)
}

func scanOne(row pgx.Row) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.ID,
		&orderModel.Status,
		&orderModel.Interface,
		&orderModel.CustomerID,
		&orderModel.TotalAmount,
		&orderModel.Currency,
		&orderModel.PayStatus,
		&orderModel.TrackingNumber,
		&orderModel.CourierID,
		&orderModel.CallLog,
		&orderModel.DispatchNotes,
		&orderModel.CancelReason,
		&orderModel.CreatedBy,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}

func collect(rows pgx.Rows) ([]entities.Order, error) {
	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		orderModel, err := scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}
		orderModels = append(orderModels, *orderModel)
	}

	err := rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}

	return ToDomainList(orderModels), nil
}
