package courier

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"backoffice/internal/entities"
	"backoffice/internal/repository"
	"backoffice/internal/service/courier"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const courierColumns = `id, name, status, mode, api_client_id, api_key, return_fee_percent, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, courierModifyEntity entities.CourierModify) (int64, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)
	query := `INSERT INTO couriers (name, status, mode, api_client_id, api_key, return_fee_percent)
		VALUES ($1, $2, COALESCE($3, 0), $4, $5, COALESCE($6, 0))
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		courierModifyModel.Name,
		courierModifyModel.Status,
		courierModifyModel.Mode,
		courierModifyModel.APIClientID,
		courierModifyModel.APIKey,
		courierModifyModel.ReturnFeePercent,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, courier.ErrConflict
		}
		return 0, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)

	builder := qb.
		Update("couriers")

	// опциональные поля
	if courierModifyModel.Name != nil {
		builder = builder.Set("name", courierModifyModel.Name)
	}
	if courierModifyModel.Status != nil {
		builder = builder.Set("status", courierModifyModel.Status)
	}
	if courierModifyModel.Mode != nil {
		builder = builder.Set("mode", courierModifyModel.Mode)
	}
	if courierModifyModel.APIClientID != nil {
		builder = builder.Set("api_client_id", courierModifyModel.APIClientID)
	}
	if courierModifyModel.APIKey != nil {
		builder = builder.Set("api_key", courierModifyModel.APIKey)
	}
	if courierModifyModel.ReturnFeePercent != nil {
		builder = builder.Set("return_fee_percent", courierModifyModel.ReturnFeePercent)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": courierModifyModel.ID}).
		Suffix("RETURNING " + courierColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	var courierModel CourierDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&courierModel.ID,
			&courierModel.Name,
			&courierModel.Status,
			&courierModel.Mode,
			&courierModel.APIClientID,
			&courierModel.APIKey,
			&courierModel.ReturnFeePercent,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, courier.ErrConflict
		}

		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE id = $1`

	var courierModel CourierDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&courierModel.ID,
			&courierModel.Name,
			&courierModel.Status,
			&courierModel.Mode,
			&courierModel.APIClientID,
			&courierModel.APIKey,
			&courierModel.ReturnFeePercent,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

// GetDispatchCandidate mirrors the legacy "ORDER BY mode ASC LIMIT 1"
// selection. Mode is not unique, ties resolve to the lowest id so the
// choice is deterministic.
func (r *Repository) GetDispatchCandidate(ctx context.Context) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE status = 'active' AND mode > 0
		ORDER BY mode ASC, id ASC
		LIMIT 1`

	var courierModel CourierDB
	err := r.querier.QueryRow(ctx, query).
		Scan(
			&courierModel.ID,
			&courierModel.Name,
			&courierModel.Status,
			&courierModel.Mode,
			&courierModel.APIClientID,
			&courierModel.APIKey,
			&courierModel.ReturnFeePercent,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrNoCandidate
		}

		return nil, fmt.Errorf("unexpected courier repository getdispatchcandidate error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Courier, error) {
	query := `
	SELECT ` + courierColumns + `
	FROM couriers
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		var courierModel CourierDB
		err := rows.Scan(
			&courierModel.ID,
			&courierModel.Name,
			&courierModel.Status,
			&courierModel.Mode,
			&courierModel.APIClientID,
			&courierModel.APIKey,
			&courierModel.ReturnFeePercent,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
		}
		courierModels = append(courierModels, courierModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}

	return ToDomainList(courierModels), nil
}
