package tracking

import (
	"context"
	"errors"
	"fmt"
	"sort"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"backoffice/internal/entities"
	"backoffice/internal/repository"
	"backoffice/internal/service/allocator"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repository is the only component allowed to flip tracking rows from
// unused to used. Claims go through FOR UPDATE SKIP LOCKED so two
// concurrent reservations can never take the same row. There is no
// reverse path: used rows stay used.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CountUnused(ctx context.Context, courierID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM tracking WHERE courier_id = $1 AND state = 'unused'`

	var count int64
	err := r.querier.QueryRow(ctx, query, courierID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected tracking repository countunused error: %w", err)
	}

	return count, nil
}

func (r *Repository) ReserveOne(ctx context.Context, courierID int64) (*entities.TrackingNumber, error) {
	query := `
	UPDATE tracking
	SET state = 'used', updated_at = NOW()
	WHERE id = (
		SELECT id FROM tracking
		WHERE courier_id = $1 AND state = 'unused'
		ORDER BY id
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	)
	RETURNING id, courier_id, value, state, created_at, updated_at`

	var trackingModel TrackingDB
	err := r.querier.QueryRow(ctx, query, courierID).
		Scan(
			&trackingModel.ID,
			&trackingModel.CourierID,
			&trackingModel.Value,
			&trackingModel.State,
			&trackingModel.CreatedAt,
			&trackingModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, allocator.ErrNoTrackingAvailable
		}
		return nil, fmt.Errorf("unexpected tracking repository reserveone error: %w", err)
	}

	return ToDomain(&trackingModel), nil
}

// ReserveMany claims up to count rows, oldest first. On a shortfall it
// returns InsufficientTrackingError and relies on the ambient
// transaction rollback to undo the claim, so the operation is
// all-or-nothing from the caller's point of view.
func (r *Repository) ReserveMany(ctx context.Context, courierID int64, count int) ([]entities.TrackingNumber, error) {
	query := `
	UPDATE tracking
	SET state = 'used', updated_at = NOW()
	WHERE id IN (
		SELECT id FROM tracking
		WHERE courier_id = $1 AND state = 'unused'
		ORDER BY id
		LIMIT $2
		FOR UPDATE SKIP LOCKED
	)
	RETURNING id, courier_id, value, state, created_at, updated_at`

	rows, err := r.querier.Query(ctx, query, courierID, count)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository reservemany error: %w", err)
	}
	defer rows.Close()

	trackingModels := make([]TrackingDB, 0, count)
	for rows.Next() {
		var trackingModel TrackingDB
		err := rows.Scan(
			&trackingModel.ID,
			&trackingModel.CourierID,
			&trackingModel.Value,
			&trackingModel.State,
			&trackingModel.CreatedAt,
			&trackingModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected tracking repository reservemany error: %w", err)
		}
		trackingModels = append(trackingModels, trackingModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository reservemany error: %w", err)
	}

	if len(trackingModels) < count {
		return nil, &allocator.InsufficientTrackingError{
			Available: len(trackingModels),
			Requested: count,
		}
	}

	// RETURNING не гарантирует порядок, выдача должна идти от старых к новым.
	sort.Slice(trackingModels, func(i, j int) bool {
		return trackingModels[i].ID < trackingModels[j].ID
	})

	return ToDomainList(trackingModels), nil
}

// InsertUsed records remotely minted parcel numbers as already-used
// rows, keeping the audit trail symmetric with pool allocations.
func (r *Repository) InsertUsed(ctx context.Context, courierID int64, values []string) ([]entities.TrackingNumber, error) {
	if len(values) == 0 {
		return []entities.TrackingNumber{}, nil
	}

	builder := qb.
		Insert("tracking").
		Columns("courier_id", "value", "state")
	for _, value := range values {
		builder = builder.Values(courierID, value, "used")
	}
	builder = builder.Suffix("RETURNING id, courier_id, value, state, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository insertused error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("duplicate tracking value: %w", err)
		}
		return nil, fmt.Errorf("unexpected tracking repository insertused error: %w", err)
	}
	defer rows.Close()

	trackingModels := make([]TrackingDB, 0, len(values))
	for rows.Next() {
		var trackingModel TrackingDB
		err := rows.Scan(
			&trackingModel.ID,
			&trackingModel.CourierID,
			&trackingModel.Value,
			&trackingModel.State,
			&trackingModel.CreatedAt,
			&trackingModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected tracking repository insertused error: %w", err)
		}
		trackingModels = append(trackingModels, trackingModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository insertused error: %w", err)
	}

	// Назначение номеров позиционное, порядок вставки обязан сохраниться.
	byValue := make(map[string]TrackingDB, len(trackingModels))
	for _, trackingModel := range trackingModels {
		byValue[trackingModel.Value] = trackingModel
	}
	ordered := make([]TrackingDB, 0, len(values))
	for _, value := range values {
		if trackingModel, ok := byValue[value]; ok {
			ordered = append(ordered, trackingModel)
		}
	}

	return ToDomainList(ordered), nil
}

// InsertUnused seeds imported parcel numbers into the pool. Values that
// already exist are skipped.
func (r *Repository) InsertUnused(ctx context.Context, courierID int64, values []string) (int64, error) {
	if len(values) == 0 {
		return 0, nil
	}

	builder := qb.
		Insert("tracking").
		Columns("courier_id", "value", "state")
	for _, value := range values {
		builder = builder.Values(courierID, value, "unused")
	}
	builder = builder.Suffix("ON CONFLICT (value) DO NOTHING")

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected tracking repository insertunused error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected tracking repository insertunused error: %w", err)
	}

	return tag.RowsAffected(), nil
}

// PeekUnused previews the next count values without reserving them.
// Same ordering as reservation, so the preview matches what a dispatch
// would actually hand out.
func (r *Repository) PeekUnused(ctx context.Context, courierID int64, count int) ([]string, error) {
	query := `
	SELECT value FROM tracking
	WHERE courier_id = $1 AND state = 'unused'
	ORDER BY id
	LIMIT $2`

	rows, err := r.querier.Query(ctx, query, courierID, count)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository peekunused error: %w", err)
	}
	defer rows.Close()

	values := make([]string, 0, count)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("unexpected tracking repository peekunused error: %w", err)
		}
		values = append(values, value)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository peekunused error: %w", err)
	}

	return values, nil
}
