package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/domain/repository"
	"github.com/navigation-microservice/internal/pkg/errors"
)

const transitColumns = `
	id, user_id, origin_id, destination_id, wheelchair_id,
	start_at, end_at, average_speed, distance, duration,
	barrier_report, facility_report, source, status, created_at
`

type transitRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTransitRepository(db *DB) repository.TransitRepository {
	return &transitRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *transitRepository) Create(ctx context.Context, transit *domain.Transit) error {
	if transit.ID == uuid.Nil {
		transit.ID = uuid.New()
	}
	if transit.Status == "" {
		transit.Status = domain.TransitStatusSearch
	}

	query := `
		INSERT INTO navigation_transits (id, user_id, origin_id, destination_id, source, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		transit.ID, transit.UserID, transit.OriginID, transit.DestinationID, transit.Source, transit.Status,
	).Scan(&transit.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create transit", zap.String("user_id", transit.UserID.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *transitRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transit, error) {
	var t domain.Transit
	err := r.db.GetContext(ctx, &t, `SELECT `+transitColumns+` FROM navigation_transits WHERE id = $1`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get transit", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &t, nil
}

func (r *transitRepository) GetForUser(ctx context.Context, id, userID uuid.UUID) (*domain.Transit, error) {
	var t domain.Transit
	err := r.db.GetContext(ctx, &t,
		`SELECT `+transitColumns+` FROM navigation_transits WHERE id = $1 AND user_id = $2`, id, userID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get user transit",
			zap.String("id", id.String()), zap.String("user_id", userID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &t, nil
}

func (r *transitRepository) SetSource(ctx context.Context, id uuid.UUID, source domain.TransitSource) error {
	_, err := r.db.ExecContext(ctx, `UPDATE navigation_transits SET source = $2 WHERE id = $1`, id, source)
	if err != nil {
		r.logger.Error("Failed to set transit source", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *transitRepository) UpdateTransition(
	ctx context.Context,
	id, userID uuid.UUID,
	t domain.TransitTransition,
) (*domain.Transit, error) {
	from := make([]string, len(t.From))
	for i, s := range t.From {
		from[i] = string(s)
	}

	// end_at пишется только если ещё не выставлен
	query := `
		UPDATE navigation_transits SET
			status = $3,
			wheelchair_id = COALESCE($4, wheelchair_id),
			start_at = COALESCE($5, start_at),
			end_at = COALESCE(end_at, $6),
			distance = COALESCE($7, distance),
			duration = COALESCE($8, duration),
			average_speed = COALESCE($9, average_speed)
		WHERE id = $1 AND user_id = $2 AND status = ANY($10)
		RETURNING ` + transitColumns

	var updated domain.Transit
	err := r.db.GetContext(ctx, &updated, query,
		id, userID, t.To,
		t.WheelchairID, t.StartAt, t.EndAt,
		t.Distance, t.Duration, t.AverageSpeed,
		pq.Array(from),
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to update transit",
			zap.String("id", id.String()), zap.String("to", string(t.To)), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &updated, nil
}

func (r *transitRepository) CancelStale(ctx context.Context, olderThan time.Time, now time.Time) ([]uuid.UUID, error) {
	query := `
		UPDATE navigation_transits SET status = $1, end_at = $2
		WHERE status = $3 AND created_at < $4 AND end_at IS NULL
		RETURNING id
	`

	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids, query,
		domain.TransitStatusCanceled, now, domain.TransitStatusSearch, olderThan)
	if err != nil {
		r.logger.Error("Failed to cancel stale transits", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return ids, nil
}
