package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/domain/repository"
	"github.com/navigation-microservice/internal/pkg/errors"
)

type markerRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewMarkerRepository(db *DB) repository.MarkerRepository {
	return &markerRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *markerRepository) CreateWithTracking(ctx context.Context, marker *domain.TransitMarker, userID uuid.UUID) error {
	if marker.ID == uuid.Nil {
		marker.ID = uuid.New()
	}
	marker.Status = domain.MarkerStatusDetected

	err := r.db.InTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO navigation_transit_markers
				(id, transit_id, segment_number, marker_category, marker_type, location, status)
			VALUES ($1, $2, $3, $4, $5, ST_SetSRID(ST_MakePoint($6, $7), 4326)::geography, $8)
			RETURNING created_at
		`,
			marker.ID, marker.TransitID, marker.SegmentNumber, marker.Category, marker.Type,
			marker.Lng, marker.Lat, marker.Status,
		).Scan(&marker.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert marker: %w", err)
		}

		if err := insertTracking(ctx, tx, marker, userID, domain.TrackingStatusDetected); err != nil {
			return fmt.Errorf("insert marker tracking: %w", err)
		}

		// флаг выставляется только для категории маркера, второй не трогаем
		res, err := tx.ExecContext(ctx, `
			UPDATE navigation_transits SET
				barrier_report = barrier_report OR $2,
				facility_report = facility_report OR $3
			WHERE id = $1
		`,
			marker.TransitID,
			marker.Category == domain.MarkerCategoryBarrier,
			marker.Category == domain.MarkerCategoryFacility,
		)
		if err != nil {
			return fmt.Errorf("flag transit report: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return errors.ErrTransitNotFound
		}
		return nil
	})
	if stderrors.Is(err, errors.ErrTransitNotFound) {
		return err
	}
	if err != nil {
		r.logger.Error("Failed to create marker",
			zap.String("transit_id", marker.TransitID.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *markerRepository) FindNearestDetected(
	ctx context.Context,
	point domain.Point,
	radiusMeters float64,
) (*domain.TransitMarker, error) {
	query := `
		WITH point AS (
			SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS geom
		)
		SELECT
			m.id, m.transit_id, m.segment_number, m.marker_category, m.marker_type,
			ST_Y(m.location::geometry) AS lat,
			ST_X(m.location::geometry) AS lng,
			m.status, m.created_at,
			ST_Distance(m.location, point.geom) AS distance
		FROM navigation_transit_markers m, point
		WHERE m.status = $4
		  AND ST_DWithin(m.location, point.geom, $3)
		ORDER BY distance
		LIMIT 1
	`

	var marker domain.TransitMarker
	err := r.db.GetContext(ctx, &marker, query, point.Lng, point.Lat, radiusMeters, domain.MarkerStatusDetected)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to find nearest marker",
			zap.Float64("lat", point.Lat), zap.Float64("lng", point.Lng), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &marker, nil
}

func (r *markerRepository) UpdateStatus(
	ctx context.Context,
	marker *domain.TransitMarker,
	userID uuid.UUID,
	status domain.TrackingStatus,
) (bool, error) {
	updated := true
	err := r.db.InTx(ctx, func(tx *sqlx.Tx) error {
		if status == domain.TrackingStatusResolved {
			res, err := tx.ExecContext(ctx,
				`UPDATE navigation_transit_markers SET status = $2 WHERE id = $1 AND status = $3`,
				marker.ID, domain.MarkerStatusResolved, domain.MarkerStatusDetected,
			)
			if err != nil {
				return fmt.Errorf("resolve marker: %w", err)
			}
			if n, _ := res.RowsAffected(); n == 0 {
				updated = false
				return nil
			}
		}

		if err := insertTracking(ctx, tx, marker, userID, status); err != nil {
			return fmt.Errorf("insert marker tracking: %w", err)
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to update marker status",
			zap.String("marker_id", marker.ID.String()),
			zap.String("status", string(status)),
			zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	if !updated {
		return false, nil
	}

	if status == domain.TrackingStatusResolved {
		marker.Status = domain.MarkerStatusResolved
	}
	return true, nil
}

func insertTracking(
	ctx context.Context,
	tx *sqlx.Tx,
	marker *domain.TransitMarker,
	userID uuid.UUID,
	status domain.TrackingStatus,
) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO navigation_transit_marker_tracking (id, transit_id, marker_id, user_id, status)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.New(), marker.TransitID, marker.ID, userID, status)
	return err
}
