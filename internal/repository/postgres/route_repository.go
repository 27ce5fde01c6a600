package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/domain/repository"
	"github.com/navigation-microservice/internal/pkg/errors"
)

type routeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRouteRepository(db *DB) repository.RouteRepository {
	return &routeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *routeRepository) FindActiveRoute(ctx context.Context, originID, destinationID uuid.UUID) (*domain.Route, error) {
	query := `
		SELECT id, origin_id, destination_id, status, created_at
		FROM navigation_routes
		WHERE origin_id = $1 AND destination_id = $2 AND status = $3
		ORDER BY created_at DESC
		LIMIT 1
	`

	var route domain.Route
	err := r.db.GetContext(ctx, &route, query, originID, destinationID, domain.RouteStatusActive)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to find active route",
			zap.String("origin_id", originID.String()),
			zap.String("destination_id", destinationID.String()),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	segments, err := r.getSegments(ctx, route.ID)
	if err != nil {
		return nil, err
	}
	route.Segments = segments

	return &route, nil
}

func (r *routeRepository) getSegments(ctx context.Context, routeID uuid.UUID) ([]domain.Segment, error) {
	var segments []domain.Segment
	err := r.db.SelectContext(ctx, &segments, `
		SELECT id, route_id, segment_number, surface, travel_mode, maneuver, instructions, distance, duration
		FROM navigation_segments
		WHERE route_id = $1
		ORDER BY segment_number
	`, routeID)
	if err != nil {
		r.logger.Error("Failed to get route segments", zap.String("route_id", routeID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	var points []domain.SegmentPoint
	err = r.db.SelectContext(ctx, &points, `
		SELECT id, segment_id, point_number, lat, lng
		FROM navigation_segment_points
		WHERE route_id = $1
		ORDER BY point_number
	`, routeID)
	if err != nil {
		r.logger.Error("Failed to get segment points", zap.String("route_id", routeID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	bySegment := make(map[uuid.UUID][]domain.SegmentPoint, len(segments))
	for _, p := range points {
		bySegment[p.SegmentID] = append(bySegment[p.SegmentID], p)
	}
	for i := range segments {
		segments[i].Points = bySegment[segments[i].ID]
	}

	return segments, nil
}
