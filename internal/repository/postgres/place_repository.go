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

const placeSelect = `
	SELECT
		p.id, p.name, p.address, p.zip_code,
		p.country_id, p.state_id, p.city_id,
		ST_Y(p.location::geometry) AS lat,
		ST_X(p.location::geometry) AS lng,
		p.created_at,
		COALESCE(ci.name, '') AS city_name,
		COALESCE(st.state_code, '') AS state_code,
		COALESCE(co.iso3, '') AS country_iso3
	FROM geo_places p
	LEFT JOIN geo_cities ci ON ci.id = p.city_id
	LEFT JOIN geo_states st ON st.id = p.state_id
	LEFT JOIN geo_countries co ON co.id = p.country_id
`

type placeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPlaceRepository(db *DB) repository.PlaceRepository {
	return &placeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *placeRepository) FindNearest(ctx context.Context, point domain.Point, radiusMeters float64) (*domain.Place, error) {
	query := placeSelect + `
		WHERE ST_DWithin(p.location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)
		ORDER BY ST_Distance(p.location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography)
		LIMIT 1
	`

	var place domain.Place
	err := r.db.GetContext(ctx, &place, query, point.Lng, point.Lat, radiusMeters)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to find nearest place",
			zap.Float64("lat", point.Lat), zap.Float64("lng", point.Lng), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &place, nil
}

func (r *placeRepository) FindNearestMatching(
	ctx context.Context,
	point domain.Point,
	radiusMeters float64,
	match domain.PlaceMatch,
) (*domain.Place, error) {
	query := placeSelect + `
		WHERE ST_DWithin(p.location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)
		  AND p.country_id IS NOT DISTINCT FROM $4
		  AND p.state_id IS NOT DISTINCT FROM $5
		  AND p.city_id IS NOT DISTINCT FROM $6
		  AND p.zip_code = $7
		ORDER BY ST_Distance(p.location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography)
		LIMIT 1
	`

	var place domain.Place
	err := r.db.GetContext(ctx, &place, query,
		point.Lng, point.Lat, radiusMeters,
		match.CountryID, match.StateID, match.CityID, match.ZipCode,
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to find matching place", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &place, nil
}

func (r *placeRepository) Create(ctx context.Context, place *domain.Place) (*domain.Place, error) {
	if place.ID == uuid.Nil {
		place.ID = uuid.New()
	}

	query := `
		INSERT INTO geo_places (id, name, address, zip_code, country_id, state_id, city_id, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, ST_SetSRID(ST_MakePoint($8, $9), 4326)::geography)
	`

	_, err := r.db.ExecContext(ctx, query,
		place.ID, place.Name, place.Address, place.ZipCode,
		place.CountryID, place.StateID, place.CityID,
		place.Lng, place.Lat,
	)
	if err != nil {
		r.logger.Error("Failed to create place", zap.String("name", place.Name), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	r.logger.Info("Place created", zap.String("id", place.ID.String()), zap.String("name", place.Name))

	return r.GetByID(ctx, place.ID)
}

func (r *placeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	var place domain.Place
	err := r.db.GetContext(ctx, &place, placeSelect+` WHERE p.id = $1`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get place by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &place, nil
}
