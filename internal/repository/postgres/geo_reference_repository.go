package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/domain/repository"
	"github.com/navigation-microservice/internal/pkg/errors"
)

type geoReferenceRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewGeoReferenceRepository(db *DB) repository.GeoReferenceRepository {
	return &geoReferenceRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *geoReferenceRepository) FindCountry(ctx context.Context, value string) (*domain.Country, error) {
	if value == "" {
		return nil, nil
	}

	query := `
		SELECT id, name, iso2, iso3
		FROM geo_countries
		WHERE lower(name) = lower($1) OR lower(iso2) = lower($1) OR lower(iso3) = lower($1)
		ORDER BY name
		LIMIT 1
	`

	var country domain.Country
	if err := r.db.GetContext(ctx, &country, query, value); err != nil {
		return nil, r.lookupError("country", value, err)
	}
	return &country, nil
}

func (r *geoReferenceRepository) FindState(ctx context.Context, value, countryCode string) (*domain.State, error) {
	if value == "" {
		return nil, nil
	}

	query := `
		SELECT id, name, country_code, state_code
		FROM geo_states
		WHERE (lower(name) = lower($1) OR lower(state_code) = lower($1))
		  AND ($2::text = '' OR lower(country_code) = lower($2))
		ORDER BY name
		LIMIT 1
	`

	var state domain.State
	if err := r.db.GetContext(ctx, &state, query, value, countryCode); err != nil {
		return nil, r.lookupError("state", value, err)
	}
	return &state, nil
}

func (r *geoReferenceRepository) FindCity(ctx context.Context, value, stateCode, countryCode string) (*domain.City, error) {
	if value == "" {
		return nil, nil
	}

	query := `
		SELECT id, name, country_code, state_code
		FROM geo_cities
		WHERE lower(name) = lower($1)
		  AND ($2::text = '' OR lower(state_code) = lower($2))
		  AND ($3::text = '' OR lower(country_code) = lower($3))
		ORDER BY name
		LIMIT 1
	`

	var city domain.City
	if err := r.db.GetContext(ctx, &city, query, value, stateCode, countryCode); err != nil {
		return nil, r.lookupError("city", value, err)
	}
	return &city, nil
}

// lookupError - отсутствие записи не ошибка, справочник может быть неполным
func (r *geoReferenceRepository) lookupError(kind, value string, err error) error {
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil
	}
	r.logger.Error("Failed to find "+kind, zap.String("value", value), zap.Error(err))
	return errors.ErrDatabaseError
}
