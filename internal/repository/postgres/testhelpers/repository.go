package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/domain/repository"
	"github.com/navigation-microservice/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

func NewPlaceRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.PlaceRepository {
	return postgres.NewPlaceRepository(NewDBForTest(db, logger))
}

func NewGeoReferenceRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.GeoReferenceRepository {
	return postgres.NewGeoReferenceRepository(NewDBForTest(db, logger))
}

func NewRouteRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.RouteRepository {
	return postgres.NewRouteRepository(NewDBForTest(db, logger))
}

func NewWheelchairRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.WheelchairRepository {
	return postgres.NewWheelchairRepository(NewDBForTest(db, logger))
}

func NewTransitRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.TransitRepository {
	return postgres.NewTransitRepository(NewDBForTest(db, logger))
}

func NewMarkerRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.MarkerRepository {
	return postgres.NewMarkerRepository(NewDBForTest(db, logger))
}
