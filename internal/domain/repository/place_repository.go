package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/navigation-microservice/internal/domain"
)

// PlaceRepository - хранилище канонических мест
type PlaceRepository interface {
	// FindNearest возвращает ближайшее место в радиусе или nil
	FindNearest(ctx context.Context, point domain.Point, radiusMeters float64) (*domain.Place, error)

	// FindNearestMatching ищет ближайшее место в радиусе с совпадающими страной/штатом/городом/индексом
	FindNearestMatching(ctx context.Context, point domain.Point, radiusMeters float64, match domain.PlaceMatch) (*domain.Place, error)

	// Create сохраняет новое место и возвращает его с заполненным адресом
	Create(ctx context.Context, place *domain.Place) (*domain.Place, error)

	// GetByID возвращает место или nil
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error)
}

// GeoReferenceRepository - справочник стран, штатов и городов (регистронезависимый поиск)
type GeoReferenceRepository interface {
	// FindCountry ищет по name, iso2 или iso3
	FindCountry(ctx context.Context, value string) (*domain.Country, error)

	// FindState ищет по name или state_code в пределах страны (countryCode = iso2, может быть пустым)
	FindState(ctx context.Context, value, countryCode string) (*domain.State, error)

	// FindCity ищет по name в пределах штата и страны (пустые коды не фильтруют)
	FindCity(ctx context.Context, value, stateCode, countryCode string) (*domain.City, error)
}
