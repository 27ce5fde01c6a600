package usecase

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/domain/repository"
	"github.com/navigation-microservice/internal/pkg/errors"
	"github.com/navigation-microservice/internal/pkg/utils"
)

// PlaceResolver сопоставляет координаты с каноническим местом, создавая его при необходимости
type PlaceResolver struct {
	places       repository.PlaceRepository
	geoReference repository.GeoReferenceRepository
	geocoder     repository.Geocoder
	radius       float64
	logger       *zap.Logger
}

func NewPlaceResolver(
	places repository.PlaceRepository,
	geoReference repository.GeoReferenceRepository,
	geocoder repository.Geocoder,
	radiusMeters float64,
	logger *zap.Logger,
) *PlaceResolver {
	if radiusMeters <= 0 {
		radiusMeters = domain.DefaultPlaceRadiusMeters
	}
	return &PlaceResolver{
		places:       places,
		geoReference: geoReference,
		geocoder:     geocoder,
		radius:       radiusMeters,
		logger:       logger,
	}
}

// Resolve возвращает существующее место в радиусе или создает новое по данным геокодера
func (r *PlaceResolver) Resolve(ctx context.Context, point domain.Point) (*domain.Place, error) {
	if !utils.ValidateCoordinates(point.Lat, point.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	place, err := r.places.FindNearest(ctx, point, r.radius)
	if err != nil {
		return nil, err
	}
	if place != nil {
		r.logger.Debug("Place resolved from store",
			zap.String("place_id", place.ID.String()),
			zap.Float64("lat", point.Lat),
			zap.Float64("lng", point.Lng),
		)
		return place, nil
	}

	address, err := r.geocoder.ReverseGeocode(ctx, point)
	if err != nil {
		r.logger.Warn("Reverse geocoding failed",
			zap.Float64("lat", point.Lat),
			zap.Float64("lng", point.Lng),
			zap.Error(err),
		)
		if stderrors.Is(err, errors.ErrGeocodeUnavailable) {
			return nil, err
		}
		return nil, errors.ErrGeocodeUnavailable
	}

	match, err := r.matchReferences(ctx, address)
	if err != nil {
		return nil, err
	}

	// новое место хранится в точке геокодера, если она есть
	location := point
	if address.Location != nil {
		location = *address.Location
	}

	place, err = r.places.FindNearestMatching(ctx, location, r.radius, match)
	if err != nil {
		return nil, err
	}
	if place != nil {
		return place, nil
	}

	place, err = r.places.Create(ctx, &domain.Place{
		ID:        uuid.New(),
		Name:      address.Name,
		Address:   address.Address,
		ZipCode:   address.ZipCode,
		CountryID: match.CountryID,
		StateID:   match.StateID,
		CityID:    match.CityID,
		Lat:       location.Lat,
		Lng:       location.Lng,
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("Place created",
		zap.String("place_id", place.ID.String()),
		zap.String("formatted_address", place.FormattedAddress()),
	)
	return place, nil
}

// matchReferences ищет страну, затем штат в ней, затем город в штате
func (r *PlaceResolver) matchReferences(ctx context.Context, address *domain.GeocodedAddress) (domain.PlaceMatch, error) {
	match := domain.PlaceMatch{ZipCode: address.ZipCode}

	var countryCode, stateCode string

	if address.Country != "" {
		country, err := r.geoReference.FindCountry(ctx, address.Country)
		if err != nil {
			return match, err
		}
		if country != nil {
			match.CountryID = &country.ID
			if country.ISO2 != nil {
				countryCode = *country.ISO2
			}
		}
	}

	if address.State != "" {
		state, err := r.geoReference.FindState(ctx, address.State, countryCode)
		if err != nil {
			return match, err
		}
		if state != nil {
			match.StateID = &state.ID
			if state.StateCode != nil {
				stateCode = *state.StateCode
			}
		}
	}

	if address.City != "" {
		city, err := r.geoReference.FindCity(ctx, address.City, stateCode, countryCode)
		if err != nil {
			return match, err
		}
		if city != nil {
			match.CityID = &city.ID
		}
	}

	return match, nil
}
