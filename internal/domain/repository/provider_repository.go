package repository

import (
	"context"

	"github.com/navigation-microservice/internal/domain"
)

// Geocoder - обратное геокодирование
type Geocoder interface {
	ReverseGeocode(ctx context.Context, point domain.Point) (*domain.GeocodedAddress, error)
}

// OSMRouter - self-hosted роутер на базе OSM
type OSMRouter interface {
	GetRoute(ctx context.Context, origin, destination domain.Point) (*domain.OSMRouteResponse, error)
}

// DirectionsProvider - коммерческий directions API
type DirectionsProvider interface {
	GetDirections(ctx context.Context, origin, destination domain.Point) (*domain.DirectionsRoute, error)
}
