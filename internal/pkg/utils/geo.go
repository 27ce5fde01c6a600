package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/s2"

	"github.com/navigation-microservice/internal/pkg/errors"
)

const EarthRadiusMeters = 6371000.0

// DistanceMeters вычисляет расстояние по большому кругу между двумя точками в метрах
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ParseLatLng разбирает строку вида "lat,lng"
func ParseLatLng(value string) (float64, float64, error) {
	parts := strings.Split(strings.TrimSpace(value), ",")
	if len(parts) != 2 {
		return 0, 0, errors.ErrInvalidCoordinates.WithMessage("Invalid location format. Use 'lat,lng'.")
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, errors.ErrInvalidCoordinates.WithMessage("Invalid location format. Use 'lat,lng'.")
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, errors.ErrInvalidCoordinates.WithMessage("Invalid location format. Use 'lat,lng'.")
	}

	if !ValidateCoordinates(lat, lng) {
		return 0, 0, errors.ErrInvalidCoordinates
	}

	return lat, lng, nil
}
