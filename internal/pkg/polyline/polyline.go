// Package polyline - декодер encoded polyline из directions API
// (знаковые дельты, точность 1e5, 5-битные чанки со смещением 63).
package polyline

import (
	"github.com/navigation-microservice/internal/pkg/errors"
)

const (
	precision = 1e5

	chunkMask     = 0x1f
	continueFlag  = 0x20
	asciiOffset   = 63
	maxShiftWidth = 60
)

// Point - декодированная точка полилинии
type Point struct {
	Lat float64
	Lng float64
}

// Decode разбирает строку целиком в упорядоченный список точек.
// Обрезанный или некорректный ввод дает ErrMalformedPolyline.
func Decode(encoded string) ([]Point, error) {
	points := make([]Point, 0, len(encoded)/4)

	var lat, lng int64
	index := 0
	for index < len(encoded) {
		dLat, next, err := decodeValue(encoded, index)
		if err != nil {
			return nil, err
		}
		dLng, next, err := decodeValue(encoded, next)
		if err != nil {
			return nil, err
		}
		index = next

		lat += dLat
		lng += dLng
		points = append(points, Point{
			Lat: float64(lat) / precision,
			Lng: float64(lng) / precision,
		})
	}

	return points, nil
}

func decodeValue(encoded string, index int) (int64, int, error) {
	var result int64
	var shift uint

	for {
		if index >= len(encoded) {
			return 0, index, errors.ErrMalformedPolyline.WithDetails(map[string]interface{}{
				"reason":   "truncated value",
				"position": index,
			})
		}

		b := int64(encoded[index]) - asciiOffset
		if b < 0 || b > 63 {
			return 0, index, errors.ErrMalformedPolyline.WithDetails(map[string]interface{}{
				"reason":   "invalid character",
				"position": index,
			})
		}
		index++

		result |= (b & chunkMask) << shift
		shift += 5
		if b&continueFlag == 0 {
			break
		}
		if shift > maxShiftWidth {
			return 0, index, errors.ErrMalformedPolyline.WithDetails(map[string]interface{}{
				"reason":   "value overflow",
				"position": index,
			})
		}
	}

	if result&1 != 0 {
		return ^(result >> 1), index, nil
	}
	return result >> 1, index, nil
}
