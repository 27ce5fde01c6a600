package domain

import (
	"time"

	"github.com/google/uuid"
)

type RouteStatus string

const (
	RouteStatusActive   RouteStatus = "active"
	RouteStatusInactive RouteStatus = "inactive"
)

// Route - заранее построенный маршрут из внутреннего хранилища
type Route struct {
	ID            uuid.UUID   `json:"id" db:"id"`
	OriginID      uuid.UUID   `json:"origin_id" db:"origin_id"`
	DestinationID uuid.UUID   `json:"destination_id" db:"destination_id"`
	Status        RouteStatus `json:"status" db:"status"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	Segments      []Segment   `json:"segments" db:"-"`
}

// Segment - участок маршрута; SegmentNumber начинается с 1 и идёт подряд
type Segment struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	RouteID       uuid.UUID      `json:"route_id" db:"route_id"`
	SegmentNumber int            `json:"segment_number" db:"segment_number"`
	Surface       string         `json:"surface" db:"surface"`
	TravelMode    string         `json:"travel_mode" db:"travel_mode"`
	Maneuver      string         `json:"maneuver" db:"maneuver"`
	Instructions  string         `json:"instructions" db:"instructions"`
	Distance      float64        `json:"distance" db:"distance"`
	Duration      float64        `json:"duration" db:"duration"`
	Points        []SegmentPoint `json:"points" db:"-"`
}

type SegmentPoint struct {
	ID          uuid.UUID `json:"id" db:"id"`
	SegmentID   uuid.UUID `json:"segment_id" db:"segment_id"`
	PointNumber int       `json:"point_number" db:"point_number"`
	Lat         float64   `json:"lat" db:"lat"`
	Lng         float64   `json:"lng" db:"lng"`
}

const (
	// WheelchairSpeedMPS - средняя скорость, по которой считается длительность сегментов провайдеров
	WheelchairSpeedMPS = 1.2
	// MetersPerFoot - OSM роутер отдаёт расстояния в футах
	MetersPerFoot = 0.3048

	TravelModeWheelchair   = "Wheelchair"
	SurfaceUnknown         = "unknown"
	SurfaceDirectionsRoute = "Concrete"
)
