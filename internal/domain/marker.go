package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MarkerSearchRadiusMeters - радиус поиска маркера
	MarkerSearchRadiusMeters = 100.0
	// MarkerUpdateRadiusMeters - радиус поиска маркера при смене статуса
	MarkerUpdateRadiusMeters = 50.0
)

type MarkerCategory string

const (
	MarkerCategoryBarrier  MarkerCategory = "Barrier"
	MarkerCategoryFacility MarkerCategory = "Facility"
)

// markerTypes - допустимые типы для каждой категории
var markerTypes = map[MarkerCategory][]string{
	MarkerCategoryBarrier: {
		"Stairs", "Steep Slope", "Snow Pile", "Construction", "Tree", "SideWalk", "No Curb Ramp",
	},
	MarkerCategoryFacility: {
		"Elevator", "Curb Ramp", "Crosswalk", "Sidewalk", "Others",
	},
}

// MarkerTypes возвращает словарь типов категории (nil для неизвестной категории)
func MarkerTypes(category MarkerCategory) []string {
	return markerTypes[category]
}

// IsValidMarkerType проверяет пару категория/тип
func IsValidMarkerType(category MarkerCategory, markerType string) bool {
	for _, t := range markerTypes[category] {
		if t == markerType {
			return true
		}
	}
	return false
}

type MarkerStatus string

const (
	MarkerStatusDetected MarkerStatus = "detected"
	MarkerStatusResolved MarkerStatus = "resolved"
)

type TrackingStatus string

const (
	TrackingStatusDetected   TrackingStatus = "detected"
	TrackingStatusPersistent TrackingStatus = "persistent"
	TrackingStatusResolved   TrackingStatus = "resolved"
)

// IsUpdateStatus - статусы, которые пользователь может выставить существующему маркеру
func (s TrackingStatus) IsUpdateStatus() bool {
	return s == TrackingStatusPersistent || s == TrackingStatusResolved
}

// TransitMarker - отметка о барьере или удобстве на маршруте
type TransitMarker struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	TransitID     uuid.UUID      `json:"transit_id" db:"transit_id"`
	SegmentNumber int            `json:"segment_number" db:"segment_number"`
	Category      MarkerCategory `json:"marker_category" db:"marker_category"`
	Type          string         `json:"marker_type" db:"marker_type"`
	Lat           float64        `json:"marker_lat" db:"lat"`
	Lng           float64        `json:"marker_lng" db:"lng"`
	Status        MarkerStatus   `json:"status" db:"status"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`

	// Distance - расстояние до точки запроса, заполняется при поиске
	Distance float64 `json:"distance,omitempty" db:"distance"`
}

// MarkerTracking - запись журнала наблюдений маркера, не изменяется
type MarkerTracking struct {
	ID        uuid.UUID      `json:"id" db:"id"`
	TransitID uuid.UUID      `json:"transit_id" db:"transit_id"`
	MarkerID  uuid.UUID      `json:"marker_id" db:"marker_id"`
	UserID    uuid.UUID      `json:"user_id" db:"user_id"`
	Status    TrackingStatus `json:"status" db:"status"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}
