package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/navigation-microservice/internal/domain"
)

// TransitResponse - состояние поездки после перехода
type TransitResponse struct {
	TransitID      uuid.UUID             `json:"transit_id"`
	Status         domain.TransitStatus  `json:"status"`
	OriginID       uuid.UUID             `json:"origin_id"`
	DestinationID  uuid.UUID             `json:"destination_id"`
	Wheelchair     *uuid.UUID            `json:"wheel_chair,omitempty"`
	Source         *domain.TransitSource `json:"source,omitempty"`
	StartAt        *time.Time            `json:"start_at,omitempty"`
	EndAt          *time.Time            `json:"end_at,omitempty"`
	Distance       *float64              `json:"distance,omitempty"`      // meters
	Duration       *float64              `json:"duration,omitempty"`      // seconds
	AverageSpeed   *float64              `json:"average_speed,omitempty"` // m/s
	BarrierReport  bool                  `json:"barrier_report"`
	FacilityReport bool                  `json:"facility_report"`
}

func NewTransitResponse(t *domain.Transit) *TransitResponse {
	return &TransitResponse{
		TransitID:      t.ID,
		Status:         t.Status,
		OriginID:       t.OriginID,
		DestinationID:  t.DestinationID,
		Wheelchair:     t.WheelchairID,
		Source:         t.Source,
		StartAt:        t.StartAt,
		EndAt:          t.EndAt,
		Distance:       t.Distance,
		Duration:       t.Duration,
		AverageSpeed:   t.AverageSpeed,
		BarrierReport:  t.BarrierReport,
		FacilityReport: t.FacilityReport,
	}
}

// MarkerResponse - маркер в ответе API
type MarkerResponse struct {
	ID             uuid.UUID             `json:"id"`
	TransitID      uuid.UUID             `json:"transit_id"`
	SegmentNumber  int                   `json:"segment_number"`
	MarkerCategory domain.MarkerCategory `json:"marker_category"`
	MarkerType     string                `json:"marker_type"`
	MarkerLat      float64               `json:"marker_lat"`
	MarkerLng      float64               `json:"marker_lng"`
	Status         domain.MarkerStatus   `json:"status"`
	Distance       *float64              `json:"distance,omitempty"` // meters
	CreatedAt      time.Time             `json:"created_at"`
}

func NewMarkerResponse(m *domain.TransitMarker) *MarkerResponse {
	return &MarkerResponse{
		ID:             m.ID,
		TransitID:      m.TransitID,
		SegmentNumber:  m.SegmentNumber,
		MarkerCategory: m.Category,
		MarkerType:     m.Type,
		MarkerLat:      m.Lat,
		MarkerLng:      m.Lng,
		Status:         m.Status,
		CreatedAt:      m.CreatedAt,
	}
}

// MarkerStatusResponse - результат смены статуса маркера
type MarkerStatusResponse struct {
	MarkerID  uuid.UUID             `json:"marker_id"`
	TransitID uuid.UUID             `json:"transit_id"`
	Status    domain.TrackingStatus `json:"status"`
	Message   string                `json:"message"`
}
