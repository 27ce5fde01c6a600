package dto

// RouteRequest - запрос маршрута, координаты в формате "lat,lng"
type RouteRequest struct {
	OriginLocation      string `json:"originLocation" validate:"required"`
	DestinationLocation string `json:"destinationLocation" validate:"required"`
}

// BeginTransitRequest - начало поездки с привязкой коляски
type BeginTransitRequest struct {
	TransitID  string `json:"transit_id" validate:"required,uuid"`
	Wheelchair string `json:"wheel_chair" validate:"required,uuid"`
}

// CompleteTransitRequest - завершение поездки; distance в метрах, duration в секундах
type CompleteTransitRequest struct {
	TransitID string   `json:"transit_id" validate:"required,uuid"`
	Distance  *float64 `json:"distance" validate:"required,min=0"`
	Duration  *float64 `json:"duration" validate:"required,gt=0"`
}

// CancelTransitRequest - отмена поездки; если переданы обе метрики, поездка завершается
type CancelTransitRequest struct {
	TransitID string   `json:"transit_id" validate:"required,uuid"`
	Distance  *float64 `json:"distance,omitempty" validate:"omitempty,min=0"`
	Duration  *float64 `json:"duration,omitempty" validate:"omitempty,gt=0"`
}

// CreateMarkerRequest - отметка барьера или удобства
type CreateMarkerRequest struct {
	TransitID      string      `json:"transit_id" validate:"required,uuid"`
	SegmentNumber  int         `json:"segment_number" validate:"omitempty,min=1"`
	MarkerCategory string      `json:"marker_category" validate:"required,oneof=Barrier Facility"`
	MarkerType     string      `json:"marker_type" validate:"required"`
	MarkerLat      *Coordinate `json:"marker_lat" validate:"required"`
	MarkerLng      *Coordinate `json:"marker_lng" validate:"required"`
}

// MarkerSearchRequest - поиск ближайшего маркера
type MarkerSearchRequest struct {
	MarkerLat *Coordinate `json:"marker_lat" validate:"required"`
	MarkerLng *Coordinate `json:"marker_lng" validate:"required"`
}

// MarkerStatusRequest - подтверждение или снятие ближайшего маркера
type MarkerStatusRequest struct {
	MarkerLat *Coordinate `json:"marker_lat" validate:"required"`
	MarkerLng *Coordinate `json:"marker_lng" validate:"required"`
	Status    string      `json:"status" validate:"required,oneof=persistent resolved"`
}
