package domain

import "github.com/google/uuid"

const (
	MeasureTypeMeter  = "meter"
	MeasureTypeSecond = "second"
)

// Measure - значение с человекочитаемым текстом
type Measure struct {
	Text  string  `json:"text"`
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// RoutePlace - место в ответе маршрута
type RoutePlace struct {
	ID               uuid.UUID `json:"id"`
	FormattedAddress string    `json:"formatted_address"`
}

func NewRoutePlace(p *Place) RoutePlace {
	return RoutePlace{ID: p.ID, FormattedAddress: p.FormattedAddress()}
}

// SegmentResponse - участок маршрута в каноническом виде
type SegmentResponse struct {
	SegmentNumber int         `json:"segment_number"`
	Surface       string      `json:"surface"`
	Distance      Measure     `json:"distance"`
	Duration      Measure     `json:"duration"`
	Maneuver      string      `json:"maneuver"`
	Instructions  string      `json:"instructions"`
	TravelMode    string      `json:"travel_mode"`
	StartLocation *Location   `json:"start_location"`
	EndLocation   *Location   `json:"end_location"`
	Points        []PathPoint `json:"points"`
	Incline       *float64    `json:"incline,omitempty"`
}

// CanonicalRouteResponse - единая схема маршрута для всех источников
type CanonicalRouteResponse struct {
	Success          bool              `json:"success"`
	Source           TransitSource     `json:"source"`
	TransitID        *uuid.UUID        `json:"transit_id"`
	OriginPlace      RoutePlace        `json:"origin_place"`
	DestinationPlace RoutePlace        `json:"destination_place"`
	StartLocation    *Location         `json:"start_location"`
	EndLocation      *Location         `json:"end_location"`
	Distance         Measure           `json:"distance"`
	Duration         Measure           `json:"duration"`
	Segments         []SegmentResponse `json:"segments"`
}
