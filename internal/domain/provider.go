package domain

// ProviderValue - значение с текстом из ответа внешнего провайдера
type ProviderValue struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
}

// OSM router

type OSMRouteResponse struct {
	Routes []OSMRoute `json:"routes"`
}

type OSMRoute struct {
	Points []OSMLeg `json:"points"`
}

// OSMLeg - участок маршрута OSM роутера, distance.value в футах
type OSMLeg struct {
	Distance      ProviderValue `json:"distance"`
	StartLocation Location      `json:"start_location"`
	EndLocation   Location      `json:"end_location"`
	Points        []PathPoint   `json:"points"`
	Incline       *float64      `json:"incline"`
	Surface       string        `json:"surface"`
	Maneuver      string        `json:"maneuver"`
}

// Directions API

type DirectionsResponse struct {
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message,omitempty"`
	Routes       []DirectionsRoute `json:"routes"`
}

type DirectionsRoute struct {
	Summary string          `json:"summary"`
	Legs    []DirectionsLeg `json:"legs"`
}

type DirectionsLeg struct {
	Distance      ProviderValue    `json:"distance"`
	Duration      ProviderValue    `json:"duration"`
	StartLocation Point            `json:"start_location"`
	EndLocation   Point            `json:"end_location"`
	Steps         []DirectionsStep `json:"steps"`
}

// DirectionsStep - шаг маршрута, distance.value в метрах
type DirectionsStep struct {
	Distance         ProviderValue      `json:"distance"`
	Duration         ProviderValue      `json:"duration"`
	StartLocation    Point              `json:"start_location"`
	EndLocation      Point              `json:"end_location"`
	Polyline         DirectionsPolyline `json:"polyline"`
	HTMLInstructions string             `json:"html_instructions"`
	Maneuver         string             `json:"maneuver,omitempty"`
	TravelMode       string             `json:"travel_mode"`
}

type DirectionsPolyline struct {
	Points string `json:"points"`
}

// RouteResult - результат цепочки провайдеров.
// Заполнено ровно одно из полей Internal, OSM, Directions в соответствии с Source.
type RouteResult struct {
	Source     TransitSource
	Internal   *Route
	OSM        *OSMRoute
	Directions *DirectionsRoute
}
