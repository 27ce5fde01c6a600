package domain

// Point - точка WGS84
type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lng float64 `json:"lng" db:"lng"`
}

// Location - координаты в формате ответа маршрута
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PathPoint - точка полилинии сегмента
type PathPoint struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Elevation *float64 `json:"elevation"`
}

func (p PathPoint) Location() *Location {
	return &Location{Latitude: p.Latitude, Longitude: p.Longitude}
}
