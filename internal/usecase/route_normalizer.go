package usecase

import (
	"fmt"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/pkg/polyline"
	"github.com/navigation-microservice/internal/pkg/units"
	"github.com/navigation-microservice/internal/pkg/utils"
)

// RouteNormalizer приводит ответы всех источников маршрутов к CanonicalRouteResponse
type RouteNormalizer struct{}

func NewRouteNormalizer() *RouteNormalizer {
	return &RouteNormalizer{}
}

// normalizedRoute - сегменты и сырые суммы до округления итогов
type normalizedRoute struct {
	segments []domain.SegmentResponse
	start    *domain.Location
	end      *domain.Location
	distance float64
	duration float64
}

// Normalize строит канонический ответ. transit_id заполняет вызывающий код.
func (n *RouteNormalizer) Normalize(result *domain.RouteResult, origin, destination *domain.Place) (*domain.CanonicalRouteResponse, error) {
	if result == nil {
		return nil, fmt.Errorf("empty route result")
	}

	var (
		route *normalizedRoute
		err   error
	)
	switch result.Source {
	case domain.TransitSourceApp:
		route, err = n.fromInternal(result.Internal)
	case domain.TransitSourceOSM:
		route, err = n.fromOSM(result.OSM)
	case domain.TransitSourceGoogle:
		route, err = n.fromDirections(result.Directions)
	default:
		err = fmt.Errorf("unknown route source %q", result.Source)
	}
	if err != nil {
		return nil, err
	}
	if len(route.segments) == 0 {
		return nil, fmt.Errorf("route from %s has no segments", result.Source)
	}

	return &domain.CanonicalRouteResponse{
		Success:          true,
		Source:           result.Source,
		OriginPlace:      domain.NewRoutePlace(origin),
		DestinationPlace: domain.NewRoutePlace(destination),
		StartLocation:    route.start,
		EndLocation:      route.end,
		Distance:         distanceMeasure(route.distance),
		Duration:         durationMeasure(route.duration),
		Segments:         route.segments,
	}, nil
}

// fromInternal - значения сегментов берутся как есть, начало и конец из точек первого и последнего сегмента
func (n *RouteNormalizer) fromInternal(route *domain.Route) (*normalizedRoute, error) {
	if route == nil {
		return nil, fmt.Errorf("internal route is nil")
	}

	out := &normalizedRoute{segments: make([]domain.SegmentResponse, 0, len(route.Segments))}
	for _, s := range route.Segments {
		points := make([]domain.PathPoint, 0, len(s.Points))
		for _, p := range s.Points {
			points = append(points, domain.PathPoint{Latitude: p.Lat, Longitude: p.Lng})
		}

		segment := domain.SegmentResponse{
			SegmentNumber: s.SegmentNumber,
			Surface:       s.Surface,
			Distance:      distanceMeasure(s.Distance),
			Duration:      durationMeasure(s.Duration),
			Maneuver:      s.Maneuver,
			Instructions:  utils.StripMarkup(s.Instructions),
			TravelMode:    s.TravelMode,
			Points:        points,
		}
		if len(points) > 0 {
			segment.StartLocation = points[0].Location()
			segment.EndLocation = points[len(points)-1].Location()
		}

		out.segments = append(out.segments, segment)
		out.distance += s.Distance
		out.duration += s.Duration
	}

	if len(out.segments) > 0 {
		out.start = out.segments[0].StartLocation
		out.end = out.segments[len(out.segments)-1].EndLocation
	}
	return out, nil
}

// fromOSM - расстояние в футах переводится в метры, длительность по скорости коляски
func (n *RouteNormalizer) fromOSM(route *domain.OSMRoute) (*normalizedRoute, error) {
	if route == nil {
		return nil, fmt.Errorf("osm route is nil")
	}

	out := &normalizedRoute{segments: make([]domain.SegmentResponse, 0, len(route.Points))}
	for i, leg := range route.Points {
		distance := utils.RoundWhole(leg.Distance.Value * domain.MetersPerFoot)
		duration := utils.RoundWhole(distance / domain.WheelchairSpeedMPS)

		surface := leg.Surface
		if surface == "" {
			surface = domain.SurfaceUnknown
		}
		maneuver := utils.StripMarkup(leg.Maneuver)

		points := leg.Points
		if points == nil {
			points = []domain.PathPoint{}
		}

		start, end := leg.StartLocation, leg.EndLocation
		out.segments = append(out.segments, domain.SegmentResponse{
			SegmentNumber: i + 1,
			Surface:       surface,
			Distance:      distanceMeasure(distance),
			Duration:      durationMeasure(duration),
			Maneuver:      maneuver,
			Instructions:  maneuver,
			TravelMode:    domain.TravelModeWheelchair,
			StartLocation: &start,
			EndLocation:   &end,
			Points:        points,
			Incline:       leg.Incline,
		})
		out.distance += distance
		out.duration += duration
	}

	if len(route.Points) > 0 {
		out.start = out.segments[0].StartLocation
		out.end = out.segments[len(out.segments)-1].EndLocation
	}
	return out, nil
}

// fromDirections - шаги всех этапов нумеруются подряд, полилиния каждого шага декодируется
func (n *RouteNormalizer) fromDirections(route *domain.DirectionsRoute) (*normalizedRoute, error) {
	if route == nil || len(route.Legs) == 0 {
		return nil, fmt.Errorf("directions route has no legs")
	}

	out := &normalizedRoute{}
	number := 0
	for _, leg := range route.Legs {
		for _, step := range leg.Steps {
			decoded, err := polyline.Decode(step.Polyline.Points)
			if err != nil {
				return nil, err
			}
			points := make([]domain.PathPoint, 0, len(decoded))
			for _, p := range decoded {
				points = append(points, domain.PathPoint{Latitude: p.Lat, Longitude: p.Lng})
			}

			distance := utils.RoundWhole(step.Distance.Value)
			duration := utils.RoundWhole(distance / domain.WheelchairSpeedMPS)
			incline := 0.0

			number++
			out.segments = append(out.segments, domain.SegmentResponse{
				SegmentNumber: number,
				Surface:       domain.SurfaceDirectionsRoute,
				Distance:      distanceMeasure(distance),
				Duration:      durationMeasure(duration),
				Maneuver:      step.Maneuver,
				Instructions:  utils.StripMarkup(step.HTMLInstructions),
				TravelMode:    domain.TravelModeWheelchair,
				StartLocation: pointLocation(step.StartLocation),
				EndLocation:   pointLocation(step.EndLocation),
				Points:        points,
				Incline:       &incline,
			})
			out.distance += distance
			out.duration += duration
		}
	}

	out.start = pointLocation(route.Legs[0].StartLocation)
	out.end = pointLocation(route.Legs[len(route.Legs)-1].EndLocation)
	return out, nil
}

func distanceMeasure(meters float64) domain.Measure {
	return domain.Measure{
		Text:  units.FormatDistance(meters),
		Type:  domain.MeasureTypeMeter,
		Value: utils.Round2(meters),
	}
}

func durationMeasure(seconds float64) domain.Measure {
	return domain.Measure{
		Text:  units.FormatDuration(seconds),
		Type:  domain.MeasureTypeSecond,
		Value: utils.Round2(seconds),
	}
}

func pointLocation(p domain.Point) *domain.Location {
	return &domain.Location{Latitude: p.Lat, Longitude: p.Lng}
}
