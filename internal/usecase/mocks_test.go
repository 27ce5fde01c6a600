package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/navigation-microservice/internal/domain"
)

// MockPlaceRepository is a mock of PlaceRepository
type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) FindNearest(ctx context.Context, point domain.Point, radiusMeters float64) (*domain.Place, error) {
	args := m.Called(ctx, point, radiusMeters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) FindNearestMatching(ctx context.Context, point domain.Point, radiusMeters float64, match domain.PlaceMatch) (*domain.Place, error) {
	args := m.Called(ctx, point, radiusMeters, match)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) Create(ctx context.Context, place *domain.Place) (*domain.Place, error) {
	args := m.Called(ctx, place)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

// MockGeoReferenceRepository is a mock of GeoReferenceRepository
type MockGeoReferenceRepository struct {
	mock.Mock
}

func (m *MockGeoReferenceRepository) FindCountry(ctx context.Context, value string) (*domain.Country, error) {
	args := m.Called(ctx, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}

func (m *MockGeoReferenceRepository) FindState(ctx context.Context, value, countryCode string) (*domain.State, error) {
	args := m.Called(ctx, value, countryCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.State), args.Error(1)
}

func (m *MockGeoReferenceRepository) FindCity(ctx context.Context, value, stateCode, countryCode string) (*domain.City, error) {
	args := m.Called(ctx, value, stateCode, countryCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

// MockGeocoder is a mock of Geocoder
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) ReverseGeocode(ctx context.Context, point domain.Point) (*domain.GeocodedAddress, error) {
	args := m.Called(ctx, point)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeocodedAddress), args.Error(1)
}

// MockRouteRepository is a mock of RouteRepository
type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) FindActiveRoute(ctx context.Context, originID, destinationID uuid.UUID) (*domain.Route, error) {
	args := m.Called(ctx, originID, destinationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

// MockOSMRouter is a mock of OSMRouter
type MockOSMRouter struct {
	mock.Mock
}

func (m *MockOSMRouter) GetRoute(ctx context.Context, origin, destination domain.Point) (*domain.OSMRouteResponse, error) {
	args := m.Called(ctx, origin, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OSMRouteResponse), args.Error(1)
}

// MockDirectionsProvider is a mock of DirectionsProvider
type MockDirectionsProvider struct {
	mock.Mock
}

func (m *MockDirectionsProvider) GetDirections(ctx context.Context, origin, destination domain.Point) (*domain.DirectionsRoute, error) {
	args := m.Called(ctx, origin, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DirectionsRoute), args.Error(1)
}

// MockTransitRepository is a mock of TransitRepository
type MockTransitRepository struct {
	mock.Mock
}

func (m *MockTransitRepository) Create(ctx context.Context, transit *domain.Transit) error {
	args := m.Called(ctx, transit)
	return args.Error(0)
}

func (m *MockTransitRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transit), args.Error(1)
}

func (m *MockTransitRepository) GetForUser(ctx context.Context, id, userID uuid.UUID) (*domain.Transit, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transit), args.Error(1)
}

func (m *MockTransitRepository) SetSource(ctx context.Context, id uuid.UUID, source domain.TransitSource) error {
	args := m.Called(ctx, id, source)
	return args.Error(0)
}

func (m *MockTransitRepository) UpdateTransition(ctx context.Context, id, userID uuid.UUID, t domain.TransitTransition) (*domain.Transit, error) {
	args := m.Called(ctx, id, userID, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transit), args.Error(1)
}

func (m *MockTransitRepository) CancelStale(ctx context.Context, olderThan time.Time, now time.Time) ([]uuid.UUID, error) {
	args := m.Called(ctx, olderThan, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

// MockWheelchairRepository is a mock of WheelchairRepository
type MockWheelchairRepository struct {
	mock.Mock
}

func (m *MockWheelchairRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockMarkerRepository is a mock of MarkerRepository
type MockMarkerRepository struct {
	mock.Mock
}

func (m *MockMarkerRepository) CreateWithTracking(ctx context.Context, marker *domain.TransitMarker, userID uuid.UUID) error {
	args := m.Called(ctx, marker, userID)
	return args.Error(0)
}

func (m *MockMarkerRepository) FindNearestDetected(ctx context.Context, point domain.Point, radiusMeters float64) (*domain.TransitMarker, error) {
	args := m.Called(ctx, point, radiusMeters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransitMarker), args.Error(1)
}

func (m *MockMarkerRepository) UpdateStatus(ctx context.Context, marker *domain.TransitMarker, userID uuid.UUID, status domain.TrackingStatus) (bool, error) {
	args := m.Called(ctx, marker, userID, status)
	return args.Bool(0), args.Error(1)
}

// MockEventStreamRepository is a mock of EventStreamRepository
type MockEventStreamRepository struct {
	mock.Mock
}

func (m *MockEventStreamRepository) AppendEvent(ctx context.Context, stream string, event domain.NavigationEvent) (string, error) {
	args := m.Called(ctx, stream, event)
	return args.String(0), args.Error(1)
}

// recordingPublisher запоминает опубликованные события
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.NavigationEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event domain.NavigationEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) Events() []domain.NavigationEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.NavigationEvent(nil), p.events...)
}
