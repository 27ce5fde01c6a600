package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/pkg/errors"
	"github.com/navigation-microservice/internal/usecase"
	"github.com/navigation-microservice/internal/usecase/dto"
)

type navigationFixture struct {
	places     *MockPlaceRepository
	routes     *MockRouteRepository
	osm        *MockOSMRouter
	directions *MockDirectionsProvider
	transits   *MockTransitRepository
	uc         *usecase.NavigationUseCase
}

func newNavigationFixture() *navigationFixture {
	logger := zap.NewNop()
	f := &navigationFixture{
		places:     &MockPlaceRepository{},
		routes:     &MockRouteRepository{},
		osm:        &MockOSMRouter{},
		directions: &MockDirectionsProvider{},
		transits:   &MockTransitRepository{},
	}
	resolver := usecase.NewPlaceResolver(f.places, &MockGeoReferenceRepository{}, &MockGeocoder{}, 5, logger)
	chain := usecase.NewRouteProviderChain(f.routes, f.osm, f.directions, usecase.NewRouteNormalizer(), usecase.RouteChainTimeouts{}, logger)
	f.uc = usecase.NewNavigationUseCase(resolver, chain, f.transits, logger)
	return f
}

func TestNavigationUseCase_GetRoute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	req := &dto.RouteRequest{
		OriginLocation:      "25.7753,-80.1859",
		DestinationLocation: "25.7814, -80.1870",
	}
	originPoint := domain.Point{Lat: 25.7753, Lng: -80.1859}
	destPoint := domain.Point{Lat: 25.7814, Lng: -80.1870}

	t.Run("internal route opens transit", func(t *testing.T) {
		f := newNavigationFixture()
		origin, destination := testPlaces()

		f.places.On("FindNearest", ctx, originPoint, 5.0).Return(origin, nil)
		f.places.On("FindNearest", ctx, destPoint, 5.0).Return(destination, nil)

		var created *domain.Transit
		f.transits.On("Create", ctx, mock.MatchedBy(func(tr *domain.Transit) bool {
			return tr.UserID == userID &&
				tr.OriginID == origin.ID &&
				tr.DestinationID == destination.ID &&
				tr.Status == domain.TransitStatusSearch
		})).Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.Transit)
		}).Return(nil)

		q := usecase.RouteQuery{Origin: origin, Destination: destination}
		f.routes.On("FindActiveRoute", mock.Anything, origin.ID, destination.ID).Return(testInternalRoute(q), nil)
		f.transits.On("SetSource", ctx, mock.AnythingOfType("uuid.UUID"), domain.TransitSourceApp).Return(nil)

		resp, err := f.uc.GetRoute(ctx, userID, req)

		require.NoError(t, err)
		require.NotNil(t, created)
		require.NotNil(t, resp.TransitID)
		assert.Equal(t, created.ID, *resp.TransitID)
		assert.Equal(t, domain.TransitSourceApp, resp.Source)
		assert.Equal(t, origin.ID, resp.OriginPlace.ID)
		f.transits.AssertExpectations(t)
		f.osm.AssertNotCalled(t, "GetRoute", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("external providers receive raw coordinates", func(t *testing.T) {
		f := newNavigationFixture()
		origin, destination := testPlaces()
		// место сохранено в точке геокодера, а не в точке запроса
		origin.Lat, origin.Lng = 25.77531, -80.18592

		f.places.On("FindNearest", ctx, originPoint, 5.0).Return(origin, nil)
		f.places.On("FindNearest", ctx, destPoint, 5.0).Return(destination, nil)
		f.transits.On("Create", ctx, mock.Anything).Return(nil)
		f.routes.On("FindActiveRoute", mock.Anything, origin.ID, destination.ID).Return(nil, nil)
		f.osm.On("GetRoute", mock.Anything, originPoint, destPoint).Return(testOSMResponse(), nil)
		f.transits.On("SetSource", ctx, mock.Anything, domain.TransitSourceOSM).Return(nil)

		resp, err := f.uc.GetRoute(ctx, userID, req)

		require.NoError(t, err)
		assert.Equal(t, domain.TransitSourceOSM, resp.Source)
		f.osm.AssertExpectations(t)
	})

	t.Run("no route leaves transit in search", func(t *testing.T) {
		f := newNavigationFixture()
		origin, destination := testPlaces()

		f.places.On("FindNearest", ctx, originPoint, 5.0).Return(origin, nil)
		f.places.On("FindNearest", ctx, destPoint, 5.0).Return(destination, nil)
		f.transits.On("Create", ctx, mock.Anything).Return(nil)
		f.routes.On("FindActiveRoute", mock.Anything, origin.ID, destination.ID).Return(nil, nil)
		f.osm.On("GetRoute", mock.Anything, originPoint, destPoint).Return(nil, fmt.Errorf("status 503"))
		f.directions.On("GetDirections", mock.Anything, originPoint, destPoint).Return(nil, fmt.Errorf("ZERO_RESULTS"))

		resp, err := f.uc.GetRoute(ctx, userID, req)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errors.ErrNoRouteFound)
		f.transits.AssertNotCalled(t, "SetSource", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed location", func(t *testing.T) {
		f := newNavigationFixture()

		_, err := f.uc.GetRoute(ctx, userID, &dto.RouteRequest{
			OriginLocation:      "25.7753",
			DestinationLocation: "25.7814,-80.1870",
		})

		assert.ErrorIs(t, err, errors.ErrInvalidCoordinates)
		f.places.AssertNotCalled(t, "FindNearest", mock.Anything, mock.Anything, mock.Anything)
		f.transits.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("out of range location", func(t *testing.T) {
		f := newNavigationFixture()

		_, err := f.uc.GetRoute(ctx, userID, &dto.RouteRequest{
			OriginLocation:      "125.7753,-80.1859",
			DestinationLocation: "25.7814,-80.1870",
		})

		assert.ErrorIs(t, err, errors.ErrInvalidCoordinates)
	})
}
