package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/pkg/errors"
	"github.com/navigation-microservice/internal/usecase"
)

// blockingOSMRouter висит до отмены контекста
type blockingOSMRouter struct{}

func (blockingOSMRouter) GetRoute(ctx context.Context, _, _ domain.Point) (*domain.OSMRouteResponse, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func testRouteQuery() usecase.RouteQuery {
	origin, destination := testPlaces()
	return usecase.RouteQuery{
		Origin:           origin,
		Destination:      destination,
		OriginPoint:      domain.Point{Lat: origin.Lat, Lng: origin.Lng},
		DestinationPoint: domain.Point{Lat: destination.Lat, Lng: destination.Lng},
	}
}

func testInternalRoute(q usecase.RouteQuery) *domain.Route {
	return &domain.Route{
		OriginID:      q.Origin.ID,
		DestinationID: q.Destination.ID,
		Status:        domain.RouteStatusActive,
		Segments: []domain.Segment{
			{
				SegmentNumber: 1,
				Distance:      150,
				Duration:      125,
				Points: []domain.SegmentPoint{
					{PointNumber: 1, Lat: q.Origin.Lat, Lng: q.Origin.Lng},
					{PointNumber: 2, Lat: q.Destination.Lat, Lng: q.Destination.Lng},
				},
			},
		},
	}
}

func testOSMResponse() *domain.OSMRouteResponse {
	return &domain.OSMRouteResponse{
		Routes: []domain.OSMRoute{
			{
				Points: []domain.OSMLeg{
					{
						Distance:      domain.ProviderValue{Value: 500},
						StartLocation: domain.Location{Latitude: 25.7753, Longitude: -80.1859},
						EndLocation:   domain.Location{Latitude: 25.7814, Longitude: -80.1870},
						Surface:       "asphalt",
					},
				},
			},
		},
	}
}

func testDirectionsRoute() *domain.DirectionsRoute {
	return &domain.DirectionsRoute{
		Legs: []domain.DirectionsLeg{
			{
				StartLocation: domain.Point{Lat: 25.7753, Lng: -80.1859},
				EndLocation:   domain.Point{Lat: 25.7814, Lng: -80.1870},
				Steps: []domain.DirectionsStep{
					{
						Distance: domain.ProviderValue{Value: 700},
						Polyline: domain.DirectionsPolyline{Points: testPolyline},
					},
				},
			},
		},
	}
}

func TestRouteProviderChain_FindRoute(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("internal route wins without external calls", func(t *testing.T) {
		q := testRouteQuery()
		routes := &MockRouteRepository{}
		osm := &MockOSMRouter{}
		directions := &MockDirectionsProvider{}
		chain := usecase.NewRouteProviderChain(routes, osm, directions, nil, usecase.RouteChainTimeouts{}, logger)

		routes.On("FindActiveRoute", mock.Anything, q.Origin.ID, q.Destination.ID).Return(testInternalRoute(q), nil)

		resp, err := chain.FindRoute(ctx, q)

		require.NoError(t, err)
		assert.Equal(t, domain.TransitSourceApp, resp.Source)
		assert.Equal(t, 150.0, resp.Distance.Value)
		routes.AssertExpectations(t)
		osm.AssertNotCalled(t, "GetRoute", mock.Anything, mock.Anything, mock.Anything)
		directions.AssertNotCalled(t, "GetDirections", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("osm used when no internal route", func(t *testing.T) {
		q := testRouteQuery()
		routes := &MockRouteRepository{}
		osm := &MockOSMRouter{}
		directions := &MockDirectionsProvider{}
		chain := usecase.NewRouteProviderChain(routes, osm, directions, nil, usecase.RouteChainTimeouts{}, logger)

		routes.On("FindActiveRoute", mock.Anything, q.Origin.ID, q.Destination.ID).Return(nil, nil)
		osm.On("GetRoute", mock.Anything, q.OriginPoint, q.DestinationPoint).Return(testOSMResponse(), nil)

		resp, err := chain.FindRoute(ctx, q)

		require.NoError(t, err)
		assert.Equal(t, domain.TransitSourceOSM, resp.Source)
		assert.Equal(t, 152.0, resp.Distance.Value)
		osm.AssertExpectations(t)
		directions.AssertNotCalled(t, "GetDirections", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("directions called once after osm failure", func(t *testing.T) {
		q := testRouteQuery()
		routes := &MockRouteRepository{}
		osm := &MockOSMRouter{}
		directions := &MockDirectionsProvider{}
		chain := usecase.NewRouteProviderChain(routes, osm, directions, nil, usecase.RouteChainTimeouts{}, logger)

		routes.On("FindActiveRoute", mock.Anything, q.Origin.ID, q.Destination.ID).Return(nil, nil)
		osm.On("GetRoute", mock.Anything, q.OriginPoint, q.DestinationPoint).Return(nil, fmt.Errorf("status 500"))
		directions.On("GetDirections", mock.Anything, q.OriginPoint, q.DestinationPoint).Return(testDirectionsRoute(), nil).Once()

		resp, err := chain.FindRoute(ctx, q)

		require.NoError(t, err)
		assert.Equal(t, domain.TransitSourceGoogle, resp.Source)
		directions.AssertNumberOfCalls(t, "GetDirections", 1)
	})

	t.Run("internal store error advances to next provider", func(t *testing.T) {
		q := testRouteQuery()
		routes := &MockRouteRepository{}
		osm := &MockOSMRouter{}
		chain := usecase.NewRouteProviderChain(routes, osm, nil, nil, usecase.RouteChainTimeouts{}, logger)

		routes.On("FindActiveRoute", mock.Anything, q.Origin.ID, q.Destination.ID).Return(nil, errors.ErrDatabaseError)
		osm.On("GetRoute", mock.Anything, q.OriginPoint, q.DestinationPoint).Return(testOSMResponse(), nil)

		resp, err := chain.FindRoute(ctx, q)

		require.NoError(t, err)
		assert.Equal(t, domain.TransitSourceOSM, resp.Source)
	})

	t.Run("malformed directions polyline exhausts chain", func(t *testing.T) {
		q := testRouteQuery()
		routes := &MockRouteRepository{}
		osm := &MockOSMRouter{}
		directions := &MockDirectionsProvider{}
		chain := usecase.NewRouteProviderChain(routes, osm, directions, nil, usecase.RouteChainTimeouts{}, logger)

		broken := testDirectionsRoute()
		broken.Legs[0].Steps[0].Polyline.Points = "_p~iF"

		routes.On("FindActiveRoute", mock.Anything, q.Origin.ID, q.Destination.ID).Return(nil, nil)
		osm.On("GetRoute", mock.Anything, q.OriginPoint, q.DestinationPoint).Return(&domain.OSMRouteResponse{}, nil)
		directions.On("GetDirections", mock.Anything, q.OriginPoint, q.DestinationPoint).Return(broken, nil)

		resp, err := chain.FindRoute(ctx, q)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errors.ErrNoRouteFound)
	})

	t.Run("all providers fail", func(t *testing.T) {
		q := testRouteQuery()
		routes := &MockRouteRepository{}
		osm := &MockOSMRouter{}
		directions := &MockDirectionsProvider{}
		chain := usecase.NewRouteProviderChain(routes, osm, directions, nil, usecase.RouteChainTimeouts{}, logger)

		routes.On("FindActiveRoute", mock.Anything, q.Origin.ID, q.Destination.ID).Return(nil, nil)
		osm.On("GetRoute", mock.Anything, q.OriginPoint, q.DestinationPoint).Return(nil, fmt.Errorf("timeout"))
		directions.On("GetDirections", mock.Anything, q.OriginPoint, q.DestinationPoint).Return(nil, fmt.Errorf("ZERO_RESULTS"))

		resp, err := chain.FindRoute(ctx, q)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errors.ErrNoRouteFound)
		routes.AssertExpectations(t)
		osm.AssertExpectations(t)
		directions.AssertExpectations(t)
	})

	t.Run("hung provider times out and chain advances", func(t *testing.T) {
		q := testRouteQuery()
		routes := &MockRouteRepository{}
		directions := &MockDirectionsProvider{}
		chain := usecase.NewRouteProviderChain(routes, blockingOSMRouter{}, directions, nil, usecase.RouteChainTimeouts{
			OSM: 20 * time.Millisecond,
		}, logger)

		routes.On("FindActiveRoute", mock.Anything, q.Origin.ID, q.Destination.ID).Return(nil, nil)
		directions.On("GetDirections", mock.Anything, q.OriginPoint, q.DestinationPoint).Return(testDirectionsRoute(), nil)

		start := time.Now()
		resp, err := chain.FindRoute(ctx, q)

		require.NoError(t, err)
		assert.Equal(t, domain.TransitSourceGoogle, resp.Source)
		assert.Less(t, time.Since(start), 2*time.Second)
	})
}
