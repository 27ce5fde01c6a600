package usecase_test

import (
	"context"
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

func coord(v float64) *dto.Coordinate {
	c := dto.Coordinate(v)
	return &c
}

func TestMarkerUseCase_Create(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	userID := uuid.New()
	transitID := uuid.New()

	t.Run("barrier marker", func(t *testing.T) {
		markers := &MockMarkerRepository{}
		transits := &MockTransitRepository{}
		events := &recordingPublisher{}
		uc := usecase.NewMarkerUseCase(markers, transits, events, logger)

		transits.On("GetByID", ctx, transitID).Return(openTransit(transitID, userID, domain.TransitStatusInProgress), nil)
		markers.On("CreateWithTracking", ctx, mock.MatchedBy(func(m *domain.TransitMarker) bool {
			return m.TransitID == transitID &&
				m.Category == domain.MarkerCategoryBarrier &&
				m.Type == "Stairs" &&
				m.Status == domain.MarkerStatusDetected &&
				m.SegmentNumber == 2 &&
				m.Lat == 25.7765 && m.Lng == -80.1861
		}), userID).Return(nil)

		resp, err := uc.Create(ctx, userID, &dto.CreateMarkerRequest{
			TransitID:      transitID.String(),
			SegmentNumber:  2,
			MarkerCategory: "Barrier",
			MarkerType:     "Stairs",
			MarkerLat:      coord(25.7765),
			MarkerLng:      coord(-80.1861),
		})

		require.NoError(t, err)
		assert.Equal(t, domain.MarkerCategoryBarrier, resp.MarkerCategory)
		assert.Equal(t, domain.MarkerStatusDetected, resp.Status)
		markers.AssertExpectations(t)

		published := events.Events()
		require.Len(t, published, 1)
		assert.Equal(t, domain.EventMarkerCreated, published[0].Type)
		assert.Equal(t, resp.ID, *published[0].MarkerID)
	})

	t.Run("segment number defaults to first segment", func(t *testing.T) {
		markers := &MockMarkerRepository{}
		transits := &MockTransitRepository{}
		uc := usecase.NewMarkerUseCase(markers, transits, nil, logger)

		transits.On("GetByID", ctx, transitID).Return(openTransit(transitID, userID, domain.TransitStatusInProgress), nil)
		markers.On("CreateWithTracking", ctx, mock.MatchedBy(func(m *domain.TransitMarker) bool {
			return m.SegmentNumber == 1 && m.Category == domain.MarkerCategoryFacility
		}), userID).Return(nil)

		_, err := uc.Create(ctx, userID, &dto.CreateMarkerRequest{
			TransitID:      transitID.String(),
			MarkerCategory: "Facility",
			MarkerType:     "Curb Ramp",
			MarkerLat:      coord(25.7765),
			MarkerLng:      coord(-80.1861),
		})

		require.NoError(t, err)
		markers.AssertExpectations(t)
	})

	t.Run("type outside category vocabulary", func(t *testing.T) {
		markers := &MockMarkerRepository{}
		transits := &MockTransitRepository{}
		uc := usecase.NewMarkerUseCase(markers, transits, nil, logger)

		_, err := uc.Create(ctx, userID, &dto.CreateMarkerRequest{
			TransitID:      transitID.String(),
			MarkerCategory: "Barrier",
			MarkerType:     "Elevator",
			MarkerLat:      coord(25.7765),
			MarkerLng:      coord(-80.1861),
		})

		assert.ErrorIs(t, err, errors.ErrValidation)
		transits.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		markers.AssertNotCalled(t, "CreateWithTracking", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown transit", func(t *testing.T) {
		markers := &MockMarkerRepository{}
		transits := &MockTransitRepository{}
		uc := usecase.NewMarkerUseCase(markers, transits, nil, logger)

		transits.On("GetByID", ctx, transitID).Return(nil, nil)

		_, err := uc.Create(ctx, userID, &dto.CreateMarkerRequest{
			TransitID:      transitID.String(),
			MarkerCategory: "Facility",
			MarkerType:     "Elevator",
			MarkerLat:      coord(25.7765),
			MarkerLng:      coord(-80.1861),
		})

		assert.ErrorIs(t, err, errors.ErrTransitNotFound)
		markers.AssertNotCalled(t, "CreateWithTracking", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("out of range coordinates", func(t *testing.T) {
		uc := usecase.NewMarkerUseCase(&MockMarkerRepository{}, &MockTransitRepository{}, nil, logger)

		_, err := uc.Create(ctx, userID, &dto.CreateMarkerRequest{
			TransitID:      transitID.String(),
			MarkerCategory: "Facility",
			MarkerType:     "Elevator",
			MarkerLat:      coord(95),
			MarkerLng:      coord(-80.1861),
		})

		assert.ErrorIs(t, err, errors.ErrInvalidCoordinates)
	})
}

func TestMarkerUseCase_FindNearby(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	point := domain.Point{Lat: 25.7765, Lng: -80.1861}

	t.Run("uses search radius", func(t *testing.T) {
		markers := &MockMarkerRepository{}
		uc := usecase.NewMarkerUseCase(markers, &MockTransitRepository{}, nil, logger)

		// 0.0003° по меридиану ~ 33.36 м
		marker := &domain.TransitMarker{
			ID:       uuid.New(),
			Category: domain.MarkerCategoryBarrier,
			Type:     "Tree",
			Lat:      25.7768,
			Lng:      -80.1861,
			Status:   domain.MarkerStatusDetected,
			Distance: 42.1234,
		}
		markers.On("FindNearestDetected", ctx, point, domain.MarkerSearchRadiusMeters).Return(marker, nil)

		resp, err := uc.FindNearby(ctx, &dto.MarkerSearchRequest{MarkerLat: coord(point.Lat), MarkerLng: coord(point.Lng)})

		require.NoError(t, err)
		assert.Equal(t, marker.ID, resp.ID)
		require.NotNil(t, resp.Distance)
		assert.Equal(t, 33.36, *resp.Distance)
		markers.AssertExpectations(t)
	})

	t.Run("nothing nearby", func(t *testing.T) {
		markers := &MockMarkerRepository{}
		uc := usecase.NewMarkerUseCase(markers, &MockTransitRepository{}, nil, logger)

		markers.On("FindNearestDetected", ctx, point, 100.0).Return(nil, nil)

		_, err := uc.FindNearby(ctx, &dto.MarkerSearchRequest{MarkerLat: coord(point.Lat), MarkerLng: coord(point.Lng)})

		assert.ErrorIs(t, err, errors.ErrNoNearbyMarker)
	})
}

func TestMarkerUseCase_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	userID := uuid.New()
	point := domain.Point{Lat: 25.7765, Lng: -80.1861}

	newMarker := func() *domain.TransitMarker {
		return &domain.TransitMarker{
			ID:        uuid.New(),
			TransitID: uuid.New(),
			Category:  domain.MarkerCategoryBarrier,
			Type:      "Construction",
			Status:    domain.MarkerStatusDetected,
		}
	}

	t.Run("resolved", func(t *testing.T) {
		markers := &MockMarkerRepository{}
		events := &recordingPublisher{}
		uc := usecase.NewMarkerUseCase(markers, &MockTransitRepository{}, events, logger)

		marker := newMarker()
		markers.On("FindNearestDetected", ctx, point, domain.MarkerUpdateRadiusMeters).Return(marker, nil)
		markers.On("UpdateStatus", ctx, marker, userID, domain.TrackingStatusResolved).Return(true, nil)

		resp, err := uc.UpdateStatus(ctx, userID, &dto.MarkerStatusRequest{
			MarkerLat: coord(point.Lat),
			MarkerLng: coord(point.Lng),
			Status:    "resolved",
		})

		require.NoError(t, err)
		assert.Equal(t, marker.ID, resp.MarkerID)
		assert.Equal(t, domain.TrackingStatusResolved, resp.Status)
		markers.AssertExpectations(t)
		assert.Equal(t, domain.EventMarkerStatusUpdated, events.Events()[0].Type)
	})

	t.Run("persistent keeps marker detected", func(t *testing.T) {
		markers := &MockMarkerRepository{}
		uc := usecase.NewMarkerUseCase(markers, &MockTransitRepository{}, nil, logger)

		marker := newMarker()
		markers.On("FindNearestDetected", ctx, point, 50.0).Return(marker, nil)
		markers.On("UpdateStatus", ctx, marker, userID, domain.TrackingStatusPersistent).Return(true, nil)

		resp, err := uc.UpdateStatus(ctx, userID, &dto.MarkerStatusRequest{
			MarkerLat: coord(point.Lat),
			MarkerLng: coord(point.Lng),
			Status:    "persistent",
		})

		require.NoError(t, err)
		assert.Equal(t, domain.TrackingStatusPersistent, resp.Status)
		assert.Equal(t, domain.MarkerStatusDetected, marker.Status)
	})

	t.Run("no marker within update radius", func(t *testing.T) {
		markers := &MockMarkerRepository{}
		uc := usecase.NewMarkerUseCase(markers, &MockTransitRepository{}, nil, logger)

		markers.On("FindNearestDetected", ctx, point, 50.0).Return(nil, nil)

		_, err := uc.UpdateStatus(ctx, userID, &dto.MarkerStatusRequest{
			MarkerLat: coord(point.Lat),
			MarkerLng: coord(point.Lng),
			Status:    "resolved",
		})

		assert.ErrorIs(t, err, errors.ErrNoNearbyMarker)
		markers.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("marker resolved concurrently", func(t *testing.T) {
		markers := &MockMarkerRepository{}
		events := &recordingPublisher{}
		uc := usecase.NewMarkerUseCase(markers, &MockTransitRepository{}, events, logger)

		marker := newMarker()
		markers.On("FindNearestDetected", ctx, point, 50.0).Return(marker, nil)
		markers.On("UpdateStatus", ctx, marker, userID, domain.TrackingStatusResolved).Return(false, nil)

		_, err := uc.UpdateStatus(ctx, userID, &dto.MarkerStatusRequest{
			MarkerLat: coord(point.Lat),
			MarkerLng: coord(point.Lng),
			Status:    "resolved",
		})

		assert.ErrorIs(t, err, errors.ErrNoNearbyMarker)
		assert.Empty(t, events.Events())
	})

	t.Run("detected is not an update status", func(t *testing.T) {
		markers := &MockMarkerRepository{}
		uc := usecase.NewMarkerUseCase(markers, &MockTransitRepository{}, nil, logger)

		_, err := uc.UpdateStatus(ctx, userID, &dto.MarkerStatusRequest{
			MarkerLat: coord(point.Lat),
			MarkerLng: coord(point.Lng),
			Status:    "detected",
		})

		assert.ErrorIs(t, err, errors.ErrValidation)
		markers.AssertNotCalled(t, "FindNearestDetected", mock.Anything, mock.Anything, mock.Anything)
	})
}
