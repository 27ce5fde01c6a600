package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/domain/repository"
	"github.com/navigation-microservice/internal/pkg/errors"
	"github.com/navigation-microservice/internal/pkg/utils"
	"github.com/navigation-microservice/internal/usecase/dto"
)

// MarkerUseCase - отметки барьеров и удобств на маршруте и их подтверждение
type MarkerUseCase struct {
	markers  repository.MarkerRepository
	transits repository.TransitRepository
	events   EventPublisher
	logger   *zap.Logger
}

func NewMarkerUseCase(
	markers repository.MarkerRepository,
	transits repository.TransitRepository,
	events EventPublisher,
	logger *zap.Logger,
) *MarkerUseCase {
	if events == nil {
		events = NewNoopEventPublisher()
	}
	return &MarkerUseCase{
		markers:  markers,
		transits: transits,
		events:   events,
		logger:   logger,
	}
}

// Create создает маркер со статусом detected и выставляет флаг отчета у поездки
func (uc *MarkerUseCase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateMarkerRequest) (*dto.MarkerResponse, error) {
	transitID, err := parseID("transit_id", req.TransitID)
	if err != nil {
		return nil, err
	}
	point, err := markerPoint(req.MarkerLat.Float64(), req.MarkerLng.Float64())
	if err != nil {
		return nil, err
	}

	category := domain.MarkerCategory(req.MarkerCategory)
	if !domain.IsValidMarkerType(category, req.MarkerType) {
		return nil, errors.ErrValidation.WithMessage("Invalid marker type for category").WithDetails(map[string]interface{}{
			"marker_category": req.MarkerCategory,
			"marker_type":     req.MarkerType,
			"allowed":         domain.MarkerTypes(category),
		})
	}

	transit, err := uc.transits.GetByID(ctx, transitID)
	if err != nil {
		return nil, err
	}
	if transit == nil {
		return nil, errors.ErrTransitNotFound
	}

	segmentNumber := req.SegmentNumber
	if segmentNumber < 1 {
		segmentNumber = 1
	}

	marker := &domain.TransitMarker{
		ID:            uuid.New(),
		TransitID:     transit.ID,
		SegmentNumber: segmentNumber,
		Category:      category,
		Type:          req.MarkerType,
		Lat:           point.Lat,
		Lng:           point.Lng,
		Status:        domain.MarkerStatusDetected,
	}
	if err := uc.markers.CreateWithTracking(ctx, marker, userID); err != nil {
		return nil, err
	}

	uc.logger.Info("Marker created",
		zap.String("marker_id", marker.ID.String()),
		zap.String("transit_id", transit.ID.String()),
		zap.String("category", string(category)),
		zap.String("type", marker.Type),
	)

	uc.events.Publish(ctx, domain.NavigationEvent{
		Type:       domain.EventMarkerCreated,
		TransitID:  transit.ID,
		MarkerID:   &marker.ID,
		UserID:     userID,
		Status:     string(domain.TrackingStatusDetected),
		OccurredAt: time.Now().UTC(),
	})

	return dto.NewMarkerResponse(marker), nil
}

// FindNearby возвращает ближайший активный маркер в радиусе поиска
func (uc *MarkerUseCase) FindNearby(ctx context.Context, req *dto.MarkerSearchRequest) (*dto.MarkerResponse, error) {
	point, err := markerPoint(req.MarkerLat.Float64(), req.MarkerLng.Float64())
	if err != nil {
		return nil, err
	}

	marker, err := uc.markers.FindNearestDetected(ctx, point, domain.MarkerSearchRadiusMeters)
	if err != nil {
		return nil, err
	}
	if marker == nil {
		return nil, errors.ErrNoNearbyMarker
	}

	// расстояние от точки запроса до сохраненной позиции маркера
	response := dto.NewMarkerResponse(marker)
	distance := utils.Round2(utils.DistanceMeters(point.Lat, point.Lng, marker.Lat, marker.Lng))
	response.Distance = &distance
	return response, nil
}

// UpdateStatus подтверждает (persistent) или снимает (resolved) ближайший активный маркер
func (uc *MarkerUseCase) UpdateStatus(ctx context.Context, userID uuid.UUID, req *dto.MarkerStatusRequest) (*dto.MarkerStatusResponse, error) {
	status := domain.TrackingStatus(req.Status)
	if !status.IsUpdateStatus() {
		return nil, errors.ErrValidation.WithMessage("Invalid status. Must be 'persistent' or 'resolved'.")
	}
	point, err := markerPoint(req.MarkerLat.Float64(), req.MarkerLng.Float64())
	if err != nil {
		return nil, err
	}

	marker, err := uc.markers.FindNearestDetected(ctx, point, domain.MarkerUpdateRadiusMeters)
	if err != nil {
		return nil, err
	}
	if marker == nil {
		return nil, errors.ErrNoNearbyMarker
	}

	updated, err := uc.markers.UpdateStatus(ctx, marker, userID, status)
	if err != nil {
		return nil, err
	}
	if !updated {
		// маркер сняли параллельным запросом
		return nil, errors.ErrNoNearbyMarker
	}

	uc.logger.Info("Marker status updated",
		zap.String("marker_id", marker.ID.String()),
		zap.String("status", string(status)),
	)

	uc.events.Publish(ctx, domain.NavigationEvent{
		Type:       domain.EventMarkerStatusUpdated,
		TransitID:  marker.TransitID,
		MarkerID:   &marker.ID,
		UserID:     userID,
		Status:     string(status),
		OccurredAt: time.Now().UTC(),
	})

	return &dto.MarkerStatusResponse{
		MarkerID:  marker.ID,
		TransitID: marker.TransitID,
		Status:    status,
		Message:   "Marker status updated to " + string(status),
	}, nil
}

func markerPoint(lat, lng *float64) (domain.Point, error) {
	if lat == nil || lng == nil {
		return domain.Point{}, errors.ErrValidation.WithMessage("marker_lat and marker_lng are required")
	}
	if !utils.ValidateCoordinates(*lat, *lng) {
		return domain.Point{}, errors.ErrInvalidCoordinates
	}
	return domain.Point{Lat: *lat, Lng: *lng}, nil
}
