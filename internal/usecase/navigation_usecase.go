package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/domain/repository"
	"github.com/navigation-microservice/internal/pkg/utils"
	"github.com/navigation-microservice/internal/usecase/dto"
)

// NavigationUseCase - запрос маршрута: места, поездка в статусе search, цепочка провайдеров
type NavigationUseCase struct {
	resolver *PlaceResolver
	chain    *RouteProviderChain
	transits repository.TransitRepository
	logger   *zap.Logger
}

func NewNavigationUseCase(
	resolver *PlaceResolver,
	chain *RouteProviderChain,
	transits repository.TransitRepository,
	logger *zap.Logger,
) *NavigationUseCase {
	return &NavigationUseCase{
		resolver: resolver,
		chain:    chain,
		transits: transits,
		logger:   logger,
	}
}

// GetRoute строит маршрут и открывает поездку пользователя.
// При ErrNoRouteFound поездка остается в статусе search.
func (uc *NavigationUseCase) GetRoute(ctx context.Context, userID uuid.UUID, req *dto.RouteRequest) (*domain.CanonicalRouteResponse, error) {
	originLat, originLng, err := utils.ParseLatLng(req.OriginLocation)
	if err != nil {
		return nil, err
	}
	destLat, destLng, err := utils.ParseLatLng(req.DestinationLocation)
	if err != nil {
		return nil, err
	}
	originPoint := domain.Point{Lat: originLat, Lng: originLng}
	destPoint := domain.Point{Lat: destLat, Lng: destLng}

	origin, err := uc.resolver.Resolve(ctx, originPoint)
	if err != nil {
		return nil, err
	}
	destination, err := uc.resolver.Resolve(ctx, destPoint)
	if err != nil {
		return nil, err
	}

	transit := &domain.Transit{
		ID:            uuid.New(),
		UserID:        userID,
		OriginID:      origin.ID,
		DestinationID: destination.ID,
		Status:        domain.TransitStatusSearch,
	}
	if err := uc.transits.Create(ctx, transit); err != nil {
		return nil, err
	}

	response, err := uc.chain.FindRoute(ctx, RouteQuery{
		Origin:           origin,
		Destination:      destination,
		OriginPoint:      originPoint,
		DestinationPoint: destPoint,
	})
	if err != nil {
		uc.logger.Warn("No route for transit",
			zap.String("transit_id", transit.ID.String()),
			zap.String("origin_id", origin.ID.String()),
			zap.String("destination_id", destination.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	if err := uc.transits.SetSource(ctx, transit.ID, response.Source); err != nil {
		return nil, err
	}

	response.TransitID = &transit.ID
	return response, nil
}
