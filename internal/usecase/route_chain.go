package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/domain/repository"
	"github.com/navigation-microservice/internal/pkg/errors"
)

// RouteChainTimeouts - таймаут каждой попытки цепочки, ноль отключает таймаут
type RouteChainTimeouts struct {
	Internal   time.Duration
	OSM        time.Duration
	Directions time.Duration
}

// RouteQuery - места маршрута и исходные координаты запроса.
// Внутреннее хранилище ищется по местам, внешние провайдеры получают сырые координаты.
type RouteQuery struct {
	Origin           *domain.Place
	Destination      *domain.Place
	OriginPoint      domain.Point
	DestinationPoint domain.Point
}

type routeProvider struct {
	source  domain.TransitSource
	timeout time.Duration
	fetch   func(ctx context.Context, q RouteQuery) (*domain.RouteResult, error)
}

// RouteProviderChain опрашивает источники по порядку: внутреннее хранилище, OSM роутер, directions API.
// Побеждает первый успешный ответ, результаты не смешиваются.
type RouteProviderChain struct {
	routes     repository.RouteRepository
	osm        repository.OSMRouter
	directions repository.DirectionsProvider
	normalizer *RouteNormalizer
	timeouts   RouteChainTimeouts
	logger     *zap.Logger
}

// NewRouteProviderChain создает цепочку. nil провайдер пропускается.
func NewRouteProviderChain(
	routes repository.RouteRepository,
	osm repository.OSMRouter,
	directions repository.DirectionsProvider,
	normalizer *RouteNormalizer,
	timeouts RouteChainTimeouts,
	logger *zap.Logger,
) *RouteProviderChain {
	if normalizer == nil {
		normalizer = NewRouteNormalizer()
	}
	return &RouteProviderChain{
		routes:     routes,
		osm:        osm,
		directions: directions,
		normalizer: normalizer,
		timeouts:   timeouts,
		logger:     logger,
	}
}

// FindRoute возвращает нормализованный маршрут первого успешного источника или ErrNoRouteFound
func (c *RouteProviderChain) FindRoute(ctx context.Context, q RouteQuery) (*domain.CanonicalRouteResponse, error) {
	for _, provider := range c.providers() {
		response, err := c.attempt(ctx, provider, q)
		if err != nil {
			c.logger.Warn("Route provider failed",
				zap.String("source", string(provider.source)),
				zap.Error(err),
			)
			continue
		}
		if response == nil {
			c.logger.Debug("Route provider returned no route", zap.String("source", string(provider.source)))
			continue
		}

		c.logger.Info("Route found",
			zap.String("source", string(provider.source)),
			zap.String("origin_id", q.Origin.ID.String()),
			zap.String("destination_id", q.Destination.ID.String()),
			zap.Int("segments", len(response.Segments)),
		)
		return response, nil
	}

	return nil, errors.ErrNoRouteFound
}

func (c *RouteProviderChain) providers() []routeProvider {
	providers := make([]routeProvider, 0, 3)
	if c.routes != nil {
		providers = append(providers, routeProvider{
			source:  domain.TransitSourceApp,
			timeout: c.timeouts.Internal,
			fetch:   c.fetchInternal,
		})
	}
	if c.osm != nil {
		providers = append(providers, routeProvider{
			source:  domain.TransitSourceOSM,
			timeout: c.timeouts.OSM,
			fetch:   c.fetchOSM,
		})
	}
	if c.directions != nil {
		providers = append(providers, routeProvider{
			source:  domain.TransitSourceGoogle,
			timeout: c.timeouts.Directions,
			fetch:   c.fetchDirections,
		})
	}
	return providers
}

// attempt выполняет одну попытку со своим таймаутом; nil, nil - источник маршрута не знает
func (c *RouteProviderChain) attempt(ctx context.Context, provider routeProvider, q RouteQuery) (*domain.CanonicalRouteResponse, error) {
	if provider.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, provider.timeout)
		defer cancel()
	}

	result, err := provider.fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}

	return c.normalizer.Normalize(result, q.Origin, q.Destination)
}

func (c *RouteProviderChain) fetchInternal(ctx context.Context, q RouteQuery) (*domain.RouteResult, error) {
	route, err := c.routes.FindActiveRoute(ctx, q.Origin.ID, q.Destination.ID)
	if err != nil || route == nil {
		return nil, err
	}
	return &domain.RouteResult{Source: domain.TransitSourceApp, Internal: route}, nil
}

func (c *RouteProviderChain) fetchOSM(ctx context.Context, q RouteQuery) (*domain.RouteResult, error) {
	resp, err := c.osm.GetRoute(ctx, q.OriginPoint, q.DestinationPoint)
	if err != nil || resp == nil || len(resp.Routes) == 0 {
		return nil, err
	}
	return &domain.RouteResult{Source: domain.TransitSourceOSM, OSM: &resp.Routes[0]}, nil
}

func (c *RouteProviderChain) fetchDirections(ctx context.Context, q RouteQuery) (*domain.RouteResult, error) {
	route, err := c.directions.GetDirections(ctx, q.OriginPoint, q.DestinationPoint)
	if err != nil || route == nil {
		return nil, err
	}
	return &domain.RouteResult{Source: domain.TransitSourceGoogle, Directions: route}, nil
}
