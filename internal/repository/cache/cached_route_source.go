package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/domain/repository"
)

// RouteKey - ключ кеша маршрута внешнего провайдера
func RouteKey(source domain.TransitSource, origin, destination domain.Point) string {
	return fmt.Sprintf("route:%s:%.6f,%.6f:%.6f,%.6f", source, origin.Lat, origin.Lng, destination.Lat, destination.Lng)
}

type routeCache struct {
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

func (c *routeCache) load(ctx context.Context, key string, out interface{}) bool {
	data, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("Route cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.logger.Warn("Corrupted route cache entry", zap.String("key", key))
		return false
	}
	return true
}

func (c *routeCache) store(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Route cache write failed", zap.String("key", key), zap.Error(err))
	}
}

type cachedOSMRouter struct {
	routeCache
	next repository.OSMRouter
}

// NewCachedOSMRouter кеширует только успешные ответы OSM роутера
func NewCachedOSMRouter(next repository.OSMRouter, cache repository.CacheRepository, ttl time.Duration, logger *zap.Logger) repository.OSMRouter {
	return &cachedOSMRouter{
		routeCache: routeCache{cache: cache, ttl: ttl, logger: logger},
		next:       next,
	}
}

func (r *cachedOSMRouter) GetRoute(ctx context.Context, origin, destination domain.Point) (*domain.OSMRouteResponse, error) {
	key := RouteKey(domain.TransitSourceOSM, origin, destination)

	var cached domain.OSMRouteResponse
	if r.load(ctx, key, &cached) {
		return &cached, nil
	}

	resp, err := r.next.GetRoute(ctx, origin, destination)
	if err != nil {
		return nil, err
	}

	r.store(ctx, key, resp)
	return resp, nil
}

type cachedDirections struct {
	routeCache
	next repository.DirectionsProvider
}

// NewCachedDirections кеширует только успешные ответы directions API
func NewCachedDirections(next repository.DirectionsProvider, cache repository.CacheRepository, ttl time.Duration, logger *zap.Logger) repository.DirectionsProvider {
	return &cachedDirections{
		routeCache: routeCache{cache: cache, ttl: ttl, logger: logger},
		next:       next,
	}
}

func (d *cachedDirections) GetDirections(ctx context.Context, origin, destination domain.Point) (*domain.DirectionsRoute, error) {
	key := RouteKey(domain.TransitSourceGoogle, origin, destination)

	var cached domain.DirectionsRoute
	if d.load(ctx, key, &cached) {
		return &cached, nil
	}

	route, err := d.next.GetDirections(ctx, origin, destination)
	if err != nil {
		return nil, err
	}

	d.store(ctx, key, route)
	return route, nil
}
