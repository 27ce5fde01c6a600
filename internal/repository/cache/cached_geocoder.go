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

// GeocodeKey - ключ кеша обратного геокодирования, координаты с точностью 6 знаков
func GeocodeKey(p domain.Point) string {
	return fmt.Sprintf("geocode:%.6f,%.6f", p.Lat, p.Lng)
}

type cachedGeocoder struct {
	next   repository.Geocoder
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedGeocoder кеширует успешные ответы геокодера. Ошибки кеша не прерывают запрос.
func NewCachedGeocoder(next repository.Geocoder, cache repository.CacheRepository, ttl time.Duration, logger *zap.Logger) repository.Geocoder {
	return &cachedGeocoder{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (g *cachedGeocoder) ReverseGeocode(ctx context.Context, point domain.Point) (*domain.GeocodedAddress, error) {
	key := GeocodeKey(point)

	if data, err := g.cache.Get(ctx, key); err != nil {
		g.logger.Warn("Geocode cache read failed", zap.String("key", key), zap.Error(err))
	} else if data != nil {
		var addr domain.GeocodedAddress
		if err := json.Unmarshal(data, &addr); err == nil {
			return &addr, nil
		}
		g.logger.Warn("Corrupted geocode cache entry", zap.String("key", key))
	}

	addr, err := g.next.ReverseGeocode(ctx, point)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(addr); err == nil {
		if err := g.cache.Set(ctx, key, data, g.ttl); err != nil {
			g.logger.Warn("Geocode cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return addr, nil
}
