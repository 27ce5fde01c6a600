package osmrouter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/config"
	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/domain/repository"
)

const (
	routeEndpoint = "/route/getSingleRoute"
	apiKeyHeader  = "api_key"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewClient создает клиент self-hosted OSM роутера
func NewClient(cfg *config.OSMRouterConfig, logger *zap.Logger) repository.OSMRouter {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		logger:     logger,
	}
}

// GetRoute запрашивает маршрут; пустой список routes считается ошибкой
func (c *client) GetRoute(ctx context.Context, origin, destination domain.Point) (*domain.OSMRouteResponse, error) {
	params := url.Values{}
	params.Set("srcLat", strconv.FormatFloat(origin.Lat, 'f', -1, 64))
	params.Set("srcLon", strconv.FormatFloat(origin.Lng, 'f', -1, 64))
	params.Set("destLat", strconv.FormatFloat(destination.Lat, 'f', -1, 64))
	params.Set("destLon", strconv.FormatFloat(destination.Lng, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+routeEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)

	c.logger.Debug("Calling OSM router",
		zap.Float64("src_lat", origin.Lat), zap.Float64("src_lon", origin.Lng),
		zap.Float64("dest_lat", destination.Lat), zap.Float64("dest_lon", destination.Lng))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("osm router error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var routeResp domain.OSMRouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&routeResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(routeResp.Routes) == 0 || len(routeResp.Routes[0].Points) == 0 {
		return nil, fmt.Errorf("osm router returned no routes")
	}

	return &routeResp, nil
}
