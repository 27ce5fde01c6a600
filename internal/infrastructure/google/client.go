package google

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
	"github.com/navigation-microservice/internal/pkg/errors"
)

const (
	defaultBaseURL     = "https://maps.googleapis.com/maps/api"
	geocodeEndpoint    = "/geocode/json"
	directionsEndpoint = "/directions/json"

	statusOK = "OK"
)

// Client - клиент Google Maps: обратное геокодирование и маршруты.
// Создаётся один раз и передаётся в use case'ы.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	mode       string
	logger     *zap.Logger
}

// NewClient создает новый клиент для Google Maps API
func NewClient(cfg *config.GoogleConfig, logger *zap.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	mode := cfg.DirectionsMode
	if mode == "" {
		mode = "walking"
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		mode:       mode,
		logger:     logger,
	}
}

type geocodeResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
	Results      []geocodeResult `json:"results"`
}

type geocodeResult struct {
	FormattedAddress  string             `json:"formatted_address"`
	AddressComponents []addressComponent `json:"address_components"`
	Geometry          struct {
		Location domain.Point `json:"location"`
	} `json:"geometry"`
}

type addressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// ReverseGeocode возвращает структурированный адрес первого результата
func (c *Client) ReverseGeocode(ctx context.Context, point domain.Point) (*domain.GeocodedAddress, error) {
	params := url.Values{}
	params.Set("latlng", formatPoint(point))
	params.Set("key", c.apiKey)

	var resp geocodeResponse
	if err := c.get(ctx, geocodeEndpoint, params, &resp); err != nil {
		return nil, errors.ErrGeocodeUnavailable.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}

	if resp.Status != statusOK || len(resp.Results) == 0 {
		c.logger.Warn("Geocode returned no candidates",
			zap.String("status", resp.Status),
			zap.String("error_message", resp.ErrorMessage),
			zap.Float64("lat", point.Lat),
			zap.Float64("lng", point.Lng))
		return nil, errors.ErrGeocodeUnavailable.WithDetails(map[string]interface{}{
			"status": resp.Status,
		})
	}

	return parseGeocodeResult(&resp.Results[0]), nil
}

func parseGeocodeResult(result *geocodeResult) *domain.GeocodedAddress {
	addr := &domain.GeocodedAddress{FormattedAddress: result.FormattedAddress}

	// name и address - первые две части formatted_address
	parts := strings.Split(result.FormattedAddress, ",")
	if len(parts) > 0 {
		addr.Name = strings.TrimSpace(parts[0])
	}
	if len(parts) > 1 {
		addr.Address = strings.TrimSpace(parts[1])
	}

	for _, component := range result.AddressComponents {
		switch {
		case hasType(component, "locality"):
			addr.City = component.LongName
		case hasType(component, "administrative_area_level_1"):
			addr.State = component.LongName
		case hasType(component, "country"):
			addr.Country = component.LongName
		case hasType(component, "postal_code"):
			addr.ZipCode = component.LongName
		}
	}

	loc := result.Geometry.Location
	if loc.Lat != 0 || loc.Lng != 0 {
		addr.Location = &loc
	}

	return addr
}

// GetDirections возвращает первый маршрут Directions API
func (c *Client) GetDirections(ctx context.Context, origin, destination domain.Point) (*domain.DirectionsRoute, error) {
	params := url.Values{}
	params.Set("origin", formatPoint(origin))
	params.Set("destination", formatPoint(destination))
	params.Set("mode", c.mode)
	params.Set("key", c.apiKey)

	var resp domain.DirectionsResponse
	if err := c.get(ctx, directionsEndpoint, params, &resp); err != nil {
		return nil, err
	}

	if resp.Status != statusOK {
		return nil, fmt.Errorf("google directions error: %s - %s", resp.Status, resp.ErrorMessage)
	}
	if len(resp.Routes) == 0 {
		return nil, fmt.Errorf("google directions returned no routes")
	}

	c.logger.Debug("Google directions call successful",
		zap.Int("routes", len(resp.Routes)),
		zap.Int("legs", len(resp.Routes[0].Legs)))

	return &resp.Routes[0], nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Google request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Warn("Google API returned error",
			zap.String("endpoint", endpoint),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("google API error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Warn("Failed to decode Google response", zap.String("endpoint", endpoint), zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func hasType(component addressComponent, t string) bool {
	for _, ct := range component.Types {
		if ct == t {
			return true
		}
	}
	return false
}

func formatPoint(p domain.Point) string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lng, 'f', -1, 64)
}
