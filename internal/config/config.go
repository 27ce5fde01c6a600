package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Log        LogConfig
	Google     GoogleConfig
	OSMRouter  OSMRouterConfig
	Navigation NavigationConfig
	Worker     WorkerConfig
	Events     EventsConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	GeocodeCacheTTL time.Duration
	RouteCacheTTL   time.Duration
}

type LogConfig struct {
	Level string
}

type GoogleConfig struct {
	APIKey         string
	BaseURL        string
	Timeout        time.Duration
	DirectionsMode string
}

type OSMRouterConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type NavigationConfig struct {
	PlaceRadiusMeters    float64
	InternalRouteTimeout time.Duration
}

type WorkerConfig struct {
	Enabled           bool
	SweepInterval     time.Duration
	StaleTransitAfter time.Duration
}

type EventsConfig struct {
	Enabled bool
	Stream  string
	MaxLen  int64
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("API_CORS_ORIGINS", "")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)

	// TTL в секундах
	v.SetDefault("GEOCODE_CACHE_TTL", 86400)
	v.SetDefault("ROUTE_CACHE_TTL", 900)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("GOOGLE_MAPS_BASE_URL", "https://maps.googleapis.com/maps/api")
	v.SetDefault("GOOGLE_MAPS_TIMEOUT", 10)
	v.SetDefault("GOOGLE_DIRECTIONS_MODE", "walking")

	v.SetDefault("OSM_ROUTER_BASE_URL", "http://127.0.0.1:8093")
	v.SetDefault("OSM_ROUTER_TIMEOUT", 10)

	v.SetDefault("PLACE_RADIUS_METERS", 5.0)
	v.SetDefault("INTERNAL_ROUTE_TIMEOUT", 2)

	v.SetDefault("WORKER_ENABLED", true)
	v.SetDefault("WORKER_SWEEP_INTERVAL", 300)
	v.SetDefault("WORKER_STALE_TRANSIT_AFTER", 21600)

	v.SetDefault("EVENTS_ENABLED", false)
	v.SetDefault("EVENTS_STREAM", "stream:navigation:events")
	v.SetDefault("EVENTS_STREAM_MAX_LEN", 100000)
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("API_CORS_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: seconds(v, "DB_CONN_MAX_LIFETIME"),
			ConnMaxIdleTime: seconds(v, "DB_CONN_MAX_IDLE_TIME"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			GeocodeCacheTTL: seconds(v, "GEOCODE_CACHE_TTL"),
			RouteCacheTTL:   seconds(v, "ROUTE_CACHE_TTL"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Google: GoogleConfig{
			APIKey:         v.GetString("GOOGLE_MAPS_API_KEY"),
			BaseURL:        v.GetString("GOOGLE_MAPS_BASE_URL"),
			Timeout:        seconds(v, "GOOGLE_MAPS_TIMEOUT"),
			DirectionsMode: v.GetString("GOOGLE_DIRECTIONS_MODE"),
		},
		OSMRouter: OSMRouterConfig{
			BaseURL: v.GetString("OSM_ROUTER_BASE_URL"),
			APIKey:  v.GetString("OSM_ROUTER_API_KEY"),
			Timeout: seconds(v, "OSM_ROUTER_TIMEOUT"),
		},
		Navigation: NavigationConfig{
			PlaceRadiusMeters:    v.GetFloat64("PLACE_RADIUS_METERS"),
			InternalRouteTimeout: seconds(v, "INTERNAL_ROUTE_TIMEOUT"),
		},
		Worker: WorkerConfig{
			Enabled:           v.GetBool("WORKER_ENABLED"),
			SweepInterval:     seconds(v, "WORKER_SWEEP_INTERVAL"),
			StaleTransitAfter: seconds(v, "WORKER_STALE_TRANSIT_AFTER"),
		},
		Events: EventsConfig{
			Enabled: v.GetBool("EVENTS_ENABLED"),
			Stream:  v.GetString("EVENTS_STREAM"),
			MaxLen:  v.GetInt64("EVENTS_STREAM_MAX_LEN"),
		},
	}

	if cfg.Worker.SweepInterval <= 0 {
		return nil, fmt.Errorf("WORKER_SWEEP_INTERVAL must be positive, got %v", cfg.Worker.SweepInterval)
	}
	if cfg.Worker.StaleTransitAfter <= 0 {
		return nil, fmt.Errorf("WORKER_STALE_TRANSIT_AFTER must be positive, got %v", cfg.Worker.StaleTransitAfter)
	}

	if cfg.Navigation.PlaceRadiusMeters <= 0 {
		return nil, fmt.Errorf("PLACE_RADIUS_METERS must be positive, got %v", cfg.Navigation.PlaceRadiusMeters)
	}

	return cfg, nil
}

func seconds(v *viper.Viper, key string) time.Duration {
	return time.Duration(v.GetInt(key)) * time.Second
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// DSN - строка подключения в формате key=value для драйвера pgx
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
