package testhelpers

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/config"
)

// navigationTables - все таблицы схемы, дети раньше родителей
var navigationTables = []string{
	"navigation_transit_marker_tracking",
	"navigation_transit_markers",
	"navigation_transits",
	"wheelchairs",
	"navigation_segment_points",
	"navigation_segments",
	"navigation_routes",
	"geo_places",
	"geo_cities",
	"geo_states",
	"geo_countries",
}

type TestDB struct {
	DB     *sqlx.DB
	Logger *zap.Logger
}

// TestDatabaseConfig читает TEST_DB_* (по умолчанию docker-compose база на 5433)
func TestDatabaseConfig() config.DatabaseConfig {
	port, err := strconv.Atoi(getEnv("TEST_DB_PORT", "5433"))
	if err != nil {
		port = 5433
	}
	return config.DatabaseConfig{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("TEST_DB_USER", "postgres"),
		Password: getEnv("TEST_DB_PASSWORD", "postgres"),
		DBName:   getEnv("TEST_DB_NAME", "navigation_test"),
		SSLMode:  getEnv("TEST_DB_SSLMODE", "disable"),
	}
}

// SetupTestDB подключается к тестовой базе.
// Тест пропускается, если база недоступна или в ней нет PostGIS.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	cfg := TestDatabaseConfig()

	var (
		db    *sqlx.DB
		err   error
		delay = 200 * time.Millisecond
	)
	const attempts = 3
	for i := 1; i <= attempts; i++ {
		if db, err = sqlx.Connect("postgres", cfg.DSN()); err == nil {
			break
		}
		if i < attempts {
			t.Logf("Database not ready (attempt %d/%d), retrying in %v", i, attempts, delay)
			time.Sleep(delay)
			delay *= 2
		}
	}
	if err != nil {
		t.Skipf("Test database %s:%d is not reachable: %v", cfg.Host, cfg.Port, err)
	}

	var version string
	if err := db.Get(&version, "SELECT postgis_lib_version()"); err != nil {
		db.Close()
		t.Skipf("PostGIS not available: %v", err)
	}

	logger := zap.NewNop()
	if testing.Verbose() {
		logger, _ = zap.NewDevelopment()
	}

	return &TestDB{DB: db, Logger: logger}
}

func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		tdb.DB.Close()
	}
}

// Cleanup очищает все таблицы одним TRUNCATE
func (tdb *TestDB) Cleanup(ctx context.Context) error {
	query := fmt.Sprintf("TRUNCATE TABLE %s CASCADE", strings.Join(navigationTables, ", "))
	if _, err := tdb.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
