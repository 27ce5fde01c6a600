package postgres_test

import (
	"context"

	"github.com/stretchr/testify/suite"

	"github.com/navigation-microservice/internal/repository/postgres/testhelpers"
)

const (
	migrationsPath = "../../../migrations"
	fixturesPath   = "testdata/fixtures"
)

// dbSuite - общая часть интеграционных тестов: соединение, миграции, фикстуры
type dbSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	ctx    context.Context
}

func (s *dbSuite) setupDB(fixtures ...string) {
	s.testDB = testhelpers.SetupTestDB(s.T())

	// Apply migrations (idempotent)
	err := testhelpers.ApplyMigrations(s.testDB.DB.DB, migrationsPath)
	s.Require().NoError(err, "Failed to apply migrations")

	err = s.testDB.Cleanup(context.Background())
	s.Require().NoError(err, "Failed to cleanup test database")

	err = testhelpers.LoadFixtures(s.testDB.DB.DB, fixturesPath, fixtures)
	s.Require().NoError(err, "Failed to load fixtures")
}

func (s *dbSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *dbSuite) SetupTest() {
	s.ctx = context.Background()
}
