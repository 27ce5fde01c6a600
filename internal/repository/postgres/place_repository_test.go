package postgres_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/domain/repository"
	"github.com/navigation-microservice/internal/repository/postgres/testhelpers"
)

var (
	usaID     = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	floridaID = uuid.MustParse("22222222-2222-2222-2222-222222222221")
	miamiID   = uuid.MustParse("33333333-3333-3333-3333-333333333331")
	bayfront  = uuid.MustParse("44444444-4444-4444-4444-444444444441")
	kaseya    = uuid.MustParse("44444444-4444-4444-4444-444444444442")
)

type PlaceRepositoryTestSuite struct {
	dbSuite
	places repository.PlaceRepository
	geo    repository.GeoReferenceRepository
}

func (s *PlaceRepositoryTestSuite) SetupSuite() {
	s.setupDB("geo_reference.sql")
	s.places = testhelpers.NewPlaceRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.geo = testhelpers.NewGeoReferenceRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *PlaceRepositoryTestSuite) TestFindNearest_WithinRadius() {
	// ~2 м от Bayfront Park
	place, err := s.places.FindNearest(s.ctx, domain.Point{Lat: 25.77531, Lng: -80.18591}, 5)

	s.Require().NoError(err)
	s.Require().NotNil(place)
	s.Equal(bayfront, place.ID)
	s.Equal("Miami", place.CityName)
	s.Equal("FL", place.StateCode)
	s.Equal("USA", place.CountryISO3)
	s.Equal("Bayfront Park, 301 Biscayne Blvd, Miami, FL 33132, USA", place.FormattedAddress())
}

func (s *PlaceRepositoryTestSuite) TestFindNearest_OutsideRadius() {
	place, err := s.places.FindNearest(s.ctx, domain.Point{Lat: 25.7770, Lng: -80.1859}, 5)

	s.NoError(err)
	s.Nil(place)
}

func (s *PlaceRepositoryTestSuite) TestFindNearestMatching() {
	point := domain.Point{Lat: 25.77531, Lng: -80.18591}
	match := domain.PlaceMatch{CountryID: &usaID, StateID: &floridaID, CityID: &miamiID, ZipCode: "33132"}

	place, err := s.places.FindNearestMatching(s.ctx, point, 5, match)
	s.Require().NoError(err)
	s.Require().NotNil(place)
	s.Equal(bayfront, place.ID)

	match.ZipCode = "33131"
	place, err = s.places.FindNearestMatching(s.ctx, point, 5, match)
	s.NoError(err)
	s.Nil(place, "zip mismatch must not match")

	place, err = s.places.FindNearestMatching(s.ctx, point, 5, domain.PlaceMatch{ZipCode: "33132"})
	s.NoError(err)
	s.Nil(place, "NULL references only match NULL")
}

func (s *PlaceRepositoryTestSuite) TestCreateAndGetByID() {
	created, err := s.places.Create(s.ctx, &domain.Place{
		Name:      "Freedom Tower",
		Address:   "600 Biscayne Blvd",
		ZipCode:   "33132",
		CountryID: &usaID,
		StateID:   &floridaID,
		CityID:    &miamiID,
		Lat:       25.7800,
		Lng:       -80.1880,
	})
	s.Require().NoError(err)
	s.Require().NotNil(created)
	s.NotEqual(uuid.Nil, created.ID)
	s.InDelta(25.7800, created.Lat, 1e-9)
	s.InDelta(-80.1880, created.Lng, 1e-9)
	s.Equal("Freedom Tower, 600 Biscayne Blvd, Miami, FL 33132, USA", created.FormattedAddress())

	found, err := s.places.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, found.ID)

	missing, err := s.places.GetByID(s.ctx, uuid.New())
	s.NoError(err)
	s.Nil(missing)
}

func (s *PlaceRepositoryTestSuite) TestFindCountry() {
	for _, value := range []string{"united states", "us", "USA"} {
		country, err := s.geo.FindCountry(s.ctx, value)
		s.Require().NoError(err)
		s.Require().NotNil(country, value)
		s.Equal(usaID, country.ID)
	}

	country, err := s.geo.FindCountry(s.ctx, "Atlantis")
	s.NoError(err)
	s.Nil(country)
}

func (s *PlaceRepositoryTestSuite) TestFindState_ScopedByCountry() {
	state, err := s.geo.FindState(s.ctx, "fl", "US")
	s.Require().NoError(err)
	s.Require().NotNil(state)
	s.Equal(floridaID, state.ID)

	state, err = s.geo.FindState(s.ctx, "Florida", "CA")
	s.NoError(err)
	s.Nil(state)
}

func (s *PlaceRepositoryTestSuite) TestFindCity_ScopedByStateAndCountry() {
	city, err := s.geo.FindCity(s.ctx, "MIAMI", "FL", "US")
	s.Require().NoError(err)
	s.Require().NotNil(city)
	s.Equal(miamiID, city.ID)

	city, err = s.geo.FindCity(s.ctx, "Miami", "ON", "CA")
	s.Require().NoError(err)
	s.Require().NotNil(city)
	s.NotEqual(miamiID, city.ID)
}

func TestPlaceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PlaceRepositoryTestSuite))
}
