package postgres_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/domain/repository"
	"github.com/navigation-microservice/internal/repository/postgres/testhelpers"
)

type TransitRepositoryTestSuite struct {
	dbSuite
	repo        repository.TransitRepository
	wheelchairs repository.WheelchairRepository
	chairID     uuid.UUID
	userID      uuid.UUID
}

func (s *TransitRepositoryTestSuite) SetupSuite() {
	s.setupDB("geo_reference.sql")
	s.repo = testhelpers.NewTransitRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.wheelchairs = testhelpers.NewWheelchairRepositoryForTest(s.testDB.DB, s.testDB.Logger)

	chairID, err := testhelpers.InsertWheelchair(s.testDB.DB.DB, "Manual")
	s.Require().NoError(err)
	s.chairID = chairID
	s.userID = uuid.New()
}

func (s *TransitRepositoryTestSuite) newTransit() *domain.Transit {
	t := &domain.Transit{UserID: s.userID, OriginID: bayfront, DestinationID: kaseya}
	s.Require().NoError(s.repo.Create(s.ctx, t))
	return t
}

func (s *TransitRepositoryTestSuite) TestCreateAndGet() {
	t := s.newTransit()

	got, err := s.repo.GetByID(s.ctx, t.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(domain.TransitStatusSearch, got.Status)
	s.Nil(got.Source)
	s.Nil(got.EndAt)
	s.False(got.BarrierReport)

	own, err := s.repo.GetForUser(s.ctx, t.ID, s.userID)
	s.NoError(err)
	s.NotNil(own)

	other, err := s.repo.GetForUser(s.ctx, t.ID, uuid.New())
	s.NoError(err)
	s.Nil(other)
}

func (s *TransitRepositoryTestSuite) TestSetSource() {
	t := s.newTransit()

	s.Require().NoError(s.repo.SetSource(s.ctx, t.ID, domain.TransitSourceOSM))

	got, err := s.repo.GetByID(s.ctx, t.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got.Source)
	s.Equal(domain.TransitSourceOSM, *got.Source)
}

func (s *TransitRepositoryTestSuite) TestUpdateTransition_GuardedByStatus() {
	t := s.newTransit()
	now := time.Now().UTC().Truncate(time.Second)

	begun, err := s.repo.UpdateTransition(s.ctx, t.ID, s.userID, domain.TransitTransition{
		From:         domain.OpenTransitStatuses,
		To:           domain.TransitStatusInProgress,
		WheelchairID: &s.chairID,
		StartAt:      &now,
	})
	s.Require().NoError(err)
	s.Require().NotNil(begun)
	s.Equal(domain.TransitStatusInProgress, begun.Status)
	s.Equal(s.chairID, *begun.WheelchairID)

	distance, duration, speed := 1200.0, 1000.0, 1.2
	completion := domain.TransitTransition{
		From:         domain.OpenTransitStatuses,
		To:           domain.TransitStatusCompleted,
		EndAt:        &now,
		Distance:     &distance,
		Duration:     &duration,
		AverageSpeed: &speed,
	}

	done, err := s.repo.UpdateTransition(s.ctx, t.ID, s.userID, completion)
	s.Require().NoError(err)
	s.Require().NotNil(done)
	s.Equal(domain.TransitStatusCompleted, done.Status)
	s.Require().NotNil(done.EndAt)
	s.InDelta(1.2, *done.AverageSpeed, 1e-9)

	// повторное завершение не применяется
	again, err := s.repo.UpdateTransition(s.ctx, t.ID, s.userID, completion)
	s.NoError(err)
	s.Nil(again)

	// чужой пользователь
	t2 := s.newTransit()
	other, err := s.repo.UpdateTransition(s.ctx, t2.ID, uuid.New(), completion)
	s.NoError(err)
	s.Nil(other)
}

func (s *TransitRepositoryTestSuite) TestCancelStale() {
	stale := s.newTransit()
	fresh := s.newTransit()

	_, err := s.testDB.DB.ExecContext(s.ctx,
		`UPDATE navigation_transits SET created_at = NOW() - INTERVAL '7 hours' WHERE id = $1`, stale.ID)
	s.Require().NoError(err)

	now := time.Now()
	ids, err := s.repo.CancelStale(s.ctx, now.Add(-6*time.Hour), now)
	s.Require().NoError(err)
	s.Contains(ids, stale.ID)
	s.NotContains(ids, fresh.ID)

	got, err := s.repo.GetByID(s.ctx, stale.ID)
	s.Require().NoError(err)
	s.Equal(domain.TransitStatusCanceled, got.Status)
	s.NotNil(got.EndAt)
}

func (s *TransitRepositoryTestSuite) TestWheelchairExists() {
	ok, err := s.wheelchairs.Exists(s.ctx, s.chairID)
	s.NoError(err)
	s.True(ok)

	ok, err = s.wheelchairs.Exists(s.ctx, uuid.New())
	s.NoError(err)
	s.False(ok)
}

func TestTransitRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TransitRepositoryTestSuite))
}
