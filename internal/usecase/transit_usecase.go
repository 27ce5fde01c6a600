package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/domain/repository"
	"github.com/navigation-microservice/internal/pkg/errors"
	"github.com/navigation-microservice/internal/pkg/utils"
	"github.com/navigation-microservice/internal/usecase/dto"
)

// TransitUseCase - жизненный цикл поездки: search -> in_progress -> completed | canceled
type TransitUseCase struct {
	transits    repository.TransitRepository
	wheelchairs repository.WheelchairRepository
	events      EventPublisher
	logger      *zap.Logger
	now         func() time.Time
}

func NewTransitUseCase(
	transits repository.TransitRepository,
	wheelchairs repository.WheelchairRepository,
	events EventPublisher,
	logger *zap.Logger,
) *TransitUseCase {
	if events == nil {
		events = NewNoopEventPublisher()
	}
	return &TransitUseCase{
		transits:    transits,
		wheelchairs: wheelchairs,
		events:      events,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// SetClock подменяет источник времени
func (uc *TransitUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

// Begin привязывает коляску и переводит поездку в in_progress
func (uc *TransitUseCase) Begin(ctx context.Context, userID uuid.UUID, req *dto.BeginTransitRequest) (*dto.TransitResponse, error) {
	transitID, err := parseID("transit_id", req.TransitID)
	if err != nil {
		return nil, err
	}
	wheelchairID, err := parseID("wheel_chair", req.Wheelchair)
	if err != nil {
		return nil, err
	}

	exists, err := uc.wheelchairs.Exists(ctx, wheelchairID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.ErrWheelchairNotFound
	}

	// начать можно только свою поездку, как и завершить или отменить
	startAt := uc.now()
	return uc.transition(ctx, userID, transitID, domain.TransitTransition{
		From:         domain.OpenTransitStatuses,
		To:           domain.TransitStatusInProgress,
		WheelchairID: &wheelchairID,
		StartAt:      &startAt,
	})
}

// Complete завершает поездку с пройденным расстоянием и временем
func (uc *TransitUseCase) Complete(ctx context.Context, userID uuid.UUID, req *dto.CompleteTransitRequest) (*dto.TransitResponse, error) {
	transitID, err := parseID("transit_id", req.TransitID)
	if err != nil {
		return nil, err
	}
	if req.Distance == nil || req.Duration == nil {
		return nil, errors.ErrValidation.WithMessage("distance and duration are required")
	}

	return uc.complete(ctx, userID, transitID, *req.Distance, *req.Duration)
}

// Cancel отменяет поездку. Если переданы distance и duration, поездка считается завершенной.
func (uc *TransitUseCase) Cancel(ctx context.Context, userID uuid.UUID, req *dto.CancelTransitRequest) (*dto.TransitResponse, error) {
	transitID, err := parseID("transit_id", req.TransitID)
	if err != nil {
		return nil, err
	}

	if req.Distance != nil && req.Duration != nil {
		return uc.complete(ctx, userID, transitID, *req.Distance, *req.Duration)
	}

	endAt := uc.now()
	return uc.transition(ctx, userID, transitID, domain.TransitTransition{
		From:  domain.OpenTransitStatuses,
		To:    domain.TransitStatusCanceled,
		EndAt: &endAt,
	})
}

// CancelStale закрывает поездки, застрявшие в search дольше staleAfter
func (uc *TransitUseCase) CancelStale(ctx context.Context, staleAfter time.Duration) ([]uuid.UUID, error) {
	now := uc.now()
	ids, err := uc.transits.CancelStale(ctx, now.Add(-staleAfter), now)
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		uc.events.Publish(ctx, domain.NavigationEvent{
			Type:       domain.EventTransitCanceled,
			TransitID:  id,
			Status:     string(domain.TransitStatusCanceled),
			OccurredAt: now,
		})
	}
	return ids, nil
}

func (uc *TransitUseCase) complete(ctx context.Context, userID, transitID uuid.UUID, distance, duration float64) (*dto.TransitResponse, error) {
	if duration <= 0 {
		return nil, errors.ErrValidation.WithMessage("duration must be greater than zero")
	}
	if distance < 0 {
		return nil, errors.ErrValidation.WithMessage("distance must not be negative")
	}

	speed := utils.Round2(distance / duration)
	endAt := uc.now()
	return uc.transition(ctx, userID, transitID, domain.TransitTransition{
		From:         domain.OpenTransitStatuses,
		To:           domain.TransitStatusCompleted,
		EndAt:        &endAt,
		Distance:     &distance,
		Duration:     &duration,
		AverageSpeed: &speed,
	})
}

// transition проверяет владельца и статус, затем применяет условное обновление.
// Проигранная гонка за терминальный статус тоже дает ErrInvalidTransition.
func (uc *TransitUseCase) transition(ctx context.Context, userID, transitID uuid.UUID, t domain.TransitTransition) (*dto.TransitResponse, error) {
	current, err := uc.transits.GetForUser(ctx, transitID, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errors.ErrTransitNotFound
	}
	if current.Status.IsTerminal() {
		return nil, errors.ErrInvalidTransition
	}

	updated, err := uc.transits.UpdateTransition(ctx, transitID, userID, t)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		uc.logger.Warn("Transit transition lost to concurrent update",
			zap.String("transit_id", transitID.String()),
			zap.String("to", string(t.To)),
		)
		return nil, errors.ErrInvalidTransition
	}

	uc.logger.Info("Transit transitioned",
		zap.String("transit_id", transitID.String()),
		zap.String("from", string(current.Status)),
		zap.String("to", string(updated.Status)),
	)

	uc.events.Publish(ctx, domain.NavigationEvent{
		Type:       domain.TransitEventType(updated.Status),
		TransitID:  updated.ID,
		UserID:     userID,
		Status:     string(updated.Status),
		OccurredAt: uc.now(),
	})

	return dto.NewTransitResponse(updated), nil
}

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, errors.ErrValidation.WithDetails(map[string]interface{}{
			field: "must be a valid UUID",
		})
	}
	return id, nil
}
