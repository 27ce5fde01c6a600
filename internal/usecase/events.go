package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/domain/repository"
)

// EventPublisher публикует события навигации. Ошибки публикации не прерывают запрос.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.NavigationEvent)
}

type streamEventPublisher struct {
	streams repository.EventStreamRepository
	stream  string
	logger  *zap.Logger
}

// NewStreamEventPublisher создает издателя поверх Redis Stream
func NewStreamEventPublisher(streams repository.EventStreamRepository, stream string, logger *zap.Logger) EventPublisher {
	if stream == "" {
		stream = domain.StreamNavigationEvents
	}
	return &streamEventPublisher{
		streams: streams,
		stream:  stream,
		logger:  logger,
	}
}

func (p *streamEventPublisher) Publish(ctx context.Context, event domain.NavigationEvent) {
	if _, err := p.streams.AppendEvent(ctx, p.stream, event); err != nil {
		p.logger.Warn("Failed to publish navigation event",
			zap.String("type", string(event.Type)),
			zap.String("transit_id", event.TransitID.String()),
			zap.Error(err),
		)
	}
}

type noopEventPublisher struct{}

// NewNoopEventPublisher - издатель для выключенных событий
func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) Publish(context.Context, domain.NavigationEvent) {}
