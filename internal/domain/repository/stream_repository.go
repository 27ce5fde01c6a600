package repository

import (
	"context"

	"github.com/navigation-microservice/internal/domain"
)

// EventStreamRepository - журнал событий навигации в Redis Streams
type EventStreamRepository interface {
	// AppendEvent добавляет событие в стрим и возвращает id записи
	AppendEvent(ctx context.Context, stream string, event domain.NavigationEvent) (string, error)
}
