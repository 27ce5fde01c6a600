package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/navigation-microservice/internal/domain"
)

// RouteRepository - внутреннее хранилище заранее построенных маршрутов
type RouteRepository interface {
	// FindActiveRoute возвращает активный маршрут с упорядоченными сегментами и точками или nil
	FindActiveRoute(ctx context.Context, originID, destinationID uuid.UUID) (*domain.Route, error)
}

type WheelchairRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// TransitRepository - хранилище поездок
type TransitRepository interface {
	Create(ctx context.Context, transit *domain.Transit) error

	// GetByID возвращает поездку или nil
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transit, error)

	// GetForUser возвращает поездку пользователя или nil
	GetForUser(ctx context.Context, id, userID uuid.UUID) (*domain.Transit, error)

	// SetSource фиксирует источник маршрута
	SetSource(ctx context.Context, id uuid.UUID, source domain.TransitSource) error

	// UpdateTransition применяет переход, если текущий статус входит в t.From.
	// Возвращает nil, nil если ни одна строка не обновлена.
	UpdateTransition(ctx context.Context, id, userID uuid.UUID, t domain.TransitTransition) (*domain.Transit, error)

	// CancelStale отменяет поездки в статусе search старше olderThan, возвращает их id
	CancelStale(ctx context.Context, olderThan time.Time, now time.Time) ([]uuid.UUID, error)
}

// MarkerRepository - маркеры доступности и журнал их наблюдений
type MarkerRepository interface {
	// CreateWithTracking в одной транзакции создаёт маркер, запись detected и выставляет флаг отчёта поездки
	CreateWithTracking(ctx context.Context, marker *domain.TransitMarker, userID uuid.UUID) error

	// FindNearestDetected возвращает ближайший маркер в статусе detected или nil
	FindNearestDetected(ctx context.Context, point domain.Point, radiusMeters float64) (*domain.TransitMarker, error)

	// UpdateStatus добавляет запись журнала; для resolved условно меняет статус маркера.
	// Возвращает false если маркер уже не в статусе detected.
	UpdateStatus(ctx context.Context, marker *domain.TransitMarker, userID uuid.UUID, status domain.TrackingStatus) (bool, error)
}
