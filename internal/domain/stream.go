package domain

import (
	"time"

	"github.com/google/uuid"
)

// StreamNavigationEvents - стрим событий навигации по умолчанию
const StreamNavigationEvents = "stream:navigation:events"

type NavigationEventType string

const (
	EventTransitBegun        NavigationEventType = "transit.begun"
	EventTransitCompleted    NavigationEventType = "transit.completed"
	EventTransitCanceled     NavigationEventType = "transit.canceled"
	EventMarkerCreated       NavigationEventType = "marker.created"
	EventMarkerStatusUpdated NavigationEventType = "marker.status_updated"
)

// NavigationEvent - событие, публикуемое в Redis Stream
type NavigationEvent struct {
	Type       NavigationEventType `json:"type"`
	TransitID  uuid.UUID           `json:"transit_id"`
	MarkerID   *uuid.UUID          `json:"marker_id,omitempty"`
	UserID     uuid.UUID           `json:"user_id"`
	Status     string              `json:"status"`
	OccurredAt time.Time           `json:"occurred_at"`
}

// TransitEventType возвращает тип события для итогового статуса поездки
func TransitEventType(status TransitStatus) NavigationEventType {
	switch status {
	case TransitStatusCompleted:
		return EventTransitCompleted
	case TransitStatusCanceled:
		return EventTransitCanceled
	default:
		return EventTransitBegun
	}
}
