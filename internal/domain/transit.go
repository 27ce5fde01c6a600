package domain

import (
	"time"

	"github.com/google/uuid"
)

type TransitStatus string

const (
	TransitStatusSearch     TransitStatus = "search"
	TransitStatusInProgress TransitStatus = "in_progress"
	TransitStatusCompleted  TransitStatus = "completed"
	TransitStatusCanceled   TransitStatus = "canceled"
)

// IsTerminal - из completed и canceled переходов нет
func (s TransitStatus) IsTerminal() bool {
	return s == TransitStatusCompleted || s == TransitStatusCanceled
}

// OpenTransitStatuses - статусы, из которых разрешены переходы
var OpenTransitStatuses = []TransitStatus{TransitStatusSearch, TransitStatusInProgress}

// TransitSource - источник маршрута
type TransitSource string

const (
	TransitSourceApp    TransitSource = "app"
	TransitSourceOSM    TransitSource = "osm"
	TransitSourceGoogle TransitSource = "google"
)

// Transit - поездка пользователя от запроса маршрута до завершения
type Transit struct {
	ID             uuid.UUID      `json:"id" db:"id"`
	UserID         uuid.UUID      `json:"user_id" db:"user_id"`
	OriginID       uuid.UUID      `json:"origin_id" db:"origin_id"`
	DestinationID  uuid.UUID      `json:"destination_id" db:"destination_id"`
	WheelchairID   *uuid.UUID     `json:"wheel_chair,omitempty" db:"wheelchair_id"`
	StartAt        *time.Time     `json:"start_at,omitempty" db:"start_at"`
	EndAt          *time.Time     `json:"end_at,omitempty" db:"end_at"`
	AverageSpeed   *float64       `json:"average_speed,omitempty" db:"average_speed"`
	Distance       *float64       `json:"distance,omitempty" db:"distance"`
	Duration       *float64       `json:"duration,omitempty" db:"duration"`
	BarrierReport  bool           `json:"barrier_report" db:"barrier_report"`
	FacilityReport bool           `json:"facility_report" db:"facility_report"`
	Source         *TransitSource `json:"source,omitempty" db:"source"`
	Status         TransitStatus  `json:"status" db:"status"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
}

// TransitTransition - условное обновление поездки.
// Применяется только если текущий статус входит в From.
type TransitTransition struct {
	From         []TransitStatus
	To           TransitStatus
	WheelchairID *uuid.UUID
	StartAt      *time.Time
	EndAt        *time.Time
	Distance     *float64
	Duration     *float64
	AverageSpeed *float64
}
