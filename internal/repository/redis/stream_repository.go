package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/domain/repository"
)

// Поля записи стрима. type и transit_id дублируются вне data,
// чтобы консьюмеры могли фильтровать без разбора JSON.
const (
	fieldType      = "type"
	fieldTransitID = "transit_id"
	fieldData      = "data"
)

type eventStreamRepository struct {
	client *redis.Client
	maxLen int64
	logger *zap.Logger
}

// NewStreamRepository создает репозиторий событий.
// maxLen > 0 ограничивает длину стрима (MAXLEN ~).
func NewStreamRepository(client *redis.Client, maxLen int64, logger *zap.Logger) repository.EventStreamRepository {
	return &eventStreamRepository{
		client: client,
		maxLen: maxLen,
		logger: logger,
	}
}

func (r *eventStreamRepository) AppendEvent(ctx context.Context, stream string, event domain.NavigationEvent) (string, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	args := &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			fieldType:      string(event.Type),
			fieldTransitID: event.TransitID.String(),
			fieldData:      string(payload),
		},
	}
	if r.maxLen > 0 {
		args.MaxLen = r.maxLen
		args.Approx = true
	}

	id, err := r.client.XAdd(ctx, args).Result()
	if err != nil {
		return "", fmt.Errorf("xadd %s: %w", stream, err)
	}

	r.logger.Debug("Navigation event appended",
		zap.String("stream", stream),
		zap.String("type", string(event.Type)),
		zap.String("message_id", id))
	return id, nil
}
