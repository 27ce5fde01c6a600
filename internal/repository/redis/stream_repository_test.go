package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/domain"
	redisRepo "github.com/navigation-microservice/internal/repository/redis"
)

const testStream = "test:stream:navigation:events"

// redisForTest подключается к локальному Redis (DB 1), иначе тест пропускается
func redisForTest(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	client.Del(ctx, testStream)
	t.Cleanup(func() {
		client.Del(context.Background(), testStream)
		client.Close()
	})
	return client
}

func TestEventStreamRepository_AppendEvent(t *testing.T) {
	client := redisForTest(t)
	ctx := context.Background()

	repo := redisRepo.NewStreamRepository(client, 1000, zap.NewNop())

	markerID := uuid.New()
	event := domain.NavigationEvent{
		Type:       domain.EventMarkerCreated,
		TransitID:  uuid.New(),
		MarkerID:   &markerID,
		UserID:     uuid.New(),
		Status:     "detected",
		OccurredAt: time.Now().UTC().Truncate(time.Second),
	}

	id, err := repo.AppendEvent(ctx, testStream, event)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	messages, err := client.XRange(ctx, testStream, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, id, messages[0].ID)
	assert.Equal(t, "marker.created", messages[0].Values["type"])
	assert.Equal(t, event.TransitID.String(), messages[0].Values["transit_id"])

	raw, ok := messages[0].Values["data"].(string)
	require.True(t, ok)

	var decoded domain.NavigationEvent
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, event.Type, decoded.Type)
	assert.Equal(t, markerID, *decoded.MarkerID)
	assert.True(t, event.OccurredAt.Equal(decoded.OccurredAt))
}

func TestEventStreamRepository_TrimsToMaxLen(t *testing.T) {
	client := redisForTest(t)
	ctx := context.Background()

	// приблизительный MAXLEN режет только целые узлы, поэтому проверяем верхнюю границу грубо
	repo := redisRepo.NewStreamRepository(client, 10, zap.NewNop())
	for i := 0; i < 500; i++ {
		_, err := repo.AppendEvent(ctx, testStream, domain.NavigationEvent{
			Type:      domain.EventTransitBegun,
			TransitID: uuid.New(),
		})
		require.NoError(t, err)
	}

	length, err := client.XLen(ctx, testStream).Result()
	require.NoError(t, err)
	assert.Less(t, length, int64(500))
}
