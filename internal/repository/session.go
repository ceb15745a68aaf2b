package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/usher_checkin/internal/models"
	"github.com/shenikar/usher_checkin/internal/service"
)

const (
	fieldLocationCount = "location_count"
	fieldDeviceIDCount = "device_id_count"
)

// SessionRepository хранит счетчики сессии в Redis HASH с TTL
type SessionRepository struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewSessionRepository(redisClient *redis.Client, ttl time.Duration) service.SessionRepository {
	return &SessionRepository{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func sessionKey(id uuid.UUID) string {
	return fmt.Sprintf("advisory:session:%s", id.String())
}

// Load возвращает счетчики; отсутствующий ключ означает нули
func (r *SessionRepository) Load(ctx context.Context, sessionID uuid.UUID) (models.SessionCounters, error) {
	vals, err := r.redisClient.HGetAll(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return models.SessionCounters{}, fmt.Errorf("failed to load session counters: %w", err)
	}
	// HGETALL на отсутствующий ключ отдает пустой HASH, а не redis.Nil
	if len(vals) == 0 {
		return models.SessionCounters{}, nil
	}

	counters := models.SessionCounters{
		LocationCount: atoiOrZero(vals[fieldLocationCount]),
		DeviceIDCount: atoiOrZero(vals[fieldDeviceIDCount]),
	}
	return counters.Clamp(), nil
}

// Save записывает счетчики и продлевает TTL
func (r *SessionRepository) Save(ctx context.Context, sessionID uuid.UUID, counters models.SessionCounters) error {
	key := sessionKey(sessionID)
	counters = counters.Clamp()

	_, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			fieldLocationCount, counters.LocationCount,
			fieldDeviceIDCount, counters.DeviceIDCount,
		)
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save session counters: %w", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	if err := r.redisClient.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session counters: %w", err)
	}
	return nil
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
