package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	webhookQueueKey = "webhook_events"
)

type EventType string

const (
	EventCheckInRecorded  EventType = "checkin.recorded"
	EventLocationMismatch EventType = "advisory.location_mismatch"
	EventDeviceMismatch   EventType = "advisory.device_mismatch"
)

// Event - структура для данных вебхука
type Event struct {
	Type           EventType  `json:"type"`
	UserID         string     `json:"user_id"`
	SessionID      *uuid.UUID `json:"session_id,omitempty"`
	Latitude       float64    `json:"latitude,omitempty"`
	Longitude      float64    `json:"longitude,omitempty"`
	VenueName      string     `json:"venue_name,omitempty"`
	DistanceMeters int        `json:"distance_meters,omitempty"`
	IsWithin       bool       `json:"is_within"`
	Attempts       int        `json:"attempts,omitempty"`
	Timestamp      time.Time  `json:"timestamp"`
}

//go:generate mockgen -source=publisher.go -destination=mocks/publisher.go -package=mocks

// Publisher - интерфейс для публикации вебхуков
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
