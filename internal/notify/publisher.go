package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	assignmentQueueKey = "assignment_events"
)

// AssignmentEvent - данные уведомления о назначении респондента на заявку
type AssignmentEvent struct {
	AlertID        uuid.UUID `json:"alert_id"`
	RequesterID    uuid.UUID `json:"requester_id"`
	ResponderID    uuid.UUID `json:"responder_id"`
	ResponderName  string    `json:"responder_name"`
	ResponderPhone string    `json:"responder_phone"`
	Zone           string    `json:"zone"`
	DistanceKm     float64   `json:"distance_km"`
	AssignedAt     time.Time `json:"assigned_at"`
}

// Publisher - интерфейс для публикации уведомлений о назначении
type Publisher interface {
	Publish(ctx context.Context, event AssignmentEvent) error
}

// RedisPublisher - реализация Publisher, использующая очередь Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие назначения в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event AssignmentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal assignment event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, assignmentQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish assignment event to Redis: %w", err)
	}
	return nil
}
