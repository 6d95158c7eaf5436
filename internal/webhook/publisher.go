package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geoportal/internal/geo"
	"github.com/shenikar/geoportal/internal/models"
)

const (
	webhookQueueKey = "zone_alert_events"
)

// ZoneAlertEvent - событие "пользователь находится в зоне высокого риска"
type ZoneAlertEvent struct {
	UserID          string                `json:"user_id"`
	Latitude        float64               `json:"latitude"`
	Longitude       float64               `json:"longitude"`
	Zone            *models.EmergencyZone `json:"zone"`
	ZoneDistanceKm  float64               `json:"zone_distance_km"`
	NearestHospital *models.MedicalCenter `json:"nearest_hospital,omitempty"`
	Route           *geo.RouteEstimate    `json:"route,omitempty"`
	Timestamp       time.Time             `json:"timestamp"`
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event ZoneAlertEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event ZoneAlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal zone alert event: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает справа (BRPOP)
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish zone alert event to Redis: %w", err)
	}
	return nil
}
