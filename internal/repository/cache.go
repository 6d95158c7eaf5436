package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geoportal/internal/models"
)

const (
	centersCacheKey = "geoportal:medical_centers"
	zonesCacheKey   = "geoportal:emergency_zones"
)

// GetCentersFromCache пытается получить справочник центров из Redis; nil, nil при промахе
func (r *GeoportalRepository) GetCentersFromCache(ctx context.Context) ([]*models.MedicalCenter, error) {
	var centers []*models.MedicalCenter
	found, err := r.getCached(ctx, centersCacheKey, &centers)
	if err != nil || !found {
		return nil, err
	}
	return centers, nil
}

// SetCentersCache сохраняет справочник центров в Redis
func (r *GeoportalRepository) SetCentersCache(ctx context.Context, centers []*models.MedicalCenter) error {
	return r.setCached(ctx, centersCacheKey, centers)
}

// GetZonesFromCache пытается получить зоны риска из Redis; nil, nil при промахе
func (r *GeoportalRepository) GetZonesFromCache(ctx context.Context) ([]*models.EmergencyZone, error) {
	var zones []*models.EmergencyZone
	found, err := r.getCached(ctx, zonesCacheKey, &zones)
	if err != nil || !found {
		return nil, err
	}
	return zones, nil
}

// SetZonesCache сохраняет зоны риска в Redis
func (r *GeoportalRepository) SetZonesCache(ctx context.Context, zones []*models.EmergencyZone) error {
	return r.setCached(ctx, zonesCacheKey, zones)
}

func (r *GeoportalRepository) getCached(ctx context.Context, key string, dst any) (bool, error) {
	if r.redisClient == nil {
		return false, nil
	}
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}
	if err := json.Unmarshal(val, dst); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s from cache: %w", key, err)
	}
	return true, nil
}

func (r *GeoportalRepository) setCached(ctx context.Context, key string, value any) error {
	if r.redisClient == nil {
		return nil
	}
	val, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s for cache: %w", key, err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", key, err)
	}
	return nil
}
