package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geoportal/internal/geo"
)

// UserLocation - текущее положение пользователя от провайдера геолокации
type UserLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"` // метры
}

func (l UserLocation) Location() geo.Point {
	return geo.Point{Lat: l.Latitude, Lng: l.Longitude}
}

// LocationCheck представляет запись о проверке местоположения пользователя
type LocationCheck struct {
	ID            int64      `json:"id"`
	UserID        string     `json:"user_id"`
	Latitude      float64    `json:"latitude"`
	Longitude     float64    `json:"longitude"`
	Accuracy      float64    `json:"accuracy"`
	NearestZoneID *uuid.UUID `json:"nearest_zone_id,omitempty"`
	InRiskZone    bool       `json:"in_risk_zone"`
	CheckedAt     time.Time  `json:"checked_at"`
}
