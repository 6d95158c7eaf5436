package models

import (
	"github.com/google/uuid"
	"github.com/shenikar/geoportal/internal/geo"
)

// CenterType - тип медицинского центра
type CenterType string

const (
	CenterHospital     CenterType = "hospital"
	CenterClinic       CenterType = "clinic"
	CenterHealthCenter CenterType = "health_center"
)

// MedicalCenter - справочная запись о медицинском центре, ядром не изменяется
type MedicalCenter struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Type      CenterType `json:"type"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Address   string     `json:"address"`
	Phone     string     `json:"phone"`
	Schedule  string     `json:"schedule"`
	Services  []string   `json:"services"`
	Emergency bool       `json:"emergency"`
}

func (c MedicalCenter) Location() geo.Point {
	return geo.Point{Lat: c.Latitude, Lng: c.Longitude}
}
