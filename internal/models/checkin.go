package models

import (
	"time"
)

// CheckIn представляет запись о попытке отметки присутствия ашера
type CheckIn struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"user_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	VenueName      string    `json:"venue_name"`
	DistanceMeters int       `json:"distance_meters"`
	IsWithin       bool      `json:"is_within"`
	CheckedAt      time.Time `json:"checked_at"`
}
