package v1

import (
	"time"

	"github.com/google/uuid"
)

// VenueResponse DTO зала
// @Description DTO зала
type VenueResponse struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NearestVenueRequest DTO для поиска ближайшего зала
// @Description DTO для поиска ближайшего зала
type NearestVenueRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// NearestVenueResponse DTO ближайшего зала
// @Description DTO ближайшего зала
type NearestVenueResponse struct {
	VenueName      string `json:"venue_name"`
	DistanceMeters int    `json:"distance_meters"`
	IsWithin       bool   `json:"is_within"`
}

// PositionReport - результат геолокации на клиенте: координаты либо вид ошибки
// @Description Результат геолокации на клиенте
type PositionReport struct {
	Latitude      *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude     *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	PositionError string   `json:"position_error,omitempty" validate:"omitempty,oneof=permission_denied unavailable timeout unknown"`
}

// CheckInRequest DTO для отметки присутствия
// @Description DTO для отметки присутствия
type CheckInRequest struct {
	UserID string `json:"user_id" validate:"required"`
	PositionReport
}

// CheckInResponse DTO отметки присутствия
// @Description DTO отметки присутствия
type CheckInResponse struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"user_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	VenueName      string    `json:"venue_name"`
	DistanceMeters int       `json:"distance_meters"`
	IsWithin       bool      `json:"is_within"`
	CheckedAt      time.Time `json:"checked_at"`
}

// CheckInFailureResponse - неуспешная отметка с сообщением для пользователя
// @Description Неуспешная отметка с сообщением для пользователя
type CheckInFailureResponse struct {
	Error   string           `json:"error"`
	Notice  string           `json:"notice"`
	CheckIn *CheckInResponse `json:"checkin,omitempty"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	UserCount int `json:"user_count"`
}

// StartSessionRequest DTO для начала сессии предупреждений
// @Description DTO для начала сессии предупреждений
type StartSessionRequest struct {
	UserID           string `json:"user_id" validate:"required"`
	ClientKey        string `json:"client_key" validate:"required,max=255"`
	ExpectedDeviceID string `json:"expected_device_id,omitempty" validate:"max=255"`
	PositionReport
}

// RecheckLocationRequest DTO для повторной проверки местоположения
// @Description DTO для повторной проверки местоположения
type RecheckLocationRequest struct {
	PositionReport
}

// AdvisoryResponse DTO одного предупреждения
// @Description DTO одного предупреждения
type AdvisoryResponse struct {
	Kind    string                `json:"kind"`
	Phase   string                `json:"phase"`
	Visible bool                  `json:"visible"`
	Count   int                   `json:"count"`
	Nearest *NearestVenueResponse `json:"nearest,omitempty"`
}

// AdvisorySessionResponse DTO состояния сессии предупреждений
// @Description DTO состояния сессии предупреждений
type AdvisorySessionResponse struct {
	SessionID uuid.UUID        `json:"session_id"`
	Location  AdvisoryResponse `json:"location"`
	Device    AdvisoryResponse `json:"device"`
}

// DeviceResponse DTO идентификатора устройства
// @Description DTO идентификатора устройства
type DeviceResponse struct {
	ClientKey string `json:"client_key"`
	DeviceID  string `json:"device_id"`
}
