package models

import (
	"errors"
	"fmt"
)

// ErrPositionUnavailable - общий признак того, что координаты получить не удалось
var ErrPositionUnavailable = errors.New("position unavailable")

type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type PositionErrorKind string

const (
	PositionPermissionDenied PositionErrorKind = "permission_denied"
	PositionUnavailable      PositionErrorKind = "unavailable"
	PositionTimeout          PositionErrorKind = "timeout"
	PositionUnknown          PositionErrorKind = "unknown"
)

// PositionError описывает отказ источника координат.
// Вид ошибки нужен только для текста уведомления, логика от него не ветвится.
type PositionError struct {
	Kind PositionErrorKind
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("position unavailable: %s", e.Kind)
}

func (e *PositionError) Is(target error) bool {
	return target == ErrPositionUnavailable
}

// Message возвращает текст для пользователя
func (e *PositionError) Message() string {
	switch e.Kind {
	case PositionPermissionDenied:
		return "Location permission was denied. Please allow location access and try again."
	case PositionUnavailable:
		return "Your location is currently unavailable. Please try again."
	case PositionTimeout:
		return "Getting your location took too long. Please try again."
	default:
		return "We could not determine your location."
	}
}
