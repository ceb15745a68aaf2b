package geo

import (
	"context"
	"errors"
	"time"

	"github.com/shenikar/usher_checkin/internal/models"
)

const (
	// DefaultPassiveTimeout - ожидание координат при автоматической проверке
	DefaultPassiveTimeout = 15 * time.Second
	// DefaultActiveTimeout - ожидание координат при отметке присутствия
	DefaultActiveTimeout = 30 * time.Second
)

// PositionSource - разовый запрос текущих координат устройства
type PositionSource interface {
	Locate(ctx context.Context) (models.Position, error)
}

// PositionSourceFunc позволяет использовать функцию как PositionSource
type PositionSourceFunc func(ctx context.Context) (models.Position, error)

func (f PositionSourceFunc) Locate(ctx context.Context) (models.Position, error) {
	return f(ctx)
}

// Reported - результат геолокации, который клиент прислал в запросе
type Reported struct {
	Position *models.Position
	ErrKind  models.PositionErrorKind
}

func (r Reported) Locate(ctx context.Context) (models.Position, error) {
	if err := ctx.Err(); err != nil {
		return models.Position{}, err
	}
	if r.ErrKind != "" {
		return models.Position{}, &models.PositionError{Kind: r.ErrKind}
	}
	if r.Position == nil {
		return models.Position{}, &models.PositionError{Kind: models.PositionUnknown}
	}
	return *r.Position, nil
}

// Locate выполняет запрос координат с ограничением по времени.
// Любой отказ приводится к *models.PositionError.
func Locate(ctx context.Context, src PositionSource, timeout time.Duration) (models.Position, error) {
	if src == nil {
		return models.Position{}, &models.PositionError{Kind: models.PositionUnavailable}
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	pos, err := src.Locate(ctx)
	if err == nil {
		return pos, nil
	}

	var perr *models.PositionError
	switch {
	case errors.As(err, &perr):
		return models.Position{}, perr
	case errors.Is(err, context.DeadlineExceeded):
		return models.Position{}, &models.PositionError{Kind: models.PositionTimeout}
	default:
		return models.Position{}, &models.PositionError{Kind: models.PositionUnknown}
	}
}
