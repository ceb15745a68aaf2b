package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shenikar/usher_checkin/internal/advisory"
	"github.com/shenikar/usher_checkin/internal/models"
)

// sessionCounters привязывает SessionRepository к одной сессии
type sessionCounters struct {
	repo      SessionRepository
	sessionID uuid.UUID
}

func (c *sessionCounters) Load(ctx context.Context) (models.SessionCounters, error) {
	counters, err := c.repo.Load(ctx, c.sessionID)
	if err != nil {
		return models.SessionCounters{}, err
	}
	return counters.Clamp(), nil
}

func (c *sessionCounters) Save(ctx context.Context, counters models.SessionCounters) error {
	return c.repo.Save(ctx, c.sessionID, counters.Clamp())
}

// clientDevice привязывает DeviceRepository к одному клиенту
type clientDevice struct {
	repo      DeviceRepository
	clientKey string
}

func (d *clientDevice) DeviceID(ctx context.Context) (string, error) {
	return d.repo.GetOrCreate(ctx, d.clientKey, advisory.NewDeviceID())
}

func (d *clientDevice) Clear(ctx context.Context) error {
	return d.repo.Delete(ctx, d.clientKey)
}
