package models

import "github.com/google/uuid"

// MaxAdvisoryAttempts - предел счетчика подтверждений, после которого предупреждение больше не показывается
const MaxAdvisoryAttempts = 2

type AdvisoryKind string

const (
	AdvisoryLocation AdvisoryKind = "location"
	AdvisoryDevice   AdvisoryKind = "device"
)

type AdvisoryPhase string

const (
	PhaseHidden           AdvisoryPhase = "hidden"
	PhaseShown            AdvisoryPhase = "shown"
	PhaseForceDismissible AdvisoryPhase = "force_dismissible"
)

// SessionCounters - счетчики, живущие ровно одну сессию браузера
type SessionCounters struct {
	LocationCount int `json:"location_count"`
	DeviceIDCount int `json:"device_id_count"`
}

// Clamp приводит счетчики к диапазону [0, MaxAdvisoryAttempts]
func (c SessionCounters) Clamp() SessionCounters {
	return SessionCounters{
		LocationCount: clampCount(c.LocationCount),
		DeviceIDCount: clampCount(c.DeviceIDCount),
	}
}

func (c SessionCounters) Get(kind AdvisoryKind) int {
	if kind == AdvisoryDevice {
		return c.DeviceIDCount
	}
	return c.LocationCount
}

func (c *SessionCounters) Set(kind AdvisoryKind, n int) {
	if kind == AdvisoryDevice {
		c.DeviceIDCount = clampCount(n)
		return
	}
	c.LocationCount = clampCount(n)
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxAdvisoryAttempts {
		return MaxAdvisoryAttempts
	}
	return n
}

// AdvisoryView - состояние одного предупреждения
type AdvisoryView struct {
	Kind    AdvisoryKind        `json:"kind"`
	Phase   AdvisoryPhase       `json:"phase"`
	Visible bool                `json:"visible"`
	Count   int                 `json:"count"`
	Nearest *NearestVenueResult `json:"nearest,omitempty"`
}

// AdvisorySnapshot - состояние обоих предупреждений сессии
type AdvisorySnapshot struct {
	SessionID uuid.UUID    `json:"session_id"`
	Location  AdvisoryView `json:"location"`
	Device    AdvisoryView `json:"device"`
}
