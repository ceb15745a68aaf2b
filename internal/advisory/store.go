package advisory

import (
	"context"
	"sync"

	"github.com/shenikar/usher_checkin/internal/models"
)

// CounterStore хранит счетчики одной сессии.
// Хранилище не должно переживать полную перезагрузку приложения.
type CounterStore interface {
	Load(ctx context.Context) (models.SessionCounters, error)
	Save(ctx context.Context, counters models.SessionCounters) error
}

// DeviceStore хранит идентификатор "этого браузера".
// DeviceID создает идентификатор при первом обращении.
type DeviceStore interface {
	DeviceID(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// MemoryCounterStore - счетчики в памяти процесса
type MemoryCounterStore struct {
	mu       sync.Mutex
	counters models.SessionCounters
}

func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{}
}

func (s *MemoryCounterStore) Load(_ context.Context) (models.SessionCounters, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters.Clamp(), nil
}

func (s *MemoryCounterStore) Save(_ context.Context, counters models.SessionCounters) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters = counters.Clamp()
	return nil
}

// Reset имитирует перезагрузку страницы
func (s *MemoryCounterStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters = models.SessionCounters{}
}

// MemoryDeviceStore - идентификатор устройства в памяти процесса
type MemoryDeviceStore struct {
	mu       sync.Mutex
	id       string
	generate func() string
}

func NewMemoryDeviceStore(generate func() string) *MemoryDeviceStore {
	if generate == nil {
		generate = NewDeviceID
	}
	return &MemoryDeviceStore{generate: generate}
}

func (s *MemoryDeviceStore) DeviceID(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.id == "" {
		s.id = s.generate()
	}
	return s.id, nil
}

func (s *MemoryDeviceStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = ""
	return nil
}
