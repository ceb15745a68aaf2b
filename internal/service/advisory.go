package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/usher_checkin/internal/advisory"
	"github.com/shenikar/usher_checkin/internal/config"
	"github.com/shenikar/usher_checkin/internal/geo"
	"github.com/shenikar/usher_checkin/internal/models"
	"github.com/shenikar/usher_checkin/internal/webhook"
	"github.com/sirupsen/logrus"
)

// ErrSessionNotFound - сессии нет или она истекла
var ErrSessionNotFound = errors.New("advisory session not found")

//go:generate mockgen -source=advisory.go -destination=mocks/advisory.go -package=mocks

// SessionRepository хранит счетчики предупреждений, живущие одну сессию браузера
type SessionRepository interface {
	Load(ctx context.Context, sessionID uuid.UUID) (models.SessionCounters, error)
	Save(ctx context.Context, sessionID uuid.UUID, counters models.SessionCounters) error
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

// DeviceRepository хранит идентификатор устройства клиента между перезагрузками.
// GetOrCreate сохраняет candidate, только если записи еще нет, и возвращает сохраненное значение.
type DeviceRepository interface {
	GetOrCreate(ctx context.Context, clientKey, candidate string) (string, error)
	Delete(ctx context.Context, clientKey string) error
}

// AdvisoryService определяет контракт управления предупреждениями безопасности
type AdvisoryService interface {
	StartSession(ctx context.Context, userID, clientKey, expectedDeviceID string, src geo.PositionSource) (*models.AdvisorySnapshot, error)
	GetSession(ctx context.Context, id uuid.UUID) (*models.AdvisorySnapshot, error)
	RecheckLocation(ctx context.Context, id uuid.UUID, src geo.PositionSource) (*models.AdvisorySnapshot, error)
	AcknowledgeDevice(ctx context.Context, id uuid.UUID) (*models.AdvisorySnapshot, error)
	Dismiss(ctx context.Context, id uuid.UUID, kind models.AdvisoryKind) (*models.AdvisorySnapshot, error)
	EndSession(ctx context.Context, id uuid.UUID) error
	DeviceID(ctx context.Context, clientKey string) (string, error)
	ResetDevice(ctx context.Context, clientKey string) error
}

type advisorySession struct {
	userID   string
	ctrl     *advisory.Controller
	lastSeen time.Time
}

type advisoryService struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*advisorySession

	resolver  *geo.Resolver
	counters  SessionRepository
	devices   DeviceRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.Publisher
	now       func() time.Time
}

func NewAdvisoryService(resolver *geo.Resolver, counters SessionRepository, devices DeviceRepository, logger *logrus.Logger, cfg *config.Config, publisher webhook.Publisher) AdvisoryService {
	return &advisoryService{
		sessions:  make(map[uuid.UUID]*advisorySession),
		resolver:  resolver,
		counters:  counters,
		devices:   devices,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		now:       time.Now,
	}
}

// StartSession создает контроллер для новой сессии и выполняет входную проверку.
// expectedDeviceID - идентификатор устройства из профиля пользователя.
func (s *advisoryService) StartSession(ctx context.Context, userID, clientKey, expectedDeviceID string, src geo.PositionSource) (*models.AdvisorySnapshot, error) {
	id := uuid.New()
	log := s.logger.WithFields(logrus.Fields{
		"service":    "advisory",
		"method":     "StartSession",
		"user_id":    userID,
		"session_id": id,
	})
	log.Info("Starting advisory session")

	ctrl := advisory.NewController(advisory.Options{
		Resolver:         s.resolver,
		Counters:         &sessionCounters{repo: s.counters, sessionID: id},
		Devices:          &clientDevice{repo: s.devices, clientKey: clientKey},
		ExpectedDeviceID: expectedDeviceID,
		PositionTimeout:  s.cfg.PassivePositionTimeout,
	})
	if err := ctrl.Start(ctx, src); err != nil {
		log.WithError(err).Error("Failed to run entry check")
		return nil, fmt.Errorf("service: could not start advisory session: %w", err)
	}

	s.mu.Lock()
	s.pruneLocked()
	s.sessions[id] = &advisorySession{userID: userID, ctrl: ctrl, lastSeen: s.now()}
	s.mu.Unlock()

	snap := s.snapshot(id, ctrl)
	if snap.Location.Visible {
		s.publishLocation(ctx, log, userID, id, snap.Location)
	}
	if snap.Device.Visible {
		s.publish(ctx, log, webhook.Event{
			Type:      webhook.EventDeviceMismatch,
			UserID:    userID,
			SessionID: &id,
			Attempts:  snap.Device.Count,
			Timestamp: s.now(),
		})
	}

	log.WithFields(logrus.Fields{
		"location_phase": snap.Location.Phase,
		"device_phase":   snap.Device.Phase,
	}).Info("Advisory session started")
	return snap, nil
}

func (s *advisoryService) GetSession(_ context.Context, id uuid.UUID) (*models.AdvisorySnapshot, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}
	return s.snapshot(id, sess.ctrl), nil
}

// RecheckLocation повторяет запрос координат по действию пользователя
func (s *advisoryService) RecheckLocation(ctx context.Context, id uuid.UUID, src geo.PositionSource) (*models.AdvisorySnapshot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "advisory",
		"method":     "RecheckLocation",
		"session_id": id,
	})

	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	if err := sess.ctrl.RecheckLocation(ctx, src); err != nil {
		log.WithError(err).Warn("Location re-check rejected")
		return nil, fmt.Errorf("service: could not recheck location: %w", closedAsNotFound(err))
	}

	snap := s.snapshot(id, sess.ctrl)
	if snap.Location.Visible {
		s.publishLocation(ctx, log, sess.userID, id, snap.Location)
	}
	log.WithFields(logrus.Fields{
		"phase": snap.Location.Phase,
		"count": snap.Location.Count,
	}).Info("Location re-checked")
	return snap, nil
}

// AcknowledgeDevice засчитывает подтверждение предупреждения об устройстве
func (s *advisoryService) AcknowledgeDevice(ctx context.Context, id uuid.UUID) (*models.AdvisorySnapshot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "advisory",
		"method":     "AcknowledgeDevice",
		"session_id": id,
	})

	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	if err := sess.ctrl.AcknowledgeDevice(ctx); err != nil {
		log.WithError(err).Warn("Device acknowledgement rejected")
		return nil, fmt.Errorf("service: could not acknowledge device warning: %w", closedAsNotFound(err))
	}

	snap := s.snapshot(id, sess.ctrl)
	log.WithField("count", snap.Device.Count).Info("Device warning acknowledged")
	return snap, nil
}

// Dismiss закрывает предупреждение, у которого закончились попытки
func (s *advisoryService) Dismiss(ctx context.Context, id uuid.UUID, kind models.AdvisoryKind) (*models.AdvisorySnapshot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "advisory",
		"method":     "Dismiss",
		"session_id": id,
		"kind":       kind,
	})

	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	if err := sess.ctrl.Dismiss(ctx, kind); err != nil {
		log.WithError(err).Warn("Dismiss rejected")
		return nil, fmt.Errorf("service: could not dismiss warning: %w", closedAsNotFound(err))
	}

	log.Info("Warning dismissed")
	return s.snapshot(id, sess.ctrl), nil
}

// EndSession соответствует полной перезагрузке страницы: счетчики сессии удаляются
func (s *advisoryService) EndSession(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "advisory",
		"method":     "EndSession",
		"session_id": id,
	})

	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	// Закрываем контроллер до удаления: незавершенный вызов не запишет счетчики повторно
	if ok {
		sess.ctrl.Close()
	}
	if err := s.counters.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete session counters")
		return fmt.Errorf("service: could not end advisory session: %w", err)
	}
	if !ok {
		return ErrSessionNotFound
	}

	log.Info("Advisory session ended")
	return nil
}

// DeviceID возвращает идентификатор устройства клиента, создавая его при первом обращении
func (s *advisoryService) DeviceID(ctx context.Context, clientKey string) (string, error) {
	id, err := (&clientDevice{repo: s.devices, clientKey: clientKey}).DeviceID(ctx)
	if err != nil {
		s.logger.WithField("client_key", clientKey).WithError(err).Error("Failed to get device id")
		return "", fmt.Errorf("service: could not get device id: %w", err)
	}
	return id, nil
}

// ResetDevice - сброс идентификатора устройства администратором
func (s *advisoryService) ResetDevice(ctx context.Context, clientKey string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "advisory",
		"method":     "ResetDevice",
		"client_key": clientKey,
	})

	if err := s.devices.Delete(ctx, clientKey); err != nil {
		log.WithError(err).Error("Failed to reset device id")
		return fmt.Errorf("service: could not reset device id: %w", err)
	}

	log.Info("Device id reset")
	return nil
}

func (s *advisoryService) session(id uuid.UUID) (*advisorySession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || s.expired(sess) {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}
	sess.lastSeen = s.now()
	return sess, nil
}

// closedAsNotFound: сессия завершилась, пока вызов ждал своей очереди
func closedAsNotFound(err error) error {
	if errors.Is(err, advisory.ErrClosed) {
		return ErrSessionNotFound
	}
	return err
}

func (s *advisoryService) expired(sess *advisorySession) bool {
	return s.cfg.AdvisorySessionTTL > 0 && s.now().Sub(sess.lastSeen) > s.cfg.AdvisorySessionTTL
}

// pruneLocked удаляет простаивающие сессии; вызывается под s.mu
func (s *advisoryService) pruneLocked() {
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
		}
	}
}

func (s *advisoryService) snapshot(id uuid.UUID, ctrl *advisory.Controller) *models.AdvisorySnapshot {
	snap := ctrl.Snapshot()
	snap.SessionID = id
	return &snap
}

func (s *advisoryService) publishLocation(ctx context.Context, log *logrus.Entry, userID string, id uuid.UUID, view models.AdvisoryView) {
	event := webhook.Event{
		Type:      webhook.EventLocationMismatch,
		UserID:    userID,
		SessionID: &id,
		Attempts:  view.Count,
		Timestamp: s.now(),
	}
	if view.Nearest != nil {
		event.VenueName = view.Nearest.VenueName
		event.DistanceMeters = view.Nearest.DistanceMeters
		event.IsWithin = view.Nearest.IsWithin
	}
	s.publish(ctx, log, event)
}

func (s *advisoryService) publish(ctx context.Context, log *logrus.Entry, event webhook.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish webhook event")
	}
}
