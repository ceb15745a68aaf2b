package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/usher_checkin/internal/config"
	"github.com/shenikar/usher_checkin/internal/geo"
	"github.com/shenikar/usher_checkin/internal/models"
	"github.com/shenikar/usher_checkin/internal/webhook"
	"github.com/sirupsen/logrus"
)

// ErrOutsidePerimeter - пользователь дальше допустимого радиуса от ближайшего зала
var ErrOutsidePerimeter = errors.New("outside venue perimeter")

//go:generate mockgen -source=checkin.go -destination=mocks/checkin.go -package=mocks

// CheckInRepository определяет контракт для работы с бд отметок присутствия
type CheckInRepository interface {
	Save(ctx context.Context, check *models.CheckIn) error
	List(ctx context.Context, page, pageSize int) ([]*models.CheckIn, error)
	CountDistinctUsers(ctx context.Context, minutes int) (int, error)
}

// CheckInService определяет контракт бизнес-логики отметок присутствия
type CheckInService interface {
	Venues() []models.VenueLocation
	NearestVenue(lat, lng float64) models.NearestVenueResult
	CheckIn(ctx context.Context, userID string, src geo.PositionSource) (*models.CheckIn, error)
	ListCheckIns(ctx context.Context, page, pageSize int) ([]*models.CheckIn, error)
	GetStats(ctx context.Context) (int, error)
}

type checkInService struct {
	repo      CheckInRepository
	resolver  *geo.Resolver
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.Publisher
	now       func() time.Time
}

func NewCheckInService(repo CheckInRepository, resolver *geo.Resolver, logger *logrus.Logger, cfg *config.Config, publisher webhook.Publisher) CheckInService {
	return &checkInService{
		repo:      repo,
		resolver:  resolver,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *checkInService) Venues() []models.VenueLocation {
	return s.resolver.Venues()
}

// NearestVenue возвращает ближайший зал и признак нахождения внутри периметра
func (s *checkInService) NearestVenue(lat, lng float64) models.NearestVenueResult {
	return s.resolver.Nearest(lat, lng)
}

// CheckIn отмечает присутствие пользователя.
// Каждая попытка с известными координатами сохраняется, даже если пользователь за периметром.
func (s *checkInService) CheckIn(ctx context.Context, userID string, src geo.PositionSource) (*models.CheckIn, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "checkin",
		"method":  "CheckIn",
		"user_id": userID,
	})
	log.Info("Attempting to check in")

	pos, err := geo.Locate(ctx, src, s.cfg.ActivePositionTimeout)
	if err != nil {
		log.WithError(err).Warn("Position unavailable for check-in")
		return nil, fmt.Errorf("service: could not locate user: %w", err)
	}

	res := s.resolver.Nearest(pos.Latitude, pos.Longitude)
	check := &models.CheckIn{
		UserID:         userID,
		Latitude:       pos.Latitude,
		Longitude:      pos.Longitude,
		VenueName:      res.VenueName,
		DistanceMeters: res.DistanceMeters,
		IsWithin:       res.IsWithin,
	}
	if err := s.repo.Save(ctx, check); err != nil {
		log.WithError(err).Error("Failed to save check-in in repository")
		return nil, fmt.Errorf("service: could not save check-in: %w", err)
	}

	s.publish(ctx, log, webhook.Event{
		Type:           webhook.EventCheckInRecorded,
		UserID:         userID,
		Latitude:       pos.Latitude,
		Longitude:      pos.Longitude,
		VenueName:      res.VenueName,
		DistanceMeters: res.DistanceMeters,
		IsWithin:       res.IsWithin,
		Timestamp:      s.now(),
	})

	log = log.WithFields(logrus.Fields{"venue": res.VenueName, "distance_meters": res.DistanceMeters})
	if !res.IsWithin {
		log.Info("Check-in rejected: outside perimeter")
		return check, fmt.Errorf("service: %w: %d m from %s", ErrOutsidePerimeter, res.DistanceMeters, res.VenueName)
	}

	log.WithField("checkin_id", check.ID).Info("Check-in recorded successfully")
	return check, nil
}

// ListCheckIns возвращает список отметок с пагинацией
func (s *checkInService) ListCheckIns(ctx context.Context, page, pageSize int) ([]*models.CheckIn, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "checkin",
		"method":    "ListCheckIns",
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing check-ins")

	checks, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list check-ins from repository")
		return nil, fmt.Errorf("service: could not list check-ins: %w", err)
	}

	log.WithField("count", len(checks)).Info("Check-ins listed successfully")
	return checks, nil
}

// GetStats возвращает число уникальных пользователей, отметившихся за окно статистики
func (s *checkInService) GetStats(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "checkin",
		"method":  "GetStats",
		"minutes": s.cfg.StatsTimeWindowMinutes,
	})

	count, err := s.repo.CountDistinctUsers(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get check-in stats from repository")
		return 0, fmt.Errorf("service: could not get stats: %w", err)
	}
	return count, nil
}

// publish не прерывает основной сценарий: вебхук вторичен
func (s *checkInService) publish(ctx context.Context, log *logrus.Entry, event webhook.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish webhook event")
	}
}
