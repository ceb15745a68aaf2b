package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/usher_checkin/internal/config"
	"github.com/shenikar/usher_checkin/internal/geo"
	"github.com/shenikar/usher_checkin/internal/models"
	"github.com/shenikar/usher_checkin/internal/service/mocks"
	"github.com/shenikar/usher_checkin/internal/webhook"
	webhook_mocks "github.com/shenikar/usher_checkin/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	chidaPos   = models.Position{Latitude: 9.070819, Longitude: 7.434378}
	outsidePos = models.Position{Latitude: 9.0730, Longitude: 7.4330}
)

func testResolver() *geo.Resolver {
	return geo.MustNewResolver([]models.VenueLocation{
		{Name: "Chida", Latitude: 9.070819, Longitude: 7.434378},
		{Name: "Kubwa", Latitude: 9.155600, Longitude: 7.322400},
	}, geo.DefaultPerimeterMeters)
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func reported(p models.Position) geo.PositionSource {
	return geo.Reported{Position: &p}
}

// newTestCheckInService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestCheckInService(t *testing.T) (*checkInService, *mocks.MockCheckInRepository, *webhook_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockCheckInRepository(ctrl)
	webhookMock := webhook_mocks.NewMockPublisher(ctrl)

	cfg := &config.Config{
		StatsTimeWindowMinutes: 60,
		ActivePositionTimeout:  time.Second,
	}

	svc := NewCheckInService(repoMock, testResolver(), testLogger(), cfg, webhookMock).(*checkInService)
	svc.now = func() time.Time { return time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC) }
	return svc, repoMock, webhookMock
}

func TestCheckIn_Success(t *testing.T) {
	// Подготовка
	svc, repoMock, webhookMock := newTestCheckInService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.CheckIn) error {
			// Симулируем, что БД присвоила ID
			c.ID = 42
			return nil
		}).Times(1)

	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e webhook.Event) error {
			assert.Equal(t, webhook.EventCheckInRecorded, e.Type)
			assert.Equal(t, "usher-1", e.UserID)
			assert.True(t, e.IsWithin)
			return nil
		}).Times(1)

	// Действие
	check, err := svc.CheckIn(ctx, "usher-1", reported(chidaPos))

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(42), check.ID)
	assert.Equal(t, "Chida", check.VenueName)
	assert.Equal(t, 0, check.DistanceMeters)
	assert.True(t, check.IsWithin)
}

func TestCheckIn_OutsidePerimeter(t *testing.T) {
	svc, repoMock, webhookMock := newTestCheckInService(t)
	ctx := context.Background()

	repoMock.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	check, err := svc.CheckIn(ctx, "usher-1", reported(outsidePos))

	require.ErrorIs(t, err, ErrOutsidePerimeter)
	assert.ErrorContains(t, err, "286 m from Chida")
	require.NotNil(t, check)
	assert.False(t, check.IsWithin)
}

func TestCheckIn_PositionUnavailable(t *testing.T) {
	svc, repoMock, webhookMock := newTestCheckInService(t)

	repoMock.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0) // Репозиторий не должен вызываться
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	check, err := svc.CheckIn(context.Background(), "usher-1", geo.Reported{ErrKind: models.PositionTimeout})

	assert.Nil(t, check)
	require.ErrorIs(t, err, models.ErrPositionUnavailable)
	var perr *models.PositionError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, models.PositionTimeout, perr.Kind)
}

func TestCheckIn_RepositoryError(t *testing.T) {
	svc, repoMock, webhookMock := newTestCheckInService(t)
	ctx := context.Background()

	repoMock.EXPECT().Save(ctx, gomock.Any()).Return(fmt.Errorf("db down")).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.CheckIn(ctx, "usher-1", reported(chidaPos))

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not save check-in")
}

func TestCheckIn_PublishErrorIsIgnored(t *testing.T) {
	svc, repoMock, webhookMock := newTestCheckInService(t)
	ctx := context.Background()

	repoMock.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down")).Times(1)

	_, err := svc.CheckIn(ctx, "usher-1", reported(chidaPos))

	require.NoError(t, err)
}

func TestListCheckIns_Pagination(t *testing.T) {
	testCases := []struct {
		name             string
		page, pageSize   int
		expectedPage     int
		expectedPageSize int
	}{
		{"valid", 2, 10, 2, 10},
		{"page below one", 0, 10, 1, 10},
		{"page size too big", 1, 500, 1, 20},
		{"page size zero", 1, 0, 1, 20},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repoMock, _ := newTestCheckInService(t)
			ctx := context.Background()
			expected := []*models.CheckIn{{ID: 1, UserID: "usher-1"}}

			repoMock.EXPECT().List(ctx, tc.expectedPage, tc.expectedPageSize).Return(expected, nil).Times(1)

			checks, err := svc.ListCheckIns(ctx, tc.page, tc.pageSize)
			require.NoError(t, err)
			assert.Equal(t, expected, checks)
		})
	}
}

func TestListCheckIns_Error(t *testing.T) {
	svc, repoMock, _ := newTestCheckInService(t)
	ctx := context.Background()

	repoMock.EXPECT().List(ctx, 1, 20).Return(nil, errors.New("db down")).Times(1)

	_, err := svc.ListCheckIns(ctx, 1, 20)
	assert.ErrorContains(t, err, "could not list check-ins")
}

func TestGetStats(t *testing.T) {
	svc, repoMock, _ := newTestCheckInService(t)
	ctx := context.Background()

	repoMock.EXPECT().CountDistinctUsers(ctx, 60).Return(17, nil).Times(1)

	count, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 17, count)
}

func TestNearestVenueAndVenues(t *testing.T) {
	svc, _, _ := newTestCheckInService(t)

	res := svc.NearestVenue(outsidePos.Latitude, outsidePos.Longitude)
	assert.Equal(t, models.NearestVenueResult{VenueName: "Chida", DistanceMeters: 286, IsWithin: false}, res)
	assert.Len(t, svc.Venues(), 2)
}
