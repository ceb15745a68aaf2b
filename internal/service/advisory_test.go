package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/usher_checkin/internal/advisory"
	"github.com/shenikar/usher_checkin/internal/config"
	"github.com/shenikar/usher_checkin/internal/geo"
	"github.com/shenikar/usher_checkin/internal/models"
	"github.com/shenikar/usher_checkin/internal/service/mocks"
	"github.com/shenikar/usher_checkin/internal/webhook"
	webhook_mocks "github.com/shenikar/usher_checkin/internal/webhook/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memorySessions - простая реализация SessionRepository поверх map для сценарных тестов
type memorySessions map[uuid.UUID]models.SessionCounters

func (m memorySessions) Load(_ context.Context, id uuid.UUID) (models.SessionCounters, error) {
	return m[id], nil
}

func (m memorySessions) Save(_ context.Context, id uuid.UUID, c models.SessionCounters) error {
	m[id] = c
	return nil
}

func (m memorySessions) Delete(_ context.Context, id uuid.UUID) error {
	delete(m, id)
	return nil
}

type advisoryFixture struct {
	svc       *advisoryService
	sessions  memorySessions
	devices   *mocks.MockDeviceRepository
	publisher *webhook_mocks.MockPublisher
	clock     time.Time
}

func newAdvisoryFixture(t *testing.T) *advisoryFixture {
	ctrl := gomock.NewController(t)
	f := &advisoryFixture{
		sessions:  memorySessions{},
		devices:   mocks.NewMockDeviceRepository(ctrl),
		publisher: webhook_mocks.NewMockPublisher(ctrl),
		clock:     time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC),
	}
	cfg := &config.Config{
		PassivePositionTimeout: time.Second,
		AdvisorySessionTTL:     time.Hour,
	}
	f.svc = NewAdvisoryService(testResolver(), f.sessions, f.devices, testLogger(), cfg, f.publisher).(*advisoryService)
	f.svc.now = func() time.Time { return f.clock }
	return f
}

func TestStartSession_RaisesBothWarnings(t *testing.T) {
	f := newAdvisoryFixture(t)
	ctx := context.Background()

	f.devices.EXPECT().GetOrCreate(ctx, "client-1", gomock.Any()).Return("device_local", nil).Times(1)

	var events []webhook.Event
	f.publisher.EXPECT().Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e webhook.Event) error {
			events = append(events, e)
			return nil
		}).Times(2)

	snap, err := f.svc.StartSession(ctx, "usher-1", "client-1", "device_server", reported(outsidePos))

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, snap.SessionID)
	assert.Equal(t, models.PhaseShown, snap.Location.Phase)
	assert.Equal(t, models.PhaseShown, snap.Device.Phase)
	require.Len(t, events, 2)
	assert.Equal(t, webhook.EventLocationMismatch, events[0].Type)
	assert.Equal(t, "Chida", events[0].VenueName)
	assert.Equal(t, 286, events[0].DistanceMeters)
	assert.Equal(t, webhook.EventDeviceMismatch, events[1].Type)
}

func TestStartSession_NothingToWarn(t *testing.T) {
	f := newAdvisoryFixture(t)
	ctx := context.Background()

	f.devices.EXPECT().GetOrCreate(ctx, "client-1", gomock.Any()).Return("device_local", nil).Times(1)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	snap, err := f.svc.StartSession(ctx, "usher-1", "client-1", "device_local", reported(chidaPos))

	require.NoError(t, err)
	assert.False(t, snap.Location.Visible)
	assert.False(t, snap.Device.Visible)
}

func TestStartSession_DeviceStoreError(t *testing.T) {
	f := newAdvisoryFixture(t)
	ctx := context.Background()

	f.devices.EXPECT().GetOrCreate(ctx, "client-1", gomock.Any()).Return("", errors.New("db down")).Times(1)

	_, err := f.svc.StartSession(ctx, "usher-1", "client-1", "device_server", reported(chidaPos))

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not start advisory session")
	assert.Empty(t, f.svc.sessions)
}

func TestRecheckLocation_Flow(t *testing.T) {
	f := newAdvisoryFixture(t)
	ctx := context.Background()
	f.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(3)

	snap, err := f.svc.StartSession(ctx, "usher-1", "client-1", "", reported(outsidePos))
	require.NoError(t, err)
	id := snap.SessionID

	snap, err = f.svc.RecheckLocation(ctx, id, reported(outsidePos))
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Location.Count)
	assert.Equal(t, 1, f.sessions[id].LocationCount)

	snap, err = f.svc.RecheckLocation(ctx, id, geo.Reported{ErrKind: models.PositionPermissionDenied})
	require.NoError(t, err)
	assert.Equal(t, models.PhaseForceDismissible, snap.Location.Phase)

	_, err = f.svc.RecheckLocation(ctx, id, reported(chidaPos))
	assert.ErrorIs(t, err, advisory.ErrForceDismissible)

	snap, err = f.svc.Dismiss(ctx, id, models.AdvisoryLocation)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseHidden, snap.Location.Phase)
	assert.Equal(t, 2, f.sessions[id].LocationCount)
}

func TestRecheckLocation_SuccessHides(t *testing.T) {
	f := newAdvisoryFixture(t)
	ctx := context.Background()
	f.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	snap, err := f.svc.StartSession(ctx, "usher-1", "client-1", "", reported(outsidePos))
	require.NoError(t, err)

	snap, err = f.svc.RecheckLocation(ctx, snap.SessionID, reported(chidaPos))

	require.NoError(t, err)
	assert.Equal(t, models.PhaseHidden, snap.Location.Phase)
	assert.Equal(t, 0, snap.Location.Count)
}

func TestAcknowledgeDevice_Flow(t *testing.T) {
	f := newAdvisoryFixture(t)
	ctx := context.Background()
	f.devices.EXPECT().GetOrCreate(ctx, "client-1", gomock.Any()).Return("device_local", nil).Times(1)
	f.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	snap, err := f.svc.StartSession(ctx, "usher-1", "client-1", "device_server", reported(chidaPos))
	require.NoError(t, err)
	id := snap.SessionID

	snap, err = f.svc.AcknowledgeDevice(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Device.Count)
	assert.True(t, snap.Device.Visible)

	snap, err = f.svc.AcknowledgeDevice(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Device.Count)
	assert.False(t, snap.Device.Visible)

	_, err = f.svc.AcknowledgeDevice(ctx, id)
	assert.ErrorIs(t, err, advisory.ErrNotShown)
}

func TestEndSession_ResetsCounters(t *testing.T) {
	f := newAdvisoryFixture(t)
	ctx := context.Background()
	f.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).AnyTimes()

	snap, err := f.svc.StartSession(ctx, "usher-1", "client-1", "", reported(outsidePos))
	require.NoError(t, err)
	id := snap.SessionID
	_, err = f.svc.RecheckLocation(ctx, id, reported(outsidePos))
	require.NoError(t, err)

	require.NoError(t, f.svc.EndSession(ctx, id))
	_, ok := f.sessions[id]
	assert.False(t, ok)

	_, err = f.svc.GetSession(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, f.svc.EndSession(ctx, id), ErrSessionNotFound)

	// После "перезагрузки" входная проверка срабатывает заново
	snap, err = f.svc.StartSession(ctx, "usher-1", "client-1", "", reported(outsidePos))
	require.NoError(t, err)
	assert.Equal(t, models.PhaseShown, snap.Location.Phase)
	assert.Equal(t, 0, snap.Location.Count)
}

func TestGetSession_Expired(t *testing.T) {
	f := newAdvisoryFixture(t)
	ctx := context.Background()

	snap, err := f.svc.StartSession(ctx, "usher-1", "client-1", "", reported(chidaPos))
	require.NoError(t, err)

	f.clock = f.clock.Add(30 * time.Minute)
	_, err = f.svc.GetSession(ctx, snap.SessionID)
	require.NoError(t, err)

	f.clock = f.clock.Add(2 * time.Hour)
	_, err = f.svc.GetSession(ctx, snap.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionNotFound(t *testing.T) {
	f := newAdvisoryFixture(t)
	ctx := context.Background()
	id := uuid.New()

	_, err := f.svc.RecheckLocation(ctx, id, reported(chidaPos))
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = f.svc.AcknowledgeDevice(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = f.svc.Dismiss(ctx, id, models.AdvisoryDevice)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDeviceIDAndReset(t *testing.T) {
	f := newAdvisoryFixture(t)
	ctx := context.Background()

	f.devices.EXPECT().GetOrCreate(ctx, "client-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, candidate string) (string, error) {
			assert.Regexp(t, `^device_\d+_`, candidate)
			return candidate, nil
		}).Times(1)
	f.devices.EXPECT().Delete(ctx, "client-1").Return(nil).Times(1)

	id, err := f.svc.DeviceID(ctx, "client-1")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.NoError(t, f.svc.ResetDevice(ctx, "client-1"))
}

func TestResetDevice_Error(t *testing.T) {
	f := newAdvisoryFixture(t)
	ctx := context.Background()

	f.devices.EXPECT().Delete(ctx, "client-1").Return(errors.New("db down")).Times(1)

	err := f.svc.ResetDevice(ctx, "client-1")
	assert.ErrorContains(t, err, "could not reset device id")
}

func TestRecheckLocation_IdleSessionKeepsAttemptCount(t *testing.T) {
	f := newAdvisoryFixture(t)
	ctx := context.Background()
	f.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(3)

	snap, err := f.svc.StartSession(ctx, "usher-1", "client-1", "", reported(outsidePos))
	require.NoError(t, err)
	id := snap.SessionID
	_, err = f.svc.RecheckLocation(ctx, id, reported(outsidePos))
	require.NoError(t, err)

	// Клиент только опрашивает сессию дольше TTL хранилища
	for range 4 {
		f.clock = f.clock.Add(30 * time.Minute)
		_, err = f.svc.GetSession(ctx, id)
		require.NoError(t, err)
	}
	delete(f.sessions, id)

	snap, err = f.svc.RecheckLocation(ctx, id, reported(outsidePos))
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Location.Count)
	assert.Equal(t, models.PhaseForceDismissible, snap.Location.Phase)
	assert.Equal(t, 2, f.sessions[id].LocationCount)
}

func TestEndSession_WaitsForInFlightRecheck(t *testing.T) {
	f := newAdvisoryFixture(t)
	ctx := context.Background()
	f.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).AnyTimes()

	snap, err := f.svc.StartSession(ctx, "usher-1", "client-1", "", reported(outsidePos))
	require.NoError(t, err)
	id := snap.SessionID

	entered := make(chan struct{})
	release := make(chan struct{})
	slow := geo.PositionSourceFunc(func(context.Context) (models.Position, error) {
		close(entered)
		<-release
		return outsidePos, nil
	})

	recheckErr := make(chan error, 1)
	go func() {
		_, err := f.svc.RecheckLocation(ctx, id, slow)
		recheckErr <- err
	}()
	<-entered

	endErr := make(chan error, 1)
	go func() { endErr <- f.svc.EndSession(ctx, id) }()
	close(release)

	require.NoError(t, <-recheckErr)
	require.NoError(t, <-endErr)

	_, ok := f.sessions[id]
	assert.False(t, ok, "counters must not outlive the session")

	_, err = f.svc.RecheckLocation(ctx, id, reported(outsidePos))
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
