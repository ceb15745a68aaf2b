package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/usher_checkin/internal/advisory"
	"github.com/shenikar/usher_checkin/internal/geo"
	"github.com/shenikar/usher_checkin/internal/models"
	"github.com/shenikar/usher_checkin/internal/service"
	"github.com/shenikar/usher_checkin/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockAdvisory = mocks.MockAdvisoryService

func shownLocation(id uuid.UUID, count int) *models.AdvisorySnapshot {
	phase := models.PhaseShown
	if count >= models.MaxAdvisoryAttempts {
		phase = models.PhaseForceDismissible
	}
	return &models.AdvisorySnapshot{
		SessionID: id,
		Location: models.AdvisoryView{
			Kind: models.AdvisoryLocation, Phase: phase, Visible: true, Count: count,
			Nearest: &models.NearestVenueResult{VenueName: "Chida", DistanceMeters: 286},
		},
		Device: models.AdvisoryView{Kind: models.AdvisoryDevice, Phase: models.PhaseHidden},
	}
}

func TestStartSession_Success(t *testing.T) {
	_, advisories, router := newTestHandler(t)
	id := uuid.New()
	advisories.EXPECT().
		StartSession(gomock.Any(), "usher-1", "browser-a", "device_1_abc", reportedAt(9.0734, 7.4358)).
		Return(shownLocation(id, 0), nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/advisory/sessions", jsonBody(t, map[string]any{
		"user_id": "usher-1", "client_key": "browser-a", "expected_device_id": "device_1_abc",
		"latitude": 9.0734, "longitude": 7.4358,
	}), apiKeyHeader)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp AdvisorySessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.SessionID)
	assert.Equal(t, "shown", resp.Location.Phase)
	assert.True(t, resp.Location.Visible)
	require.NotNil(t, resp.Location.Nearest)
	assert.Equal(t, 286, resp.Location.Nearest.DistanceMeters)
	assert.Equal(t, "hidden", resp.Device.Phase)
	assert.Nil(t, resp.Device.Nearest)
}

func TestStartSession_WithoutPosition(t *testing.T) {
	_, advisories, router := newTestHandler(t)
	id := uuid.New()
	advisories.EXPECT().
		StartSession(gomock.Any(), "usher-1", "browser-a", "", gomock.Nil()).
		Return(&models.AdvisorySnapshot{SessionID: id}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/advisory/sessions", jsonBody(t, map[string]any{
		"user_id": "usher-1", "client_key": "browser-a",
	}), apiKeyHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestStartSession_ValidationError(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/advisory/sessions", jsonBody(t, map[string]any{
		"user_id": "usher-1",
	}), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartSession_ServiceError(t *testing.T) {
	_, advisories, router := newTestHandler(t)
	advisories.EXPECT().
		StartSession(gomock.Any(), "usher-1", "browser-a", "", gomock.Any()).
		Return(nil, errors.New("redis down"))

	w := makeRequest(router, http.MethodPost, "/api/v1/advisory/sessions", jsonBody(t, map[string]any{
		"user_id": "usher-1", "client_key": "browser-a", "position_error": "timeout",
	}), apiKeyHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetSession(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name       string
		url        string
		setup      func(m *mockAdvisory)
		wantStatus int
	}{
		{
			name: "found",
			url:  "/api/v1/advisory/sessions/" + id.String(),
			setup: func(m *mockAdvisory) {
				m.EXPECT().GetSession(gomock.Any(), id).Return(shownLocation(id, 1), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			url:  "/api/v1/advisory/sessions/" + id.String(),
			setup: func(m *mockAdvisory) {
				m.EXPECT().GetSession(gomock.Any(), id).Return(nil, fmt.Errorf("service: %w", service.ErrSessionNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid id",
			url:        "/api/v1/advisory/sessions/not-a-uuid",
			setup:      func(m *mockAdvisory) {},
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, advisories, router := newTestHandler(t)
			tt.setup(advisories)

			w := makeRequest(router, http.MethodGet, tt.url, nil, apiKeyHeader)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestEndSession(t *testing.T) {
	id := uuid.New()
	url := "/api/v1/advisory/sessions/" + id.String()

	t.Run("ended", func(t *testing.T) {
		_, advisories, router := newTestHandler(t)
		advisories.EXPECT().EndSession(gomock.Any(), id).Return(nil)

		w := makeRequest(router, http.MethodDelete, url, nil, apiKeyHeader)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("unknown", func(t *testing.T) {
		_, advisories, router := newTestHandler(t)
		advisories.EXPECT().EndSession(gomock.Any(), id).Return(service.ErrSessionNotFound)

		w := makeRequest(router, http.MethodDelete, url, nil, apiKeyHeader)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRecheckLocation_Success(t *testing.T) {
	_, advisories, router := newTestHandler(t)
	id := uuid.New()
	advisories.EXPECT().
		RecheckLocation(gomock.Any(), id, geo.Reported{ErrKind: models.PositionTimeout}).
		Return(shownLocation(id, 1), nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/advisory/sessions/"+id.String()+"/location/recheck",
		jsonBody(t, map[string]any{"position_error": "timeout"}), apiKeyHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp AdvisorySessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Location.Count)
	assert.Equal(t, "shown", resp.Location.Phase)
}

func TestRecheckLocation_MissingPosition(t *testing.T) {
	_, _, router := newTestHandler(t)
	id := uuid.New()

	w := makeRequest(router, http.MethodPost, "/api/v1/advisory/sessions/"+id.String()+"/location/recheck",
		bytes.NewBufferString(`{}`), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecheckLocation_Conflicts(t *testing.T) {
	for _, target := range []error{advisory.ErrNotShown, advisory.ErrForceDismissible} {
		t.Run(target.Error(), func(t *testing.T) {
			_, advisories, router := newTestHandler(t)
			id := uuid.New()
			advisories.EXPECT().
				RecheckLocation(gomock.Any(), id, gomock.Any()).
				Return(nil, fmt.Errorf("service: %w", target))

			w := makeRequest(router, http.MethodPost, "/api/v1/advisory/sessions/"+id.String()+"/location/recheck",
				jsonBody(t, map[string]any{"latitude": 9.0734, "longitude": 7.4358}), apiKeyHeader)

			assert.Equal(t, http.StatusConflict, w.Code)
		})
	}
}

func TestAcknowledgeDevice(t *testing.T) {
	id := uuid.New()
	url := "/api/v1/advisory/sessions/" + id.String() + "/device/acknowledge"

	t.Run("counted", func(t *testing.T) {
		_, advisories, router := newTestHandler(t)
		advisories.EXPECT().AcknowledgeDevice(gomock.Any(), id).Return(&models.AdvisorySnapshot{
			SessionID: id,
			Device:    models.AdvisoryView{Kind: models.AdvisoryDevice, Phase: models.PhaseShown, Visible: true, Count: 1},
		}, nil)

		w := makeRequest(router, http.MethodPost, url, nil, apiKeyHeader)

		require.Equal(t, http.StatusOK, w.Code)
		var resp AdvisorySessionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Device.Count)
	})

	t.Run("hidden", func(t *testing.T) {
		_, advisories, router := newTestHandler(t)
		advisories.EXPECT().AcknowledgeDevice(gomock.Any(), id).Return(nil, advisory.ErrNotShown)

		w := makeRequest(router, http.MethodPost, url, nil, apiKeyHeader)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestDismiss_RoutesKind(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		path string
		kind models.AdvisoryKind
	}{
		{"location", models.AdvisoryLocation},
		{"device", models.AdvisoryDevice},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, advisories, router := newTestHandler(t)
			advisories.EXPECT().Dismiss(gomock.Any(), id, tt.kind).Return(&models.AdvisorySnapshot{SessionID: id}, nil)

			w := makeRequest(router, http.MethodPost, "/api/v1/advisory/sessions/"+id.String()+"/"+tt.path+"/dismiss", nil, apiKeyHeader)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestDismiss_NotDismissible(t *testing.T) {
	_, advisories, router := newTestHandler(t)
	id := uuid.New()
	advisories.EXPECT().
		Dismiss(gomock.Any(), id, models.AdvisoryLocation).
		Return(nil, fmt.Errorf("service: %w", advisory.ErrNotDismissible))

	w := makeRequest(router, http.MethodPost, "/api/v1/advisory/sessions/"+id.String()+"/location/dismiss", nil, apiKeyHeader)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), advisory.ErrNotDismissible.Error())
}

func TestGetDevice(t *testing.T) {
	_, advisories, router := newTestHandler(t)
	advisories.EXPECT().DeviceID(gomock.Any(), "browser-a").Return("device_1700000000000_abc123def", nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/devices/browser-a", nil, apiKeyHeader)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"client_key":"browser-a","device_id":"device_1700000000000_abc123def"}`, w.Body.String())
}

func TestResetDevice(t *testing.T) {
	t.Run("reset", func(t *testing.T) {
		_, advisories, router := newTestHandler(t)
		advisories.EXPECT().ResetDevice(gomock.Any(), "browser-a").Return(nil)

		w := makeRequest(router, http.MethodDelete, "/api/v1/devices/browser-a", nil, apiKeyHeader)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("store error", func(t *testing.T) {
		_, advisories, router := newTestHandler(t)
		advisories.EXPECT().ResetDevice(gomock.Any(), "browser-a").Return(errors.New("db down"))

		w := makeRequest(router, http.MethodDelete, "/api/v1/devices/browser-a", nil, apiKeyHeader)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
