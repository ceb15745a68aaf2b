package advisory

import (
	"context"
	"regexp"
	"testing"

	"github.com/shenikar/usher_checkin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCounterStore_Clamps(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryCounterStore()

	c, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SessionCounters{}, c)

	require.NoError(t, s.Save(ctx, models.SessionCounters{LocationCount: 7, DeviceIDCount: -1}))
	c, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SessionCounters{LocationCount: 2, DeviceIDCount: 0}, c)
}

func TestMemoryDeviceStore_LazyAndClear(t *testing.T) {
	ctx := context.Background()
	n := 0
	s := NewMemoryDeviceStore(func() string {
		n++
		return "device_" + string(rune('a'+n))
	})

	first, err := s.DeviceID(ctx)
	require.NoError(t, err)
	second, err := s.DeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.NoError(t, s.Clear(ctx))
	third, err := s.DeviceID(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestNewDeviceID_Format(t *testing.T) {
	id := NewDeviceID()
	assert.Regexp(t, regexp.MustCompile(`^device_\d+_[0-9a-f]{9}$`), id)
	assert.NotEqual(t, id, NewDeviceID())
}
