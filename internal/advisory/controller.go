package advisory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/usher_checkin/internal/geo"
	"github.com/shenikar/usher_checkin/internal/models"
)

var (
	ErrAlreadyStarted   = errors.New("advisory: entry check already performed")
	ErrNotStarted       = errors.New("advisory: entry check not performed yet")
	ErrNotShown         = errors.New("advisory: warning is not shown")
	ErrForceDismissible = errors.New("advisory: attempts exhausted, warning can only be dismissed")
	ErrNotDismissible   = errors.New("advisory: warning cannot be dismissed before attempts are exhausted")
	ErrUnknownKind      = errors.New("advisory: unknown warning kind")
	ErrClosed           = errors.New("advisory: session closed")
)

// Options - зависимости контроллера
type Options struct {
	Resolver *geo.Resolver
	Counters CounterStore
	Devices  DeviceStore
	// ExpectedDeviceID - идентификатор устройства из профиля пользователя на сервере.
	// Пустое значение означает, что сравнивать не с чем.
	ExpectedDeviceID string
	PositionTimeout  time.Duration
}

type warning struct {
	visible bool
	count   int
	nearest *models.NearestVenueResult
}

// Controller решает, когда показывать предупреждения о несовпадении
// местоположения и устройства, и ограничивает их число за сессию.
// Все методы сериализованы: состояние всегда отражает последний завершенный вызов.
type Controller struct {
	mu sync.Mutex

	resolver         *geo.Resolver
	counters         CounterStore
	devices          DeviceStore
	expectedDeviceID string
	timeout          time.Duration

	started  bool
	closed   bool
	location warning
	device   warning
}

func NewController(opts Options) *Controller {
	timeout := opts.PositionTimeout
	if timeout <= 0 {
		timeout = geo.DefaultPassiveTimeout
	}
	return &Controller{
		resolver:         opts.Resolver,
		counters:         opts.Counters,
		devices:          opts.Devices,
		expectedDeviceID: opts.ExpectedDeviceID,
		timeout:          timeout,
	}
}

// Start выполняет входную проверку ровно один раз за жизнь контроллера.
// Если координаты получить не удалось, предупреждение о местоположении не показывается.
func (c *Controller) Start(ctx context.Context, src geo.PositionSource) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return ErrAlreadyStarted
	}

	counters, err := c.counters.Load(ctx)
	if err != nil {
		return fmt.Errorf("advisory: could not load session counters: %w", err)
	}
	c.location = warning{count: counters.LocationCount}
	c.device = warning{count: counters.DeviceIDCount}

	if counters.LocationCount < models.MaxAdvisoryAttempts {
		if pos, err := geo.Locate(ctx, src, c.timeout); err == nil {
			res := c.resolver.Nearest(pos.Latitude, pos.Longitude)
			if !res.IsWithin {
				c.location.visible = true
				c.location.nearest = &res
			}
		}
	}

	if counters.DeviceIDCount < models.MaxAdvisoryAttempts && c.expectedDeviceID != "" {
		local, err := c.devices.DeviceID(ctx)
		if err != nil {
			return fmt.Errorf("advisory: could not read device id: %w", err)
		}
		c.device.visible = local != c.expectedDeviceID
	}

	c.started = true
	return nil
}

// RecheckLocation повторно запрашивает координаты.
// Успех скрывает предупреждение и не тратит попытку, неудача или отказ источника тратят.
func (c *Controller) RecheckLocation(ctx context.Context, src geo.PositionSource) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.actionable(&c.location); err != nil {
		return err
	}

	pos, err := geo.Locate(ctx, src, c.timeout)
	if err == nil {
		res := c.resolver.Nearest(pos.Latitude, pos.Longitude)
		c.location.nearest = &res
		if res.IsWithin {
			c.location.visible = false
			return nil
		}
	} else {
		// Расстояние не получено: прежнее значение уже неактуально
		c.location.nearest = nil
	}

	n, err := c.increment(ctx, models.AdvisoryLocation)
	if err != nil {
		return err
	}
	c.location.count = n
	return nil
}

// AcknowledgeDevice засчитывает подтверждение предупреждения об устройстве.
// На пределе попыток предупреждение скрывается.
func (c *Controller) AcknowledgeDevice(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.actionable(&c.device); err != nil {
		return err
	}

	n, err := c.increment(ctx, models.AdvisoryDevice)
	if err != nil {
		return err
	}
	c.device.count = n
	if n >= models.MaxAdvisoryAttempts {
		c.device.visible = false
	}
	return nil
}

// Dismiss закрывает предупреждение, у которого закончились попытки
func (c *Controller) Dismiss(ctx context.Context, kind models.AdvisoryKind) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	w, err := c.warning(kind)
	if err != nil {
		return err
	}
	switch {
	case c.closed:
		return ErrClosed
	case !c.started:
		return ErrNotStarted
	case !w.visible:
		return ErrNotShown
	case w.count < models.MaxAdvisoryAttempts:
		return ErrNotDismissible
	}

	if err := c.save(ctx, kind, models.MaxAdvisoryAttempts); err != nil {
		return err
	}

	w.visible = false
	w.count = models.MaxAdvisoryAttempts
	return nil
}

// Close завершает сессию: дождавшись текущего вызова, запрещает все последующие,
// чтобы после удаления счетчиков из хранилища никто не записал их заново.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// Snapshot возвращает текущее состояние обоих предупреждений
func (c *Controller) Snapshot() models.AdvisorySnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return models.AdvisorySnapshot{
		Location: c.location.view(models.AdvisoryLocation),
		Device:   c.device.view(models.AdvisoryDevice),
	}
}

func (c *Controller) warning(kind models.AdvisoryKind) (*warning, error) {
	switch kind {
	case models.AdvisoryLocation:
		return &c.location, nil
	case models.AdvisoryDevice:
		return &c.device, nil
	}
	return nil, ErrUnknownKind
}

func (c *Controller) actionable(w *warning) error {
	switch {
	case c.closed:
		return ErrClosed
	case !c.started:
		return ErrNotStarted
	case !w.visible:
		return ErrNotShown
	case w.count >= models.MaxAdvisoryAttempts:
		return ErrForceDismissible
	}
	return nil
}

// increment считает от значения в памяти: хранилище читается только при старте,
// поэтому истекший ключ не может откатить счетчик назад.
func (c *Controller) increment(ctx context.Context, kind models.AdvisoryKind) (int, error) {
	w, err := c.warning(kind)
	if err != nil {
		return 0, err
	}
	n := min(w.count+1, models.MaxAdvisoryAttempts)
	if err := c.save(ctx, kind, n); err != nil {
		return 0, err
	}
	return n, nil
}

// save записывает оба счетчика, подставив n для kind
func (c *Controller) save(ctx context.Context, kind models.AdvisoryKind, n int) error {
	counters := models.SessionCounters{
		LocationCount: c.location.count,
		DeviceIDCount: c.device.count,
	}
	counters.Set(kind, n)
	if err := c.counters.Save(ctx, counters); err != nil {
		return fmt.Errorf("advisory: could not save session counters: %w", err)
	}
	return nil
}

func (w warning) view(kind models.AdvisoryKind) models.AdvisoryView {
	phase := models.PhaseHidden
	if w.visible {
		phase = models.PhaseShown
		if w.count >= models.MaxAdvisoryAttempts {
			phase = models.PhaseForceDismissible
		}
	}
	var nearest *models.NearestVenueResult
	if w.nearest != nil {
		n := *w.nearest
		nearest = &n
	}
	return models.AdvisoryView{
		Kind:    kind,
		Phase:   phase,
		Visible: w.visible,
		Count:   w.count,
		Nearest: nearest,
	}
}
