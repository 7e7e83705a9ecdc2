package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"medi-weather/internal/location"
	"medi-weather/internal/presentation"
	"medi-weather/internal/store"
	"medi-weather/internal/types"
	"medi-weather/internal/weather"
)

// Load outcomes reported to a LoadObserver
const (
	OutcomeSuccess     = "success"
	OutcomeValidation  = "validation"
	OutcomeNotFound    = "not_found"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
	OutcomeStale       = "stale"
)

// LoadObserver receives the outcome of every load
type LoadObserver interface {
	ObserveLoad(outcome string)
}

// Controller owns the display state and runs city loads.
//
// Loads may overlap. Each takes a sequence number when it starts and its
// result is applied only if no later load has been applied already, so the
// display always reflects the most recently started load to finish.
type Controller struct {
	locations   location.Service
	forecasts   weather.Service
	store       store.Store
	defaultCity string
	observer    LoadObserver
	now         func() time.Time
	logger      *slog.Logger

	mu         sync.Mutex
	state      State
	nextSeq    uint64
	appliedSeq uint64
	inFlight   int
}

type Option func(*Controller)

// WithClock replaces time.Now for hourly formatting
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func WithLoadObserver(obs LoadObserver) Option {
	return func(c *Controller) { c.observer = obs }
}

func NewController(
	locations location.Service,
	forecasts weather.Service,
	st store.Store,
	defaultCity string,
	logger *slog.Logger,
	opts ...Option,
) *Controller {
	c := &Controller{
		locations:   locations,
		forecasts:   forecasts,
		store:       st,
		defaultCity: defaultCity,
		now:         time.Now,
		logger:      logger.With("component", "app-controller"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the current display state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Start loads the persisted city, or the default city when none is stored
func (c *Controller) Start(ctx context.Context) error {
	city := c.defaultCity

	saved, err := c.store.Get(ctx, store.LastCityKey)
	switch {
	case err == nil && strings.TrimSpace(saved) != "":
		city = strings.TrimSpace(saved)
	case err != nil && !errors.Is(err, store.ErrNotFound):
		c.logger.Warn("failed to read last city, using default", "error", err, "default", c.defaultCity)
	}

	c.mu.Lock()
	c.state.Input = city
	c.mu.Unlock()

	c.logger.Info("starting with city", "city", city)
	return c.Load(ctx, city)
}

// Submit trims input and loads it. Blank input fails with ErrValidation without calling any provider.
func (c *Controller) Submit(ctx context.Context, input string) error {
	city := strings.TrimSpace(input)

	c.mu.Lock()
	c.state.Input = city
	if city == "" {
		c.state.Error = MsgValidation
		c.mu.Unlock()
		c.observe(OutcomeValidation)
		return ErrValidation
	}
	c.mu.Unlock()

	return c.Load(ctx, city)
}

type loadResult struct {
	place   types.Place
	tz      string
	current presentation.CurrentView
	hourly  presentation.HourlyView
	daily   []presentation.DayView
}

// Load resolves city, fetches its forecast and applies the formatted views.
// On failure the banner shows the error's message and existing panels are kept.
func (c *Controller) Load(ctx context.Context, city string) error {
	loadID := uuid.NewString()
	logger := c.logger.With("load_id", loadID, "city", city)

	c.mu.Lock()
	c.nextSeq++
	seq := c.nextSeq
	c.inFlight++
	c.state.Loading = true
	c.state.Error = ""
	c.mu.Unlock()

	logger.Info("load started")
	start := time.Now()

	res, err := c.run(ctx, city)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.inFlight--
	c.state.Loading = c.inFlight > 0

	if seq < c.appliedSeq {
		logger.Info("discarding stale load", "duration", time.Since(start), "error", err)
		c.observe(OutcomeStale)
		return err
	}
	c.appliedSeq = seq

	if err != nil {
		c.state.Error = Message(err)
		logger.Warn("load failed", "duration", time.Since(start), "kind", Kind(err), "error", err)
		c.observe(outcomeFor(err))
		return err
	}

	c.state.Error = ""
	c.state.City = res.place.Name
	c.state.Timezone = res.tz
	c.state.Current = &res.current
	c.state.Hourly = &res.hourly
	c.state.Daily = res.daily
	c.state.UpdatedAt = c.now()
	c.state.LoadID = loadID

	// Persisting under the lock keeps the stored city in step with the display.
	if perr := c.store.Set(ctx, store.LastCityKey, res.place.Name); perr != nil {
		logger.Error("failed to persist last city", "error", perr)
	}

	logger.Info("load finished",
		"duration", time.Since(start),
		"resolved", res.place.DisplayName(),
		"timezone", res.tz,
	)
	c.observe(OutcomeSuccess)
	return nil
}

// run performs the provider calls and formatting for one load
func (c *Controller) run(ctx context.Context, city string) (res loadResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("load panicked: %v", r)
		}
	}()

	place, err := c.locations.Resolve(ctx, city)
	if err != nil {
		return loadResult{}, err
	}

	snap, err := c.forecasts.Fetch(ctx, place.Coordinates.Latitude, place.Coordinates.Longitude)
	if err != nil {
		return loadResult{}, err
	}

	return loadResult{
		place:   place,
		tz:      snap.Timezone,
		current: presentation.FormatCurrent(place, snap),
		hourly:  presentation.FormatHourly(snap, c.now()),
		daily:   presentation.FormatDaily(snap),
	}, nil
}

func (c *Controller) observe(outcome string) {
	if c.observer != nil {
		c.observer.ObserveLoad(outcome)
	}
}

func outcomeFor(err error) string {
	switch Kind(err) {
	case KindValidation:
		return OutcomeValidation
	case KindNotFound:
		return OutcomeNotFound
	case KindServiceUnavailable:
		return OutcomeUnavailable
	default:
		return OutcomeError
	}
}
