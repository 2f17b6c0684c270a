package motion

import (
	"context"
	"sync/atomic"
	"time"

	"photoframe/internal/logging"
	"photoframe/internal/screen"
)

const (
	// DefaultQuietPeriod blanks the display after five minutes without motion.
	DefaultQuietPeriod = 5 * time.Minute
	// MinQuietPeriod is the floor for the configurable quiet period.
	MinQuietPeriod = 10 * time.Second
	// defaultTick is the polling cadence for the quiet-period check.
	defaultTick = time.Second
)

// Sensor delivers motion events. Events must be closed (or simply stop
// delivering) only after Close.
type Sensor interface {
	// Events returns the channel motion timestamps arrive on.
	Events() <-chan time.Time
	// Close releases the underlying sensor resource.
	Close() error
}

// Watcher runs the display control loop: motion turns the screen on
// immediately, sustained quiet turns it off.
type Watcher struct {
	sensor     Sensor
	controller *screen.Controller
	quiet      time.Duration
	tick       time.Duration

	// lastMotion holds the UnixNano of the most recent event. Atomic so
	// LastMotion can be read from outside the loop goroutine.
	lastMotion atomic.Int64

	displayOn bool
}

// NewWatcher returns a Watcher blanking the display after quiet without
// motion. The display is assumed on at start, matching the state right
// after DisableBlanking. Callers are responsible for clamping quiet to
// MinQuietPeriod.
func NewWatcher(sensor Sensor, controller *screen.Controller, quiet time.Duration) *Watcher {
	w := &Watcher{
		sensor:     sensor,
		controller: controller,
		quiet:      quiet,
		tick:       defaultTick,
		displayOn:  true,
	}
	w.lastMotion.Store(time.Now().UnixNano())
	return w
}

// WithTick overrides the polling cadence. Used by tests.
func (w *Watcher) WithTick(tick time.Duration) *Watcher {
	w.tick = tick
	return w
}

// LastMotion returns the time of the most recent motion event.
func (w *Watcher) LastMotion() time.Time {
	return time.Unix(0, w.lastMotion.Load())
}

// Run executes the control loop until ctx is cancelled. On cancellation it
// returns nil after its current iteration; the caller closes the sensor.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case t, ok := <-w.sensor.Events():
			if !ok {
				return nil
			}
			w.lastMotion.Store(t.UnixNano())
			if !w.displayOn {
				logging.Info("motion detected, display on")
				if err := w.controller.On(); err != nil {
					logging.Error("display on: %v", err)
				}
				w.displayOn = true
			}

		case <-ticker.C:
			idle := time.Since(w.LastMotion())
			if w.displayOn && idle > w.quiet {
				logging.Info("no motion for %v, display off", idle.Round(time.Second))
				if err := w.controller.Off(); err != nil {
					logging.Error("display off: %v", err)
				}
				w.displayOn = false
			}
		}
	}
}
