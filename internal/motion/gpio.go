package motion

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// DefaultPin is the header pin the PIR module's OUT line is wired to.
const DefaultPin = "GPIO17"

// warmUp is how long the PIR output is ignored after power-up; these
// modules report noise until they settle.
const warmUp = 2 * time.Second

// GPIOSensor reads a PIR motion sensor on a GPIO pin and converts rising
// edges into motion events.
type GPIOSensor struct {
	pin    gpio.PinIn
	events chan time.Time
	done   chan struct{}
}

// NewGPIOSensor initializes the GPIO host and starts watching pin name for
// rising edges.
func NewGPIOSensor(name string) (*GPIOSensor, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("gpio host init: %w", err)
	}
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("no such pin: %s", name)
	}
	if err := pin.In(gpio.PullDown, gpio.RisingEdge); err != nil {
		return nil, fmt.Errorf("configure %s: %w", name, err)
	}

	s := &GPIOSensor{
		pin:    pin,
		events: make(chan time.Time, 8),
		done:   make(chan struct{}),
	}
	go s.watch()
	return s, nil
}

func (s *GPIOSensor) watch() {
	time.Sleep(warmUp)

	for {
		select {
		case <-s.done:
			return
		default:
		}

		// Short timeout so Close is honored promptly.
		if !s.pin.WaitForEdge(500 * time.Millisecond) {
			continue
		}
		if s.pin.Read() != gpio.High {
			continue
		}
		select {
		case s.events <- time.Now():
		default:
			// Consumer is busy; an event is already pending, which is
			// all the watcher needs.
		}
	}
}

// Events returns the motion event channel.
func (s *GPIOSensor) Events() <-chan time.Time {
	return s.events
}

// Close stops the watch goroutine and releases the pin.
func (s *GPIOSensor) Close() error {
	close(s.done)
	return s.pin.Halt()
}
