package screen

import (
	"errors"
	"os/exec"

	"photoframe/internal/logging"
)

// RunFunc executes an external command. Injectable for tests.
type RunFunc func(name string, args ...string) error

// runCommand is the default RunFunc. A missing binary is tolerated: on a
// host without X the daemon still tracks state in the file.
func runCommand(name string, args ...string) error {
	err := exec.Command(name, args...).Run()
	if errors.Is(err, exec.ErrNotFound) {
		logging.Debug("%s not found, skipping", name)
		return nil
	}
	return err
}

// Controller turns the physical display on and off through xset dpms and
// records each transition in the state file.
type Controller struct {
	state *StateFile
	run   RunFunc
}

// NewController returns a Controller writing transitions to state.
func NewController(state *StateFile) *Controller {
	return &Controller{state: state, run: runCommand}
}

// WithRunner replaces the command runner. Used by tests.
func (c *Controller) WithRunner(run RunFunc) *Controller {
	c.run = run
	return c
}

// DisableBlanking turns off the X screensaver timer and automatic dpms so
// only the motion daemon decides when the display sleeps.
func (c *Controller) DisableBlanking() {
	if err := c.run("xset", "s", "off"); err != nil {
		logging.Warn("xset s off: %v", err)
	}
	if err := c.run("xset", "-dpms"); err != nil {
		logging.Warn("xset -dpms: %v", err)
	}
}

// On forces the display on and records the transition.
func (c *Controller) On() error {
	if err := c.run("xset", "dpms", "force", "on"); err != nil {
		logging.Warn("xset dpms force on: %v", err)
	}
	return c.state.Write(true)
}

// Off forces the display off and records the transition.
func (c *Controller) Off() error {
	if err := c.run("xset", "dpms", "force", "off"); err != nil {
		logging.Warn("xset dpms force off: %v", err)
	}
	return c.state.Write(false)
}
