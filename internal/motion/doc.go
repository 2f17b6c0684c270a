// Package motion implements the PIR-driven display control loop.
//
// A Sensor delivers motion event timestamps on a channel; the Watcher
// consumes them in a single goroutine alongside a one-second tick. Running
// both in one select loop serializes the motion callback against the
// quiet-period check, so a motion event can never race a screen-off
// transition: motion immediately wins.
package motion
