// Package screen manages display power state.
//
// The state file is the only coupling point between the motion daemon and
// the HTTP server: the daemon overwrites it with a single ON or OFF token
// on every transition, and the server reads it to decide whether the
// slideshow should keep advancing. Reads are deliberately permissive — an
// absent, unreadable or garbled file counts as ON so a missing daemon
// never stalls the slideshow.
//
// The Controller additionally drives the physical display through xset
// dpms; a missing xset binary is tolerated so the daemon still maintains
// the state file on headless test hosts.
package screen
