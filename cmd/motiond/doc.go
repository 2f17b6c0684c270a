// Command motiond watches a PIR motion sensor and powers the display off
// after a configurable quiet period, recording every transition in the
// screen status file the photoframe server reads.
package main
